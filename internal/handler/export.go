package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/tripman/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"id", "destination", "date", "price"}

// GetExport implements GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, badRequestBody("invalid query parameter format: "+err.Error()))
		return
	}
	if format != nil && *format != "csv" && *format != "json" {
		writeJSON(w, http.StatusBadRequest, badRequestBody("format must be csv or json"))
		return
	}

	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}

	if format != nil && *format == "csv" {
		body := buildCSV(trips)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		body.WriteTo(w)
		return
	}
	writeJSON(w, http.StatusOK, tripsToResponse(trips))
}

// buildCSV encodes trips as CSV, one row per trip in creation order.
// Prices are written with two decimals, the same way the menu prints them.
func buildCSV(trips []domain.Trip) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, t := range trips {
		//nolint:errcheck
		w.Write([]string{
			strconv.Itoa(t.ID),
			t.Destination,
			t.Date,
			strconv.FormatFloat(t.Price, 'f', 2, 64),
		})
	}
	w.Flush()
	return &buf
}
