package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/tripman/internal/domain"
)

// criteriaFromQuery binds the optional id, destination, price and date query
// parameters. A parameter that is absent stays nil; "?destination=" is a
// present empty string.
func criteriaFromQuery(q url.Values) (domain.Criteria, error) {
	var c domain.Criteria
	bindings := []struct {
		name string
		dest any
	}{
		{"id", &c.ID},
		{"destination", &c.Destination},
		{"price", &c.Price},
		{"date", &c.Date},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return domain.Criteria{}, fmt.Errorf("invalid query parameter %s: %w", b.name, err)
		}
	}
	return c, nil
}

// tripIDFromPath binds the {id} path parameter.
func tripIDFromPath(r *http.Request) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, fmt.Errorf("invalid path parameter id: %w", err)
	}
	return id, nil
}

// decodeBody decodes a JSON request body into dst, rejecting unknown fields.
// The returned status is 413 when the body limit was hit and 400 otherwise.
func decodeBody(r *http.Request, dst any) (int, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return http.StatusUnprocessableEntity, errors.New("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err)
	}
	return 0, nil
}
