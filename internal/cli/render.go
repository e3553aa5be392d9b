package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkordes/tripman/internal/domain"
)

// Palette for the menu.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

// Renderer writes menu screens, trips and outcomes to w.
// Styles are bound to w, so colour is dropped automatically when w is not a
// terminal (pipes, files, test buffers).
type Renderer struct {
	w       io.Writer
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		title:   lr.NewStyle().Bold(true).Foreground(colorTitle),
		success: lr.NewStyle().Foreground(colorSuccess),
		warning: lr.NewStyle().Foreground(colorWarning),
		failure: lr.NewStyle().Foreground(colorError),
	}
}

// Title prints a "--- text ---" heading preceded by a blank line.
func (r *Renderer) Title(text string) {
	fmt.Fprintf(r.w, "\n%s\n", r.title.Render("--- "+text+" ---"))
}

// Options prints a numbered list starting at 1.
func (r *Renderer) Options(options ...string) {
	for i, o := range options {
		fmt.Fprintf(r.w, "%d. %s\n", i+1, o)
	}
}

// Line prints text followed by a newline, unstyled.
func (r *Renderer) Line(text string) {
	fmt.Fprintln(r.w, text)
}

// Prompt prints text without a trailing newline.
func (r *Renderer) Prompt(text string) {
	fmt.Fprint(r.w, text)
}

// Success prints an outcome that changed something.
func (r *Renderer) Success(text string) {
	fmt.Fprintf(r.w, "\n%s\n", r.success.Render(text))
}

// Notice prints a neutral outcome such as "nothing matched".
func (r *Renderer) Notice(text string) {
	fmt.Fprintf(r.w, "\n%s\n", r.warning.Render(text))
}

// Error prints a rejected input or operation.
func (r *Renderer) Error(text string) {
	fmt.Fprintf(r.w, "\n%s\n", r.failure.Render(text))
}

// Trips prints one line per trip, or empty when there are none.
func (r *Renderer) Trips(trips []domain.Trip, empty string) {
	if len(trips) == 0 {
		r.Notice(empty)
		return
	}
	for _, t := range trips {
		r.Line(FormatTrip(t))
	}
}

// FormatTrip renders t the way the menu lists it:
//
//	Trip ID: 1, Destination: Bali, Date: 2024-05-01, Price: RP1500.00
func FormatTrip(t domain.Trip) string {
	return fmt.Sprintf("Trip ID: %d, Destination: %s, Date: %s, Price: RP%.2f", t.ID, t.Destination, t.Date, t.Price)
}
