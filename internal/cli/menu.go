// Package cli is the interactive text menu for the trip manager.
//
// The menu owns all prompting, parsing and printing. It collects validated
// values from the operator, hands them to the trip service, and renders what
// comes back. It never touches the store directly.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkordes/tripman/internal/domain"
)

// TripServicer defines the business operations the menu depends on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Find(ctx context.Context, c domain.Criteria) ([]domain.Trip, error)
	UpdateMatching(ctx context.Context, c domain.Criteria, p domain.TripPatch) (int, error)
	DeleteMatching(ctx context.Context, c domain.Criteria) (int, error)
}

// Main menu entries, in display order.
const (
	actionCreate = iota + 1
	actionList
	actionSearch
	actionUpdate
	actionDelete
	actionExit
)

// Field codes used by search, update and delete.
const (
	fieldID = iota + 1
	fieldDestination
	fieldPrice
	fieldDate
)

// Menu is the sequential menu loop.
type Menu struct {
	trips  TripServicer
	prompt *Prompter
	render *Renderer
	log    *slog.Logger
}

// NewMenu builds a Menu reading answers from in and writing screens to out.
// A nil logger falls back to slog.Default().
func NewMenu(trips TripServicer, in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.Default()
	}
	render := NewRenderer(out)
	return &Menu{
		trips:  trips,
		prompt: NewPrompter(in, render),
		render: render,
		log:    log,
	}
}

// Run shows the main menu until the operator exits, input ends or ctx is
// cancelled, all of which end the session cleanly. Rejected operations
// (e.g. a negative price) are reported and the loop continues; any other
// error ends the session and is returned.
func (m *Menu) Run(ctx context.Context) error {
	m.log.DebugContext(ctx, "menu session started")
	defer m.log.DebugContext(ctx, "menu session ended")

	for {
		if ctx.Err() != nil {
			m.goodbye()
			return nil
		}

		m.render.Title("Travel Management System")
		m.render.Options("Create Trip", "Display All Trips", "Search Trip", "Update Trip", "Delete Trip", "Exit")

		action, err := m.prompt.Choice(ctx, "Enter your choice: ", actionExit)
		if err == nil && action == actionExit {
			m.goodbye()
			return nil
		}
		if err == nil {
			err = m.dispatch(ctx, action)
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF), ctx.Err() != nil:
			m.goodbye()
			return nil
		case errors.Is(err, domain.ErrValidation):
			m.render.Error(rejection(err))
		default:
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, action int) error {
	switch action {
	case actionCreate:
		return m.create(ctx)
	case actionList:
		return m.list(ctx)
	case actionSearch:
		return m.search(ctx)
	case actionUpdate:
		return m.update(ctx)
	case actionDelete:
		return m.delete(ctx)
	}
	return fmt.Errorf("cli.Menu: unknown action %d", action)
}

func (m *Menu) goodbye() {
	m.render.Line("\nExiting the program. Thanks for visiting us!")
}

func (m *Menu) create(ctx context.Context) error {
	dest, err := m.prompt.Line(ctx, "Enter Destination: ")
	if err != nil {
		return err
	}
	date, err := m.prompt.Line(ctx, "Enter Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	price, err := m.prompt.Float(ctx, "Enter Price: ")
	if err != nil {
		return err
	}

	created, err := m.trips.Create(ctx, domain.Trip{Destination: dest, Date: date, Price: price})
	if err != nil {
		return err
	}
	m.render.Success(fmt.Sprintf("Trip created successfully! (Trip ID: %d)", created.ID))
	return nil
}

func (m *Menu) list(ctx context.Context) error {
	trips, err := m.trips.List(ctx)
	if err != nil {
		return err
	}
	m.render.Line("")
	m.render.Trips(trips, "No trips available.")
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	c, err := m.criteria(ctx, "Search")
	if err != nil {
		return err
	}
	trips, err := m.trips.Find(ctx, c)
	if err != nil {
		return err
	}
	m.render.Line("")
	m.render.Trips(trips, "No matching trips found.")
	return nil
}

func (m *Menu) update(ctx context.Context) error {
	c, err := m.criteria(ctx, "Update")
	if err != nil {
		return err
	}

	var p domain.TripPatch
	if p.Destination, err = m.prompt.OptionalLine(ctx, "Enter new Destination (leave empty to keep current): "); err != nil {
		return err
	}
	if p.Date, err = m.prompt.OptionalLine(ctx, "Enter new Date (YYYY-MM-DD, leave empty to keep current): "); err != nil {
		return err
	}
	if p.Price, err = m.prompt.OptionalFloat(ctx, "Enter new Price (leave empty to keep current): "); err != nil {
		return err
	}

	n, err := m.trips.UpdateMatching(ctx, c, p)
	if err != nil {
		return err
	}
	if n == 0 {
		m.render.Notice("No matching trips found.")
		return nil
	}
	m.render.Success(fmt.Sprintf("%d trip(s) updated.", n))
	return nil
}

func (m *Menu) delete(ctx context.Context) error {
	c, err := m.criteria(ctx, "Delete")
	if err != nil {
		return err
	}

	n, err := m.trips.DeleteMatching(ctx, c)
	if err != nil {
		return err
	}
	if n == 0 {
		m.render.Notice("No matching trips found.")
		return nil
	}
	m.render.Success(fmt.Sprintf("%d trip(s) deleted.", n))
	return nil
}

// criteria asks which fields to filter on, then asks for each chosen field.
// Fields that were not chosen stay absent.
func (m *Menu) criteria(ctx context.Context, verb string) (domain.Criteria, error) {
	m.render.Title(verb + " Options")
	m.render.Options(verb+" by Trip ID", verb+" by Destination", verb+" by Price", verb+" by Date")
	m.render.Line("Sample input: 2 3")

	fields, err := m.prompt.Choices(ctx, "Enter your choice(s): ", fieldDate)
	if err != nil {
		return domain.Criteria{}, err
	}

	var c domain.Criteria
	for _, f := range fields {
		switch f {
		case fieldID:
			id, err := m.prompt.Int(ctx, "Enter Trip ID: ")
			if err != nil {
				return domain.Criteria{}, err
			}
			c.ID = &id
		case fieldDestination:
			dest, err := m.prompt.Line(ctx, "Enter Destination: ")
			if err != nil {
				return domain.Criteria{}, err
			}
			c.Destination = &dest
		case fieldPrice:
			price, err := m.prompt.Float(ctx, "Enter Price: ")
			if err != nil {
				return domain.Criteria{}, err
			}
			c.Price = &price
		case fieldDate:
			date, err := m.prompt.Line(ctx, "Enter Date (YYYY-MM-DD): ")
			if err != nil {
				return domain.Criteria{}, err
			}
			c.Date = &date
		}
	}
	return c, nil
}

// rejection extracts the operator-facing reason from a validation error,
// e.g. "service.TripService.Create: validation error: price must not be negative"
// becomes "Rejected: price must not be negative".
func rejection(err error) string {
	msg := err.Error()
	if _, reason, ok := strings.Cut(msg, domain.ErrValidation.Error()+": "); ok {
		msg = reason
	}
	return "Rejected: " + msg
}
