package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripman/internal/cli"
	"github.com/pkordes/tripman/internal/domain"
	"github.com/pkordes/tripman/internal/repo"
	"github.com/pkordes/tripman/internal/service"
)

// mockTripServicer is a test double for cli.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create         func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	list           func(ctx context.Context) ([]domain.Trip, error)
	find           func(ctx context.Context, c domain.Criteria) ([]domain.Trip, error)
	updateMatching func(ctx context.Context, c domain.Criteria, p domain.TripPatch) (int, error)
	deleteMatching func(ctx context.Context, c domain.Criteria) (int, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Find(ctx context.Context, c domain.Criteria) ([]domain.Trip, error) {
	return m.find(ctx, c)
}
func (m *mockTripServicer) UpdateMatching(ctx context.Context, c domain.Criteria, p domain.TripPatch) (int, error) {
	return m.updateMatching(ctx, c, p)
}
func (m *mockTripServicer) DeleteMatching(ctx context.Context, c domain.Criteria) (int, error) {
	return m.deleteMatching(ctx, c)
}

// compile-time check: mockTripServicer must satisfy cli.TripServicer.
var _ cli.TripServicer = (*mockTripServicer)(nil)

// script joins answers into the text an operator would type.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func runMenu(t *testing.T, svc cli.TripServicer, input string) string {
	t.Helper()
	var out bytes.Buffer
	m := cli.NewMenu(svc, strings.NewReader(input), &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func liveService() *service.TripService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewTripService(repo.NewTripRepo(log), log)
}

func TestMenu_ExitAndEOF(t *testing.T) {
	out := runMenu(t, &mockTripServicer{}, script("6"))
	assert.Contains(t, out, "--- Travel Management System ---")
	assert.Contains(t, out, "Exiting the program. Thanks for visiting us!")

	out = runMenu(t, &mockTripServicer{}, "")
	assert.Contains(t, out, "Exiting the program.")
}

func TestMenu_InvalidMainChoiceReprompts(t *testing.T) {
	out := runMenu(t, &mockTripServicer{}, script("9", "x", "6"))

	assert.Equal(t, 2, strings.Count(out, "Please choose between 1 and 6."))
}

func TestMenu_DisplayEmpty(t *testing.T) {
	svc := &mockTripServicer{
		list: func(context.Context) ([]domain.Trip, error) { return []domain.Trip{}, nil },
	}

	out := runMenu(t, svc, script("2", "6"))

	assert.Contains(t, out, "No trips available.")
}

func TestMenu_SearchBuildsCriteriaFromChosenFieldsOnly(t *testing.T) {
	var got domain.Criteria
	svc := &mockTripServicer{
		find: func(_ context.Context, c domain.Criteria) ([]domain.Trip, error) {
			got = c
			return []domain.Trip{}, nil
		},
	}

	out := runMenu(t, svc, script("3", "2 3", " Bali ", "0", "6"))

	assert.Equal(t, domain.Criteria{Destination: domain.Ptr(" Bali "), Price: domain.Ptr(0.0)}, got)
	assert.Contains(t, out, "No matching trips found.")
}

func TestMenu_UpdateEmptyAnswersKeepCurrent(t *testing.T) {
	var gotP domain.TripPatch
	svc := &mockTripServicer{
		updateMatching: func(_ context.Context, _ domain.Criteria, p domain.TripPatch) (int, error) {
			gotP = p
			return 0, nil
		},
	}

	out := runMenu(t, svc, script("4", "4", "2024-05-01", "", "2025-01-01", "", "6"))

	assert.Equal(t, domain.TripPatch{Date: domain.Ptr("2025-01-01")}, gotP)
	assert.Contains(t, out, "No matching trips found.")
}

func TestMenu_ValidationErrorContinues(t *testing.T) {
	out := runMenu(t, liveService(), script("1", "Bali", "2024-05-01", "-5", "2", "6"))

	assert.Contains(t, out, "Rejected: price must not be negative")
	assert.Contains(t, out, "No trips available.")
	assert.Contains(t, out, "Exiting the program.")
}

func TestMenu_UnexpectedErrorEndsSession(t *testing.T) {
	boom := errors.New("boom")
	svc := &mockTripServicer{
		list: func(context.Context) ([]domain.Trip, error) { return nil, boom },
	}
	m := cli.NewMenu(svc, strings.NewReader(script("2", "6")), &bytes.Buffer{}, nil)

	err := m.Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestMenu_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	m := cli.NewMenu(&mockTripServicer{}, strings.NewReader(script("6")), &out, nil)

	require.NoError(t, m.Run(ctx))
	assert.Contains(t, out.String(), "Exiting the program.")
}

// Interrupting an operator halfway through "Create Trip" ends the session
// cleanly and stores nothing.
func TestMenu_CancelMidPrompt(t *testing.T) {
	svc := &mockTripServicer{
		create: func(context.Context, domain.Trip) (domain.Trip, error) {
			t.Error("create must not run after cancellation")
			return domain.Trip{}, nil
		},
	}
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	var out bytes.Buffer
	m := cli.NewMenu(svc, pr, &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- m.Run(ctx) }()

	// io.Pipe writes return once the menu has read them, so after this the
	// menu is inside Create Trip waiting for the destination.
	_, err := pw.Write([]byte("1\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("menu still running after cancel")
	}
	assert.Contains(t, out.String(), "Exiting the program.")
}

// A full operator session: create two trips, reprice the first, delete the
// second, list what is left.
func TestMenu_Scenario(t *testing.T) {
	svc := liveService()

	out := runMenu(t, svc, script(
		"1", "Bali", "2024-05-01", "1500.00",
		"1", "Rome", "2024-06-10", "2000.00",
		"4", "1", "1", "", "", "1600.00",
		"5", "1", "2",
		"2",
		"6",
	))

	assert.Contains(t, out, "Trip created successfully! (Trip ID: 1)")
	assert.Contains(t, out, "Trip created successfully! (Trip ID: 2)")
	assert.Contains(t, out, "1 trip(s) updated.")
	assert.Contains(t, out, "1 trip(s) deleted.")
	assert.Contains(t, out, "Trip ID: 1, Destination: Bali, Date: 2024-05-01, Price: RP1600.00")

	trips, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Trip{{ID: 1, Destination: "Bali", Date: "2024-05-01", Price: 1600.00}}, trips)
}

func TestMenu_DeleteAdjacentMatches(t *testing.T) {
	svc := liveService()

	out := runMenu(t, svc, script(
		"1", "Bali", "2024-05-01", "1500",
		"1", "Bali", "2024-05-02", "1500",
		"1", "Rome", "2024-06-10", "2000",
		"5", "2", "Bali",
		"6",
	))

	assert.Contains(t, out, "2 trip(s) deleted.")
	trips, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, 3, trips[0].ID)
}
