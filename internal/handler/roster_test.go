package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/avolair/flight-roster/internal/model"
	"github.com/avolair/flight-roster/internal/repository"
)

// fakeArchive is an in-memory stand-in for the Mongo-backed archive.
type fakeArchive struct {
	insertRef string
	insertErr error
	deleteErr error
	inserted  []*model.Roster
	deleted   []string
}

func (f *fakeArchive) Insert(_ context.Context, r *model.Roster) (string, error) {
	f.inserted = append(f.inserted, r)
	return f.insertRef, f.insertErr
}

func (f *fakeArchive) GetByID(_ context.Context, _ string) (*model.Roster, error) {
	return nil, repository.ErrRosterNotFound
}

func (f *fakeArchive) ListByFlight(_ context.Context, _ uint64, _ int64) ([]model.RosterHeader, error) {
	return nil, nil
}

func (f *fakeArchive) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func newTestHandler(t *testing.T, archive RosterArchive) (*RosterHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	h := NewRosterHandler(
		repository.NewFlightRepo(db),
		repository.NewAircraftRepo(db),
		repository.NewFlightCrewRepo(db),
		repository.NewCabinCrewRepo(db),
		repository.NewPassengerRepo(db),
		repository.NewCrewAssignmentRepo(db),
		repository.NewRosterRepo(db),
		archive, nil, "",
	)
	return h, mock
}

func newJSONContext(method, target, body string, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramValue)
	return c, rec
}

func TestGenerateRosterRemovesArchivedDocumentOnRollback(t *testing.T) {
	archive := &fakeArchive{insertRef: "64b0c26f9d3e8a541f77b101"}
	h, mock := newTestHandler(t, archive)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM flights WHERE id").WillReturnRows(
		sqlmock.NewRows([]string{"id", "flight_number", "origin_code", "destination_code", "departs_at", "arrives_at", "aircraft_id", "created_at", "updated_at"}).
			AddRow(7, "AV100", "IST", "AMS", now, now.Add(3*time.Hour), 3, now, now))
	mock.ExpectQuery("FROM aircraft_profiles WHERE id").WillReturnRows(
		sqlmock.NewRows([]string{"id", "model_name", "total_seats", "max_crew", "seating_layout", "created_at", "updated_at"}).
			AddRow(3, "A320", 80, 2, nil, now, now))
	mock.ExpectQuery("FROM flight_crew WHERE id IN").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "role", "seniority_level", "vehicle_restriction", "languages", "created_at", "updated_at"}).
			AddRow(1, "Avery", "Captain", "Senior", nil, nil, now, now).
			AddRow(2, "Blake", "First Officer", "Junior", nil, nil, now, now))
	mock.ExpectQuery("FROM cabin_crew WHERE id IN").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "attendant_type", "vehicle_restrictions", "created_at", "updated_at"}).
			AddRow(10, "Casey", "chief", nil, now, now).
			AddRow(11, "Drew", "regular", nil, now, now).
			AddRow(12, "Emery", "regular", nil, now, now).
			AddRow(13, "Finley", "regular", nil, now, now).
			AddRow(14, "Gray", "regular", nil, now, now))
	mock.ExpectQuery("FROM passengers WHERE flight_id").WillReturnRows(
		sqlmock.NewRows([]string{"id", "flight_id", "name", "seat_number", "created_at", "updated_at"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO crew_assignments").WillReturnError(errors.New("assignment insert failed"))
	mock.ExpectRollback()

	body := `{"roster_name":"AMS morning","generated_by":"ops","storage":"document","flight_crew_ids":[1,2],"cabin_crew_ids":[10,11,12,13,14]}`
	c, rec := newJSONContext(http.MethodPost, "/v1/flights/7/roster", body, "7")

	if err := h.GenerateRoster(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after a failed assignment insert, got %d", rec.Code)
	}
	if len(archive.inserted) != 1 {
		t.Fatalf("Expected 1 archive insert, got %d", len(archive.inserted))
	}
	if len(archive.deleted) != 1 || archive.deleted[0] != archive.insertRef {
		t.Errorf("Expected the archived document %q removed on rollback, deletions: %v", archive.insertRef, archive.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteRosterReleasesCrewWhenDocumentAlreadyGone(t *testing.T) {
	// A prior attempt can delete the archive document and then fail to
	// commit, leaving the assignment rows behind. The retry must still
	// release them instead of stopping at the missing document.
	archive := &fakeArchive{deleteErr: repository.ErrRosterNotFound}
	h, mock := newTestHandler(t, archive)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM crew_assignments").WillReturnResult(sqlmock.NewResult(0, 13))
	mock.ExpectCommit()

	c, rec := newJSONContext(http.MethodDelete, "/v1/rosters/64b0c26f9d3e8a541f77b101", "", "64b0c26f9d3e8a541f77b101")
	if err := h.DeleteRoster(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204 when assignment rows were released, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteRosterUnknownArchiveID(t *testing.T) {
	archive := &fakeArchive{deleteErr: repository.ErrRosterNotFound}
	h, mock := newTestHandler(t, archive)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM crew_assignments").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	c, rec := newJSONContext(http.MethodDelete, "/v1/rosters/64b0c26f9d3e8a541f77b102", "", "64b0c26f9d3e8a541f77b102")
	if err := h.DeleteRoster(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an id with no document and no assignment rows, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
