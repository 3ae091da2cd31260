package repository

import (
	"context"
	"database/sql"

	"github.com/avolair/flight-roster/internal/model"
)

// CrewAssignmentRepo manages the join records linking crew members to
// generated rosters. Both crew kinds are recorded here; the table is
// the single source of truth for cabin crew availability.
type CrewAssignmentRepo struct {
	db *sql.DB
}

// NewCrewAssignmentRepo constructs a CrewAssignmentRepo with the given
// DB handle.
func NewCrewAssignmentRepo(db *sql.DB) *CrewAssignmentRepo { return &CrewAssignmentRepo{db: db} }

// CreateBulkTx inserts all assignment rows for one roster in a single
// statement, within the generation transaction. Passing an empty slice
// has no effect and returns nil.
func (r *CrewAssignmentRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, assignments []model.CrewAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	query := `INSERT INTO crew_assignments (roster_ref, flight_id, crew_kind, crew_id, duty) VALUES `
	args := make([]interface{}, 0, len(assignments)*5)
	for i, a := range assignments {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, a.RosterRef, a.FlightID, a.CrewKind, a.CrewID, a.Duty)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// DeleteByRosterRefTx removes every assignment row belonging to a
// roster and reports how many were released. Run when the roster is
// deleted; by the derived-availability rule this is what releases the
// roster's cabin crew.
func (r *CrewAssignmentRepo) DeleteByRosterRefTx(ctx context.Context, tx *sql.Tx, rosterRef string) (int64, error) {
	const q = `DELETE FROM crew_assignments WHERE roster_ref = ?`
	result, err := tx.ExecContext(ctx, q, rosterRef)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListByRosterRef returns the assignment rows for one roster ordered
// by id.
func (r *CrewAssignmentRepo) ListByRosterRef(ctx context.Context, rosterRef string) ([]model.CrewAssignment, error) {
	const q = `SELECT id, roster_ref, flight_id, crew_kind, crew_id, duty, created_at
	           FROM crew_assignments WHERE roster_ref = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, rosterRef)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	assignments := make([]model.CrewAssignment, 0)
	for rows.Next() {
		var a model.CrewAssignment
		if err := rows.Scan(&a.ID, &a.RosterRef, &a.FlightID, &a.CrewKind, &a.CrewID, &a.Duty, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
