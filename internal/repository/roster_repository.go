package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/avolair/flight-roster/internal/model"
)

// RosterRepo stores relational rosters. The denormalized payload and
// summary are JSON columns; the roster row itself is immutable after
// insertion except for deletion.
type RosterRepo struct {
	db *sql.DB
}

// NewRosterRepo constructs a RosterRepo with the given DB handle.
func NewRosterRepo(db *sql.DB) *RosterRepo { return &RosterRepo{db: db} }

// CreateTx inserts a roster row within the generation transaction and
// returns its decimal id. The caller commits together with the
// assignment and seat writes so a partial roster is never visible.
func (r *RosterRepo) CreateTx(ctx context.Context, tx *sql.Tx, roster *model.Roster) (string, error) {
	payload, err := json.Marshal(roster.Payload)
	if err != nil {
		return "", err
	}
	summary, err := json.Marshal(roster.Summary)
	if err != nil {
		return "", err
	}
	const q = `INSERT INTO rosters (flight_id, roster_name, generated_by, generated_at, roster_payload, summary_metadata)
	           VALUES (?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, roster.FlightID, roster.Name, roster.GeneratedBy, roster.GeneratedAt, payload, summary)
	if err != nil {
		return "", err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(id), 10), nil
}

// GetByID returns a stored roster with its payload and summary decoded.
// Returns ErrRosterNotFound when no row exists.
func (r *RosterRepo) GetByID(ctx context.Context, id uint64) (*model.Roster, error) {
	const q = `SELECT id, flight_id, roster_name, generated_by, generated_at, roster_payload, summary_metadata
	           FROM rosters WHERE id = ?`
	var rowID uint64
	var roster model.Roster
	var generatedAt time.Time
	var payload, summary []byte
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rowID, &roster.FlightID, &roster.Name, &roster.GeneratedBy, &generatedAt, &payload, &summary,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRosterNotFound
	}
	if err != nil {
		return nil, err
	}
	roster.ID = strconv.FormatUint(rowID, 10)
	roster.GeneratedAt = generatedAt.UTC()
	roster.StorageKind = model.StorageRelational
	if err := json.Unmarshal(payload, &roster.Payload); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(summary, &roster.Summary); err != nil {
		return nil, err
	}
	return &roster, nil
}

// ListByFlight returns roster headers for one flight, newest first.
// Payloads are not loaded for listings.
func (r *RosterRepo) ListByFlight(ctx context.Context, flightID uint64) ([]model.RosterHeader, error) {
	const q = `SELECT id, flight_id, roster_name, generated_by, generated_at
	           FROM rosters WHERE flight_id = ? ORDER BY generated_at DESC`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	headers := make([]model.RosterHeader, 0)
	for rows.Next() {
		var h model.RosterHeader
		var rowID uint64
		var generatedAt time.Time
		if err := rows.Scan(&rowID, &h.FlightID, &h.Name, &h.GeneratedBy, &generatedAt); err != nil {
			return nil, err
		}
		h.ID = strconv.FormatUint(rowID, 10)
		h.GeneratedAt = generatedAt.UTC()
		h.StorageKind = model.StorageRelational
		headers = append(headers, h)
	}
	return headers, rows.Err()
}

// DeleteTx removes a roster row within a transaction. Returns
// ErrRosterNotFound when no row was deleted.
func (r *RosterRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	const q = `DELETE FROM rosters WHERE id = ?`
	result, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRosterNotFound
	}
	return nil
}
