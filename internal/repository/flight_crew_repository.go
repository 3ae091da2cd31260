package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/avolair/flight-roster/internal/model"
)

// FlightCrewRepo provides read access to cockpit crew members. Crew
// records are managed externally; the roster engine only reads them
// and records assignments through CrewAssignmentRepo.
type FlightCrewRepo struct {
	db *sql.DB
}

// NewFlightCrewRepo constructs a FlightCrewRepo with the given DB handle.
func NewFlightCrewRepo(db *sql.DB) *FlightCrewRepo { return &FlightCrewRepo{db: db} }

// scanFlightCrew reads one row into a member, decoding the languages
// JSON column and normalizing the seniority label at the boundary.
func scanFlightCrew(rows *sql.Rows) (model.FlightCrewMember, error) {
	var m model.FlightCrewMember
	var restriction sql.NullInt64
	var languages sql.NullString
	if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.SeniorityLevel, &restriction, &languages, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return m, err
	}
	m.SeniorityLevel = model.NormalizeSeniority(m.SeniorityLevel)
	if restriction.Valid {
		id := uint64(restriction.Int64)
		m.VehicleRestriction = &id
	}
	if languages.Valid && languages.String != "" {
		// Malformed language data is tolerated; the member simply has none.
		_ = json.Unmarshal([]byte(languages.String), &m.Languages)
	}
	return m, nil
}

const flightCrewColumns = `id, name, role, seniority_level, vehicle_restriction, languages, created_at, updated_at`

// ListByRole returns all cockpit crew with the given role, ordered by
// id. The stable fetch order matters: the selector's seniority sort
// breaks ties by it.
func (r *FlightCrewRepo) ListByRole(ctx context.Context, role string) ([]model.FlightCrewMember, error) {
	q := `SELECT ` + flightCrewColumns + ` FROM flight_crew WHERE role = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	members := make([]model.FlightCrewMember, 0)
	for rows.Next() {
		m, err := scanFlightCrew(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByIDs returns the members with the given ids, preserving the
// input order. Returns ErrCrewNotFound when any id is missing, since
// a manually specified crew list must resolve completely.
func (r *FlightCrewRepo) GetByIDs(ctx context.Context, ids []uint64) ([]model.FlightCrewMember, error) {
	if len(ids) == 0 {
		return []model.FlightCrewMember{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	q := `SELECT ` + flightCrewColumns + ` FROM flight_crew WHERE id IN (` + strings.Join(placeholders, ",") + `)`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	byID := make(map[uint64]model.FlightCrewMember, len(ids))
	for rows.Next() {
		m, err := scanFlightCrew(rows)
		if err != nil {
			return nil, err
		}
		byID[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	members := make([]model.FlightCrewMember, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, ErrCrewNotFound
		}
		members = append(members, m)
	}
	return members, nil
}
