package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/avolair/flight-roster/internal/model"
)

// CabinCrewRepo provides read access to cabin attendants. Availability
// is a derived property: a member is busy while a crew_assignments row
// of kind CABIN references them, and free again once the owning roster
// is deleted. No flag on the member row is ever mutated.
type CabinCrewRepo struct {
	db *sql.DB
}

// NewCabinCrewRepo constructs a CabinCrewRepo with the given DB handle.
func NewCabinCrewRepo(db *sql.DB) *CabinCrewRepo { return &CabinCrewRepo{db: db} }

const cabinCrewColumns = `id, name, attendant_type, vehicle_restrictions, created_at, updated_at`

func scanCabinCrew(rows *sql.Rows) (model.CabinCrewMember, error) {
	var m model.CabinCrewMember
	var restrictions sql.NullString
	if err := rows.Scan(&m.ID, &m.Name, &m.AttendantType, &restrictions, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return m, err
	}
	if restrictions.Valid && restrictions.String != "" {
		// Malformed restriction data is tolerated; the member reads as unrestricted.
		_ = json.Unmarshal([]byte(restrictions.String), &m.VehicleRestrictions)
	}
	return m, nil
}

// ListAvailableByType returns attendants of the given type that have
// no active roster assignment, ordered by id. The NOT EXISTS gate is
// the availability rule for cabin crew; cockpit crew are deliberately
// never gated this way.
func (r *CabinCrewRepo) ListAvailableByType(ctx context.Context, attendantType string) ([]model.CabinCrewMember, error) {
	q := `SELECT ` + cabinCrewColumns + ` FROM cabin_crew c
	      WHERE c.attendant_type = ?
	        AND NOT EXISTS (
	            SELECT 1 FROM crew_assignments a
	            WHERE a.crew_id = c.id AND a.crew_kind = 'CABIN'
	        )
	      ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, q, attendantType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	members := make([]model.CabinCrewMember, 0)
	for rows.Next() {
		m, err := scanCabinCrew(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByIDs returns the attendants with the given ids, preserving the
// input order. Returns ErrCrewNotFound when any id is missing.
func (r *CabinCrewRepo) GetByIDs(ctx context.Context, ids []uint64) ([]model.CabinCrewMember, error) {
	if len(ids) == 0 {
		return []model.CabinCrewMember{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	q := `SELECT ` + cabinCrewColumns + ` FROM cabin_crew WHERE id IN (` + strings.Join(placeholders, ",") + `)`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	byID := make(map[uint64]model.CabinCrewMember, len(ids))
	for rows.Next() {
		m, err := scanCabinCrew(rows)
		if err != nil {
			return nil, err
		}
		byID[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	members := make([]model.CabinCrewMember, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, ErrCrewNotFound
		}
		members = append(members, m)
	}
	return members, nil
}
