package repository

import (
	"context"
	"database/sql"

	"github.com/avolair/flight-roster/internal/model"
)

// AircraftRepo provides read access to aircraft profiles. Profiles are
// managed by an external fleet system; this service only consumes them.
type AircraftRepo struct {
	db *sql.DB
}

// NewAircraftRepo constructs an AircraftRepo with the given DB handle.
func NewAircraftRepo(db *sql.DB) *AircraftRepo { return &AircraftRepo{db: db} }

// GetByID returns a single aircraft profile. The seating_layout column
// is nullable JSON; whatever is stored there is parsed into the tagged
// layout variant, so a malformed layout degrades to Unknown instead of
// failing the lookup. Returns ErrAircraftNotFound when no row exists.
func (r *AircraftRepo) GetByID(ctx context.Context, id uint64) (*model.AircraftProfile, error) {
	const q = `SELECT id, model_name, total_seats, max_crew, seating_layout, created_at, updated_at
	           FROM aircraft_profiles WHERE id = ?`
	var a model.AircraftProfile
	var layout sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.ModelName, &a.TotalSeats, &a.MaxCrew, &layout, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAircraftNotFound
	}
	if err != nil {
		return nil, err
	}
	if layout.Valid {
		a.Layout = model.ParseSeatingLayout([]byte(layout.String))
	}
	return &a, nil
}

// List returns all aircraft profiles ordered by id.
func (r *AircraftRepo) List(ctx context.Context) ([]model.AircraftProfile, error) {
	const q = `SELECT id, model_name, total_seats, max_crew, seating_layout, created_at, updated_at
	           FROM aircraft_profiles ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	profiles := make([]model.AircraftProfile, 0)
	for rows.Next() {
		var a model.AircraftProfile
		var layout sql.NullString
		if err := rows.Scan(&a.ID, &a.ModelName, &a.TotalSeats, &a.MaxCrew, &layout, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if layout.Valid {
			a.Layout = model.ParseSeatingLayout([]byte(layout.String))
		}
		profiles = append(profiles, a)
	}
	return profiles, rows.Err()
}
