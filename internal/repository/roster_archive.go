package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avolair/flight-roster/internal/model"
)

// RosterArchive stores rosters in the document archive when the caller
// selects document storage. Documents carry the same payload and
// summary as relational rosters; ids are ObjectID hex strings.
type RosterArchive struct {
	col *mongo.Collection
}

// NewRosterArchive binds the archive to the rosters collection of the
// given database.
func NewRosterArchive(client *mongo.Client, dbName string) *RosterArchive {
	return &RosterArchive{col: client.Database(dbName).Collection("rosters")}
}

// archivedRoster mirrors the document schema of the archive.
type archivedRoster struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	FlightID    uint64              `bson:"flight_id"`
	Name        string              `bson:"roster_name"`
	GeneratedBy string              `bson:"generated_by"`
	GeneratedAt time.Time           `bson:"generated_at"`
	Payload     model.RosterPayload `bson:"roster_payload"`
	Summary     model.RosterSummary `bson:"summary_metadata"`
}

// Insert archives a roster and returns the generated document id as a
// hex string. Failures wrap ErrArchiveUnavailable: document storage
// was explicitly requested, so the caller must fail the generation
// rather than fall back to relational storage.
func (a *RosterArchive) Insert(ctx context.Context, roster *model.Roster) (string, error) {
	doc := archivedRoster{
		FlightID:    roster.FlightID,
		Name:        roster.Name,
		GeneratedBy: roster.GeneratedBy,
		GeneratedAt: roster.GeneratedAt,
		Payload:     roster.Payload,
		Summary:     roster.Summary,
	}
	result, err := a.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveUnavailable, err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type", ErrArchiveUnavailable)
	}
	return oid.Hex(), nil
}

// GetByID returns an archived roster by its hex id. Returns
// ErrRosterNotFound for malformed ids or missing documents.
func (a *RosterArchive) GetByID(ctx context.Context, hexID string) (*model.Roster, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrRosterNotFound
	}
	var doc archivedRoster
	err = a.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRosterNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// ListByFlight returns archive headers for one flight, newest first,
// capped at limit documents.
func (a *RosterArchive) ListByFlight(ctx context.Context, flightID uint64, limit int64) ([]model.RosterHeader, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"roster_payload": 0})
	cursor, err := a.col.Find(ctx, bson.M{"flight_id": flightID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	headers := make([]model.RosterHeader, 0)
	for cursor.Next(ctx) {
		var doc archivedRoster
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		headers = append(headers, model.RosterHeader{
			ID:          doc.ID.Hex(),
			FlightID:    doc.FlightID,
			Name:        doc.Name,
			GeneratedBy: doc.GeneratedBy,
			GeneratedAt: doc.GeneratedAt.UTC(),
			StorageKind: model.StorageDocument,
		})
	}
	return headers, cursor.Err()
}

// Delete removes an archived roster. Returns ErrRosterNotFound for
// malformed ids or missing documents.
func (a *RosterArchive) Delete(ctx context.Context, hexID string) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrRosterNotFound
	}
	result, err := a.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRosterNotFound
	}
	return nil
}

func (d *archivedRoster) toModel() *model.Roster {
	return &model.Roster{
		ID:          d.ID.Hex(),
		FlightID:    d.FlightID,
		Name:        d.Name,
		GeneratedBy: d.GeneratedBy,
		GeneratedAt: d.GeneratedAt.UTC(),
		StorageKind: model.StorageDocument,
		Payload:     d.Payload,
		Summary:     d.Summary,
	}
}
