// Package mongodb archives compliance records that outlive the serializable
// core: closed offline conflict resolutions and point-in-time traceability
// snapshots taken for a recall. Both collections are append-only; nothing in
// this package ever updates or deletes a document it has written.
package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodtrace/lotcore/common/mmongo"
)

const (
	conflictResolutionsCollection   = "conflict_resolutions"
	traceabilitySnapshotsCollection = "traceability_snapshots"
)

// ComplianceArchive is a best-effort, append-only record of decisions the
// serializable core has already committed. A write failure here is logged by
// the caller and never unwinds a Postgres transaction.
type ComplianceArchive struct {
	connection *mmongo.MongoConnection
	database   string
}

// NewComplianceArchive returns a ComplianceArchive backed by mc. A nil mc is
// valid: every method becomes a no-op, matching the optional MONGO_URI
// integration toggle.
func NewComplianceArchive(mc *mmongo.MongoConnection) *ComplianceArchive {
	if mc == nil {
		return &ComplianceArchive{}
	}

	return &ComplianceArchive{connection: mc, database: mc.Database}
}

// ConflictResolutionRecord is one closed OfflineConflict, archived once a
// human reviewer resolves it.
type ConflictResolutionRecord struct {
	ConflictID    int64     `bson:"conflict_id"`
	QueueID       int64     `bson:"queue_id"`
	CorrelationID string    `bson:"correlation_id"`
	Type          string    `bson:"type"`
	Details       string    `bson:"details"`
	Resolution    string    `bson:"resolution"`
	ResolvedBy    string    `bson:"resolved_by"`
	ArchivedAt    time.Time `bson:"archived_at"`
}

// ArchiveConflictResolution appends rec to the conflict_resolutions collection.
func (a *ComplianceArchive) ArchiveConflictResolution(ctx context.Context, rec ConflictResolutionRecord) error {
	if a == nil || a.connection == nil {
		return nil
	}

	coll, err := a.collection(ctx, conflictResolutionsCollection)
	if err != nil {
		return err
	}

	rec.ArchivedAt = time.Now().UTC()

	_, err = coll.InsertOne(ctx, rec)

	return err
}

// TraceabilitySnapshotRecord is the full backward/forward closure of a lot as
// of the moment a recall.report ran, kept for audit after the lots it names
// may have been disposed or further processed.
type TraceabilitySnapshotRecord struct {
	LotID             int64     `bson:"lot_id"`
	BackwardLotIDs    []int64   `bson:"backward_lot_ids"`
	ForwardLotIDs     []int64   `bson:"forward_lot_ids"`
	AffectedCustomers []int64   `bson:"affected_customers"`
	TakenAt           time.Time `bson:"taken_at"`
}

// ArchiveTraceabilitySnapshot appends rec to the traceability_snapshots
// collection.
func (a *ComplianceArchive) ArchiveTraceabilitySnapshot(ctx context.Context, rec TraceabilitySnapshotRecord) error {
	if a == nil || a.connection == nil {
		return nil
	}

	coll, err := a.collection(ctx, traceabilitySnapshotsCollection)
	if err != nil {
		return err
	}

	rec.TakenAt = time.Now().UTC()

	_, err = coll.InsertOne(ctx, rec)

	return err
}

// SnapshotsForLot returns every archived traceability snapshot that named
// lotID, newest first.
func (a *ComplianceArchive) SnapshotsForLot(ctx context.Context, lotID int64) ([]TraceabilitySnapshotRecord, error) {
	if a == nil || a.connection == nil {
		return nil, nil
	}

	coll, err := a.collection(ctx, traceabilitySnapshotsCollection)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.M{"lot_id": lotID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []TraceabilitySnapshotRecord

	for cur.Next(ctx) {
		var rec TraceabilitySnapshotRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, cur.Err()
}

func (a *ComplianceArchive) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := a.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return client.Database(strings.ToLower(a.database)).Collection(strings.ToLower(name)), nil
}
