package command

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

// fakeOfflineRepo is a hand-written stand-in for postgres.OfflineRepository,
// covering only the methods the tests in this file exercise.
type fakeOfflineRepo struct {
	queued []*domain.OfflineQueue
}

func (f *fakeOfflineRepo) Create(ctx context.Context, q *domain.OfflineQueue) (int64, error) {
	return 0, nil
}

func (f *fakeOfflineRepo) FindByClientTxn(ctx context.Context, clientID, clientTxnID string) (*domain.OfflineQueue, error) {
	return nil, nil
}

func (f *fakeOfflineRepo) FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.OfflineQueue, error) {
	return nil, nil
}

func (f *fakeOfflineRepo) ListQueued(ctx context.Context, limit int) ([]*domain.OfflineQueue, error) {
	return f.queued, nil
}

func (f *fakeOfflineRepo) MarkApplied(ctx context.Context, tx *sql.Tx, id int64, serverRefs json.RawMessage, appliedAt sql.NullTime) error {
	return nil
}

func (f *fakeOfflineRepo) MarkConflict(ctx context.Context, tx *sql.Tx, id int64, reason string) error {
	return nil
}

func (f *fakeOfflineRepo) MarkRejected(ctx context.Context, tx *sql.Tx, id int64, reason string) error {
	return nil
}

func (f *fakeOfflineRepo) CreateConflict(ctx context.Context, tx *sql.Tx, c *domain.OfflineConflict) (int64, error) {
	return 0, nil
}

func (f *fakeOfflineRepo) FindConflictByID(ctx context.Context, id int64) (*domain.OfflineConflict, error) {
	return nil, nil
}

func (f *fakeOfflineRepo) ResolveConflict(ctx context.Context, tx *sql.Tx, id int64, resolution, resolvedBy string) error {
	return nil
}

func newTestConnection(t *testing.T) (*mpostgres.PostgresConnection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	connectionDB := dbresolver.New(dbresolver.WithPrimaryDBs(db))

	return &mpostgres.PostgresConnection{ConnectionDB: &connectionDB, Connected: true}, mock
}

// TestApplyOffline_NoRowsForClient exercises the ClientID filter in
// ApplyOffline: a queue holding only other clients' rows must apply zero
// groups and never touch the database connection's transactional surface.
func TestApplyOffline_NoRowsForClient(t *testing.T) {
	conn, _ := newTestConnection(t)

	repo := &fakeOfflineRepo{
		queued: []*domain.OfflineQueue{
			{ID: 1, ClientID: "other-device", ClientTxnID: "txn-1"},
		},
	}

	uc := &UseCase{Connection: conn, OfflineRepo: repo}

	outcomes, err := uc.ApplyOffline(context.Background(), &ApplyOfflineInput{ClientID: "device-1", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestGroupByClientTxn(t *testing.T) {
	rows := []*domain.OfflineQueue{
		{ID: 1, ClientTxnID: "a"},
		{ID: 2, ClientTxnID: "a"},
		{ID: 3, ClientTxnID: "b"},
	}

	groups := groupByClientTxn(rows)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.Equal(t, "a", groups[0][0].ClientTxnID)
	assert.Equal(t, "b", groups[1][0].ClientTxnID)
}
