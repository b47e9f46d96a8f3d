package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/domain"
)

var fixedCreatedAt = time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)

func TestOfflinePostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &OfflinePostgreSQLRepository{connection: newTestConnection(db)}

	q := &domain.OfflineQueue{
		ClientID:    "device-1",
		ClientTxnID: "txn-1",
		ActionType:  domain.ActionTypeReceiving,
		Payload:     []byte(`{"item_id":1}`),
		Status:      domain.OfflineStatusQueued,
		SubmittedBy: "alice",
	}

	mock.ExpectQuery("INSERT INTO offline_queue").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.Create(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestOfflinePostgreSQLRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &OfflinePostgreSQLRepository{connection: newTestConnection(db)}

	q := &domain.OfflineQueue{
		ClientID:    "device-1",
		ClientTxnID: "txn-1",
		ActionType:  domain.ActionTypeReceiving,
		Payload:     []byte(`{}`),
		Status:      domain.OfflineStatusQueued,
		SubmittedBy: "alice",
	}

	mock.ExpectQuery("INSERT INTO offline_queue").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Create(context.Background(), q)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cn.ErrDuplicateOfflineAction))
}

func TestOfflinePostgreSQLRepository_ListQueued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &OfflinePostgreSQLRepository{connection: newTestConnection(db)}

	rows := sqlmock.NewRows([]string{
		"id", "client_id", "client_txn_id", "action_type", "payload", "status",
		"server_refs", "applied_at", "conflict_reason", "submitted_by", "created_at",
	}).
		AddRow(int64(1), "device-1", "txn-1", "receiving", []byte(`{}`), "queued",
			[]byte(`{}`), nil, nil, "alice", fixedCreatedAt).
		AddRow(int64(2), "device-1", "txn-2", "sale", []byte(`{}`), "queued",
			[]byte(`{}`), nil, nil, "alice", fixedCreatedAt)

	mock.ExpectQuery("SELECT (.+) FROM offline_queue WHERE status = \\$1").
		WithArgs("queued", 10).
		WillReturnRows(rows)

	queued, err := repo.ListQueued(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, queued, 2)
	assert.Equal(t, "device-1", queued[0].ClientID)
	assert.Equal(t, domain.ActionTypeSale, queued[1].ActionType)
}
