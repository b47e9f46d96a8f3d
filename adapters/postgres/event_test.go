package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrace/lotcore/domain"
)

func TestEventPostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &EventPostgreSQLRepository{tableName: "lot_events"}

	reason := "cold chain breach"
	e := &domain.LotEvent{
		LotID:       1,
		EventType:   domain.EventType("quarantine"),
		Reason:      &reason,
		PerformedBy: "alice",
		PerformedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO lot_events").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Create(context.Background(), tx, e)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventPostgreSQLRepository_ListByLot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &EventPostgreSQLRepository{connection: conn, tableName: "lot_events"}

	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "lot_id", "event_type", "reason", "notes", "performed_by",
		"performed_at", "txid", "created_at",
	}).AddRow(int64(1), int64(1), "quarantine", nil, nil, "alice", now, int64(100), now)

	mock.ExpectQuery("SELECT (.+) FROM lot_events WHERE lot_id = \\$1").
		WithArgs(int64(1), uint64(10), uint64(0)).
		WillReturnRows(rows)

	events, err := repo.ListByLot(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventType("quarantine"), events[0].EventType)
	assert.Nil(t, events[0].Reason)
}
