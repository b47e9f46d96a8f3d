package postgres

import (
	"context"
	"database/sql"
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

func TestLotPostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &LotPostgreSQLRepository{tableName: "lots"}

	lot := &domain.Lot{
		LotCode:    "BEEF-20260701-0001",
		ItemID:     1,
		State:      domain.LotStateReceived,
		ReceivedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO lots").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Create(context.Background(), tx, lot)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotPostgreSQLRepository_Create_DuplicateLotCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &LotPostgreSQLRepository{tableName: "lots"}

	lot := &domain.Lot{
		LotCode:    "BEEF-20260701-0001",
		ItemID:     1,
		State:      domain.LotStateReceived,
		ReceivedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO lots").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), tx, lot)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cn.ErrLotCodeAlreadyExists))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotPostgreSQLRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &LotPostgreSQLRepository{connection: conn, tableName: "lots"}

	mock.ExpectQuery("SELECT (.+) FROM lots WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cn.ErrEntityNotFound))
}

func TestLotPostgreSQLRepository_FindByID_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &LotPostgreSQLRepository{connection: conn, tableName: "lots"}

	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "lot_code", "item_id", "supplier_id", "state", "received_at",
		"aging_started_at", "ready_at", "released_at", "expires_at",
		"current_location_id", "created_at", "updated_at",
	}).AddRow(int64(7), "BEEF-20260701-0001", int64(1), nil, "received", now,
		nil, nil, nil, nil, nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM lots WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	lot, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), lot.ID)
	assert.Equal(t, domain.LotStateReceived, lot.State)
	assert.Nil(t, lot.SupplierID)
}
