package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestLotCodePostgreSQLRepository_NextLotCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &LotCodePostgreSQLRepository{}

	at := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO lot_code_counters").
		WithArgs("2026-07-01", "BEEF").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT last_seq FROM lot_code_counters").
		WithArgs("2026-07-01", "BEEF").
		WillReturnRows(sqlmock.NewRows([]string{"last_seq"}).AddRow(3))
	mock.ExpectExec("UPDATE lot_code_counters SET last_seq").
		WithArgs(4, "2026-07-01", "BEEF").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	code, err := repo.NextLotCode(context.Background(), tx, "BEEF", at)
	require.NoError(t, err)
	require.Equal(t, "BEEF-20260701-0004", code)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}
