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

func TestQAPostgreSQLRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &QAPostgreSQLRepository{}

	q := &domain.QACheck{
		LotID:       1,
		CheckType:   "visual",
		Passed:      true,
		Mode:        domain.QAModeFull,
		PerformedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO qa_checks").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := repo.Create(context.Background(), tx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQAPostgreSQLRepository_SetPassLot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &QAPostgreSQLRepository{}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE qa_checks SET pass_lot_id = \\$1 WHERE id = \\$2").
		WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, repo.SetPassLot(context.Background(), tx, 1, 2))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
