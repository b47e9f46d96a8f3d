package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/domain"
)

func TestReferencePostgreSQLRepository_FindItemByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &ReferencePostgreSQLRepository{connection: conn}

	rows := sqlmock.NewRows([]string{"id", "sku", "name", "is_meat"}).
		AddRow(int64(1), "BEEF-TRIM", "Beef Trim", true)

	mock.ExpectQuery("SELECT id, sku, name, is_meat FROM items WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	it, err := repo.FindItemByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "BEEF-TRIM", it.SKU)
	assert.True(t, it.IsMeat)
}

func TestReferencePostgreSQLRepository_FindLossTypeByCode_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &ReferencePostgreSQLRepository{connection: conn}

	mock.ExpectQuery("SELECT id, code, name, active, sort_order FROM loss_types WHERE code = \\$1").
		WithArgs("bogus").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindLossTypeByCode(context.Background(), "bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cn.ErrEntityNotFound))
}

func TestReferencePostgreSQLRepository_FindProcessProfileByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := newTestConnection(db)
	repo := &ReferencePostgreSQLRepository{connection: conn}

	rows := sqlmock.NewRows([]string{"id", "name", "allows_lot_mixing", "default_aging_days", "mode"}).
		AddRow(int64(1), "standard breakdown", false, int64(14), "calendar")

	mock.ExpectQuery("SELECT id, name, allows_lot_mixing, default_aging_days, mode FROM process_profiles WHERE name = \\$1").
		WithArgs("standard breakdown").
		WillReturnRows(rows)

	p, err := repo.FindProcessProfileByName(context.Background(), "standard breakdown")
	require.NoError(t, err)
	require.NotNil(t, p.DefaultAgingDays)
	assert.Equal(t, 14, *p.DefaultAgingDays)
	require.NotNil(t, p.Mode)
	assert.Equal(t, domain.AgingMode("calendar"), *p.Mode)
}
