package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

// ReferenceRepository reads the master-data tables (items, suppliers,
// customers, locations, loss types, process profiles). Their CRUD surface is
// out of scope; the core only ever needs to look rows up by id or code.
//go:generate mockgen --destination=postgresmock/reference_mock.go --package=postgresmock . ReferenceRepository
type ReferenceRepository interface {
	FindItemByID(ctx context.Context, id int64) (*domain.Item, error)
	FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error)
	FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindLocationByID(ctx context.Context, id int64) (*domain.Location, error)
	FindLossTypeByID(ctx context.Context, id int64) (*domain.LossType, error)
	FindLossTypeByCode(ctx context.Context, code string) (*domain.LossType, error)
	FindProcessProfileByID(ctx context.Context, id int64) (*domain.ProcessProfile, error)
	FindProcessProfileByName(ctx context.Context, name string) (*domain.ProcessProfile, error)
}

type ReferencePostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewReferencePostgreSQLRepository(pc *mpostgres.PostgresConnection) *ReferencePostgreSQLRepository {
	return &ReferencePostgreSQLRepository{connection: pc}
}

func (r *ReferencePostgreSQLRepository) FindItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var it domain.Item

	err = db.QueryRowContext(ctx, "SELECT id, sku, name, is_meat FROM items WHERE id = $1", id).
		Scan(&it.ID, &it.SKU, &it.Name, &it.IsMeat)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("Item")
	}

	if err != nil {
		return nil, err
	}

	return &it, nil
}

func (r *ReferencePostgreSQLRepository) FindSupplierByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var s domain.Supplier

	err = db.QueryRowContext(ctx, "SELECT id, name FROM suppliers WHERE id = $1", id).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("Supplier")
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *ReferencePostgreSQLRepository) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var c domain.Customer

	err = db.QueryRowContext(ctx, "SELECT id, name FROM customers WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("Customer")
	}

	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *ReferencePostgreSQLRepository) FindLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var l domain.Location

	var kind string

	err = db.QueryRowContext(ctx, "SELECT id, name, kind FROM locations WHERE id = $1", id).Scan(&l.ID, &l.Name, &kind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("Location")
	}

	if err != nil {
		return nil, err
	}

	l.Kind = domain.LocationKind(kind)

	return &l, nil
}

func (r *ReferencePostgreSQLRepository) FindLossTypeByID(ctx context.Context, id int64) (*domain.LossType, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var lt domain.LossType

	err = db.QueryRowContext(ctx, "SELECT id, code, name, active, sort_order FROM loss_types WHERE id = $1", id).
		Scan(&lt.ID, &lt.Code, &lt.Name, &lt.Active, &lt.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("LossType")
	}

	if err != nil {
		return nil, err
	}

	return &lt, nil
}

func (r *ReferencePostgreSQLRepository) FindLossTypeByCode(ctx context.Context, code string) (*domain.LossType, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var lt domain.LossType

	err = db.QueryRowContext(ctx, "SELECT id, code, name, active, sort_order FROM loss_types WHERE code = $1", code).
		Scan(&lt.ID, &lt.Code, &lt.Name, &lt.Active, &lt.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("LossType")
	}

	if err != nil {
		return nil, err
	}

	return &lt, nil
}

func (r *ReferencePostgreSQLRepository) FindProcessProfileByID(ctx context.Context, id int64) (*domain.ProcessProfile, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return scanProcessProfile(db.QueryRowContext(ctx,
		"SELECT id, name, allows_lot_mixing, default_aging_days, mode FROM process_profiles WHERE id = $1", id))
}

func (r *ReferencePostgreSQLRepository) FindProcessProfileByName(ctx context.Context, name string) (*domain.ProcessProfile, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	return scanProcessProfile(db.QueryRowContext(ctx,
		"SELECT id, name, allows_lot_mixing, default_aging_days, mode FROM process_profiles WHERE name = $1", name))
}

func scanProcessProfile(row *sql.Row) (*domain.ProcessProfile, error) {
	var p domain.ProcessProfile

	var defaultAgingDays sql.NullInt64

	var mode sql.NullString

	err := row.Scan(&p.ID, &p.Name, &p.AllowsLotMixing, &defaultAgingDays, &mode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("ProcessProfile")
	}

	if err != nil {
		return nil, err
	}

	if defaultAgingDays.Valid {
		days := int(defaultAgingDays.Int64)
		p.DefaultAgingDays = &days
	}

	if mode.Valid {
		m := domain.AgingMode(mode.String)
		p.Mode = &m
	}

	return &p, nil
}
