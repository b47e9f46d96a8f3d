package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

//go:generate mockgen --destination=postgresmock/sale_mock.go --package=postgresmock . SaleRepository
type SaleRepository interface {
	Create(ctx context.Context, tx *sql.Tx, s *domain.Sale) (int64, error)
	CreateLine(ctx context.Context, tx *sql.Tx, line *domain.SaleLine) (int64, error)
	LinesBySale(ctx context.Context, saleID int64) ([]*domain.SaleLine, error)
	FindByID(ctx context.Context, id int64) (*domain.Sale, error)
	// CustomersByLots returns, for each requested lot id, the customer ids of
	// the sales whose lines reference it, used to answer "who received this lot".
	CustomersByLots(ctx context.Context, lotIDs []int64) (map[int64][]int64, error)
	// SalesByLot returns every sale line touching a lot, newest first, for
	// the lot detail read projection.
	SalesByLot(ctx context.Context, lotID int64) ([]*domain.SaleLine, error)
}

type SalePostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewSalePostgreSQLRepository(pc *mpostgres.PostgresConnection) *SalePostgreSQLRepository {
	return &SalePostgreSQLRepository{connection: pc}
}

func (r *SalePostgreSQLRepository) Create(ctx context.Context, tx *sql.Tx, s *domain.Sale) (int64, error) {
	var notes sql.NullString
	if s.Notes != nil {
		notes = sql.NullString{String: *s.Notes, Valid: true}
	}

	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO sales (customer_id, sold_at, notes) VALUES ($1,$2,$3) RETURNING id",
		s.CustomerID, s.SoldAt, notes).Scan(&id)

	return id, err
}

func (r *SalePostgreSQLRepository) CreateLine(ctx context.Context, tx *sql.Tx, line *domain.SaleLine) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO sale_lines (sale_id, lot_id, quantity_kg) VALUES ($1,$2,$3) RETURNING id",
		line.SaleID, line.LotID, line.QuantityKg).Scan(&id)

	return id, err
}

func (r *SalePostgreSQLRepository) LinesBySale(ctx context.Context, saleID int64) ([]*domain.SaleLine, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, sale_id, lot_id, quantity_kg FROM sale_lines WHERE sale_id = $1", saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.SaleLine

	for rows.Next() {
		var line domain.SaleLine
		if err := rows.Scan(&line.ID, &line.SaleID, &line.LotID, &line.QuantityKg); err != nil {
			return nil, err
		}

		out = append(out, &line)
	}

	return out, rows.Err()
}

func (r *SalePostgreSQLRepository) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var s domain.Sale

	var notes sql.NullString

	err = db.QueryRowContext(ctx, "SELECT id, customer_id, sold_at, notes, created_at FROM sales WHERE id = $1", id).
		Scan(&s.ID, &s.CustomerID, &s.SoldAt, &notes, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("Sale")
	}

	if err != nil {
		return nil, err
	}

	if notes.Valid {
		s.Notes = &notes.String
	}

	return &s, nil
}

// SalesByLot returns every sale line touching lotID, most recent sale first.
func (r *SalePostgreSQLRepository) SalesByLot(ctx context.Context, lotID int64) ([]*domain.SaleLine, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT sl.id, sl.sale_id, sl.lot_id, sl.quantity_kg
		 FROM sale_lines sl
		 JOIN sales s ON s.id = sl.sale_id
		 WHERE sl.lot_id = $1
		 ORDER BY s.sold_at DESC, sl.id DESC`, lotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.SaleLine

	for rows.Next() {
		var line domain.SaleLine
		if err := rows.Scan(&line.ID, &line.SaleID, &line.LotID, &line.QuantityKg); err != nil {
			return nil, err
		}

		out = append(out, &line)
	}

	return out, rows.Err()
}

// CustomersByLots returns, for each requested lot id, the customer ids that
// received it via a sale line — the final hop of the forward traceability
// closure used to compute affected customers for a recall.
func (r *SalePostgreSQLRepository) CustomersByLots(ctx context.Context, lotIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64)
	if len(lotIDs) == 0 {
		return result, nil
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT sl.lot_id, s.customer_id
		 FROM sale_lines sl
		 JOIN sales s ON s.id = sl.sale_id
		 WHERE sl.lot_id = ANY($1)`, pqInt64Array(lotIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lotID, customerID int64
		if err := rows.Scan(&lotID, &customerID); err != nil {
			return nil, err
		}

		result[lotID] = append(result[lotID], customerID)
	}

	return result, rows.Err()
}
