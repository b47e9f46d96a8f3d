package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

//go:generate mockgen --destination=postgresmock/reservation_mock.go --package=postgresmock . ReservationRepository
type ReservationRepository interface {
	Create(ctx context.Context, tx *sql.Tx, res *domain.Reservation) (int64, error)
	Delete(ctx context.Context, tx *sql.Tx, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByLot(ctx context.Context, lotID int64) ([]*domain.Reservation, error)
	SumByLot(ctx context.Context, q SQLQueryer, lotID int64) (decimal.Decimal, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Reservation, error)
}

type ReservationPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewReservationPostgreSQLRepository(pc *mpostgres.PostgresConnection) *ReservationPostgreSQLRepository {
	return &ReservationPostgreSQLRepository{connection: pc}
}

func (r *ReservationPostgreSQLRepository) Create(ctx context.Context, tx *sql.Tx, res *domain.Reservation) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO reservations (lot_id, customer_id, quantity_kg, reserved_at) VALUES ($1,$2,$3,$4) RETURNING id",
		res.LotID, res.CustomerID, res.QuantityKg, res.ReservedAt).Scan(&id)

	return id, err
}

func (r *ReservationPostgreSQLRepository) Delete(ctx context.Context, tx *sql.Tx, id int64) error {
	result, err := tx.ExecContext(ctx, "DELETE FROM reservations WHERE id = $1", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return errNotFound("Reservation")
	}

	return nil
}

func (r *ReservationPostgreSQLRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var res domain.Reservation

	err = db.QueryRowContext(ctx,
		"SELECT id, lot_id, customer_id, quantity_kg, reserved_at, created_at FROM reservations WHERE id = $1", id).
		Scan(&res.ID, &res.LotID, &res.CustomerID, &res.QuantityKg, &res.ReservedAt, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("Reservation")
	}

	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationPostgreSQLRepository) ListByLot(ctx context.Context, lotID int64) ([]*domain.Reservation, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, lot_id, customer_id, quantity_kg, reserved_at, created_at FROM reservations WHERE lot_id = $1 ORDER BY reserved_at DESC", lotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationPostgreSQLRepository) List(ctx context.Context, limit, offset int) ([]*domain.Reservation, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, lot_id, customer_id, quantity_kg, reserved_at, created_at FROM reservations ORDER BY reserved_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var out []*domain.Reservation

	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.LotID, &res.CustomerID, &res.QuantityKg, &res.ReservedAt, &res.CreatedAt); err != nil {
			return nil, err
		}

		out = append(out, &res)
	}

	return out, rows.Err()
}

// SumByLot totals reserved_kg for a lot; q may be the live transaction (while
// a reservation or sale is being applied) or the pooled connection (reports).
func (r *ReservationPostgreSQLRepository) SumByLot(ctx context.Context, q SQLQueryer, lotID int64) (decimal.Decimal, error) {
	var sum sql.NullString

	err := q.QueryRowContext(ctx, "SELECT COALESCE(SUM(quantity_kg), 0) FROM reservations WHERE lot_id = $1", lotID).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(sum.String)
}
