package postgres

import (
	"context"
	"database/sql"

	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

// ProductionRepository persists ProductionOrder aggregates: the order header
// plus its inputs, outputs, and losses. Mass balance across these three
// children is validated by the command layer before any row is written.
//go:generate mockgen --destination=postgresmock/production_mock.go --package=postgresmock . ProductionRepository
type ProductionRepository interface {
	CreateOrder(ctx context.Context, tx *sql.Tx, o *domain.ProductionOrder) (int64, error)
	CreateInput(ctx context.Context, tx *sql.Tx, in *domain.ProductionInput) (int64, error)
	CreateOutput(ctx context.Context, tx *sql.Tx, out *domain.ProductionOutput) (int64, error)
	CreateLoss(ctx context.Context, tx *sql.Tx, l *domain.BreakdownLoss) (int64, error)
	InputsByOrder(ctx context.Context, orderID int64) ([]*domain.ProductionInput, error)
	OutputsByOrder(ctx context.Context, orderID int64) ([]*domain.ProductionOutput, error)
	// OrdersWithLotAsInput / OrdersWithLotAsOutput walk one edge of the
	// production DAG; the Traceability Engine repeats these over a work set.
	OrdersWithLotAsInput(ctx context.Context, lotIDs []int64) (map[int64][]int64, error)
	OrdersWithLotAsOutput(ctx context.Context, lotIDs []int64) (map[int64][]int64, error)
	InputLotsByOrders(ctx context.Context, orderIDs []int64) ([]int64, error)
	OutputLotsByOrders(ctx context.Context, orderIDs []int64) ([]int64, error)
}

type ProductionPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewProductionPostgreSQLRepository(pc *mpostgres.PostgresConnection) *ProductionPostgreSQLRepository {
	return &ProductionPostgreSQLRepository{connection: pc}
}

func (r *ProductionPostgreSQLRepository) CreateOrder(ctx context.Context, tx *sql.Tx, o *domain.ProductionOrder) (int64, error) {
	var notes sql.NullString
	if o.Notes != nil {
		notes = sql.NullString{String: *o.Notes, Valid: true}
	}

	var completedAt sql.NullTime
	if o.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *o.CompletedAt, Valid: true}
	}

	query, args, err := psql.Insert("production_orders").
		Columns("process_profile_id", "process_type", "is_rework", "notes", "started_at", "completed_at").
		Values(o.ProcessProfileID, string(o.ProcessType), o.IsRework, notes, o.StartedAt, completedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)

	return id, err
}

func (r *ProductionPostgreSQLRepository) CreateInput(ctx context.Context, tx *sql.Tx, in *domain.ProductionInput) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO production_inputs (order_id, lot_id, quantity_kg) VALUES ($1,$2,$3) RETURNING id",
		in.OrderID, in.LotID, in.QuantityKg).Scan(&id)

	return id, err
}

func (r *ProductionPostgreSQLRepository) CreateOutput(ctx context.Context, tx *sql.Tx, out *domain.ProductionOutput) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO production_outputs (order_id, lot_id, quantity_kg) VALUES ($1,$2,$3) RETURNING id",
		out.OrderID, out.LotID, out.QuantityKg).Scan(&id)

	return id, err
}

func (r *ProductionPostgreSQLRepository) CreateLoss(ctx context.Context, tx *sql.Tx, l *domain.BreakdownLoss) (int64, error) {
	var notes sql.NullString
	if l.Notes != nil {
		notes = sql.NullString{String: *l.Notes, Valid: true}
	}

	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO breakdown_losses (order_id, loss_type_id, quantity_kg, notes) VALUES ($1,$2,$3,$4) RETURNING id",
		l.OrderID, l.LossTypeID, l.QuantityKg, notes).Scan(&id)

	return id, err
}

func (r *ProductionPostgreSQLRepository) InputsByOrder(ctx context.Context, orderID int64) ([]*domain.ProductionInput, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, order_id, lot_id, quantity_kg FROM production_inputs WHERE order_id = $1", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ProductionInput

	for rows.Next() {
		var in domain.ProductionInput
		if err := rows.Scan(&in.ID, &in.OrderID, &in.LotID, &in.QuantityKg); err != nil {
			return nil, err
		}

		out = append(out, &in)
	}

	return out, rows.Err()
}

func (r *ProductionPostgreSQLRepository) OutputsByOrder(ctx context.Context, orderID int64) ([]*domain.ProductionOutput, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, order_id, lot_id, quantity_kg FROM production_outputs WHERE order_id = $1", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ProductionOutput

	for rows.Next() {
		var o domain.ProductionOutput
		if err := rows.Scan(&o.ID, &o.OrderID, &o.LotID, &o.QuantityKg); err != nil {
			return nil, err
		}

		out = append(out, &o)
	}

	return out, rows.Err()
}

// OrdersWithLotAsInput returns, for each requested lot id, the order ids
// that consumed it as input — the first half of a forward closure hop.
func (r *ProductionPostgreSQLRepository) OrdersWithLotAsInput(ctx context.Context, lotIDs []int64) (map[int64][]int64, error) {
	return r.ordersByLot(ctx, "production_inputs", lotIDs)
}

// OrdersWithLotAsOutput returns, for each requested lot id, the order id
// that produced it — the first half of a backward closure hop.
func (r *ProductionPostgreSQLRepository) OrdersWithLotAsOutput(ctx context.Context, lotIDs []int64) (map[int64][]int64, error) {
	return r.ordersByLot(ctx, "production_outputs", lotIDs)
}

func (r *ProductionPostgreSQLRepository) ordersByLot(ctx context.Context, table string, lotIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64)
	if len(lotIDs) == 0 {
		return result, nil
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT lot_id, order_id FROM "+table+" WHERE lot_id = ANY($1)", pqInt64Array(lotIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lotID, orderID int64
		if err := rows.Scan(&lotID, &orderID); err != nil {
			return nil, err
		}

		result[lotID] = append(result[lotID], orderID)
	}

	return result, rows.Err()
}

// InputLotsByOrders returns the distinct lot ids consumed as inputs by the
// given orders — the backward closure's next hop from an order.
func (r *ProductionPostgreSQLRepository) InputLotsByOrders(ctx context.Context, orderIDs []int64) ([]int64, error) {
	return r.lotsByOrders(ctx, "production_inputs", orderIDs)
}

// OutputLotsByOrders returns the distinct lot ids produced by the given
// orders — the forward closure's next hop from an order.
func (r *ProductionPostgreSQLRepository) OutputLotsByOrders(ctx context.Context, orderIDs []int64) ([]int64, error) {
	return r.lotsByOrders(ctx, "production_outputs", orderIDs)
}

func (r *ProductionPostgreSQLRepository) lotsByOrders(ctx context.Context, table string, orderIDs []int64) ([]int64, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT DISTINCT lot_id FROM "+table+" WHERE order_id = ANY($1)", pqInt64Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64

	for rows.Next() {
		var lotID int64
		if err := rows.Scan(&lotID); err != nil {
			return nil, err
		}

		out = append(out, lotID)
	}

	return out, rows.Err()
}
