package postgres

import (
	"context"
	"database/sql"

	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

//go:generate mockgen --destination=postgresmock/qa_mock.go --package=postgresmock . QARepository
type QARepository interface {
	Create(ctx context.Context, tx *sql.Tx, q *domain.QACheck) (int64, error)
	SetPassLot(ctx context.Context, tx *sql.Tx, qaCheckID, lotID int64) error
	SetFailLot(ctx context.Context, tx *sql.Tx, qaCheckID, lotID int64) error
}

type QAPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewQAPostgreSQLRepository(pc *mpostgres.PostgresConnection) *QAPostgreSQLRepository {
	return &QAPostgreSQLRepository{connection: pc}
}

func (r *QAPostgreSQLRepository) Create(ctx context.Context, tx *sql.Tx, q *domain.QACheck) (int64, error) {
	var passQty, failQty sql.NullString
	if q.PassQtyKg != nil {
		passQty = sql.NullString{String: q.PassQtyKg.String(), Valid: true}
	}

	if q.FailQtyKg != nil {
		failQty = sql.NullString{String: q.FailQtyKg.String(), Valid: true}
	}

	var id int64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO qa_checks (lot_id, check_type, passed, mode, pass_qty_kg, fail_qty_kg, performed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		q.LotID, q.CheckType, q.Passed, string(q.Mode), passQty, failQty, q.PerformedAt).Scan(&id)

	return id, err
}

func (r *QAPostgreSQLRepository) SetPassLot(ctx context.Context, tx *sql.Tx, qaCheckID, lotID int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE qa_checks SET pass_lot_id = $1 WHERE id = $2", lotID, qaCheckID)
	return err
}

func (r *QAPostgreSQLRepository) SetFailLot(ctx context.Context, tx *sql.Tx, qaCheckID, lotID int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE qa_checks SET fail_lot_id = $1 WHERE id = $2", lotID, qaCheckID)
	return err
}
