package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/foodtrace/lotcore/common/mpostgres"
)

// LotCodeRepository allocates lot codes of the form PREFIX-YYYYMMDD-NNNN. The
// counter row is keyed by (code_date, prefix) and advanced under a row lock
// inside the caller's transaction so concurrent receivings on the same day
// never collide.
//go:generate mockgen --destination=postgresmock/lotcode_mock.go --package=postgresmock . LotCodeRepository
type LotCodeRepository interface {
	NextLotCode(ctx context.Context, tx *sql.Tx, prefix string, at time.Time) (string, error)
}

type LotCodePostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewLotCodePostgreSQLRepository(pc *mpostgres.PostgresConnection) *LotCodePostgreSQLRepository {
	return &LotCodePostgreSQLRepository{connection: pc}
}

func (r *LotCodePostgreSQLRepository) NextLotCode(ctx context.Context, tx *sql.Tx, prefix string, at time.Time) (string, error) {
	codeDate := at.UTC().Format("2006-01-02")

	_, err := tx.ExecContext(ctx,
		`INSERT INTO lot_code_counters (code_date, prefix, last_seq)
		 VALUES ($1, $2, 0)
		 ON CONFLICT (code_date, prefix) DO NOTHING`,
		codeDate, prefix)
	if err != nil {
		return "", err
	}

	var lastSeq int
	err = tx.QueryRowContext(ctx,
		"SELECT last_seq FROM lot_code_counters WHERE code_date = $1 AND prefix = $2 FOR UPDATE",
		codeDate, prefix).Scan(&lastSeq)
	if err != nil {
		return "", err
	}

	nextSeq := lastSeq + 1

	_, err = tx.ExecContext(ctx,
		"UPDATE lot_code_counters SET last_seq = $1 WHERE code_date = $2 AND prefix = $3",
		nextSeq, codeDate, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%04d", prefix, at.UTC().Format("20060102"), nextSeq), nil
}
