package postgres

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// pqInt64Array binds a Go []int64 as a Postgres bigint[] for = ANY($1) queries.
func pqInt64Array(ids []int64) driver.Valuer {
	return pq.Array(ids)
}
