package postgres

import (
	"database/sql"

	"github.com/bxcodec/dbresolver/v2"

	"github.com/foodtrace/lotcore/common/mpostgres"
)

// newTestConnection wraps a sqlmock-backed *sql.DB as an already-connected
// PostgresConnection, so GetDB returns it without attempting a real dial or
// running migrations.
func newTestConnection(db *sql.DB) *mpostgres.PostgresConnection {
	connectionDB := dbresolver.New(dbresolver.WithPrimaryDBs(db))

	return &mpostgres.PostgresConnection{
		ConnectionDB: &connectionDB,
		Connected:    true,
	}
}
