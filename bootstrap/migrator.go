package bootstrap

import (
	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mlog"
	"github.com/foodtrace/lotcore/common/mpostgres"
)

// Migrator runs the embedded golang-migrate migration set against the
// primary database once, then returns. It is registered alongside the
// Reconciler so that a fresh environment never has to run a separate
// migrate invocation before the process can serve offline.apply.
type Migrator struct {
	connection *mpostgres.PostgresConnection
	logger     mlog.Logger
}

// NewMigrator returns a Migrator bound to connection.
func NewMigrator(connection *mpostgres.PostgresConnection, logger mlog.Logger) *Migrator {
	return &Migrator{connection: connection, logger: logger}
}

// Run implements common.App. PostgresConnection.Connect applies pending
// migrations before returning, so a single call is sufficient.
func (m *Migrator) Run(l *common.Launcher) error {
	if err := m.connection.Connect(); err != nil {
		m.logger.Errorf("migrator: failed to connect/migrate: %v", err)
		return err
	}

	m.logger.Info("migrator: schema up to date")

	return nil
}
