// Package command implements the lot lifecycle and material-balance engine's
// write-side operations: one transactional UseCase method per command verb
// in the external command surface.
package command

import (
	"context"
	"database/sql"

	"github.com/bxcodec/dbresolver/v2"

	"github.com/foodtrace/lotcore/adapters/mongodb"
	"github.com/foodtrace/lotcore/adapters/postgres"
	"github.com/foodtrace/lotcore/adapters/rabbitmq"
	"github.com/foodtrace/lotcore/adapters/redis"
	"github.com/foodtrace/lotcore/common/mpostgres"
)

// UseCase wires every repository and outbound collaborator the command
// layer needs. Commands are methods on UseCase so they share the same
// connection and publisher without a service-locator lookup per call.
type UseCase struct {
	Connection      *mpostgres.PostgresConnection
	LotRepo         postgres.LotRepository
	MovementRepo    postgres.MovementRepository
	EventRepo       postgres.EventRepository
	ProductionRepo  postgres.ProductionRepository
	QARepo          postgres.QARepository
	ReservationRepo postgres.ReservationRepository
	SaleRepo        postgres.SaleRepository
	LotCodeRepo     postgres.LotCodeRepository
	ReferenceRepo   postgres.ReferenceRepository
	OfflineRepo     postgres.OfflineRepository
	// Events, Cache, and Archive are optional; nil disables the
	// corresponding best-effort integration without affecting transactional
	// correctness.
	Events  *rabbitmq.EventPublisher
	Cache   *redis.AvailabilityCache
	Archive *mongodb.ComplianceArchive
}

// invalidateAvailability drops the cached availability for every lot a
// command just changed the on-hand or reserved quantity of.
func (uc *UseCase) invalidateAvailability(ctx context.Context, lotIDs ...int64) {
	for _, id := range lotIDs {
		uc.Cache.Invalidate(ctx, id)
	}
}

// withTx runs fn inside a fresh transaction, committing on success and
// rolling back on any error fn returns or panics with.
func (uc *UseCase) withTx(db dbresolver.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			_ = tx.Rollback()
			return
		}

		err = tx.Commit()
	}()

	err = fn(tx)

	return err
}
