// Package query implements the read-only projections of §4.14: availability,
// traceability, recall reporting, and the lot-detail / at-risk / stock
// reports. No method here opens a write transaction.
package query

import (
	"github.com/foodtrace/lotcore/adapters/mongodb"
	"github.com/foodtrace/lotcore/adapters/postgres"
	"github.com/foodtrace/lotcore/adapters/redis"
	"github.com/foodtrace/lotcore/common/mpostgres"
)

// UseCase holds the repositories needed to answer read projections. It never
// begins a transaction; every call runs against the pooled connection.
type UseCase struct {
	Connection      *mpostgres.PostgresConnection
	LotRepo         postgres.LotRepository
	MovementRepo    postgres.MovementRepository
	EventRepo       postgres.EventRepository
	ProductionRepo  postgres.ProductionRepository
	ReservationRepo postgres.ReservationRepository
	SaleRepo        postgres.SaleRepository
	ReferenceRepo   postgres.ReferenceRepository
	// Cache and Archive are optional; a nil value simply disables the
	// corresponding integration.
	Cache   *redis.AvailabilityCache
	Archive *mongodb.ComplianceArchive
}
