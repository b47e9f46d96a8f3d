package query

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodtrace/lotcore/domain"
)

// Availability answers the Availability Oracle (§4.2) for one lot as of now,
// using the pooled connection rather than a live write transaction.
func (uc *UseCase) Availability(ctx context.Context, lotID int64) (*domain.Availability, error) {
	if cached, ok := uc.Cache.Get(ctx, lotID); ok {
		return cached, nil
	}

	lot, err := uc.LotRepo.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	onHand, err := uc.MovementRepo.SumByLot(ctx, db, lotID)
	if err != nil {
		return nil, err
	}

	if onHand.IsNegative() {
		onHand = decimal.Zero
	}

	reserved, err := uc.ReservationRepo.SumByLot(ctx, db, lotID)
	if err != nil {
		return nil, err
	}

	available := onHand.Sub(reserved)
	if available.IsNegative() {
		available = decimal.Zero
	}

	availableForSale := decimal.Zero
	if lot.IsSellable(time.Now().UTC()) {
		availableForSale = available
	}

	result := &domain.Availability{
		LotID:              lotID,
		OnHandKg:           onHand,
		ReservedKg:         reserved,
		AvailableKg:        available,
		AvailableForSaleKg: availableForSale,
	}

	uc.Cache.Set(ctx, result)

	return result, nil
}
