package command

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodtrace/lotcore/domain"
)

// availabilityTx computes the Availability Oracle's output for lot against
// the given transaction at instant "at", per §4.2. Callers must already hold
// the lot's row lock before calling this.
func (uc *UseCase) availabilityTx(ctx context.Context, tx *sql.Tx, lot *domain.Lot, at time.Time) (*domain.Availability, error) {
	onHand, err := uc.MovementRepo.SumByLot(ctx, tx, lot.ID)
	if err != nil {
		return nil, err
	}

	if onHand.IsNegative() {
		onHand = decimal.Zero
	}

	reserved, err := uc.ReservationRepo.SumByLot(ctx, tx, lot.ID)
	if err != nil {
		return nil, err
	}

	available := onHand.Sub(reserved)
	if available.IsNegative() {
		available = decimal.Zero
	}

	availableForSale := decimal.Zero
	if lot.IsSellable(at) {
		availableForSale = available
	}

	return &domain.Availability{
		LotID:              lot.ID,
		OnHandKg:           onHand,
		ReservedKg:         reserved,
		AvailableKg:        available,
		AvailableForSaleKg: availableForSale,
	}, nil
}

// withinTolerance reports whether a and b differ by no more than
// domain.Tolerance, the 1 g comparison contract used everywhere mass
// balances and availability figures are checked.
func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(domain.Tolerance)
}
