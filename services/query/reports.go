package query

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodtrace/lotcore/domain"
)

// LotDetail is the reports.lot_detail response of §4.14: the lot, its
// reference data, current quantities, and a page of each history stream.
type LotDetail struct {
	Lot            *domain.Lot
	Item           *domain.Item
	Supplier       *domain.Supplier
	Location       *domain.Location
	Availability   *domain.Availability
	Movements      []*domain.InventoryMovement
	Events         []*domain.LotEvent
	Reservations   []*domain.Reservation
	Sales          []*domain.SaleLine
	AsInputOrders  []int64
	AsOutputOrders []int64
}

// LotDetailInput bounds the paginated history streams; zero values default
// to a single page of 50.
type LotDetailInput struct {
	LotID              int64
	MovementLimit      int64
	MovementOffset     int64
	EventLimit         int64
	EventOffset        int64
}

const defaultHistoryPage = 50

// LotDetail assembles the full lot detail projection.
func (uc *UseCase) LotDetail(ctx context.Context, input *LotDetailInput) (*LotDetail, error) {
	lot, err := uc.LotRepo.FindByID(ctx, input.LotID)
	if err != nil {
		return nil, err
	}

	item, err := uc.ReferenceRepo.FindItemByID(ctx, lot.ItemID)
	if err != nil {
		return nil, err
	}

	detail := &LotDetail{Lot: lot, Item: item}

	if lot.SupplierID != nil {
		supplier, err := uc.ReferenceRepo.FindSupplierByID(ctx, *lot.SupplierID)
		if err != nil {
			return nil, err
		}

		detail.Supplier = supplier
	}

	if lot.CurrentLocationID != nil {
		location, err := uc.ReferenceRepo.FindLocationByID(ctx, *lot.CurrentLocationID)
		if err != nil {
			return nil, err
		}

		detail.Location = location
	}

	availability, err := uc.Availability(ctx, input.LotID)
	if err != nil {
		return nil, err
	}

	detail.Availability = availability

	movementLimit, movementOffset := pageOrDefault(input.MovementLimit, input.MovementOffset)

	movements, err := uc.MovementRepo.ListByLot(ctx, input.LotID, movementLimit, movementOffset)
	if err != nil {
		return nil, err
	}

	detail.Movements = movements

	eventLimit, eventOffset := pageOrDefault(input.EventLimit, input.EventOffset)

	events, err := uc.EventRepo.ListByLot(ctx, input.LotID, eventLimit, eventOffset)
	if err != nil {
		return nil, err
	}

	detail.Events = events

	reservations, err := uc.ReservationRepo.ListByLot(ctx, input.LotID)
	if err != nil {
		return nil, err
	}

	detail.Reservations = reservations

	sales, err := uc.SaleRepo.SalesByLot(ctx, input.LotID)
	if err != nil {
		return nil, err
	}

	detail.Sales = sales

	asInput, err := uc.ProductionRepo.OrdersWithLotAsInput(ctx, []int64{input.LotID})
	if err != nil {
		return nil, err
	}

	detail.AsInputOrders = asInput[input.LotID]

	asOutput, err := uc.ProductionRepo.OrdersWithLotAsOutput(ctx, []int64{input.LotID})
	if err != nil {
		return nil, err
	}

	detail.AsOutputOrders = asOutput[input.LotID]

	return detail, nil
}

func pageOrDefault(limit, offset int64) (int64, int64) {
	if limit <= 0 {
		limit = defaultHistoryPage
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// AtRiskLot is one row of the at-risk report, flagged per §4.14.
type AtRiskLot struct {
	Lot                   *domain.Lot
	AgingMissingReadyAt   bool
	AgingNotReady         bool
	ExpiringSoon          bool
	Quarantined           bool
}

var atRiskStates = []domain.LotState{domain.LotStateAging, domain.LotStateReleased, domain.LotStateQuarantined}

// AtRisk scans lots in {aging, released, quarantined} and flags those
// needing attention. expiringWithinDays is clamped to [1, 60]; zero takes
// the default of 7.
func (uc *UseCase) AtRisk(ctx context.Context, expiringWithinDays int, limit, offset int) ([]*AtRiskLot, error) {
	horizonDays := expiringWithinDays
	if horizonDays == 0 {
		horizonDays = 7
	}

	if horizonDays < 1 {
		horizonDays = 1
	}

	if horizonDays > 60 {
		horizonDays = 60
	}

	if limit <= 0 {
		limit = defaultHistoryPage
	}

	lots, err := uc.LotRepo.ListByStates(ctx, atRiskStates, limit, offset)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, horizonDays)

	out := make([]*AtRiskLot, 0, len(lots))

	for _, lot := range lots {
		risk := &AtRiskLot{Lot: lot}

		switch lot.State {
		case domain.LotStateAging:
			if lot.ReadyAt == nil {
				risk.AgingMissingReadyAt = true
			} else if lot.ReadyAt.After(now) {
				risk.AgingNotReady = true
			}
		case domain.LotStateQuarantined:
			risk.Quarantined = true
		}

		if lot.ExpiresAt != nil && !lot.ExpiresAt.After(horizon) {
			risk.ExpiringSoon = true
		}

		out = append(out, risk)
	}

	return out, nil
}

// StockLot is one row of the stock report: a lot with positive availability
// (unless zero-inclusion is requested).
type StockLot struct {
	Lot          *domain.Lot
	OnHandKg     decimal.Decimal
	ReservedKg   decimal.Decimal
	AvailableKg  decimal.Decimal
	Sellable     bool
}

// Stock lists non-disposed lots with their current quantities. includeZero
// also returns lots with zero availability.
func (uc *UseCase) Stock(ctx context.Context, includeZero bool, limit, offset int) ([]*StockLot, error) {
	if limit <= 0 {
		limit = defaultHistoryPage
	}

	lots, err := uc.LotRepo.ListExcludingStates(ctx, []domain.LotState{domain.LotStateDisposed}, limit, offset)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	out := make([]*StockLot, 0, len(lots))

	for _, lot := range lots {
		avail, err := uc.Availability(ctx, lot.ID)
		if err != nil {
			return nil, err
		}

		if !includeZero && avail.AvailableKg.IsZero() {
			continue
		}

		out = append(out, &StockLot{
			Lot:         lot,
			OnHandKg:    avail.OnHandKg,
			ReservedKg:  avail.ReservedKg,
			AvailableKg: avail.AvailableKg,
			Sellable:    lot.IsSellable(now),
		})
	}

	return out, nil
}
