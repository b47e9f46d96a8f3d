package command

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/domain"
)

// SaleLineInput is one requested line of a sale, possibly repeating a lot.
type SaleLineInput struct {
	LotID      int64
	QuantityKg decimal.Decimal
}

// SellInput is the sale.create request.
type SellInput struct {
	CustomerID  int64
	Lines       []SaleLineInput
	Notes       *string
	SoldAt      *time.Time
	PerformedBy string
}

// SellOutput is the sale.create response.
type SellOutput struct {
	SaleID      int64
	SoldLotIDs  []int64
	MovementIDs []int64
	LotEventIDs []int64
}

// Sell records a multi-line sale against one or more released lots, per §4.11.
func (uc *UseCase) Sell(ctx context.Context, input *SellInput) (*SellOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.sale.create")
	defer span.End()

	if len(input.Lines) == 0 {
		err := common.ValidateBusinessError(errMissingFields("lines"), "Sale")
		mopentelemetry.HandleSpanError(&span, "no sale lines requested", err)

		return nil, err
	}

	soldAt := time.Now().UTC()
	if input.SoldAt != nil {
		soldAt = *input.SoldAt
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return nil, err
	}

	var out *SellOutput

	err = uc.withTx(db, func(tx *sql.Tx) error {
		var err error
		out, err = uc.sellTx(ctx, tx, input, soldAt)

		return err
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Sale")
		mopentelemetry.HandleSpanError(&span, "Failed to apply sale", wrapped)
		logger.Errorf("sale.create failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, out.SoldLotIDs...)

	return out, nil
}

// sellTx is the transaction-scoped body of Sell, also dispatched to directly
// by the offline reconciler once a savepoint is open.
func (uc *UseCase) sellTx(ctx context.Context, tx *sql.Tx, input *SellInput, soldAt time.Time) (*SellOutput, error) {
	var out SellOutput

	err := func() error {
		if _, err := uc.ReferenceRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
			return err
		}

		lineTotals := make(map[int64]decimal.Decimal)
		order := make([]int64, 0, len(input.Lines))

		for _, line := range input.Lines {
			if _, ok := lineTotals[line.LotID]; !ok {
				order = append(order, line.LotID)
			}

			lineTotals[line.LotID] = lineTotals[line.LotID].Add(line.QuantityKg)
		}

		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

		lots := make(map[int64]*domain.Lot, len(order))

		for _, id := range order {
			lot, err := uc.LotRepo.LockByID(ctx, tx, id)
			if err != nil {
				return err
			}

			lots[id] = lot
		}

		for _, id := range order {
			lot := lots[id]

			if lot.State == domain.LotStateQuarantined {
				return errLotQuarantined(lot.LotCode)
			}

			if lot.State != domain.LotStateReleased {
				return errLotNotReleased(lot.LotCode)
			}

			if lot.ReadyAt == nil || lot.ReadyAt.After(soldAt) {
				return errLotNotReady(lot.LotCode)
			}

			avail, err := uc.availabilityTx(ctx, tx, lot, soldAt)
			if err != nil {
				return err
			}

			requested := lineTotals[id]

			if requested.GreaterThan(avail.AvailableForSaleKg.Add(domain.Tolerance)) {
				return errInsufficientAvailable(lot.LotCode, requested.String(), avail.AvailableForSaleKg.String())
			}
		}

		saleID, err := uc.SaleRepo.Create(ctx, tx, &domain.Sale{CustomerID: input.CustomerID, SoldAt: soldAt, Notes: input.Notes})
		if err != nil {
			return err
		}

		out.SaleID = saleID

		for _, line := range input.Lines {
			lot := lots[line.LotID]

			if _, err := uc.SaleRepo.CreateLine(ctx, tx, &domain.SaleLine{SaleID: saleID, LotID: lot.ID, QuantityKg: line.QuantityKg}); err != nil {
				return err
			}

			movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
				LotID: lot.ID, FromLocationID: lot.CurrentLocationID, QuantityKg: line.QuantityKg, MovedAt: soldAt, MoveType: domain.MoveTypeSale,
			})
			if err != nil {
				return err
			}

			eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: lot.ID, EventType: domain.EventSold, PerformedBy: input.PerformedBy, PerformedAt: soldAt,
			})
			if err != nil {
				return err
			}

			out.MovementIDs = append(out.MovementIDs, movementID)
			out.LotEventIDs = append(out.LotEventIDs, eventID)
		}

		for _, id := range order {
			lot := lots[id]

			onHand, err := uc.MovementRepo.SumByLot(ctx, tx, lot.ID)
			if err != nil {
				return err
			}

			if onHand.LessThanOrEqual(domain.Tolerance) {
				lot.State = domain.LotStateSold

				if err := uc.LotRepo.UpdateLifecycle(ctx, tx, lot); err != nil {
					return err
				}
			}

			out.SoldLotIDs = append(out.SoldLotIDs, lot.ID)
		}

		return nil
	}()
	if err != nil {
		return nil, err
	}

	return &out, nil
}
