package command

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/domain"
)

// BreakdownOutputInput is one requested output lot of a breakdown.
type BreakdownOutputInput struct {
	ItemID       int64
	QuantityKg   decimal.Decimal
	ToLocationID int64
}

// BreakdownLossInput is one requested loss line of a breakdown.
type BreakdownLossInput struct {
	LossTypeCode string
	QuantityKg   decimal.Decimal
	Notes        *string
}

// BreakdownInput is the production.breakdown request.
type BreakdownInput struct {
	InputLotID      int64
	InputQuantityKg decimal.Decimal
	Outputs         []BreakdownOutputInput
	Losses          []BreakdownLossInput
	Notes           *string
	PerformedAt     *time.Time
	PerformedBy     string
}

// BreakdownOutputResult describes one generated output lot.
type BreakdownOutputResult struct {
	LotID   int64
	LotCode string
}

// BreakdownResult is the production.breakdown response.
type BreakdownResult struct {
	ProductionOrderID int64
	Outputs           []BreakdownOutputResult
	MovementIDs       []int64
	LossIDs           []int64
	LotEventIDs       []int64
}

// Breakdown disassembles one fully-consumed input lot into multiple output
// lots plus typed losses under mass balance, per §4.6.
func (uc *UseCase) Breakdown(ctx context.Context, input *BreakdownInput) (*BreakdownResult, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.production.breakdown")
	defer span.End()

	if len(input.Outputs) == 0 {
		err := common.ValidateBusinessError(errMissingFields("outputs"), "ProductionOrder")
		mopentelemetry.HandleSpanError(&span, "no outputs requested", err)

		return nil, err
	}

	performedAt := time.Now().UTC()
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return nil, err
	}

	var result *BreakdownResult

	err = uc.withTx(db, func(tx *sql.Tx) error {
		var err error
		result, err = uc.breakdownTx(ctx, tx, input, performedAt)

		return err
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "ProductionOrder")
		mopentelemetry.HandleSpanError(&span, "Failed to apply breakdown", wrapped)
		logger.Errorf("production.breakdown failed: %v", err)

		return nil, wrapped
	}

	lotIDs := []int64{input.InputLotID}
	for _, o := range result.Outputs {
		lotIDs = append(lotIDs, o.LotID)
	}

	uc.invalidateAvailability(ctx, lotIDs...)

	return result, nil
}

// breakdownTx is the transaction-scoped body of Breakdown, also dispatched
// to directly by the offline reconciler once a savepoint is open.
func (uc *UseCase) breakdownTx(ctx context.Context, tx *sql.Tx, input *BreakdownInput, performedAt time.Time) (*BreakdownResult, error) {
	var result BreakdownResult

	err := func() error {
		lot, err := uc.LotRepo.LockByID(ctx, tx, input.InputLotID)
		if err != nil {
			return err
		}

		if lot.State == domain.LotStateQuarantined {
			return errLotQuarantined(lot.LotCode)
		}

		if lot.State.IsTerminal() {
			return errLotNotEligible(string(lot.State))
		}

		avail, err := uc.availabilityTx(ctx, tx, lot, performedAt)
		if err != nil {
			return err
		}

		if !withinTolerance(input.InputQuantityKg, avail.AvailableKg) {
			return errInsufficientAvailable(lot.LotCode, input.InputQuantityKg.String(), avail.AvailableKg.String())
		}

		received, err := uc.MovementRepo.SumReceivedByLot(ctx, tx, lot.ID)
		if err != nil {
			return err
		}

		if input.InputQuantityKg.GreaterThan(received.Add(domain.Tolerance)) {
			return errInputExceedsReceivingHistory(lot.LotCode, input.InputQuantityKg.String(), received.String())
		}

		outputTotal := decimal.Zero
		for _, o := range input.Outputs {
			outputTotal = outputTotal.Add(o.QuantityKg)
		}

		lossTotal := decimal.Zero

		lossTypes := make([]*domain.LossType, len(input.Losses))

		for i, l := range input.Losses {
			lt, err := uc.ReferenceRepo.FindLossTypeByCode(ctx, l.LossTypeCode)
			if err != nil {
				return err
			}

			if !lt.Active {
				return errInactiveLossType(l.LossTypeCode)
			}

			lossTypes[i] = lt
			lossTotal = lossTotal.Add(l.QuantityKg)
		}

		if !withinTolerance(outputTotal.Add(lossTotal), input.InputQuantityKg) {
			return errWeightMismatch("breakdown outputs + losses must equal input_quantity_kg")
		}

		profile, err := uc.ReferenceRepo.FindProcessProfileByName(ctx, domain.BreakdownProfileName)
		if err != nil {
			return errProcessProfileMissing(domain.BreakdownProfileName)
		}

		order, err := uc.ProductionRepo.CreateOrder(ctx, tx, &domain.ProductionOrder{
			ProcessProfileID: profile.ID,
			ProcessType:      domain.ProcessTypeBreakdown,
			StartedAt:        performedAt,
			CompletedAt:      &performedAt,
			Notes:            input.Notes,
		})
		if err != nil {
			return err
		}

		if _, err := uc.ProductionRepo.CreateInput(ctx, tx, &domain.ProductionInput{
			OrderID: order, LotID: lot.ID, QuantityKg: input.InputQuantityKg,
		}); err != nil {
			return err
		}

		inputMovementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
			LotID:          lot.ID,
			FromLocationID: lot.CurrentLocationID,
			QuantityKg:     input.InputQuantityKg,
			MovedAt:        performedAt,
			MoveType:       domain.MoveTypeBreakdownInput,
		})
		if err != nil {
			return err
		}

		result.MovementIDs = append(result.MovementIDs, inputMovementID)

		for _, o := range input.Outputs {
			lotCode, err := uc.LotCodeRepo.NextLotCode(ctx, tx, domain.PrefixBreakdownOutput, performedAt)
			if err != nil {
				return err
			}

			toLoc := o.ToLocationID

			outLot := &domain.Lot{
				LotCode:           lotCode,
				ItemID:            o.ItemID,
				SupplierID:        lot.SupplierID,
				State:             lot.State,
				ReceivedAt:        lot.ReceivedAt,
				AgingStartedAt:    lot.AgingStartedAt,
				ReadyAt:           lot.ReadyAt,
				ReleasedAt:        lot.ReleasedAt,
				ExpiresAt:         lot.ExpiresAt,
				CurrentLocationID: &toLoc,
			}

			outLotID, err := uc.LotRepo.Create(ctx, tx, outLot)
			if err != nil {
				return err
			}

			if _, err := uc.ProductionRepo.CreateOutput(ctx, tx, &domain.ProductionOutput{
				OrderID: order, LotID: outLotID, QuantityKg: o.QuantityKg,
			}); err != nil {
				return err
			}

			movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
				LotID:        outLotID,
				ToLocationID: &toLoc,
				QuantityKg:   o.QuantityKg,
				MovedAt:      performedAt,
				MoveType:     domain.MoveTypeBreakdownOutput,
			})
			if err != nil {
				return err
			}

			eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: outLotID, EventType: domain.EventCreatedFromBreakdown, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
			})
			if err != nil {
				return err
			}

			result.Outputs = append(result.Outputs, BreakdownOutputResult{LotID: outLotID, LotCode: lotCode})
			result.MovementIDs = append(result.MovementIDs, movementID)
			result.LotEventIDs = append(result.LotEventIDs, eventID)
		}

		for i, l := range input.Losses {
			lossID, err := uc.ProductionRepo.CreateLoss(ctx, tx, &domain.BreakdownLoss{
				OrderID: order, LossTypeID: lossTypes[i].ID, QuantityKg: l.QuantityKg, Notes: l.Notes,
			})
			if err != nil {
				return err
			}

			moveType := domain.BreakdownLossMoveType(l.LossTypeCode)

			movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
				LotID: lot.ID, FromLocationID: lot.CurrentLocationID, QuantityKg: l.QuantityKg, MovedAt: performedAt, MoveType: moveType,
			})
			if err != nil {
				return err
			}

			eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: lot.ID, EventType: domain.EventBreakdownLoss, Notes: l.Notes, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
			})
			if err != nil {
				return err
			}

			result.LossIDs = append(result.LossIDs, lossID)
			result.MovementIDs = append(result.MovementIDs, movementID)
			result.LotEventIDs = append(result.LotEventIDs, eventID)
		}

		disposedEventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: lot.ID, EventType: domain.EventDisposed, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		result.LotEventIDs = append(result.LotEventIDs, disposedEventID)

		lot.State = domain.LotStateDisposed
		if err := uc.LotRepo.UpdateLifecycle(ctx, tx, lot); err != nil {
			return err
		}

		result.ProductionOrderID = order

		return nil
	}()
	if err != nil {
		return nil, err
	}

	return &result, nil
}
