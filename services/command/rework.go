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

// ReworkLossInput is one loss line of a rework.
type ReworkLossInput struct {
	LossTypeCode string
	QuantityKg   decimal.Decimal
	Notes        *string
}

// ReworkInput is the rework.create request.
type ReworkInput struct {
	InputLotID     int64
	OutputItemID   int64
	ToLocationID   int64
	ReworkQtyKg    decimal.Decimal
	Losses         []ReworkLossInput
	Notes          *string
	PerformedAt    *time.Time
	PerformedBy    string
}

// ReworkResult is the rework.create response.
type ReworkResult struct {
	ProductionOrderID int64
	OutputLotID       int64
	OutputLotCode     string
	RemainderLotID    *int64
	RemainderLotCode  *string
	LossTotalKg       decimal.Decimal
	MovementIDs       []int64
	LotEventIDs       []int64
}

// Rework partially reworks one input lot: it is fully consumed, the reworked
// portion becomes a new lot of a (possibly different) item, any leftover
// becomes a remainder lot of the same item, and losses are recorded, per §4.8.
func (uc *UseCase) Rework(ctx context.Context, input *ReworkInput) (*ReworkResult, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.rework.create")
	defer span.End()

	performedAt := time.Now().UTC()
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return nil, err
	}

	var result ReworkResult

	err = uc.withTx(db, func(tx *sql.Tx) error {
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

		if input.ReworkQtyKg.LessThanOrEqual(decimal.Zero) || input.ReworkQtyKg.GreaterThan(avail.AvailableKg.Add(domain.Tolerance)) {
			return errInsufficientAvailable(lot.LotCode, input.ReworkQtyKg.String(), avail.AvailableKg.String())
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

		if lossTotal.GreaterThan(input.ReworkQtyKg.Add(domain.Tolerance)) {
			return errWeightMismatch("rework losses must not exceed rework_quantity_kg")
		}

		remainder := avail.AvailableKg.Sub(input.ReworkQtyKg)

		profile, err := uc.ReferenceRepo.FindProcessProfileByName(ctx, domain.ReworkProfileName)
		if err != nil {
			return errProcessProfileMissing(domain.ReworkProfileName)
		}

		order, err := uc.ProductionRepo.CreateOrder(ctx, tx, &domain.ProductionOrder{
			ProcessProfileID: profile.ID,
			ProcessType:      domain.ProcessTypeRework,
			IsRework:         true,
			StartedAt:        performedAt,
			CompletedAt:      &performedAt,
			Notes:            input.Notes,
		})
		if err != nil {
			return err
		}

		if _, err := uc.ProductionRepo.CreateInput(ctx, tx, &domain.ProductionInput{
			OrderID: order, LotID: lot.ID, QuantityKg: avail.AvailableKg,
		}); err != nil {
			return err
		}

		inputMovementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
			LotID: lot.ID, FromLocationID: lot.CurrentLocationID, QuantityKg: avail.AvailableKg, MovedAt: performedAt, MoveType: domain.MoveTypeReworkInput,
		})
		if err != nil {
			return err
		}

		consumedEventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: lot.ID, EventType: domain.EventReworkConsumed, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		result.MovementIDs = append(result.MovementIDs, inputMovementID)
		result.LotEventIDs = append(result.LotEventIDs, consumedEventID)

		reworkedOut := input.ReworkQtyKg.Sub(lossTotal)

		outLotCode, err := uc.LotCodeRepo.NextLotCode(ctx, tx, domain.PrefixReworkOutput, performedAt)
		if err != nil {
			return err
		}

		outLoc := input.ToLocationID

		outLotID, err := uc.LotRepo.Create(ctx, tx, &domain.Lot{
			LotCode: outLotCode, ItemID: input.OutputItemID, SupplierID: lot.SupplierID,
			State: domain.LotStateReceived, ReceivedAt: performedAt, CurrentLocationID: &outLoc,
		})
		if err != nil {
			return err
		}

		if _, err := uc.ProductionRepo.CreateOutput(ctx, tx, &domain.ProductionOutput{
			OrderID: order, LotID: outLotID, QuantityKg: reworkedOut,
		}); err != nil {
			return err
		}

		outMovementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
			LotID: outLotID, ToLocationID: &outLoc, QuantityKg: reworkedOut, MovedAt: performedAt, MoveType: domain.MoveTypeReworkOutput,
		})
		if err != nil {
			return err
		}

		outEventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: outLotID, EventType: domain.EventReworkOutput, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		result.OutputLotID = outLotID
		result.OutputLotCode = outLotCode
		result.MovementIDs = append(result.MovementIDs, outMovementID)
		result.LotEventIDs = append(result.LotEventIDs, outEventID)

		if remainder.GreaterThan(domain.Tolerance) {
			remainderCode, err := uc.LotCodeRepo.NextLotCode(ctx, tx, domain.PrefixReworkRemainder, performedAt)
			if err != nil {
				return err
			}

			remainderLoc := lot.CurrentLocationID

			remainderLotID, err := uc.LotRepo.Create(ctx, tx, &domain.Lot{
				LotCode: remainderCode, ItemID: lot.ItemID, SupplierID: lot.SupplierID,
				State: domain.LotStateReceived, ReceivedAt: performedAt, CurrentLocationID: remainderLoc,
			})
			if err != nil {
				return err
			}

			if _, err := uc.ProductionRepo.CreateOutput(ctx, tx, &domain.ProductionOutput{
				OrderID: order, LotID: remainderLotID, QuantityKg: remainder,
			}); err != nil {
				return err
			}

			remMovementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
				LotID: remainderLotID, ToLocationID: remainderLoc, QuantityKg: remainder, MovedAt: performedAt, MoveType: domain.MoveTypeReworkRemainder,
			})
			if err != nil {
				return err
			}

			remEventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: remainderLotID, EventType: domain.EventReworkRemainder, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
			})
			if err != nil {
				return err
			}

			result.RemainderLotID = &remainderLotID
			result.RemainderLotCode = &remainderCode
			result.MovementIDs = append(result.MovementIDs, remMovementID)
			result.LotEventIDs = append(result.LotEventIDs, remEventID)
		}

		for i, l := range input.Losses {
			if _, err := uc.ProductionRepo.CreateLoss(ctx, tx, &domain.BreakdownLoss{
				OrderID: order, LossTypeID: lossTypes[i].ID, QuantityKg: l.QuantityKg, Notes: l.Notes,
			}); err != nil {
				return err
			}

			moveType := domain.ReworkLossMoveType(l.LossTypeCode)

			movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
				LotID: lot.ID, FromLocationID: lot.CurrentLocationID, QuantityKg: l.QuantityKg, MovedAt: performedAt, MoveType: moveType,
			})
			if err != nil {
				return err
			}

			lossEventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: lot.ID, EventType: domain.EventReworkLoss, Notes: l.Notes, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
			})
			if err != nil {
				return err
			}

			result.MovementIDs = append(result.MovementIDs, movementID)
			result.LotEventIDs = append(result.LotEventIDs, lossEventID)
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
		result.LossTotalKg = lossTotal

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "ProductionOrder")
		mopentelemetry.HandleSpanError(&span, "Failed to apply rework", wrapped)
		logger.Errorf("rework.create failed: %v", err)

		return nil, wrapped
	}

	lotIDs := []int64{input.InputLotID, result.OutputLotID}
	if result.RemainderLotID != nil {
		lotIDs = append(lotIDs, *result.RemainderLotID)
	}

	uc.invalidateAvailability(ctx, lotIDs...)

	return &result, nil
}
