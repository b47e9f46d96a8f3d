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

// MixInputInput is one lot/quantity pair fed into a mix.
type MixInputInput struct {
	LotID      int64
	QuantityKg decimal.Decimal
}

// MixInput is the production.mix request.
type MixInput struct {
	ProcessProfileID int64
	Inputs           []MixInputInput
	OutputItemID     int64
	OutputLocationID int64
	Notes            *string
	PerformedAt      *time.Time
	PerformedBy      string
}

// MixResult is the production.mix response.
type MixResult struct {
	ProductionOrderID int64
	OutputLotID       int64
	OutputLotCode     string
	MovementIDs       []int64
	LotEventIDs       []int64
}

// Mix combines multiple released, sale-safe input lots into one new lot,
// per §4.7. Mixing is treated as lossless: output quantity is Σinputs.
func (uc *UseCase) Mix(ctx context.Context, input *MixInput) (*MixResult, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.production.mix")
	defer span.End()

	if len(input.Inputs) == 0 {
		err := common.ValidateBusinessError(errMissingFields("inputs"), "ProductionOrder")
		mopentelemetry.HandleSpanError(&span, "no inputs requested", err)

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

	var result MixResult

	err = uc.withTx(db, func(tx *sql.Tx) error {
		profile, err := uc.ReferenceRepo.FindProcessProfileByID(ctx, input.ProcessProfileID)
		if err != nil {
			return err
		}

		if !profile.AllowsLotMixing {
			return errMixingNotAllowed()
		}

		ids := make([]int64, len(input.Inputs))
		for i, in := range input.Inputs {
			ids[i] = in.LotID
		}

		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		lots := make(map[int64]*domain.Lot, len(ids))

		for _, id := range ids {
			lot, err := uc.LotRepo.LockByID(ctx, tx, id)
			if err != nil {
				return err
			}

			lots[id] = lot
		}

		outputTotal := decimal.Zero

		for _, in := range input.Inputs {
			lot := lots[in.LotID]

			if lot.State == domain.LotStateQuarantined {
				return errLotQuarantined(lot.LotCode)
			}

			if lot.State != domain.LotStateReleased {
				return errLotNotReleased(lot.LotCode)
			}

			if lot.ReadyAt == nil || lot.ReadyAt.After(performedAt) {
				return errLotNotReady(lot.LotCode)
			}

			avail, err := uc.availabilityTx(ctx, tx, lot, performedAt)
			if err != nil {
				return err
			}

			if in.QuantityKg.GreaterThan(avail.AvailableKg.Add(domain.Tolerance)) {
				return errInsufficientAvailable(lot.LotCode, in.QuantityKg.String(), avail.AvailableKg.String())
			}

			outputTotal = outputTotal.Add(in.QuantityKg)
		}

		if _, err := uc.ReferenceRepo.FindItemByID(ctx, input.OutputItemID); err != nil {
			return err
		}

		if _, err := uc.ReferenceRepo.FindLocationByID(ctx, input.OutputLocationID); err != nil {
			return err
		}

		order, err := uc.ProductionRepo.CreateOrder(ctx, tx, &domain.ProductionOrder{
			ProcessProfileID: profile.ID,
			ProcessType:      domain.ProcessTypeMix,
			StartedAt:        performedAt,
			CompletedAt:      &performedAt,
			Notes:            input.Notes,
		})
		if err != nil {
			return err
		}

		for _, in := range input.Inputs {
			lot := lots[in.LotID]

			if _, err := uc.ProductionRepo.CreateInput(ctx, tx, &domain.ProductionInput{
				OrderID: order, LotID: lot.ID, QuantityKg: in.QuantityKg,
			}); err != nil {
				return err
			}

			movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
				LotID:          lot.ID,
				FromLocationID: lot.CurrentLocationID,
				QuantityKg:     in.QuantityKg,
				MovedAt:        performedAt,
				MoveType:       domain.MoveTypeMixInput,
			})
			if err != nil {
				return err
			}

			eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: lot.ID, EventType: domain.EventMixInput, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
			})
			if err != nil {
				return err
			}

			result.MovementIDs = append(result.MovementIDs, movementID)
			result.LotEventIDs = append(result.LotEventIDs, eventID)
		}

		lotCode, err := uc.LotCodeRepo.NextLotCode(ctx, tx, domain.PrefixMixOutput, performedAt)
		if err != nil {
			return err
		}

		exists, err := uc.LotRepo.LotCodeExists(ctx, tx, lotCode)
		if err != nil {
			return err
		}

		if exists {
			return errLotCodeAlreadyExists(lotCode)
		}

		outLoc := input.OutputLocationID

		outLotID, err := uc.LotRepo.Create(ctx, tx, &domain.Lot{
			LotCode:           lotCode,
			ItemID:            input.OutputItemID,
			State:             domain.LotStateReleased,
			ReceivedAt:        performedAt,
			ReadyAt:           &performedAt,
			ReleasedAt:        &performedAt,
			CurrentLocationID: &outLoc,
		})
		if err != nil {
			return err
		}

		if _, err := uc.ProductionRepo.CreateOutput(ctx, tx, &domain.ProductionOutput{
			OrderID: order, LotID: outLotID, QuantityKg: outputTotal,
		}); err != nil {
			return err
		}

		movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
			LotID: outLotID, ToLocationID: &outLoc, QuantityKg: outputTotal, MovedAt: performedAt, MoveType: domain.MoveTypeMixOutput,
		})
		if err != nil {
			return err
		}

		eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: outLotID, EventType: domain.EventMixOutput, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		result.ProductionOrderID = order
		result.OutputLotID = outLotID
		result.OutputLotCode = lotCode
		result.MovementIDs = append(result.MovementIDs, movementID)
		result.LotEventIDs = append(result.LotEventIDs, eventID)

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "ProductionOrder")
		mopentelemetry.HandleSpanError(&span, "Failed to apply mix", wrapped)
		logger.Errorf("production.mix failed: %v", err)

		return nil, wrapped
	}

	lotIDs := []int64{result.OutputLotID}
	for _, i := range input.Inputs {
		lotIDs = append(lotIDs, i.LotID)
	}

	uc.invalidateAvailability(ctx, lotIDs...)

	return &result, nil
}
