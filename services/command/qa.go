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

// QACheckInput is the qa.check request, covering both full and partial mode.
type QACheckInput struct {
	LotID       int64
	CheckType   string
	Mode        domain.QAMode
	Passed      *bool
	PassQtyKg   *decimal.Decimal
	FailQtyKg   *decimal.Decimal
	ToLocationID *int64
	Notes       *string
	PerformedAt *time.Time
	PerformedBy string
}

// QACheckResult is the qa.check response.
type QACheckResult struct {
	QACheckID    int64
	Quarantined  bool
	LotEventID   *int64
	PassLotID    *int64
	PassLotCode  *string
	FailLotID    *int64
	FailLotCode  *string
}

// QACheck records a quality check, either a full pass/fail or a
// mass-balanced partial split into pass/fail child lots, per §4.9.
func (uc *UseCase) QACheck(ctx context.Context, input *QACheckInput) (*QACheckResult, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.qa.check")
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

	var result QACheckResult

	err = uc.withTx(db, func(tx *sql.Tx) error {
		lot, err := uc.LotRepo.LockByID(ctx, tx, input.LotID)
		if err != nil {
			return err
		}

		if input.Mode == domain.QAModeFull {
			return uc.qaFull(ctx, tx, lot, input, &result)
		}

		return uc.qaPartial(ctx, tx, lot, input, &result)
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "QACheck")
		mopentelemetry.HandleSpanError(&span, "Failed to apply qa check", wrapped)
		logger.Errorf("qa.check failed: %v", err)

		return nil, wrapped
	}

	lotIDs := []int64{input.LotID}
	if result.PassLotID != nil {
		lotIDs = append(lotIDs, *result.PassLotID)
	}

	if result.FailLotID != nil {
		lotIDs = append(lotIDs, *result.FailLotID)
	}

	uc.invalidateAvailability(ctx, lotIDs...)

	return &result, nil
}

func (uc *UseCase) qaFull(ctx context.Context, tx *sql.Tx, lot *domain.Lot, input *QACheckInput, result *QACheckResult) error {
	if input.Passed == nil {
		return errMissingFields("passed")
	}

	qaID, err := uc.QARepo.Create(ctx, tx, &domain.QACheck{
		LotID: lot.ID, CheckType: input.CheckType, Passed: *input.Passed, Mode: domain.QAModeFull, PerformedAt: input.effectivePerformedAt(),
	})
	if err != nil {
		return err
	}

	result.QACheckID = qaID

	if !*input.Passed && lot.State != domain.LotStateQuarantined {
		eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: lot.ID, EventType: domain.EventQuarantined, Reason: input.Notes, PerformedBy: input.PerformedBy, PerformedAt: input.effectivePerformedAt(),
		})
		if err != nil {
			return err
		}

		lot.State = domain.LotStateQuarantined
		if err := uc.LotRepo.UpdateLifecycle(ctx, tx, lot); err != nil {
			return err
		}

		result.Quarantined = true
		result.LotEventID = &eventID
	}

	return nil
}

func (uc *UseCase) qaPartial(ctx context.Context, tx *sql.Tx, lot *domain.Lot, input *QACheckInput, result *QACheckResult) error {
	performedAt := input.effectivePerformedAt()

	if lot.State == domain.LotStateQuarantined {
		return errLotQuarantined(lot.LotCode)
	}

	if lot.State.IsTerminal() {
		return errLotNotEligible(string(lot.State))
	}

	passQty := decimal.Zero
	if input.PassQtyKg != nil {
		passQty = *input.PassQtyKg
	}

	failQty := decimal.Zero
	if input.FailQtyKg != nil {
		failQty = *input.FailQtyKg
	}

	if !passQty.IsPositive() && !failQty.IsPositive() {
		return errMissingFields("pass_qty_kg/fail_qty_kg")
	}

	avail, err := uc.availabilityTx(ctx, tx, lot, performedAt)
	if err != nil {
		return err
	}

	if !withinTolerance(passQty.Add(failQty), avail.AvailableKg) {
		return errQAPartialSumMismatch()
	}

	qaID, err := uc.QARepo.Create(ctx, tx, &domain.QACheck{
		LotID: lot.ID, CheckType: input.CheckType, Passed: failQty.IsZero(), Mode: domain.QAModePartial,
		PassQtyKg: input.PassQtyKg, FailQtyKg: input.FailQtyKg, PerformedAt: performedAt,
	})
	if err != nil {
		return err
	}

	result.QACheckID = qaID

	profile, err := uc.ReferenceRepo.FindProcessProfileByName(ctx, domain.QASplitProfileName)
	if err != nil {
		return errProcessProfileMissing(domain.QASplitProfileName)
	}

	order, err := uc.ProductionRepo.CreateOrder(ctx, tx, &domain.ProductionOrder{
		ProcessProfileID: profile.ID, ProcessType: domain.ProcessTypeQASplit, StartedAt: performedAt, CompletedAt: &performedAt,
	})
	if err != nil {
		return err
	}

	if _, err := uc.ProductionRepo.CreateInput(ctx, tx, &domain.ProductionInput{
		OrderID: order, LotID: lot.ID, QuantityKg: avail.AvailableKg,
	}); err != nil {
		return err
	}

	if _, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
		LotID: lot.ID, EventType: domain.EventQASplit, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
	}); err != nil {
		return err
	}

	if _, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
		LotID: lot.ID, FromLocationID: lot.CurrentLocationID, QuantityKg: avail.AvailableKg, MovedAt: performedAt, MoveType: domain.MoveTypeQASplitInput,
	}); err != nil {
		return err
	}

	if passQty.IsPositive() {
		passLotID, passLotCode, err := uc.createQASplitChild(ctx, tx, lot, order, domain.PrefixQAPass, passQty,
			domain.MoveTypeQAPassOutput, domain.EventQAPassOutput, lot.State, input, performedAt)
		if err != nil {
			return err
		}

		if err := uc.QARepo.SetPassLot(ctx, tx, qaID, passLotID); err != nil {
			return err
		}

		result.PassLotID = &passLotID
		result.PassLotCode = &passLotCode
	}

	if failQty.IsPositive() {
		failLotID, failLotCode, err := uc.createQASplitChild(ctx, tx, lot, order, domain.PrefixQAFail, failQty,
			domain.MoveTypeQAFailOutput, domain.EventQAFailOutput, domain.LotStateQuarantined, input, performedAt)
		if err != nil {
			return err
		}

		if err := uc.QARepo.SetFailLot(ctx, tx, qaID, failLotID); err != nil {
			return err
		}

		result.FailLotID = &failLotID
		result.FailLotCode = &failLotCode
		result.Quarantined = true
	}

	disposedEventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
		LotID: lot.ID, EventType: domain.EventDisposed, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
	})
	if err != nil {
		return err
	}

	result.LotEventID = &disposedEventID

	lot.State = domain.LotStateDisposed

	return uc.LotRepo.UpdateLifecycle(ctx, tx, lot)
}

func (uc *UseCase) createQASplitChild(ctx context.Context, tx *sql.Tx, source *domain.Lot, orderID int64, prefix string,
	qty decimal.Decimal, moveType domain.MoveType, eventType domain.EventType, state domain.LotState,
	input *QACheckInput, performedAt time.Time) (int64, string, error) {
	lotCode, err := uc.LotCodeRepo.NextLotCode(ctx, tx, prefix, performedAt)
	if err != nil {
		return 0, "", err
	}

	childLotID, err := uc.LotRepo.Create(ctx, tx, &domain.Lot{
		LotCode: lotCode, ItemID: source.ItemID, SupplierID: source.SupplierID, State: state,
		ReceivedAt: source.ReceivedAt, AgingStartedAt: source.AgingStartedAt, ReadyAt: source.ReadyAt,
		ReleasedAt: source.ReleasedAt, ExpiresAt: source.ExpiresAt, CurrentLocationID: source.CurrentLocationID,
	})
	if err != nil {
		return 0, "", err
	}

	if _, err := uc.ProductionRepo.CreateOutput(ctx, tx, &domain.ProductionOutput{
		OrderID: orderID, LotID: childLotID, QuantityKg: qty,
	}); err != nil {
		return 0, "", err
	}

	if _, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
		LotID: childLotID, ToLocationID: source.CurrentLocationID, QuantityKg: qty, MovedAt: performedAt, MoveType: moveType,
	}); err != nil {
		return 0, "", err
	}

	if _, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
		LotID: childLotID, EventType: eventType, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
	}); err != nil {
		return 0, "", err
	}

	return childLotID, lotCode, nil
}

func (i *QACheckInput) effectivePerformedAt() time.Time {
	if i.PerformedAt != nil {
		return *i.PerformedAt
	}

	return time.Now().UTC()
}
