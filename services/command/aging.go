package command

import (
	"context"
	"database/sql"
	"time"

	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/domain"
)

// StartAgingInput is the aging.start request.
type StartAgingInput struct {
	LotID            int64
	ProcessProfileID int64
	AgingLocationID  int64
	Reason           string
	PerformedAt      *time.Time
	PerformedBy      string
}

// StartAgingOutput is the aging.start response.
type StartAgingOutput struct {
	LotID      int64
	ReadyAt    time.Time
	LotEventID int64
}

// StartAging transitions a lot from received to aging, per §4.0.
func (uc *UseCase) StartAging(ctx context.Context, input *StartAgingInput) (*StartAgingOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.aging.start")
	defer span.End()

	if len(input.Reason) < 2 {
		err := common.ValidateBusinessError(errMissingFields("reason"), "Lot")
		mopentelemetry.HandleSpanError(&span, "reason too short", err)

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

	var out StartAgingOutput

	err = uc.withTx(db, func(tx *sql.Tx) error {
		lot, err := uc.LotRepo.LockByID(ctx, tx, input.LotID)
		if err != nil {
			return err
		}

		if lot.State == domain.LotStateQuarantined {
			return errLotQuarantined(lot.LotCode)
		}

		if lot.State != domain.LotStateReceived {
			return errLotNotEligible(string(lot.State))
		}

		if _, err := uc.ReferenceRepo.FindLocationByID(ctx, input.AgingLocationID); err != nil {
			return err
		}

		profile, err := uc.ReferenceRepo.FindProcessProfileByID(ctx, input.ProcessProfileID)
		if err != nil {
			return err
		}

		if profile.DefaultAgingDays == nil {
			return errProcessProfileMissing(profile.Name)
		}

		readyAt := performedAt.AddDate(0, 0, *profile.DefaultAgingDays)

		reason := input.Reason

		eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: lot.ID, EventType: domain.EventAgingStarted, Reason: &reason, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		lot.State = domain.LotStateAging
		lot.AgingStartedAt = &performedAt
		lot.ReadyAt = &readyAt

		if err := uc.LotRepo.UpdateLifecycle(ctx, tx, lot); err != nil {
			return err
		}

		out = StartAgingOutput{LotID: lot.ID, ReadyAt: readyAt, LotEventID: eventID}

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Lot")
		mopentelemetry.HandleSpanError(&span, "Failed to start aging", wrapped)
		logger.Errorf("aging.start failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, out.LotID)

	return &out, nil
}

// ReleaseAgingInput is the aging.release request.
type ReleaseAgingInput struct {
	LotID       int64
	PerformedAt *time.Time
	PerformedBy string
}

// ReleaseAgingOutput is the aging.release response.
type ReleaseAgingOutput struct {
	LotID      int64
	ReleasedAt time.Time
	LotEventID int64
}

// ReleaseAging transitions a lot from aging to released, per §4.0.
func (uc *UseCase) ReleaseAging(ctx context.Context, input *ReleaseAgingInput) (*ReleaseAgingOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.aging.release")
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

	var out ReleaseAgingOutput

	err = uc.withTx(db, func(tx *sql.Tx) error {
		lot, err := uc.LotRepo.LockByID(ctx, tx, input.LotID)
		if err != nil {
			return err
		}

		if lot.State == domain.LotStateQuarantined {
			return errLotQuarantined(lot.LotCode)
		}

		if lot.State != domain.LotStateAging {
			return errLotNotEligible(string(lot.State))
		}

		if lot.ReadyAt == nil || lot.ReadyAt.After(performedAt) {
			return errLotNotReady(lot.LotCode)
		}

		eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: lot.ID, EventType: domain.EventReleased, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		lot.State = domain.LotStateReleased
		lot.ReleasedAt = &performedAt

		if err := uc.LotRepo.UpdateLifecycle(ctx, tx, lot); err != nil {
			return err
		}

		out = ReleaseAgingOutput{LotID: lot.ID, ReleasedAt: performedAt, LotEventID: eventID}

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Lot")
		mopentelemetry.HandleSpanError(&span, "Failed to release aging", wrapped)
		logger.Errorf("aging.release failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, out.LotID)

	return &out, nil
}
