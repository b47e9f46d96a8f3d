package command

import (
	"context"
	"database/sql"
	"time"

	"github.com/foodtrace/lotcore/adapters/rabbitmq"
	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/domain"
	"github.com/foodtrace/lotcore/services/traceability"
)

// QuarantineForwardInput is the recall.quarantine_forward request.
type QuarantineForwardInput struct {
	LotID       int64
	Reason      string
	PerformedAt *time.Time
	PerformedBy string
}

// QuarantineForwardOutput is the recall.quarantine_forward response.
type QuarantineForwardOutput struct {
	ForwardLotIDs          []int64
	QuarantinedCount       int
	AlreadyQuarantinedCount int
	LotEventIDs            []int64
}

// QuarantineForward walks lotID's forward closure and quarantines every
// descendant not already quarantined, in a single transaction, per §4.12.
func (uc *UseCase) QuarantineForward(ctx context.Context, input *QuarantineForwardInput) (*QuarantineForwardOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.recall.quarantine_forward")
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

	descendants, err := traceability.ForwardClosure(ctx, uc.ProductionRepo, input.LotID)
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Lot")
		mopentelemetry.HandleSpanError(&span, "Failed to compute forward closure", wrapped)

		return nil, wrapped
	}

	out := QuarantineForwardOutput{ForwardLotIDs: descendants}

	err = uc.withTx(db, func(tx *sql.Tx) error {
		reason := input.Reason

		for _, lotID := range descendants {
			lot, err := uc.LotRepo.LockByID(ctx, tx, lotID)
			if err != nil {
				return err
			}

			if lot.State == domain.LotStateQuarantined {
				out.AlreadyQuarantinedCount++
				continue
			}

			eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
				LotID: lot.ID, EventType: domain.EventQuarantinedBulk, Reason: &reason, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
			})
			if err != nil {
				return err
			}

			lot.State = domain.LotStateQuarantined

			if err := uc.LotRepo.UpdateLifecycle(ctx, tx, lot); err != nil {
				return err
			}

			out.QuarantinedCount++
			out.LotEventIDs = append(out.LotEventIDs, eventID)
		}

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Lot")
		mopentelemetry.HandleSpanError(&span, "Failed to quarantine forward closure", wrapped)
		logger.Errorf("recall.quarantine_forward failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, descendants...)

	uc.Events.PublishLotQuarantinedBulk(ctx, rabbitmq.LotQuarantinedBulk{
		RootLotID:        input.LotID,
		QuarantinedCount: out.QuarantinedCount,
		Reason:           input.Reason,
		OccurredAt:       performedAt,
	})

	return &out, nil
}
