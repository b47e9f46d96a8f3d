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

// CreateLotInput is the receiving.create_lot request.
type CreateLotInput struct {
	ItemID       int64
	SupplierID   *int64
	QuantityKg   decimal.Decimal
	ToLocationID int64
	Notes        *string
	ReceivedAt   *time.Time
	PerformedBy  string
}

// CreateLotOutput is the receiving.create_lot response.
type CreateLotOutput struct {
	LotID      int64
	LotCode    string
	MovementID int64
	LotEventID int64
}

// CreateLot receives new material into inventory: a fresh Lot in state
// received, an inbound movement, and the received event, per §4.5.
func (uc *UseCase) CreateLot(ctx context.Context, input *CreateLotInput) (*CreateLotOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.receiving.create_lot")
	defer span.End()

	if input.QuantityKg.LessThanOrEqual(decimal.Zero) {
		err := common.ValidateBusinessError(errMissingFields("quantity_kg"), "Lot")
		mopentelemetry.HandleSpanError(&span, "quantity_kg must be positive", err)

		return nil, err
	}

	receivedAt := time.Now().UTC()
	if input.ReceivedAt != nil {
		receivedAt = *input.ReceivedAt
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return nil, err
	}

	var out *CreateLotOutput

	err = uc.withTx(db, func(tx *sql.Tx) error {
		var err error
		out, err = uc.createLotTx(ctx, tx, input, receivedAt)

		return err
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Lot")
		mopentelemetry.HandleSpanError(&span, "Failed to create lot", wrapped)
		logger.Errorf("receiving.create_lot failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, out.LotID)

	return out, nil
}

// createLotTx is the transaction-scoped body of CreateLot, also dispatched
// to directly by the offline reconciler once a savepoint is open.
func (uc *UseCase) createLotTx(ctx context.Context, tx *sql.Tx, input *CreateLotInput, receivedAt time.Time) (*CreateLotOutput, error) {
	lotCode, err := uc.LotCodeRepo.NextLotCode(ctx, tx, domain.PrefixReceiving, receivedAt)
	if err != nil {
		return nil, err
	}

	lot := &domain.Lot{
		LotCode:           lotCode,
		ItemID:            input.ItemID,
		SupplierID:        input.SupplierID,
		State:             domain.LotStateReceived,
		ReceivedAt:        receivedAt,
		CurrentLocationID: &input.ToLocationID,
	}

	lotID, err := uc.LotRepo.Create(ctx, tx, lot)
	if err != nil {
		return nil, err
	}

	movementID, err := uc.MovementRepo.Create(ctx, tx, &domain.InventoryMovement{
		LotID:        lotID,
		ToLocationID: &input.ToLocationID,
		QuantityKg:   input.QuantityKg,
		MovedAt:      receivedAt,
		MoveType:     domain.MoveTypeReceiving,
	})
	if err != nil {
		return nil, err
	}

	eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
		LotID:       lotID,
		EventType:   domain.EventReceived,
		Reason:      input.Notes,
		PerformedBy: input.PerformedBy,
		PerformedAt: receivedAt,
	})
	if err != nil {
		return nil, err
	}

	return &CreateLotOutput{LotID: lotID, LotCode: lotCode, MovementID: movementID, LotEventID: eventID}, nil
}
