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

// ReserveInput is the reservation.create request.
type ReserveInput struct {
	LotID       int64
	CustomerID  int64
	QuantityKg  decimal.Decimal
	ReservedAt  *time.Time
	PerformedBy string
}

// ReserveOutput is the reservation.create response.
type ReserveOutput struct {
	ReservationID int64
}

// Reserve holds back part of a lot's on-hand quantity for a customer, per §4.10.
func (uc *UseCase) Reserve(ctx context.Context, input *ReserveInput) (*ReserveOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.reservation.create")
	defer span.End()

	reservedAt := time.Now().UTC()
	if input.ReservedAt != nil {
		reservedAt = *input.ReservedAt
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return nil, err
	}

	var out ReserveOutput

	err = uc.withTx(db, func(tx *sql.Tx) error {
		lot, err := uc.LotRepo.LockByID(ctx, tx, input.LotID)
		if err != nil {
			return err
		}

		switch lot.State {
		case domain.LotStateQuarantined, domain.LotStateDisposed, domain.LotStateSold:
			return errLotNotEligible(string(lot.State))
		}

		if _, err := uc.ReferenceRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
			return err
		}

		onHand, err := uc.MovementRepo.SumByLot(ctx, tx, lot.ID)
		if err != nil {
			return err
		}

		reserved, err := uc.ReservationRepo.SumByLot(ctx, tx, lot.ID)
		if err != nil {
			return err
		}

		remaining := onHand.Sub(reserved)

		if input.QuantityKg.GreaterThan(remaining.Add(domain.Tolerance)) {
			return errInsufficientReservable(onHand.String(), reserved.String(), remaining.String(), input.QuantityKg.String())
		}

		id, err := uc.ReservationRepo.Create(ctx, tx, &domain.Reservation{
			LotID: lot.ID, CustomerID: input.CustomerID, QuantityKg: input.QuantityKg, ReservedAt: reservedAt,
		})
		if err != nil {
			return err
		}

		out = ReserveOutput{ReservationID: id}

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Reservation")
		mopentelemetry.HandleSpanError(&span, "Failed to create reservation", wrapped)
		logger.Errorf("reservation.create failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, input.LotID)

	return &out, nil
}

// CancelReservationInput is the reservation.cancel request.
type CancelReservationInput struct {
	ReservationID int64
	Note          string
	PerformedAt   *time.Time
	PerformedBy   string
}

// CancelReservationOutput is the reservation.cancel response.
type CancelReservationOutput struct {
	LotEventID int64
}

// CancelReservation releases a held-back quantity back to availability, per §4.10.
func (uc *UseCase) CancelReservation(ctx context.Context, input *CancelReservationInput) (*CancelReservationOutput, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.reservation.cancel")
	defer span.End()

	if len(input.Note) < 2 {
		err := common.ValidateBusinessError(errMissingFields("note"), "Reservation")
		mopentelemetry.HandleSpanError(&span, "cancellation note too short", err)

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

	var out CancelReservationOutput

	var lotID int64

	err = uc.withTx(db, func(tx *sql.Tx) error {
		res, err := uc.ReservationRepo.FindByID(ctx, input.ReservationID)
		if err != nil {
			return err
		}

		lotID = res.LotID

		if err := uc.ReservationRepo.Delete(ctx, tx, res.ID); err != nil {
			return err
		}

		note := input.Note

		eventID, err := uc.EventRepo.Create(ctx, tx, &domain.LotEvent{
			LotID: res.LotID, EventType: domain.EventReservationCanceled, Notes: &note, PerformedBy: input.PerformedBy, PerformedAt: performedAt,
		})
		if err != nil {
			return err
		}

		out = CancelReservationOutput{LotEventID: eventID}

		return nil
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "Reservation")
		mopentelemetry.HandleSpanError(&span, "Failed to cancel reservation", wrapped)
		logger.Errorf("reservation.cancel failed: %v", err)

		return nil, wrapped
	}

	uc.invalidateAvailability(ctx, lotID)

	return &out, nil
}
