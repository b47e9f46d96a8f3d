package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodtrace/lotcore/adapters/postgres/postgresmock"
	"github.com/foodtrace/lotcore/domain"
)

func TestReserve_RejectsQuantityAboveRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	referenceRepo := postgresmock.NewMockReferenceRepository(ctrl)
	movementRepo := postgresmock.NewMockMovementRepository(ctrl)
	reservationRepo := postgresmock.NewMockReservationRepository(ctrl)

	lot := &domain.Lot{ID: 8, LotCode: "IN-0008", State: domain.LotStateReleased}
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(8)).Return(lot, nil)
	referenceRepo.EXPECT().FindCustomerByID(gomock.Any(), int64(2)).Return(&domain.Customer{ID: 2}, nil)
	movementRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(8)).Return(decimal.NewFromInt(40), nil)
	reservationRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(8)).Return(decimal.NewFromInt(10), nil)

	uc := &UseCase{
		Connection:      conn,
		LotRepo:         lotRepo,
		ReferenceRepo:   referenceRepo,
		MovementRepo:    movementRepo,
		ReservationRepo: reservationRepo,
	}

	_, err := uc.Reserve(context.Background(), &ReserveInput{
		LotID:       8,
		CustomerID:  2,
		QuantityKg:  decimal.NewFromInt(50),
		PerformedBy: "tester",
	})

	require.Error(t, err)
}

func TestCancelReservation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	reservationRepo := postgresmock.NewMockReservationRepository(ctrl)
	eventRepo := postgresmock.NewMockEventRepository(ctrl)

	res := &domain.Reservation{ID: 6, LotID: 8, CustomerID: 2, QuantityKg: decimal.NewFromInt(10)}
	reservationRepo.EXPECT().FindByID(gomock.Any(), int64(6)).Return(res, nil)
	reservationRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
	eventRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(31), nil)

	uc := &UseCase{
		Connection:      conn,
		ReservationRepo: reservationRepo,
		EventRepo:       eventRepo,
	}

	out, err := uc.CancelReservation(context.Background(), &CancelReservationInput{
		ReservationID: 6,
		Note:          "customer canceled order",
		PerformedBy:   "tester",
	})

	require.NoError(t, err)
	require.Equal(t, int64(31), out.LotEventID)
}
