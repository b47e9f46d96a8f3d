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

func TestRework_RejectsQuantityAboveAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	movementRepo := postgresmock.NewMockMovementRepository(ctrl)
	reservationRepo := postgresmock.NewMockReservationRepository(ctrl)

	lot := &domain.Lot{ID: 7, LotCode: "IN-0007", State: domain.LotStateReleased}
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(7)).Return(lot, nil)
	movementRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(7)).Return(decimal.NewFromInt(30), nil)
	reservationRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(7)).Return(decimal.Zero, nil)

	uc := &UseCase{
		Connection:      conn,
		LotRepo:         lotRepo,
		MovementRepo:    movementRepo,
		ReservationRepo: reservationRepo,
	}

	_, err := uc.Rework(context.Background(), &ReworkInput{
		InputLotID:   7,
		OutputItemID: 1,
		ToLocationID: 2,
		ReworkQtyKg:  decimal.NewFromInt(50),
		PerformedBy:  "tester",
	})

	require.Error(t, err)
}
