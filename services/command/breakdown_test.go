package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodtrace/lotcore/adapters/postgres/postgresmock"
	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/domain"
)

// TestBreakdown_RejectsInputAboveReceivingHistory exercises the
// historical-receiving-total ceiling on input_quantity_kg: availability
// alone reports enough on hand, but the lot was never actually received in
// that quantity, so the breakdown must still be rejected.
func TestBreakdown_RejectsInputAboveReceivingHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	movementRepo := postgresmock.NewMockMovementRepository(ctrl)
	reservationRepo := postgresmock.NewMockReservationRepository(ctrl)

	lot := &domain.Lot{ID: 3, LotCode: "IN-0003", State: domain.LotStateReleased}
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(3)).Return(lot, nil)

	movementRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(3)).Return(decimal.NewFromInt(100), nil)
	reservationRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(3)).Return(decimal.Zero, nil)
	movementRepo.EXPECT().SumReceivedByLot(gomock.Any(), gomock.Any(), int64(3)).Return(decimal.NewFromInt(40), nil)

	uc := &UseCase{
		Connection:      conn,
		LotRepo:         lotRepo,
		MovementRepo:    movementRepo,
		ReservationRepo: reservationRepo,
	}

	_, err := uc.Breakdown(context.Background(), &BreakdownInput{
		InputLotID:      3,
		InputQuantityKg: decimal.NewFromInt(100),
		Outputs:         []BreakdownOutputInput{{ItemID: 1, QuantityKg: decimal.NewFromInt(100), ToLocationID: 2}},
		PerformedBy:     "tester",
	})

	require.Error(t, err)

	var unprocessable common.UnprocessableOperationError

	require.ErrorAs(t, err, &unprocessable)
	assert.Contains(t, unprocessable.Message, "exceeds total received")
}
