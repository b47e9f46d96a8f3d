package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodtrace/lotcore/adapters/postgres/postgresmock"
	"github.com/foodtrace/lotcore/domain"
)

func TestQuarantineForward_SkipsAlreadyQuarantined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	productionRepo := postgresmock.NewMockProductionRepository(ctrl)
	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	eventRepo := postgresmock.NewMockEventRepository(ctrl)

	productionRepo.EXPECT().OrdersWithLotAsInput(gomock.Any(), []int64{10}).Return(map[int64][]int64{10: {1}}, nil)
	productionRepo.EXPECT().OutputLotsByOrders(gomock.Any(), []int64{1}).Return([]int64{11, 12}, nil)
	productionRepo.EXPECT().OrdersWithLotAsInput(gomock.Any(), []int64{11, 12}).Return(map[int64][]int64{}, nil)

	lot11 := &domain.Lot{ID: 11, LotCode: "MIX-0011", State: domain.LotStateQuarantined}
	lot12 := &domain.Lot{ID: 12, LotCode: "MIX-0012", State: domain.LotStateReleased}

	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(11)).Return(lot11, nil)
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(12)).Return(lot12, nil)

	eventRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(41), nil)
	lotRepo.EXPECT().UpdateLifecycle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := &UseCase{
		Connection:     conn,
		ProductionRepo: productionRepo,
		LotRepo:        lotRepo,
		EventRepo:      eventRepo,
	}

	out, err := uc.QuarantineForward(context.Background(), &QuarantineForwardInput{
		LotID:       10,
		Reason:      "withdrawal notice from supplier",
		PerformedBy: "tester",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.QuarantinedCount)
	assert.Equal(t, 1, out.AlreadyQuarantinedCount)
	assert.Equal(t, []int64{11, 12}, out.ForwardLotIDs)
}
