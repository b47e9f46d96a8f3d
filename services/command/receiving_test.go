package command

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodtrace/lotcore/adapters/postgres/postgresmock"
	"github.com/foodtrace/lotcore/domain"
)

func TestCreateLot_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	lotCodeRepo := postgresmock.NewMockLotCodeRepository(ctrl)
	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	movementRepo := postgresmock.NewMockMovementRepository(ctrl)
	eventRepo := postgresmock.NewMockEventRepository(ctrl)

	lotCodeRepo.EXPECT().NextLotCode(gomock.Any(), gomock.Any(), domain.PrefixReceiving, gomock.Any()).Return("LOT-0001", nil)
	lotRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	movementRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(10), nil)
	eventRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(100), nil)

	uc := &UseCase{
		Connection:   conn,
		LotCodeRepo:  lotCodeRepo,
		LotRepo:      lotRepo,
		MovementRepo: movementRepo,
		EventRepo:    eventRepo,
	}

	out, err := uc.CreateLot(context.Background(), &CreateLotInput{
		ItemID:       1,
		QuantityKg:   decimal.NewFromInt(100),
		ToLocationID: 2,
		PerformedBy:  "tester",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.LotID)
	assert.Equal(t, "LOT-0001", out.LotCode)
	assert.Equal(t, int64(10), out.MovementID)
	assert.Equal(t, int64(100), out.LotEventID)
}

func TestCreateLot_RejectsNonPositiveQuantity(t *testing.T) {
	conn, _ := newTestConnection(t)

	uc := &UseCase{Connection: conn}

	_, err := uc.CreateLot(context.Background(), &CreateLotInput{
		ItemID:       1,
		QuantityKg:   decimal.Zero,
		ToLocationID: 2,
		PerformedBy:  "tester",
		ReceivedAt:   timePtr(time.Now()),
	})

	require.Error(t, err)
}

func timePtr(t time.Time) *time.Time { return &t }
