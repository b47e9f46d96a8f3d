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
	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/domain"
)

func TestMix_RejectsLotCodeCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	referenceRepo := postgresmock.NewMockReferenceRepository(ctrl)
	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	lotCodeRepo := postgresmock.NewMockLotCodeRepository(ctrl)
	movementRepo := postgresmock.NewMockMovementRepository(ctrl)
	eventRepo := postgresmock.NewMockEventRepository(ctrl)

	readyAt := mustTime("2026-01-01T00:00:00Z")
	performedAt := mustTime("2026-01-02T00:00:00Z")

	referenceRepo.EXPECT().FindProcessProfileByID(gomock.Any(), int64(1)).
		Return(&domain.ProcessProfile{ID: 1, AllowsLotMixing: true}, nil)

	lot := &domain.Lot{ID: 5, LotCode: "IN-0001", State: domain.LotStateReleased, ReadyAt: &readyAt}
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(5)).Return(lot, nil)

	movementRepo.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(5)).Return(decimal.NewFromInt(50), nil)
	reservationRepoForAvail := postgresmock.NewMockReservationRepository(ctrl)
	reservationRepoForAvail.EXPECT().SumByLot(gomock.Any(), gomock.Any(), int64(5)).Return(decimal.Zero, nil)

	referenceRepo.EXPECT().FindItemByID(gomock.Any(), int64(9)).Return(&domain.Item{ID: 9}, nil)
	referenceRepo.EXPECT().FindLocationByID(gomock.Any(), int64(3)).Return(&domain.Location{ID: 3}, nil)

	orderRepo := postgresmock.NewMockProductionRepository(ctrl)
	orderRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	orderRepo.EXPECT().CreateInput(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	movementRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(11), nil)
	eventRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(21), nil)

	lotCodeRepo.EXPECT().NextLotCode(gomock.Any(), gomock.Any(), domain.PrefixMixOutput, gomock.Any()).Return("MIX-0001", nil)
	lotRepo.EXPECT().LotCodeExists(gomock.Any(), gomock.Any(), "MIX-0001").Return(true, nil)

	uc := &UseCase{
		Connection:      conn,
		ReferenceRepo:   referenceRepo,
		LotRepo:         lotRepo,
		LotCodeRepo:     lotCodeRepo,
		MovementRepo:    movementRepo,
		EventRepo:       eventRepo,
		ReservationRepo: reservationRepoForAvail,
		ProductionRepo:  orderRepo,
	}

	_, err := uc.Mix(context.Background(), &MixInput{
		ProcessProfileID: 1,
		Inputs:           []MixInputInput{{LotID: 5, QuantityKg: decimal.NewFromInt(50)}},
		OutputItemID:     9,
		OutputLocationID: 3,
		PerformedBy:      "tester",
		PerformedAt:      &performedAt,
	})

	require.Error(t, err)

	var conflict common.EntityConflictError

	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Lot Code Already Exists", conflict.Title)
	assert.Contains(t, err.Error(), "MIX-0001")
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}

	return t
}
