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

func TestQACheck_FullFailQuarantinesLot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	lotRepo := postgresmock.NewMockLotRepository(ctrl)
	qaRepo := postgresmock.NewMockQARepository(ctrl)
	eventRepo := postgresmock.NewMockEventRepository(ctrl)

	lot := &domain.Lot{ID: 4, LotCode: "IN-0004", State: domain.LotStateReleased}
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(4)).Return(lot, nil)
	qaRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(9), nil)
	eventRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(19), nil)
	lotRepo.EXPECT().UpdateLifecycle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := &UseCase{
		Connection: conn,
		LotRepo:    lotRepo,
		QARepo:     qaRepo,
		EventRepo:  eventRepo,
	}

	failed := false

	result, err := uc.QACheck(context.Background(), &QACheckInput{
		LotID:       4,
		CheckType:   "visual",
		Mode:        domain.QAModeFull,
		Passed:      &failed,
		PerformedBy: "tester",
	})

	require.NoError(t, err)
	assert.True(t, result.Quarantined)
	assert.Equal(t, int64(9), result.QACheckID)
	require.NotNil(t, result.LotEventID)
	assert.Equal(t, int64(19), *result.LotEventID)
}
