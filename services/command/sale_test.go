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

func TestSell_RejectsLotNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn, mock := newTestConnection(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	referenceRepo := postgresmock.NewMockReferenceRepository(ctrl)
	lotRepo := postgresmock.NewMockLotRepository(ctrl)

	referenceRepo.EXPECT().FindCustomerByID(gomock.Any(), int64(2)).Return(&domain.Customer{ID: 2}, nil)

	lot := &domain.Lot{ID: 9, LotCode: "IN-0009", State: domain.LotStateReleased, ReadyAt: nil}
	lotRepo.EXPECT().LockByID(gomock.Any(), gomock.Any(), int64(9)).Return(lot, nil)

	uc := &UseCase{
		Connection:    conn,
		ReferenceRepo: referenceRepo,
		LotRepo:       lotRepo,
	}

	_, err := uc.Sell(context.Background(), &SellInput{
		CustomerID:  2,
		Lines:       []SaleLineInput{{LotID: 9, QuantityKg: decimal.NewFromInt(10)}},
		PerformedBy: "tester",
	})

	require.Error(t, err)
}
