package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLotState_IsTerminal(t *testing.T) {
	tests := []struct {
		state LotState
		want  bool
	}{
		{LotStateReceived, false},
		{LotStateAging, false},
		{LotStateReleased, false},
		{LotStateSold, true},
		{LotStateDisposed, true},
		{LotStateQuarantined, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.IsTerminal(), "state %s", tt.state)
	}
}

func TestMoveType_Classification(t *testing.T) {
	assert.True(t, MoveTypeReceiving.IsIn())
	assert.False(t, MoveTypeReceiving.IsOut())
	assert.False(t, MoveTypeReceiving.IsLoss())

	assert.True(t, MoveTypeSale.IsOut())
	assert.False(t, MoveTypeSale.IsIn())

	loss := BreakdownLossMoveType("trim")
	assert.Equal(t, MoveType("breakdown_loss:trim"), loss)
	assert.True(t, loss.IsLoss())
	assert.False(t, loss.IsIn())
	assert.False(t, loss.IsOut())

	reworkLoss := ReworkLossMoveType("bone")
	assert.Equal(t, MoveType("rework_loss:bone"), reworkLoss)
	assert.True(t, reworkLoss.IsLoss())
}

func TestLot_IsSellable(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		lot  Lot
		want bool
	}{
		{
			name: "released and ready",
			lot:  Lot{State: LotStateReleased, ReadyAt: &past},
			want: true,
		},
		{
			name: "released but not yet ready",
			lot:  Lot{State: LotStateReleased, ReadyAt: &future},
			want: false,
		},
		{
			name: "released with no ready_at set",
			lot:  Lot{State: LotStateReleased, ReadyAt: nil},
			want: false,
		},
		{
			name: "quarantined overrides released",
			lot:  Lot{State: LotStateQuarantined, ReadyAt: &past},
			want: false,
		},
		{
			name: "aging is never sellable",
			lot:  Lot{State: LotStateAging, ReadyAt: &past},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lot.IsSellable(now))
		})
	}
}
