package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tolerance is the absolute decimal tolerance applied to every mass-balance
// and quantity comparison in the system, per the 1 g / 0.001 kg contract.
var Tolerance = decimal.RequireFromString("0.001")

// LotState is the finite set of states a Lot may occupy.
type LotState string

const (
	LotStateReceived    LotState = "received"
	LotStateAging       LotState = "aging"
	LotStateReleased    LotState = "released"
	LotStateSold        LotState = "sold"
	LotStateDisposed    LotState = "disposed"
	LotStateQuarantined LotState = "quarantined"
)

// IsTerminal reports whether the state forbids further production use.
func (s LotState) IsTerminal() bool {
	switch s {
	case LotStateSold, LotStateDisposed, LotStateQuarantined:
		return true
	default:
		return false
	}
}

// MoveType tags an InventoryMovement with the operation that produced it.
type MoveType string

const (
	MoveTypeReceiving       MoveType = "receiving"
	MoveTypeBreakdownOutput MoveType = "breakdown_output"
	MoveTypeMixOutput       MoveType = "mix_output"
	MoveTypeAdjustmentIn    MoveType = "adjustment_in"
	MoveTypeSale            MoveType = "sale"
	MoveTypeBreakdownInput  MoveType = "breakdown_input"
	MoveTypeMixInput        MoveType = "mix_input"
	MoveTypeAdjustmentOut   MoveType = "adjustment_out"
	MoveTypeReworkInput     MoveType = "rework_input"
	MoveTypeReworkOutput    MoveType = "rework_output"
	MoveTypeReworkRemainder MoveType = "rework_remainder"
	MoveTypeQASplitInput    MoveType = "qa_split_input"
	MoveTypeQAPassOutput    MoveType = "qa_pass_output"
	MoveTypeQAFailOutput    MoveType = "qa_fail_output"
)

// BreakdownLossMoveType builds the dynamic "breakdown_loss:{CODE}" / "rework_loss:{CODE}" tag.
func BreakdownLossMoveType(lossTypeCode string) MoveType {
	return MoveType("breakdown_loss:" + lossTypeCode)
}

func ReworkLossMoveType(lossTypeCode string) MoveType {
	return MoveType("rework_loss:" + lossTypeCode)
}

// inMoveTypes, outMoveTypes classify movement types for the Availability Oracle.
var inMoveTypes = map[MoveType]bool{
	MoveTypeReceiving:       true,
	MoveTypeBreakdownOutput: true,
	MoveTypeMixOutput:       true,
	MoveTypeAdjustmentIn:    true,
}

var outMoveTypes = map[MoveType]bool{
	MoveTypeSale:           true,
	MoveTypeBreakdownInput: true,
	MoveTypeMixInput:       true,
	MoveTypeAdjustmentOut:  true,
	MoveTypeReworkInput:    true,
}

const lossMoveTypePrefix = "breakdown_loss:"
const reworkLossMoveTypePrefix = "rework_loss:"

// IsIn, IsOut, IsLoss classify a movement for on-hand arithmetic.
func (m MoveType) IsIn() bool  { return inMoveTypes[m] }
func (m MoveType) IsOut() bool { return outMoveTypes[m] }
func (m MoveType) IsLoss() bool {
	s := string(m)
	return len(s) >= len(lossMoveTypePrefix) && s[:len(lossMoveTypePrefix)] == lossMoveTypePrefix ||
		len(s) >= len(reworkLossMoveTypePrefix) && s[:len(reworkLossMoveTypePrefix)] == reworkLossMoveTypePrefix
}

// EventType tags a LotEvent with the lifecycle or production action it records.
type EventType string

const (
	EventReceived             EventType = "received"
	EventAgingStarted         EventType = "aging_started"
	EventReleased             EventType = "released"
	EventSold                 EventType = "sold"
	EventDisposed             EventType = "disposed"
	EventQuarantined          EventType = "quarantined"
	EventQuarantinedBulk      EventType = "quarantined_bulk"
	EventCreatedFromBreakdown EventType = "created_from_breakdown"
	EventBreakdownLoss        EventType = "breakdown_loss"
	EventMixInput             EventType = "mix_input"
	EventMixOutput            EventType = "mix_output"
	EventReworkConsumed       EventType = "rework_consumed"
	EventReworkOutput         EventType = "rework_output"
	EventReworkRemainder      EventType = "rework_remainder"
	EventReworkLoss           EventType = "rework_loss"
	EventQASplit              EventType = "qa_split"
	EventQAPassOutput         EventType = "qa_pass_output"
	EventQAFailOutput         EventType = "qa_fail_output"
	EventReservationCanceled  EventType = "reservation_canceled"
)

// Lot is a traceable quantity of a single item from a single lineage step.
type Lot struct {
	ID               int64
	LotCode          string
	ItemID           int64
	SupplierID       *int64
	State            LotState
	ReceivedAt       time.Time
	AgingStartedAt   *time.Time
	ReadyAt          *time.Time
	ReleasedAt       *time.Time
	ExpiresAt        *time.Time
	CurrentLocationID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InventoryMovement is a signed, positive-valued record of material entering
// or leaving a lot.
type InventoryMovement struct {
	ID             int64
	LotID          int64
	FromLocationID *int64
	ToLocationID   *int64
	QuantityKg     decimal.Decimal
	MovedAt        time.Time
	MoveType       MoveType
	CreatedAt      time.Time
}

// LotEvent is an immutable audit entry attached to a lot.
type LotEvent struct {
	ID          int64
	LotID       int64
	EventType   EventType
	Reason      *string
	Notes       *string
	PerformedBy string
	PerformedAt time.Time
	TxID        int64
	CreatedAt   time.Time
}

// Availability is the Availability Oracle's output for a single lot at a
// point in the surrounding transaction.
type Availability struct {
	LotID               int64
	OnHandKg            decimal.Decimal
	ReservedKg          decimal.Decimal
	AvailableKg         decimal.Decimal
	AvailableForSaleKg  decimal.Decimal
}

// IsSellable reports whether the lot is eligible for sale at the given instant:
// released, not quarantined, and its ready_at has elapsed.
func (l *Lot) IsSellable(at time.Time) bool {
	if l.State == LotStateQuarantined {
		return false
	}

	if l.State != LotStateReleased {
		return false
	}

	return l.ReadyAt != nil && !l.ReadyAt.After(at)
}
