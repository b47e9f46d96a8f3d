package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessType identifies the kind of transactional processing step a
// ProductionOrder records.
type ProcessType string

const (
	ProcessTypeBreakdown ProcessType = "breakdown"
	ProcessTypeMix       ProcessType = "mix"
	ProcessTypeQASplit   ProcessType = "qa_split"
	ProcessTypeRework    ProcessType = "rework"
)

// ProductionOrder is a transactional container linking input lots to output
// lots (and losses) for one processing step.
type ProductionOrder struct {
	ID               int64
	ProcessProfileID int64
	ProcessType      ProcessType
	IsRework         bool
	Notes            *string
	StartedAt        time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
}

// ProductionInput links an order to one of its consumed lots.
type ProductionInput struct {
	ID         int64
	OrderID    int64
	LotID      int64
	QuantityKg decimal.Decimal
}

// ProductionOutput links an order to one of its produced lots.
type ProductionOutput struct {
	ID         int64
	OrderID    int64
	LotID      int64
	QuantityKg decimal.Decimal
}

// BreakdownLoss records material leaving the mass balance under a named loss
// type; reused verbatim for rework losses.
type BreakdownLoss struct {
	ID         int64
	OrderID    int64
	LossTypeID int64
	QuantityKg decimal.Decimal
	Notes      *string
}

// QAMode distinguishes a full pass/fail check from a mass-balanced partial split.
type QAMode string

const (
	QAModeFull    QAMode = "full"
	QAModePartial QAMode = "partial"
)

// QACheck records a quality check performed on a lot.
type QACheck struct {
	ID         int64
	LotID      int64
	CheckType  string
	Passed     bool
	Mode       QAMode
	PassQtyKg  *decimal.Decimal
	FailQtyKg  *decimal.Decimal
	PassLotID  *int64
	FailLotID  *int64
	PerformedAt time.Time
	CreatedAt  time.Time
}
