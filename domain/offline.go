package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// ActionType is the set of offline action payload shapes the reconciler
// knows how to dispatch.
type ActionType string

const (
	ActionTypeReceiving ActionType = "receiving"
	ActionTypeBreakdown ActionType = "breakdown"
	ActionTypeSale      ActionType = "sale"
)

// OfflineStatus is the lifecycle of a queued offline action.
type OfflineStatus string

const (
	OfflineStatusQueued   OfflineStatus = "queued"
	OfflineStatusApplied  OfflineStatus = "applied"
	OfflineStatusConflict OfflineStatus = "conflict"
	OfflineStatusRejected OfflineStatus = "rejected"
)

// OfflineQueue is one client-submitted action awaiting or having undergone apply.
type OfflineQueue struct {
	ID             int64
	ClientID       string
	ClientTxnID    string
	ActionType     ActionType
	Payload        json.RawMessage
	Status         OfflineStatus
	ServerRefs     json.RawMessage
	AppliedAt      *time.Time
	ConflictReason *string
	SubmittedBy    string
	CreatedAt      time.Time
}

// OfflineConflictType distinguishes a business-invariant conflict from an
// unexpected runtime failure.
type OfflineConflictType string

const (
	OfflineConflictBusiness OfflineConflictType = "business_conflict"
	OfflineConflictRejected OfflineConflictType = "rejected"
	OfflineConflictTxnError OfflineConflictType = "txn_exception"
)

// OfflineConflict records one affected queue row's share of a failed group apply.
// CorrelationID is surfaced in conflict details so a client can match a
// server-side conflict back to the batch it submitted.
type OfflineConflict struct {
	ID             int64
	QueueID        int64
	Type           OfflineConflictType
	Details        string
	CorrelationID  string
	Resolution     *string
	ResolvedBy     *string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}

// conflictSignals are substrings that, when found in a business-invariant
// error message, classify an offline apply failure as a conflict rather
// than an outright rejection. Kept as plain strings (not regexes) because
// they are also the literal text asserted in tests per the Design Notes.
var conflictSignals = []string{
	"insufficient available",
	"not released",
	"not ready",
	"quarantined",
	"Weight mismatch",
	"must consume full available",
	"Invalid",
	"already used",
}

// ClassifyFailure matches an error message against the conflict signal list.
// The match is case-sensitive, matching the original substring classifier
// this reconciler was ported from.
func ClassifyFailure(message string) OfflineConflictType {
	for _, signal := range conflictSignals {
		if strings.Contains(message, signal) {
			return OfflineConflictBusiness
		}
	}

	return OfflineConflictRejected
}
