package command

import (
	"errors"
	"fmt"

	cn "github.com/foodtrace/lotcore/common/constant"
)

// errMissingFields wraps the missing-fields sentinel with the offending
// field name so common.ValidateBusinessError can report it.
func errMissingFields(field string) error {
	return fmt.Errorf("%w: %s", cn.ErrMissingFieldsInRequest, field)
}

// The detail text of the invariant errors below deliberately carries the
// literal substrings in domain.conflictSignals ("quarantined", "not
// released", "not ready", "insufficient available", "Weight mismatch",
// "must consume full available") so the offline reconciler's classifier,
// which matches on err.Error(), sees the same signal online callers do.

func errLotNotEligible(state string) error {
	return fmt.Errorf("%w: lot is not eligible for this operation (state=%s)", cn.ErrLotNotEligible, state)
}

func errLotQuarantined(lotCode string) error {
	return fmt.Errorf("%w: lot %s is quarantined", cn.ErrLotQuarantined, lotCode)
}

func errLotNotReleased(lotCode string) error {
	return fmt.Errorf("%w: lot %s is not released", cn.ErrLotNotReleased, lotCode)
}

func errLotNotReady(lotCode string) error {
	return fmt.Errorf("%w: lot %s is not ready", cn.ErrLotNotReady, lotCode)
}

func errInsufficientAvailable(lotCode, requested, available string) error {
	return fmt.Errorf("%w: lot %s insufficient available, requested=%s available=%s", cn.ErrInsufficientAvailable, lotCode, requested, available)
}

func errInsufficientReservable(onHand, reserved, remaining, requested string) error {
	return fmt.Errorf("%w: insufficient available, on_hand=%s reserved=%s remaining=%s requested=%s", cn.ErrInsufficientReservable, onHand, reserved, remaining, requested)
}

func errWeightMismatch(detail string) error {
	return fmt.Errorf("%w: Weight mismatch: %s", cn.ErrWeightMismatch, detail)
}

func errMustConsumeFullAvailable() error {
	return fmt.Errorf("%w: must consume full available quantity of the lot", cn.ErrMustConsumeFullAvailable)
}

func errMixingNotAllowed() error {
	return cn.ErrMixingNotAllowed
}

func errInactiveLossType(code string) error {
	return fmt.Errorf("%w: %s", cn.ErrInactiveLossType, code)
}

func errQAPartialSumMismatch() error {
	return cn.ErrQAPartialSumMismatch
}

func errOfflineActionNotResolvable() error {
	return cn.ErrOfflineActionNotResolvable
}

func errUnknownOfflineActionType(actionType string) error {
	return fmt.Errorf("%w: %s", cn.ErrUnknownOfflineActionType, actionType)
}

func errProcessProfileMissing(name string) error {
	return fmt.Errorf("%w: %s", cn.ErrProcessProfileMissing, name)
}

func errInputExceedsReceivingHistory(lotCode, requested, received string) error {
	return fmt.Errorf("%w: lot %s insufficient available, input=%s exceeds total received=%s", cn.ErrInsufficientAvailable, lotCode, requested, received)
}

func errLotCodeAlreadyExists(lotCode string) error {
	return fmt.Errorf("%w: %s", cn.ErrLotCodeAlreadyExists, lotCode)
}

// businessSentinels are the command-layer invariant errors a caller can
// expect and classify as a recoverable business decision; any error that
// doesn't unwrap to one of these reaching markGroupFailure is treated as
// an unexpected runtime failure instead.
var businessSentinels = []error{
	cn.ErrEntityNotFound,
	cn.ErrMissingFieldsInRequest,
	cn.ErrBadRequest,
	cn.ErrLotNotEligible,
	cn.ErrLotQuarantined,
	cn.ErrLotNotReleased,
	cn.ErrLotNotReady,
	cn.ErrInsufficientAvailable,
	cn.ErrInsufficientReservable,
	cn.ErrWeightMismatch,
	cn.ErrMustConsumeFullAvailable,
	cn.ErrMixingNotAllowed,
	cn.ErrLotCodeAlreadyExists,
	cn.ErrInactiveLossType,
	cn.ErrProcessProfileMissing,
	cn.ErrQAPartialSumMismatch,
	cn.ErrDuplicateOfflineAction,
	cn.ErrOfflineActionNotResolvable,
	cn.ErrUnknownOfflineActionType,
}

// isBusinessError reports whether err unwraps to one of businessSentinels.
func isBusinessError(err error) bool {
	for _, sentinel := range businessSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
