package constant

import "errors"

// Sentinel business errors for the lot lifecycle and material-balance engine.
// These are matched with errors.Is against the error chain returned by
// repositories and use cases; common.ValidateBusinessError maps them to the
// typed errors used at the outer boundary.
var (
	ErrEntityNotFound               = errors.New("0001")
	ErrMissingFieldsInRequest       = errors.New("0002")
	ErrInternalServer               = errors.New("0003")
	ErrBadRequest                   = errors.New("0004")
	ErrUnexpectedFieldsInTheRequest = errors.New("0005")

	// Generic field validation used by common/utils.go.
	ErrMetadataKeyLengthExceeded      = errors.New("0006")
	ErrMetadataValueLengthExceeded    = errors.New("0007")
	ErrInvalidCountryCode             = errors.New("0008")
	ErrInvalidAccountType             = errors.New("0009")
	ErrInvalidType                    = errors.New("0010")
	ErrInvalidCodeFormat              = errors.New("0011")
	ErrCodeUppercaseRequirement       = errors.New("0012")
	ErrCurrencyCodeStandardCompliance = errors.New("0013")

	// Lot lifecycle and eligibility.
	ErrLotNotEligible = errors.New("1001")
	ErrLotQuarantined = errors.New("1002")
	ErrLotNotReleased = errors.New("1003")
	ErrLotNotReady    = errors.New("1004")

	// Material balance / availability.
	ErrInsufficientAvailable    = errors.New("1101")
	ErrInsufficientReservable   = errors.New("1102")
	ErrWeightMismatch           = errors.New("1103")
	ErrMustConsumeFullAvailable = errors.New("1104")

	// Production and mixing.
	ErrMixingNotAllowed     = errors.New("1201")
	ErrLotCodeAlreadyExists = errors.New("1202")
	ErrInactiveLossType     = errors.New("1203")
	ErrProcessProfileMissing = errors.New("1204")

	// QA.
	ErrQAPartialSumMismatch = errors.New("1301")

	// Audit guard.
	ErrAuditEventMissing = errors.New("1401")

	// Offline sync.
	ErrDuplicateOfflineAction      = errors.New("1501")
	ErrOfflineActionNotResolvable  = errors.New("1502")
	ErrUnknownOfflineActionType    = errors.New("1503")
)
