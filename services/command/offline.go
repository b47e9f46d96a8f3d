package command

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bxcodec/dbresolver/v2"
	"github.com/google/uuid"

	"github.com/foodtrace/lotcore/adapters/mongodb"
	"github.com/foodtrace/lotcore/adapters/rabbitmq"
	"github.com/foodtrace/lotcore/common"
	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/domain"
)

// OfflineActionInput is one client-submitted action in a submit batch.
type OfflineActionInput struct {
	ClientTxnID string
	ActionType  domain.ActionType
	Payload     json.RawMessage
	SubmittedBy string
}

// SubmitOfflineInput is the offline.submit request: a batch from one client.
type SubmitOfflineInput struct {
	ClientID string
	Actions  []OfflineActionInput
}

// SubmittedAction reports the fate of one submitted action.
type SubmittedAction struct {
	ClientTxnID string
	QueueID     int64
	Duplicate   bool
}

// SubmitOffline inserts each action as a queued row, idempotently. A
// (client_id, client_txn_id) collision is reported as a duplicate rather
// than an error, per §4.13.
func (uc *UseCase) SubmitOffline(ctx context.Context, input *SubmitOfflineInput) ([]SubmittedAction, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.offline.submit")
	defer span.End()

	out := make([]SubmittedAction, 0, len(input.Actions))

	for _, action := range input.Actions {
		id, err := uc.OfflineRepo.Create(ctx, &domain.OfflineQueue{
			ClientID:    input.ClientID,
			ClientTxnID: action.ClientTxnID,
			ActionType:  action.ActionType,
			Payload:     action.Payload,
			Status:      domain.OfflineStatusQueued,
			SubmittedBy: action.SubmittedBy,
		})
		if err != nil {
			if errors.Is(err, cn.ErrDuplicateOfflineAction) {
				out = append(out, SubmittedAction{ClientTxnID: action.ClientTxnID, Duplicate: true})
				continue
			}

			wrapped := common.ValidateBusinessError(err, "OfflineQueue")
			mopentelemetry.HandleSpanError(&span, "Failed to submit offline action", wrapped)
			logger.Errorf("offline.submit failed: %v", err)

			return nil, wrapped
		}

		out = append(out, SubmittedAction{ClientTxnID: action.ClientTxnID, QueueID: id})
	}

	return out, nil
}

// ApplyOfflineInput is the offline.apply request, run per client.
type ApplyOfflineInput struct {
	ClientID string
	Limit    int
}

// GroupOutcome reports what happened to one client transaction group.
type GroupOutcome struct {
	ClientTxnID   string
	QueueIDs      []int64
	Status        domain.OfflineStatus
	Reason        string
	LotIDs        []int64
	CorrelationID string
}

// ApplyOffline fetches up to Limit queued rows for a client, groups
// contiguous rows by client_txn_id, and attempts to apply each group inside
// its own SAVEPOINT against one outer transaction, per §4.13.
func (uc *UseCase) ApplyOffline(ctx context.Context, input *ApplyOfflineInput) ([]GroupOutcome, error) {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.offline.apply")
	defer span.End()

	limit := input.Limit
	if limit <= 0 {
		limit = 100
	}

	queued, err := uc.OfflineRepo.ListQueued(ctx, limit)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to list queued offline actions", err)
		return nil, err
	}

	var rows []*domain.OfflineQueue

	for _, q := range queued {
		if q.ClientID == input.ClientID {
			rows = append(rows, q)
		}
	}

	groups := groupByClientTxn(rows)

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return nil, err
	}

	var outcomes []GroupOutcome

	for _, group := range groups {
		outcome, err := uc.applyOfflineGroup(ctx, db, group)
		if err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to apply offline group", err)
			logger.Errorf("offline.apply group %s failed: %v", group[0].ClientTxnID, err)

			return outcomes, err
		}

		uc.invalidateAvailability(ctx, outcome.LotIDs...)

		if outcome.Status == domain.OfflineStatusConflict {
			uc.Events.PublishOfflineConflict(ctx, rabbitmq.OfflineConflictNotice{
				ClientTxnID:   outcome.ClientTxnID,
				CorrelationID: outcome.CorrelationID,
				QueueIDs:      outcome.QueueIDs,
				Reason:        outcome.Reason,
				OccurredAt:    time.Now().UTC(),
			})
		}

		outcomes = append(outcomes, *outcome)
	}

	return outcomes, nil
}

func groupByClientTxn(rows []*domain.OfflineQueue) [][]*domain.OfflineQueue {
	var groups [][]*domain.OfflineQueue

	for _, row := range rows {
		n := len(groups)
		if n > 0 && groups[n-1][0].ClientTxnID == row.ClientTxnID {
			groups[n-1] = append(groups[n-1], row)
			continue
		}

		groups = append(groups, []*domain.OfflineQueue{row})
	}

	return groups
}

// applyOfflineGroup opens a SAVEPOINT on the outer transaction and dispatches
// every action in the group, per the online validation rules.
func (uc *UseCase) applyOfflineGroup(ctx context.Context, db dbresolver.DB, group []*domain.OfflineQueue) (*GroupOutcome, error) {
	outcome := &GroupOutcome{ClientTxnID: group[0].ClientTxnID, CorrelationID: uuid.NewString()}
	for _, row := range group {
		outcome.QueueIDs = append(outcome.QueueIDs, row.ID)
	}

	err := uc.withTx(db, func(tx *sql.Tx) error {
		savepoint := fmt.Sprintf("sp_offline_%d", group[0].ID)

		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
			return err
		}

		applyErr := uc.applyOfflineGroupRows(ctx, tx, group, outcome)
		if applyErr == nil {
			_, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint)
			return err
		}

		if _, err := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); err != nil {
			return err
		}

		return uc.markGroupFailure(ctx, tx, group, outcome, applyErr)
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func (uc *UseCase) applyOfflineGroupRows(ctx context.Context, tx *sql.Tx, group []*domain.OfflineQueue, outcome *GroupOutcome) error {
	now := time.Now().UTC()

	for _, row := range group {
		refs, lotIDs, err := uc.dispatchOfflineAction(ctx, tx, row)
		if err != nil {
			return err
		}

		if err := uc.OfflineRepo.MarkApplied(ctx, tx, row.ID, refs, sql.NullTime{Time: now, Valid: true}); err != nil {
			return err
		}

		outcome.LotIDs = append(outcome.LotIDs, lotIDs...)
	}

	outcome.Status = domain.OfflineStatusApplied

	return nil
}

func (uc *UseCase) dispatchOfflineAction(ctx context.Context, tx *sql.Tx, row *domain.OfflineQueue) (json.RawMessage, []int64, error) {
	switch row.ActionType {
	case domain.ActionTypeReceiving:
		var input CreateLotInput
		if err := json.Unmarshal(row.Payload, &input); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid receiving payload", cn.ErrBadRequest)
		}

		receivedAt := time.Now().UTC()
		if input.ReceivedAt != nil {
			receivedAt = *input.ReceivedAt
		}

		out, err := uc.createLotTx(ctx, tx, &input, receivedAt)
		if err != nil {
			return nil, nil, err
		}

		body, err := json.Marshal(out)

		return body, []int64{out.LotID}, err

	case domain.ActionTypeBreakdown:
		var input BreakdownInput
		if err := json.Unmarshal(row.Payload, &input); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid breakdown payload", cn.ErrBadRequest)
		}

		performedAt := time.Now().UTC()
		if input.PerformedAt != nil {
			performedAt = *input.PerformedAt
		}

		out, err := uc.breakdownTx(ctx, tx, &input, performedAt)
		if err != nil {
			return nil, nil, err
		}

		lotIDs := []int64{input.InputLotID}
		for _, o := range out.Outputs {
			lotIDs = append(lotIDs, o.LotID)
		}

		body, err := json.Marshal(out)

		return body, lotIDs, err

	case domain.ActionTypeSale:
		var input SellInput
		if err := json.Unmarshal(row.Payload, &input); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid sale payload", cn.ErrBadRequest)
		}

		soldAt := time.Now().UTC()
		if input.SoldAt != nil {
			soldAt = *input.SoldAt
		}

		out, err := uc.sellTx(ctx, tx, &input, soldAt)
		if err != nil {
			return nil, nil, err
		}

		body, err := json.Marshal(out)

		return body, out.SoldLotIDs, err

	default:
		return nil, nil, errUnknownOfflineActionType(string(row.ActionType))
	}
}

// markGroupFailure classifies the failure that rolled back the group's
// SAVEPOINT and marks every row in the group accordingly.
func (uc *UseCase) markGroupFailure(ctx context.Context, tx *sql.Tx, group []*domain.OfflineQueue, outcome *GroupOutcome, applyErr error) error {
	reason := applyErr.Error()
	outcome.Reason = reason

	// A genuine business sentinel gets the usual substring classification;
	// anything else (a driver error, a panic recovered elsewhere, a bug)
	// never matches a business sentinel and is a transaction exception, not
	// a decision the client made.
	conflictType := domain.OfflineConflictTxnError

	switch {
	case errors.Is(applyErr, cn.ErrUnknownOfflineActionType):
		conflictType = domain.OfflineConflictRejected
	case isBusinessError(applyErr):
		conflictType = domain.ClassifyFailure(reason)
	}

	switch conflictType {
	case domain.OfflineConflictRejected:
		outcome.Status = domain.OfflineStatusRejected

		for _, row := range group {
			if err := uc.OfflineRepo.MarkRejected(ctx, tx, row.ID, reason); err != nil {
				return err
			}
		}

		return nil
	default:
		outcome.Status = domain.OfflineStatusConflict

		for _, row := range group {
			if err := uc.OfflineRepo.MarkConflict(ctx, tx, row.ID, reason); err != nil {
				return err
			}

			if _, err := uc.OfflineRepo.CreateConflict(ctx, tx, &domain.OfflineConflict{
				QueueID: row.ID, Type: conflictType, Details: reason, CorrelationID: outcome.CorrelationID,
			}); err != nil {
				return err
			}
		}

		return nil
	}
}

// ResolveConflictInput is the offline.resolve_conflict request.
type ResolveConflictInput struct {
	ConflictID int64
	Resolution string
	ResolvedBy string
}

// ResolveConflict moves a conflict to rejected under human review; there is
// no automatic retry path, per §4.13.
func (uc *UseCase) ResolveConflict(ctx context.Context, input *ResolveConflictInput) error {
	logger := common.NewLoggerFromContext(ctx)
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.offline.resolve_conflict")
	defer span.End()

	if len(input.Resolution) < 2 {
		err := common.ValidateBusinessError(errMissingFields("resolution"), "OfflineConflict")
		mopentelemetry.HandleSpanError(&span, "resolution too short", err)

		return err
	}

	db, err := uc.Connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to acquire connection", err)
		return err
	}

	conflict, err := uc.OfflineRepo.FindConflictByID(ctx, input.ConflictID)
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "OfflineConflict")
		mopentelemetry.HandleSpanError(&span, "Failed to look up conflict", wrapped)

		return wrapped
	}

	err = uc.withTx(db, func(tx *sql.Tx) error {
		return uc.OfflineRepo.ResolveConflict(ctx, tx, input.ConflictID, input.Resolution, input.ResolvedBy)
	})
	if err != nil {
		wrapped := common.ValidateBusinessError(err, "OfflineConflict")
		mopentelemetry.HandleSpanError(&span, "Failed to resolve conflict", wrapped)
		logger.Errorf("offline.resolve_conflict failed: %v", err)

		return wrapped
	}

	if archiveErr := uc.Archive.ArchiveConflictResolution(ctx, mongodb.ConflictResolutionRecord{
		ConflictID:    conflict.ID,
		QueueID:       conflict.QueueID,
		CorrelationID: conflict.CorrelationID,
		Type:          string(conflict.Type),
		Details:       conflict.Details,
		Resolution:    input.Resolution,
		ResolvedBy:    input.ResolvedBy,
	}); archiveErr != nil {
		logger.Warnf("failed to archive resolved conflict %d: %v", conflict.ID, archiveErr)
	}

	return nil
}
