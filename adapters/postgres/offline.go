package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

//go:generate mockgen --destination=postgresmock/offline_mock.go --package=postgresmock . OfflineRepository
type OfflineRepository interface {
	Create(ctx context.Context, q *domain.OfflineQueue) (int64, error)
	FindByClientTxn(ctx context.Context, clientID, clientTxnID string) (*domain.OfflineQueue, error)
	FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.OfflineQueue, error)
	ListQueued(ctx context.Context, limit int) ([]*domain.OfflineQueue, error)
	MarkApplied(ctx context.Context, tx *sql.Tx, id int64, serverRefs json.RawMessage, appliedAt sql.NullTime) error
	MarkConflict(ctx context.Context, tx *sql.Tx, id int64, reason string) error
	MarkRejected(ctx context.Context, tx *sql.Tx, id int64, reason string) error
	CreateConflict(ctx context.Context, tx *sql.Tx, c *domain.OfflineConflict) (int64, error)
	FindConflictByID(ctx context.Context, id int64) (*domain.OfflineConflict, error)
	ResolveConflict(ctx context.Context, tx *sql.Tx, id int64, resolution, resolvedBy string) error
}

type OfflinePostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
}

func NewOfflinePostgreSQLRepository(pc *mpostgres.PostgresConnection) *OfflinePostgreSQLRepository {
	return &OfflinePostgreSQLRepository{connection: pc}
}

func (r *OfflinePostgreSQLRepository) Create(ctx context.Context, q *domain.OfflineQueue) (int64, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRowContext(ctx,
		`INSERT INTO offline_queue (client_id, client_txn_id, action_type, payload, status, submitted_by)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		q.ClientID, q.ClientTxnID, string(q.ActionType), []byte(q.Payload), string(q.Status), q.SubmittedBy).
		Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: %s/%s", cn.ErrDuplicateOfflineAction, q.ClientID, q.ClientTxnID)
		}

		return 0, err
	}

	return id, nil
}

func (r *OfflinePostgreSQLRepository) FindByClientTxn(ctx context.Context, clientID, clientTxnID string) (*domain.OfflineQueue, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, offlineQueueColumns+" FROM offline_queue WHERE client_id = $1 AND client_txn_id = $2", clientID, clientTxnID)

	q, err := scanOfflineQueue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("OfflineQueue")
	}

	return q, err
}

func (r *OfflinePostgreSQLRepository) FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.OfflineQueue, error) {
	row := tx.QueryRowContext(ctx, offlineQueueColumns+" FROM offline_queue WHERE id = $1 FOR UPDATE", id)

	q, err := scanOfflineQueue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound("OfflineQueue")
	}

	return q, err
}

func (r *OfflinePostgreSQLRepository) ListQueued(ctx context.Context, limit int) ([]*domain.OfflineQueue, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, offlineQueueColumns+" FROM offline_queue WHERE status = $1 ORDER BY created_at, id LIMIT $2",
		string(domain.OfflineStatusQueued), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.OfflineQueue

	for rows.Next() {
		q, err := scanOfflineQueue(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, q)
	}

	return out, rows.Err()
}

const offlineQueueColumns = `SELECT id, client_id, client_txn_id, action_type, payload, status, server_refs, applied_at, conflict_reason, submitted_by, created_at`

func scanOfflineQueue(row interface{ Scan(...any) error }) (*domain.OfflineQueue, error) {
	var q domain.OfflineQueue

	var payload, serverRefs []byte

	var actionType, status string

	var appliedAt sql.NullTime

	var conflictReason sql.NullString

	if err := row.Scan(&q.ID, &q.ClientID, &q.ClientTxnID, &actionType, &payload, &status, &serverRefs, &appliedAt, &conflictReason, &q.SubmittedBy, &q.CreatedAt); err != nil {
		return nil, err
	}

	q.ActionType = domain.ActionType(actionType)
	q.Status = domain.OfflineStatus(status)
	q.Payload = json.RawMessage(payload)
	q.ServerRefs = json.RawMessage(serverRefs)

	if appliedAt.Valid {
		q.AppliedAt = &appliedAt.Time
	}

	if conflictReason.Valid {
		q.ConflictReason = &conflictReason.String
	}

	return &q, nil
}

func (r *OfflinePostgreSQLRepository) MarkApplied(ctx context.Context, tx *sql.Tx, id int64, serverRefs json.RawMessage, appliedAt sql.NullTime) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE offline_queue SET status = $1, server_refs = $2, applied_at = $3 WHERE id = $4",
		string(domain.OfflineStatusApplied), []byte(serverRefs), appliedAt, id)

	return err
}

func (r *OfflinePostgreSQLRepository) MarkConflict(ctx context.Context, tx *sql.Tx, id int64, reason string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE offline_queue SET status = $1, conflict_reason = $2 WHERE id = $3",
		string(domain.OfflineStatusConflict), reason, id)

	return err
}

func (r *OfflinePostgreSQLRepository) MarkRejected(ctx context.Context, tx *sql.Tx, id int64, reason string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE offline_queue SET status = $1, conflict_reason = $2 WHERE id = $3",
		string(domain.OfflineStatusRejected), reason, id)

	return err
}

func (r *OfflinePostgreSQLRepository) CreateConflict(ctx context.Context, tx *sql.Tx, c *domain.OfflineConflict) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		"INSERT INTO offline_conflicts (queue_id, type, details, correlation_id) VALUES ($1,$2,$3,$4) RETURNING id",
		c.QueueID, string(c.Type), c.Details, c.CorrelationID).Scan(&id)

	return id, err
}

func (r *OfflinePostgreSQLRepository) FindConflictByID(ctx context.Context, id int64) (*domain.OfflineConflict, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	var c domain.OfflineConflict

	var resolution, resolvedBy sql.NullString

	var resolvedAt sql.NullTime

	err = db.QueryRowContext(ctx,
		`SELECT id, queue_id, type, details, correlation_id, resolution, resolved_by, resolved_at, created_at
		 FROM offline_conflicts WHERE id = $1`, id).
		Scan(&c.ID, &c.QueueID, &c.Type, &c.Details, &c.CorrelationID, &resolution, &resolvedBy, &resolvedAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errNotFound("OfflineConflict")
		}

		return nil, err
	}

	if resolution.Valid {
		c.Resolution = &resolution.String
	}

	if resolvedBy.Valid {
		c.ResolvedBy = &resolvedBy.String
	}

	if resolvedAt.Valid {
		c.ResolvedAt = &resolvedAt.Time
	}

	return &c, nil
}

func (r *OfflinePostgreSQLRepository) ResolveConflict(ctx context.Context, tx *sql.Tx, id int64, resolution, resolvedBy string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE offline_conflicts SET resolution = $1, resolved_by = $2, resolved_at = now() WHERE id = $3",
		resolution, resolvedBy, id)

	return err
}
