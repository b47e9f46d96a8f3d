package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqrl "github.com/Masterminds/squirrel"
	"github.com/bxcodec/dbresolver/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	cn "github.com/foodtrace/lotcore/common/constant"
	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/domain"
)

// errLotCodeAlreadyExists and errNotFound wrap the shared sentinels with the
// offending value so common.ValidateBusinessError can format a useful message.
func errLotCodeAlreadyExists(lotCode string) error {
	return fmt.Errorf("%w: %s", cn.ErrLotCodeAlreadyExists, lotCode)
}

func errNotFound(entity string) error {
	return fmt.Errorf("%w: %s", cn.ErrEntityNotFound, entity)
}

var psql = sqrl.StatementBuilder.PlaceholderFormat(sqrl.Dollar)

// LotPostgreSQLModel mirrors the lots table row.
type LotPostgreSQLModel struct {
	ID                int64
	LotCode           string
	ItemID            int64
	SupplierID        sql.NullInt64
	State             string
	ReceivedAt        time.Time
	AgingStartedAt    sql.NullTime
	ReadyAt           sql.NullTime
	ReleasedAt        sql.NullTime
	ExpiresAt         sql.NullTime
	CurrentLocationID sql.NullInt64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (m *LotPostgreSQLModel) ToEntity() *domain.Lot {
	l := &domain.Lot{
		ID:         m.ID,
		LotCode:    m.LotCode,
		ItemID:     m.ItemID,
		State:      domain.LotState(m.State),
		ReceivedAt: m.ReceivedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	if m.SupplierID.Valid {
		l.SupplierID = &m.SupplierID.Int64
	}

	if m.AgingStartedAt.Valid {
		l.AgingStartedAt = &m.AgingStartedAt.Time
	}

	if m.ReadyAt.Valid {
		l.ReadyAt = &m.ReadyAt.Time
	}

	if m.ReleasedAt.Valid {
		l.ReleasedAt = &m.ReleasedAt.Time
	}

	if m.ExpiresAt.Valid {
		l.ExpiresAt = &m.ExpiresAt.Time
	}

	if m.CurrentLocationID.Valid {
		l.CurrentLocationID = &m.CurrentLocationID.Int64
	}

	return l
}

func FromLotEntity(l *domain.Lot) *LotPostgreSQLModel {
	m := &LotPostgreSQLModel{
		ID:         l.ID,
		LotCode:    l.LotCode,
		ItemID:     l.ItemID,
		State:      string(l.State),
		ReceivedAt: l.ReceivedAt,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}

	if l.SupplierID != nil {
		m.SupplierID = sql.NullInt64{Int64: *l.SupplierID, Valid: true}
	}

	if l.AgingStartedAt != nil {
		m.AgingStartedAt = sql.NullTime{Time: *l.AgingStartedAt, Valid: true}
	}

	if l.ReadyAt != nil {
		m.ReadyAt = sql.NullTime{Time: *l.ReadyAt, Valid: true}
	}

	if l.ReleasedAt != nil {
		m.ReleasedAt = sql.NullTime{Time: *l.ReleasedAt, Valid: true}
	}

	if l.ExpiresAt != nil {
		m.ExpiresAt = sql.NullTime{Time: *l.ExpiresAt, Valid: true}
	}

	if l.CurrentLocationID != nil {
		m.CurrentLocationID = sql.NullInt64{Int64: *l.CurrentLocationID, Valid: true}
	}

	return m
}

// LotRepository persists and retrieves Lot aggregates. Every method that
// consumes availability must be called against a transaction that already
// holds the row lock obtained via LockByID.
//go:generate mockgen --destination=postgresmock/lot_mock.go --package=postgresmock . LotRepository
type LotRepository interface {
	Create(ctx context.Context, tx *sql.Tx, l *domain.Lot) (int64, error)
	LockByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.Lot, error)
	FindByID(ctx context.Context, id int64) (*domain.Lot, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.Lot, error)
	UpdateLifecycle(ctx context.Context, tx *sql.Tx, l *domain.Lot) error
	LotCodeExists(ctx context.Context, tx *sql.Tx, lotCode string) (bool, error)
	// ListByStates returns lots in the given states, used by the at-risk
	// report to scan {aging, released, quarantined}.
	ListByStates(ctx context.Context, states []domain.LotState, limit, offset int) ([]*domain.Lot, error)
	// ListExcludingStates returns lots not in the given states, used by the
	// stock report to exclude disposed lots.
	ListExcludingStates(ctx context.Context, states []domain.LotState, limit, offset int) ([]*domain.Lot, error)
}

type LotPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

func NewLotPostgreSQLRepository(pc *mpostgres.PostgresConnection) *LotPostgreSQLRepository {
	return &LotPostgreSQLRepository{connection: pc, tableName: "lots"}
}

func (r *LotPostgreSQLRepository) Create(ctx context.Context, tx *sql.Tx, l *domain.Lot) (int64, error) {
	m := FromLotEntity(l)

	query, args, err := psql.Insert(r.tableName).
		Columns("lot_code", "item_id", "supplier_id", "state", "received_at",
			"aging_started_at", "ready_at", "released_at", "expires_at", "current_location_id").
		Values(m.LotCode, m.ItemID, m.SupplierID, m.State, m.ReceivedAt,
			m.AgingStartedAt, m.ReadyAt, m.ReleasedAt, m.ExpiresAt, m.CurrentLocationID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, errLotCodeAlreadyExists(m.LotCode)
		}

		return 0, err
	}

	return id, nil
}

func (r *LotPostgreSQLRepository) scanRow(row interface{ Scan(...any) error }) (*LotPostgreSQLModel, error) {
	var m LotPostgreSQLModel

	if err := row.Scan(&m.ID, &m.LotCode, &m.ItemID, &m.SupplierID, &m.State, &m.ReceivedAt,
		&m.AgingStartedAt, &m.ReadyAt, &m.ReleasedAt, &m.ExpiresAt, &m.CurrentLocationID,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

const lotColumns = "id, lot_code, item_id, supplier_id, state, received_at, aging_started_at, ready_at, released_at, expires_at, current_location_id, created_at, updated_at"

// LockByID selects the lot row FOR UPDATE inside the caller's transaction,
// as required before any read of availability that the transaction will act on.
func (r *LotPostgreSQLRepository) LockByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.Lot, error) {
	query := "SELECT " + lotColumns + " FROM " + r.tableName + " WHERE id = $1 FOR UPDATE"

	m, err := r.scanRow(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errNotFound("Lot")
		}

		return nil, err
	}

	return m.ToEntity(), nil
}

func (r *LotPostgreSQLRepository) FindByID(ctx context.Context, id int64) (*domain.Lot, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + lotColumns + " FROM " + r.tableName + " WHERE id = $1"

	m, err := r.scanRow(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errNotFound("Lot")
		}

		return nil, err
	}

	return m.ToEntity(), nil
}

// FindByIDs is used by the Traceability Engine's batched closure walk.
func (r *LotPostgreSQLRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.Lot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + lotColumns + " FROM " + r.tableName + " WHERE id = ANY($1)"

	rows, err := db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Lot

	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, m.ToEntity())
	}

	return out, rows.Err()
}

// UpdateLifecycle writes back the lifecycle columns guarded by the Audit
// Guard trigger. Must run in the same transaction as the LotEvent insert
// that justifies the change, and after that insert (see §5 ordering).
func (r *LotPostgreSQLRepository) UpdateLifecycle(ctx context.Context, tx *sql.Tx, l *domain.Lot) error {
	m := FromLotEntity(l)

	query, args, err := psql.Update(r.tableName).
		Set("state", m.State).
		Set("aging_started_at", m.AgingStartedAt).
		Set("ready_at", m.ReadyAt).
		Set("released_at", m.ReleasedAt).
		Set("expires_at", m.ExpiresAt).
		Set("current_location_id", m.CurrentLocationID).
		Set("updated_at", sqrl.Expr("now()")).
		Where(sqrl.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)

	return err
}

func (r *LotPostgreSQLRepository) LotCodeExists(ctx context.Context, tx *sql.Tx, lotCode string) (bool, error) {
	var exists bool

	err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM "+r.tableName+" WHERE lot_code = $1)", lotCode).Scan(&exists)

	return exists, err
}

func lotStateStrings(states []domain.LotState) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}

	return out
}

// ListByStates returns lots whose state is one of states, oldest first.
func (r *LotPostgreSQLRepository) ListByStates(ctx context.Context, states []domain.LotState, limit, offset int) ([]*domain.Lot, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(lotColumns).
		From(r.tableName).
		Where(sqrl.Eq{"state": lotStateStrings(states)}).
		OrderBy("received_at").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanLots(ctx, db, query, args...)
}

// ListExcludingStates returns lots whose state is not one of states, most
// recently received first.
func (r *LotPostgreSQLRepository) ListExcludingStates(ctx context.Context, states []domain.LotState, limit, offset int) ([]*domain.Lot, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(lotColumns).
		From(r.tableName).
		Where(sqrl.NotEq{"state": lotStateStrings(states)}).
		OrderBy("received_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanLots(ctx, db, query, args...)
}

func (r *LotPostgreSQLRepository) scanLots(ctx context.Context, db dbresolver.DB, query string, args ...any) ([]*domain.Lot, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Lot

	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, m.ToEntity())
	}

	return out, rows.Err()
}

// MovementRepository persists InventoryMovement rows, the ground truth for
// the Availability Oracle's on-hand arithmetic.
//go:generate mockgen --destination=postgresmock/movement_mock.go --package=postgresmock . MovementRepository
type MovementRepository interface {
	Create(ctx context.Context, tx *sql.Tx, mv *domain.InventoryMovement) (int64, error)
	SumByLot(ctx context.Context, q SQLQueryer, lotID int64) (onHand decimal.Decimal, err error)
	SumReceivedByLot(ctx context.Context, q SQLQueryer, lotID int64) (received decimal.Decimal, err error)
	ListByLot(ctx context.Context, lotID int64, limit, offset int64) ([]*domain.InventoryMovement, error)
}

// SQLQueryer abstracts over *sql.Tx and a pooled connection so on-hand reads
// can run either inside the caller's transaction (write paths) or against
// the pool (read-only reports).
type SQLQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type MovementPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

func NewMovementPostgreSQLRepository(pc *mpostgres.PostgresConnection) *MovementPostgreSQLRepository {
	return &MovementPostgreSQLRepository{connection: pc, tableName: "inventory_movements"}
}

func (r *MovementPostgreSQLRepository) Create(ctx context.Context, tx *sql.Tx, mv *domain.InventoryMovement) (int64, error) {
	var fromLoc, toLoc sql.NullInt64
	if mv.FromLocationID != nil {
		fromLoc = sql.NullInt64{Int64: *mv.FromLocationID, Valid: true}
	}

	if mv.ToLocationID != nil {
		toLoc = sql.NullInt64{Int64: *mv.ToLocationID, Valid: true}
	}

	query, args, err := psql.Insert(r.tableName).
		Columns("lot_id", "from_location_id", "to_location_id", "quantity_kg", "moved_at", "move_type").
		Values(mv.LotID, fromLoc, toLoc, mv.QuantityKg, mv.MovedAt, string(mv.MoveType)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)

	return id, err
}

// SumByLot computes on_hand_kg = ΣIN − ΣOUT − ΣLOSS per §4.2, clamped at zero
// by the caller.
func (r *MovementPostgreSQLRepository) SumByLot(ctx context.Context, q SQLQueryer, lotID int64) (decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx, "SELECT move_type, quantity_kg FROM "+r.tableName+" WHERE lot_id = $1", lotID)
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	total := decimal.Zero

	for rows.Next() {
		var moveType string

		var qty decimal.Decimal

		if err := rows.Scan(&moveType, &qty); err != nil {
			return decimal.Zero, err
		}

		mt := domain.MoveType(moveType)

		switch {
		case mt.IsIn():
			total = total.Add(qty)
		case mt.IsOut(), mt.IsLoss():
			total = total.Sub(qty)
		}
	}

	return total, rows.Err()
}

// SumReceivedByLot totals quantity_kg of receiving movements only, the
// historical intake ceiling a breakdown's input_quantity_kg may not exceed.
func (r *MovementPostgreSQLRepository) SumReceivedByLot(ctx context.Context, q SQLQueryer, lotID int64) (decimal.Decimal, error) {
	row := q.QueryRowContext(ctx, "SELECT COALESCE(SUM(quantity_kg), 0) FROM "+r.tableName+" WHERE lot_id = $1 AND move_type = $2", lotID, string(domain.MoveTypeReceiving))

	var total decimal.Decimal

	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *MovementPostgreSQLRepository) ListByLot(ctx context.Context, lotID int64, limit, offset int64) ([]*domain.InventoryMovement, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select("id", "lot_id", "from_location_id", "to_location_id", "quantity_kg", "moved_at", "move_type", "created_at").
		From(r.tableName).
		Where(sqrl.Eq{"lot_id": lotID}).
		OrderBy("moved_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.InventoryMovement

	for rows.Next() {
		var mv domain.InventoryMovement

		var fromLoc, toLoc sql.NullInt64

		var moveType string

		if err := rows.Scan(&mv.ID, &mv.LotID, &fromLoc, &toLoc, &mv.QuantityKg, &mv.MovedAt, &moveType, &mv.CreatedAt); err != nil {
			return nil, err
		}

		mv.MoveType = domain.MoveType(moveType)
		if fromLoc.Valid {
			mv.FromLocationID = &fromLoc.Int64
		}

		if toLoc.Valid {
			mv.ToLocationID = &toLoc.Int64
		}

		out = append(out, &mv)
	}

	return out, rows.Err()
}

// EventRepository persists LotEvent rows — the audit trail the Audit Guard
// trigger requires to exist before any lifecycle-column change commits.
//go:generate mockgen --destination=postgresmock/event_mock.go --package=postgresmock . EventRepository
type EventRepository interface {
	Create(ctx context.Context, tx *sql.Tx, e *domain.LotEvent) (int64, error)
	ListByLot(ctx context.Context, lotID int64, limit, offset int64) ([]*domain.LotEvent, error)
}

type EventPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

func NewEventPostgreSQLRepository(pc *mpostgres.PostgresConnection) *EventPostgreSQLRepository {
	return &EventPostgreSQLRepository{connection: pc, tableName: "lot_events"}
}

// Create inserts the event using the current transaction id (txid_current())
// so the Audit Guard trigger can match it against the concurrent lot update.
func (r *EventPostgreSQLRepository) Create(ctx context.Context, tx *sql.Tx, e *domain.LotEvent) (int64, error) {
	var reason, notes sql.NullString
	if e.Reason != nil {
		reason = sql.NullString{String: *e.Reason, Valid: true}
	}

	if e.Notes != nil {
		notes = sql.NullString{String: *e.Notes, Valid: true}
	}

	query := `INSERT INTO lot_events (lot_id, event_type, reason, notes, performed_by, performed_at, txid)
		VALUES ($1, $2, $3, $4, $5, $6, txid_current()) RETURNING id`

	var id int64
	err := tx.QueryRowContext(ctx, query, e.LotID, string(e.EventType), reason, notes, e.PerformedBy, e.PerformedAt).Scan(&id)

	return id, err
}

func (r *EventPostgreSQLRepository) ListByLot(ctx context.Context, lotID int64, limit, offset int64) ([]*domain.LotEvent, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select("id", "lot_id", "event_type", "reason", "notes", "performed_by", "performed_at", "txid", "created_at").
		From(r.tableName).
		Where(sqrl.Eq{"lot_id": lotID}).
		OrderBy("performed_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.LotEvent

	for rows.Next() {
		var e domain.LotEvent

		var eventType string

		var reason, notes sql.NullString

		if err := rows.Scan(&e.ID, &e.LotID, &eventType, &reason, &notes, &e.PerformedBy, &e.PerformedAt, &e.TxID, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.EventType = domain.EventType(eventType)
		if reason.Valid {
			e.Reason = &reason.String
		}

		if notes.Valid {
			e.Notes = &notes.String
		}

		out = append(out, &e)
	}

	return out, rows.Err()
}
