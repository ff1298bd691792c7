package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	"github.com/trollcity/economy/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a pgxmock pool through it.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. It is the single
// place where economy mutations become transactions; everything above it
// assumes all-or-nothing semantics.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

type ledgerRepository struct {
	storage *Storage
}

type payoutRepository struct {
	storage *Storage
}

type creditScoreRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Ledger() repository.LedgerRepository {
	return &ledgerRepository{storage: s}
}

func (s *Storage) Payouts() repository.PayoutRepository {
	return &payoutRepository{storage: s}
}

func (s *Storage) CreditScores() repository.CreditScoreRepository {
	return &creditScoreRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS balances (
            user_id BIGINT PRIMARY KEY,
            coins BIGINT NOT NULL DEFAULT 0 CHECK (coins >= 0)
        )`,
		`CREATE TABLE IF NOT EXISTS transfers (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            kind TEXT NOT NULL,
            sender_id BIGINT NOT NULL,
            recipient_id BIGINT NOT NULL,
            amount BIGINT NOT NULL,
            stream_id TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS transfer_entries (
            id BIGSERIAL PRIMARY KEY,
            transfer_id UUID NOT NULL REFERENCES transfers(id),
            account_id BIGINT NOT NULL,
            delta BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payout_requests (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            user_id BIGINT NOT NULL,
            amount_coins BIGINT NOT NULL,
            amount_usd DOUBLE PRECISION NOT NULL,
            currency TEXT NOT NULL DEFAULT 'USD',
            status TEXT NOT NULL DEFAULT 'pending',
            manual_review BOOLEAN NOT NULL DEFAULT FALSE,
            approved_by BIGINT,
            approved_at TIMESTAMPTZ,
            requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS credit_scores (
            user_id BIGINT PRIMARY KEY,
            score INT NOT NULL,
            tier TEXT NOT NULL,
            trend_7d INT NOT NULL DEFAULT 0,
            trend_30d INT NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_transfers_pair ON transfers(sender_id, recipient_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_account ON transfer_entries(account_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payouts_user ON payout_requests(user_id, requested_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- LedgerRepository implementation ---

func (r *ledgerRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT coins FROM balances WHERE user_id=$1`
	var coins int64
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return coins, nil
}

func (r *ledgerRepository) ApplyTransfer(ctx context.Context, transfer *model.Transfer) (uuid.UUID, error) {
	if len(transfer.Entries) == 0 || !transfer.Balanced() {
		return uuid.Nil, domainErrors.ErrInvalidAmount
	}

	amount := transfer.Amount()
	var txID uuid.UUID
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT coins FROM balances WHERE user_id=$1 FOR UPDATE`
		var coins int64
		if err := tx.QueryRow(ctx, lockQuery, transfer.SenderID).Scan(&coins); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				coins = 0
			} else {
				return err
			}
		}
		if coins < amount {
			return domainErrors.ErrInsufficientBalance
		}

		const insertTransfer = `INSERT INTO transfers (kind, sender_id, recipient_id, amount, stream_id, message)
                                VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		if err := tx.QueryRow(ctx, insertTransfer,
			transfer.Kind, transfer.SenderID, transfer.Recipient(), amount, transfer.StreamID, transfer.Message,
		).Scan(&txID); err != nil {
			return err
		}

		const insertEntry = `INSERT INTO transfer_entries (transfer_id, account_id, delta) VALUES ($1, $2, $3)`
		const applyDelta = `INSERT INTO balances (user_id, coins) VALUES ($1, $2)
                            ON CONFLICT (user_id) DO UPDATE SET coins = balances.coins + EXCLUDED.coins`
		for _, entry := range transfer.Entries {
			if _, err := tx.Exec(ctx, insertEntry, txID, entry.Account, entry.Delta); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, applyDelta, entry.Account, entry.Delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return txID, nil
}

func (r *ledgerRepository) LatestEntryPass(ctx context.Context, userID, broadcasterID int64) (time.Time, error) {
	const query = `SELECT created_at FROM transfers
                   WHERE kind=$1 AND sender_id=$2 AND recipient_id=$3
                   ORDER BY created_at DESC LIMIT 1`
	var createdAt time.Time
	err := r.storage.pool.QueryRow(ctx, query, model.TransferKindEntryPass, userID, broadcasterID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domainErrors.ErrNotFound
		}
		return time.Time{}, err
	}
	return createdAt, nil
}

func (r *ledgerRepository) InflowSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	const query = `SELECT COALESCE(SUM(delta), 0) FROM transfer_entries
                   WHERE account_id=$1 AND delta > 0 AND created_at >= $2`
	var sum int64
	if err := r.storage.pool.QueryRow(ctx, query, userID, since).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

// --- PayoutRepository implementation ---

func (r *payoutRepository) Create(ctx context.Context, request *model.PayoutRequest) (*model.PayoutRequest, error) {
	const query = `INSERT INTO payout_requests (user_id, amount_coins, amount_usd, currency, status, manual_review)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, requested_at`
	created := *request
	err := r.storage.pool.QueryRow(ctx, query,
		request.UserID, request.AmountCoins, request.AmountUSD, request.Currency, request.Status, request.ManualReview,
	).Scan(&created.ID, &created.RequestedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const payoutColumns = `id, user_id, amount_coins, amount_usd, currency, status, manual_review, approved_by, approved_at, requested_at`

func scanPayout(row pgx.Row, p *model.PayoutRequest) error {
	return row.Scan(&p.ID, &p.UserID, &p.AmountCoins, &p.AmountUSD, &p.Currency,
		&p.Status, &p.ManualReview, &p.ApprovedBy, &p.ApprovedAt, &p.RequestedAt)
}

func (r *payoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PayoutRequest, error) {
	const query = `SELECT ` + payoutColumns + ` FROM payout_requests WHERE id=$1`
	var p model.PayoutRequest
	if err := scanPayout(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *payoutRepository) Approve(ctx context.Context, id uuid.UUID, adminID int64) (*model.PayoutRequest, error) {
	var approved model.PayoutRequest
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + payoutColumns + ` FROM payout_requests WHERE id=$1 FOR UPDATE`
		if err := scanPayout(tx.QueryRow(ctx, selectQuery, id), &approved); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if approved.Status != model.PayoutStatusPending {
			return domainErrors.ErrInvalidState
		}

		const lockBalance = `SELECT coins FROM balances WHERE user_id=$1 FOR UPDATE`
		var coins int64
		if err := tx.QueryRow(ctx, lockBalance, approved.UserID).Scan(&coins); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				coins = 0
			} else {
				return err
			}
		}
		if coins < approved.AmountCoins {
			return domainErrors.ErrInsufficientBalance
		}

		const debit = `UPDATE balances SET coins = coins - $2 WHERE user_id=$1`
		if _, err := tx.Exec(ctx, debit, approved.UserID, approved.AmountCoins); err != nil {
			return err
		}

		const update = `UPDATE payout_requests SET status=$2, approved_by=$3, approved_at=NOW()
                        WHERE id=$1 RETURNING approved_at`
		var approvedAt time.Time
		if err := tx.QueryRow(ctx, update, id, model.PayoutStatusApproved, adminID).Scan(&approvedAt); err != nil {
			return err
		}
		approved.Status = model.PayoutStatusApproved
		approved.ApprovedBy = &adminID
		approved.ApprovedAt = &approvedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

func (r *payoutRepository) ListByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	const query = `SELECT ` + payoutColumns + ` FROM payout_requests
                   WHERE user_id=$1 ORDER BY requested_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PayoutRequest
	for rows.Next() {
		var p model.PayoutRequest
		if err := scanPayout(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- CreditScoreRepository implementation ---

func (r *creditScoreRepository) Get(ctx context.Context, userID int64) (*model.CreditScore, error) {
	const query = `SELECT user_id, score, tier, trend_7d, trend_30d, updated_at
                   FROM credit_scores WHERE user_id=$1`
	var score model.CreditScore
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(
		&score.UserID, &score.Score, &score.Tier, &score.Trend7d, &score.Trend30d, &score.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}

func (r *creditScoreRepository) Upsert(ctx context.Context, score *model.CreditScore) error {
	const query = `INSERT INTO credit_scores (user_id, score, tier, trend_7d, trend_30d, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   ON CONFLICT (user_id) DO UPDATE
                   SET score=EXCLUDED.score, tier=EXCLUDED.tier,
                       trend_7d=EXCLUDED.trend_7d, trend_30d=EXCLUDED.trend_30d,
                       updated_at=EXCLUDED.updated_at`
	_, err := r.storage.pool.Exec(ctx, query,
		score.UserID, score.Score, score.Tier, score.Trend7d, score.Trend30d, score.UpdatedAt,
	)
	return err
}

func (r *creditScoreRepository) SelectStale(ctx context.Context, olderThan time.Time, limit int) ([]int64, error) {
	const query = `SELECT b.user_id FROM balances b
                   LEFT JOIN credit_scores cs ON cs.user_id = b.user_id
                   WHERE cs.user_id IS NULL OR cs.updated_at < $1
                   ORDER BY cs.updated_at NULLS FIRST
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes the underlying connection pool.
func (s *Storage) Pool() DBPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
