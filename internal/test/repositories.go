package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
)

// LedgerRepositoryStub keeps balances in memory and records applied transfers.
type LedgerRepositoryStub struct {
	BalanceFn         func(context.Context, int64) (int64, error)
	ApplyTransferFn   func(context.Context, *model.Transfer) (uuid.UUID, error)
	LatestEntryPassFn func(context.Context, int64, int64) (time.Time, error)
	InflowSinceFn     func(context.Context, int64, time.Time) (int64, error)

	Balances map[int64]int64
	Applied  []*model.Transfer
}

// Balance returns configured balance; absent users read as zero.
func (s *LedgerRepositoryStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return s.Balances[userID], nil
}

// ApplyTransfer records the transfer and mutates in-memory balances.
func (s *LedgerRepositoryStub) ApplyTransfer(ctx context.Context, transfer *model.Transfer) (uuid.UUID, error) {
	if s.ApplyTransferFn != nil {
		return s.ApplyTransferFn(ctx, transfer)
	}
	if s.Balances[transfer.SenderID] < transfer.Amount() {
		return uuid.Nil, domainErrors.ErrInsufficientBalance
	}
	if s.Balances == nil {
		s.Balances = make(map[int64]int64)
	}
	for _, entry := range transfer.Entries {
		s.Balances[entry.Account] += entry.Delta
	}
	s.Applied = append(s.Applied, transfer)
	return uuid.New(), nil
}

// LatestEntryPass returns the configured lookup result or not found.
func (s *LedgerRepositoryStub) LatestEntryPass(ctx context.Context, userID, broadcasterID int64) (time.Time, error) {
	if s.LatestEntryPassFn != nil {
		return s.LatestEntryPassFn(ctx, userID, broadcasterID)
	}
	return time.Time{}, domainErrors.ErrNotFound
}

// InflowSince sums via the override or returns zero.
func (s *LedgerRepositoryStub) InflowSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	if s.InflowSinceFn != nil {
		return s.InflowSinceFn(ctx, userID, since)
	}
	return 0, nil
}

// PayoutRepositoryStub stores payout requests in memory.
type PayoutRepositoryStub struct {
	CreateFn     func(context.Context, *model.PayoutRequest) (*model.PayoutRequest, error)
	GetByIDFn    func(context.Context, uuid.UUID) (*model.PayoutRequest, error)
	ApproveFn    func(context.Context, uuid.UUID, int64) (*model.PayoutRequest, error)
	ListByUserFn func(context.Context, int64) ([]model.PayoutRequest, error)

	Requests map[uuid.UUID]*model.PayoutRequest
}

// Create assigns an id and stores the request.
func (s *PayoutRepositoryStub) Create(ctx context.Context, request *model.PayoutRequest) (*model.PayoutRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, request)
	}
	if s.Requests == nil {
		s.Requests = make(map[uuid.UUID]*model.PayoutRequest)
	}
	stored := *request
	stored.ID = uuid.New()
	stored.RequestedAt = time.Now()
	s.Requests[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches a stored request or returns not found.
func (s *PayoutRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.PayoutRequest, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if request, ok := s.Requests[id]; ok {
		return request, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Approve transitions a stored pending request.
func (s *PayoutRepositoryStub) Approve(ctx context.Context, id uuid.UUID, adminID int64) (*model.PayoutRequest, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id, adminID)
	}
	request, ok := s.Requests[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if request.Status != model.PayoutStatusPending {
		return nil, domainErrors.ErrInvalidState
	}
	now := time.Now()
	request.Status = model.PayoutStatusApproved
	request.ApprovedBy = &adminID
	request.ApprovedAt = &now
	return request, nil
}

// ListByUser returns stored requests for the user.
func (s *PayoutRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.PayoutRequest
	for _, request := range s.Requests {
		if request.UserID == userID {
			result = append(result, *request)
		}
	}
	return result, nil
}

// CreditScoreRepositoryStub stores score rows and tracks upserts.
type CreditScoreRepositoryStub struct {
	GetFn         func(context.Context, int64) (*model.CreditScore, error)
	UpsertFn      func(context.Context, *model.CreditScore) error
	SelectStaleFn func(context.Context, time.Time, int) ([]int64, error)

	Scores   map[int64]*model.CreditScore
	Upserted []*model.CreditScore
	StaleIDs []int64
}

// Get returns the stored score or not found.
func (s *CreditScoreRepositoryStub) Get(ctx context.Context, userID int64) (*model.CreditScore, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	if score, ok := s.Scores[userID]; ok {
		return score, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Upsert records the written score.
func (s *CreditScoreRepositoryStub) Upsert(ctx context.Context, score *model.CreditScore) error {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, score)
	}
	if s.Scores == nil {
		s.Scores = make(map[int64]*model.CreditScore)
	}
	s.Scores[score.UserID] = score
	s.Upserted = append(s.Upserted, score)
	return nil
}

// SelectStale returns the configured id list.
func (s *CreditScoreRepositoryStub) SelectStale(ctx context.Context, olderThan time.Time, limit int) ([]int64, error) {
	if s.SelectStaleFn != nil {
		return s.SelectStaleFn(ctx, olderThan, limit)
	}
	if limit < len(s.StaleIDs) {
		return s.StaleIDs[:limit], nil
	}
	return s.StaleIDs, nil
}
