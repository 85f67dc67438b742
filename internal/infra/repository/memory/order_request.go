// Package memory provides mutex-guarded in-memory stores with the same
// contract as the postgres repositories. They back unit tests and local
// experiments; the optimistic-concurrency semantics match Commit on the
// real store.
package memory

import (
	"context"
	"sync"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/infra"

	"github.com/google/uuid"
)

type versionedRequest struct {
	req     *negotiation.OrderRequest
	version int64
}

type OrderRequestStore struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]versionedRequest
}

func NewOrderRequestStore() *OrderRequestStore {
	return &OrderRequestStore{requests: make(map[uuid.UUID]versionedRequest)}
}

func (s *OrderRequestStore) Create(_ context.Context, req *negotiation.OrderRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[req.ID()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "order request already exists", nil)
	}
	s.requests[req.ID()] = versionedRequest{req: snapshot(req, 1), version: 1}
	return nil
}

func (s *OrderRequestStore) Get(_ context.Context, id uuid.UUID) (*negotiation.OrderRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "order request not found", nil)
	}
	return snapshot(stored.req, stored.version), nil
}

func (s *OrderRequestStore) Commit(_ context.Context, req *negotiation.OrderRequest, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.requests[req.ID()]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "order request not found", nil)
	}
	if stored.version != expectedVersion {
		return infra.WrapRepoErr(infra.KindStaleWrite, "order request version conflict", nil)
	}
	next := expectedVersion + 1
	s.requests[req.ID()] = versionedRequest{req: snapshot(req, next), version: next}
	return nil
}

func (s *OrderRequestStore) ListDue(_ context.Context, now time.Time, limit int) ([]*negotiation.OrderRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*negotiation.OrderRequest
	for _, stored := range s.requests {
		if len(out) >= limit {
			break
		}
		if stored.req.IsDue(now) {
			out = append(out, snapshot(stored.req, stored.version))
		}
	}
	return out, nil
}

// snapshot copies the entity so callers never alias stored state.
func snapshot(req *negotiation.OrderRequest, version int64) *negotiation.OrderRequest {
	var orderID *uuid.UUID
	if req.OrderID() != nil {
		v := *req.OrderID()
		orderID = &v
	}
	return negotiation.ReconstructOrderRequest(
		req.ID(), req.ClientID(), req.SellerID(),
		req.Status(), req.Package(), req.Pricing(),
		req.Expires(), req.ActionTaken(),
		req.LastActor(), req.TurnCount(),
		orderID, version,
		req.CreatedAt(), req.UpdatedAt(),
	)
}
