package commands

import (
	"context"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/pkg/clock"
	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/internal/pkg/errs"

	"github.com/google/uuid"
)

type SweepResult struct {
	Scanned int `json:"scanned"`
	Expired int `json:"expired"`
}

// SweeperCommands force-expires overdue requests in batches. The operation is
// idempotent: requests settled between the scan and the commit lose the
// version race and are skipped.
type SweeperCommands interface {
	SweepExpired(ctx context.Context) (SweepResult, error)
	ExpireIfDue(ctx context.Context, requestID uuid.UUID) (bool, error)
}

type sweeperCommandsImpl struct {
	store      OrderRequestStore
	dispatcher Dispatcher
	clock      clock.Clock
	batchSize  int
}

func NewSweeperCommands(store OrderRequestStore, dispatcher Dispatcher, clk clock.Clock, sweepCfg config.SweepConfig) SweeperCommands {
	return &sweeperCommandsImpl{
		store:      store,
		dispatcher: dispatcher,
		clock:      clk,
		batchSize:  sweepCfg.BatchSize,
	}
}

func (u *sweeperCommandsImpl) SweepExpired(ctx context.Context) (SweepResult, error) {
	now := u.clock.Now()
	due, err := u.store.ListDue(ctx, now, u.batchSize)
	if err != nil {
		return SweepResult{}, errs.Mark(err, ErrStoreFailed)
	}

	result := SweepResult{Scanned: len(due)}
	for _, req := range due {
		tr, err := req.Apply(negotiation.Expire{}, uuid.Nil, now)
		if err != nil {
			// Already settled by the time we got here.
			continue
		}
		if err := u.store.Commit(ctx, req, req.Version()); err != nil {
			if infra.IsKind(err, infra.KindStaleWrite) || infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return result, errs.Mark(err, ErrStoreFailed)
		}
		u.dispatcher.TransitionCommitted(req, tr)
		result.Expired++
	}
	return result, nil
}

// ExpireIfDue settles a single overdue request on demand, for deployments
// that expire on read instead of (or in addition to) the interval sweep.
func (u *sweeperCommandsImpl) ExpireIfDue(ctx context.Context, requestID uuid.UUID) (bool, error) {
	req, err := u.store.Get(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrStoreFailed)
	}

	now := u.clock.Now()
	if !req.IsDue(now) {
		return false, nil
	}

	tr, err := req.Apply(negotiation.Expire{}, uuid.Nil, now)
	if err != nil {
		return false, nil
	}
	if err := u.store.Commit(ctx, req, req.Version()); err != nil {
		if infra.IsKind(err, infra.KindStaleWrite) || infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrStoreFailed)
	}
	u.dispatcher.TransitionCommitted(req, tr)
	return true, nil
}
