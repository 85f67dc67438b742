package commands

import (
	"context"
	"errors"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/pkg/clock"
	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound       = errs.New("order request not found")
	ErrRequestAlreadyExists  = errs.New("order request already exists")
	ErrRequestNoLongerActive = errs.New("order request is no longer active")
	ErrConcurrencyExhausted  = errs.New("order request kept changing, retry")
	ErrStoreFailed           = errs.New("order request store failed")
)

// maxCommitAttempts bounds the reload-reapply loop on version conflicts.
const maxCommitAttempts = 3

type CreateOrderRequestParams struct {
	ClientID     uuid.UUID
	SellerID     uuid.UUID
	Revisions    string
	DeliveryDays int
	PackageType  string
	SubTotal     decimal.Decimal
	Total        decimal.Decimal
	// Expires nil means "apply the configured default offer TTL".
	Expires *time.Time
}

type CounterOrderRequestParams struct {
	Revisions    string
	DeliveryDays int
	PackageType  string
	SubTotal     decimal.Decimal
	Total        decimal.Decimal
	Expires      *time.Time
}

type OrderRequestCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, p CreateOrderRequestParams) (uuid.UUID, error)
	Accept(ctx context.Context, requestID, actorID uuid.UUID) (negotiation.Status, error)
	Decline(ctx context.Context, requestID, actorID uuid.UUID) (negotiation.Status, error)
	Counter(ctx context.Context, requestID, actorID uuid.UUID, p CounterOrderRequestParams) (negotiation.Status, error)
	// Fulfill is invoked by the escrow collaborator, not by either party.
	Fulfill(ctx context.Context, requestID, orderID uuid.UUID) (negotiation.Status, error)
}

type orderRequestCommandsImpl struct {
	store      OrderRequestStore
	dispatcher Dispatcher
	clock      clock.Clock
	offerCfg   config.OfferConfig
}

func NewOrderRequestCommands(
	store OrderRequestStore,
	dispatcher Dispatcher,
	clk clock.Clock,
	offerCfg config.OfferConfig,
) OrderRequestCommands {
	return &orderRequestCommandsImpl{
		store:      store,
		dispatcher: dispatcher,
		clock:      clk,
		offerCfg:   offerCfg,
	}
}

func (u *orderRequestCommandsImpl) Create(ctx context.Context, actorID uuid.UUID, p CreateOrderRequestParams) (uuid.UUID, error) {
	pkg, err := negotiation.NewServicePackage(p.Revisions, p.DeliveryDays, p.PackageType)
	if err != nil {
		return uuid.Nil, err
	}
	pricing, err := negotiation.NewPricing(p.SubTotal, p.Total)
	if err != nil {
		return uuid.Nil, err
	}

	now := u.clock.Now()
	expires := u.resolveExpiry(p.Expires, now)

	req, err := negotiation.NewOrderRequest(p.ClientID, p.SellerID, actorID, pkg, pricing, expires, now)
	if err != nil {
		return uuid.Nil, err
	}

	if err := u.store.Create(ctx, req); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrRequestAlreadyExists)
		}
		return uuid.Nil, errs.Mark(err, ErrStoreFailed)
	}

	u.dispatcher.RequestCreated(req)
	return req.ID(), nil
}

func (u *orderRequestCommandsImpl) Accept(ctx context.Context, requestID, actorID uuid.UUID) (negotiation.Status, error) {
	return u.submit(ctx, requestID, actorID, negotiation.Accept{})
}

func (u *orderRequestCommandsImpl) Decline(ctx context.Context, requestID, actorID uuid.UUID) (negotiation.Status, error) {
	return u.submit(ctx, requestID, actorID, negotiation.Decline{})
}

func (u *orderRequestCommandsImpl) Counter(ctx context.Context, requestID, actorID uuid.UUID, p CounterOrderRequestParams) (negotiation.Status, error) {
	pkg, err := negotiation.NewServicePackage(p.Revisions, p.DeliveryDays, p.PackageType)
	if err != nil {
		return "", err
	}
	pricing, err := negotiation.NewPricing(p.SubTotal, p.Total)
	if err != nil {
		return "", err
	}
	expires := u.resolveExpiry(p.Expires, u.clock.Now())

	return u.submit(ctx, requestID, actorID, negotiation.Counter{
		Package: pkg,
		Pricing: pricing,
		Expires: expires,
	})
}

func (u *orderRequestCommandsImpl) Fulfill(ctx context.Context, requestID, orderID uuid.UUID) (negotiation.Status, error) {
	return u.submit(ctx, requestID, uuid.Nil, negotiation.Fulfill{OrderID: orderID})
}

// submit is the single write path for every action. On a version conflict it
// reloads and re-applies, so the action is re-validated against whatever won
// the race.
func (u *orderRequestCommandsImpl) submit(ctx context.Context, requestID, actorID uuid.UUID, action negotiation.Action) (negotiation.Status, error) {
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		req, err := u.store.Get(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return "", errs.Mark(err, ErrRequestNotFound)
			}
			return "", errs.Mark(err, ErrStoreFailed)
		}

		now := u.clock.Now()
		tr, err := req.Apply(action, actorID, now)
		if err != nil {
			if errors.Is(err, negotiation.ErrRequestExpired) {
				// The window closed before the actor got here. Expire the
				// request eagerly instead of waiting for the sweeper.
				u.expireOverdue(ctx, req, now)
				return "", errs.Mark(err, ErrRequestNoLongerActive)
			}
			return "", err
		}

		if err := u.store.Commit(ctx, req, req.Version()); err != nil {
			if infra.IsKind(err, infra.KindStaleWrite) {
				continue
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return "", errs.Mark(err, ErrRequestNotFound)
			}
			return "", errs.Mark(err, ErrStoreFailed)
		}

		u.dispatcher.TransitionCommitted(req, tr)
		return req.Status(), nil
	}
	return "", ErrConcurrencyExhausted
}

// expireOverdue moves an overdue request to expired on the lazy path. A lost
// race means someone else already settled it; that outcome stands.
func (u *orderRequestCommandsImpl) expireOverdue(ctx context.Context, req *negotiation.OrderRequest, now time.Time) {
	tr, err := req.Apply(negotiation.Expire{}, uuid.Nil, now)
	if err != nil {
		return
	}
	if err := u.store.Commit(ctx, req, req.Version()); err != nil {
		return
	}
	u.dispatcher.TransitionCommitted(req, tr)
}

func (u *orderRequestCommandsImpl) resolveExpiry(explicit *time.Time, now time.Time) time.Time {
	if explicit != nil {
		return *explicit
	}
	return now.Add(u.offerCfg.DefaultTTL)
}
