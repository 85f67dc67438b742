package negotiation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrTotalBelowSub     = errors.New("total cannot be below sub total")
	ErrInvalidDelivery   = errors.New("delivery time must be positive")
	ErrEmptyPackageType  = errors.New("package type is required")
	ErrEmptyRevisions    = errors.New("revisions is required")
)

type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func MustMoney(amount decimal.Decimal) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Pricing couples the two monetary figures of an offer so the
// total >= subTotal rule is checked once, at construction.
type Pricing struct {
	subTotal Money
	total    Money
}

func NewPricing(subTotal, total decimal.Decimal) (Pricing, error) {
	sub, err := NewMoney(subTotal)
	if err != nil {
		return Pricing{}, err
	}
	tot, err := NewMoney(total)
	if err != nil {
		return Pricing{}, err
	}
	if tot.LessThan(sub) {
		return Pricing{}, ErrTotalBelowSub
	}
	return Pricing{subTotal: sub, total: tot}, nil
}

// ReconstructPricing rebuilds a Pricing from storage without re-validation.
func ReconstructPricing(subTotal, total decimal.Decimal) Pricing {
	return Pricing{subTotal: Money{amount: subTotal}, total: Money{amount: total}}
}

func (p Pricing) SubTotal() Money { return p.subTotal }
func (p Pricing) Total() Money    { return p.total }

// ServicePackage is the immutable snapshot of the negotiated service terms.
// A counter-offer replaces it wholesale rather than patching fields.
type ServicePackage struct {
	revisions    string
	deliveryDays int
	kind         string
}

func NewServicePackage(revisions string, deliveryDays int, kind string) (ServicePackage, error) {
	if strings.TrimSpace(revisions) == "" {
		return ServicePackage{}, ErrEmptyRevisions
	}
	if deliveryDays <= 0 {
		return ServicePackage{}, ErrInvalidDelivery
	}
	if strings.TrimSpace(kind) == "" {
		return ServicePackage{}, ErrEmptyPackageType
	}
	return ServicePackage{
		revisions:    strings.TrimSpace(revisions),
		deliveryDays: deliveryDays,
		kind:         strings.TrimSpace(kind),
	}, nil
}

// ReconstructServicePackage rebuilds a snapshot from storage without
// re-validation.
func ReconstructServicePackage(revisions string, deliveryDays int, kind string) ServicePackage {
	return ServicePackage{revisions: revisions, deliveryDays: deliveryDays, kind: kind}
}

func (p ServicePackage) Revisions() string { return p.revisions }
func (p ServicePackage) DeliveryDays() int { return p.deliveryDays }
func (p ServicePackage) Kind() string      { return p.kind }
