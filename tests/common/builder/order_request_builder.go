//go:build unit || integration

package builder

import (
	"time"

	"gig-negotiation/internal/domain/negotiation"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRequestBuilder struct {
	ClientID     uuid.UUID
	SellerID     uuid.UUID
	CreatedBy    uuid.UUID
	Revisions    string
	DeliveryDays int
	PackageType  string
	SubTotal     decimal.Decimal
	Total        decimal.Decimal
	Expires      time.Time
	Now          time.Time
}

func NewOrderRequestBuilder() *OrderRequestBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clientID := uuid.New()
	sub := decimal.NewFromInt(int64(gofakeit.Number(50, 500)))
	return &OrderRequestBuilder{
		ClientID:     clientID,
		SellerID:     uuid.New(),
		CreatedBy:    clientID,
		Revisions:    "2",
		DeliveryDays: gofakeit.Number(1, 14),
		PackageType:  "standard",
		SubTotal:     sub,
		Total:        sub.Add(decimal.NewFromInt(10)),
		Expires:      now.Add(72 * time.Hour),
		Now:          now,
	}
}

func (b *OrderRequestBuilder) With(mutate func(*OrderRequestBuilder)) *OrderRequestBuilder {
	mutate(b)
	return b
}

func (b *OrderRequestBuilder) BuildDomain() (*negotiation.OrderRequest, error) {
	pkg, err := negotiation.NewServicePackage(b.Revisions, b.DeliveryDays, b.PackageType)
	if err != nil {
		return nil, err
	}
	pricing, err := negotiation.NewPricing(b.SubTotal, b.Total)
	if err != nil {
		return nil, err
	}
	return negotiation.NewOrderRequest(b.ClientID, b.SellerID, b.CreatedBy, pkg, pricing, b.Expires, b.Now)
}

// BuildPackage returns just the service terms, for counter-offer actions.
func (b *OrderRequestBuilder) BuildPackage() negotiation.ServicePackage {
	pkg, err := negotiation.NewServicePackage(b.Revisions, b.DeliveryDays, b.PackageType)
	if err != nil {
		panic(err)
	}
	return pkg
}

func (b *OrderRequestBuilder) BuildPricing() negotiation.Pricing {
	pricing, err := negotiation.NewPricing(b.SubTotal, b.Total)
	if err != nil {
		panic(err)
	}
	return pricing
}
