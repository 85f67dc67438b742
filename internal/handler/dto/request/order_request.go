package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequestRequest struct {
	ClientID     uuid.UUID       `json:"client_id" binding:"required"`
	SellerID     uuid.UUID       `json:"seller_id" binding:"required"`
	Revisions    string          `json:"revisions" binding:"required"`
	DeliveryDays int             `json:"delivery_days" binding:"required,gt=0"`
	PackageType  string          `json:"package_type" binding:"required"`
	SubTotal     decimal.Decimal `json:"sub_total" binding:"required"`
	Total        decimal.Decimal `json:"total" binding:"required"`
	// Expires is optional; the server applies the default offer TTL when
	// omitted.
	Expires *time.Time `json:"expires,omitempty"`
}

type CounterOfferRequest struct {
	Revisions    string          `json:"revisions" binding:"required"`
	DeliveryDays int             `json:"delivery_days" binding:"required,gt=0"`
	PackageType  string          `json:"package_type" binding:"required"`
	SubTotal     decimal.Decimal `json:"sub_total" binding:"required"`
	Total        decimal.Decimal `json:"total" binding:"required"`
	Expires      *time.Time      `json:"expires,omitempty"`
}

type FulfillOrderRequestRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}
