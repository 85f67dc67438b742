package response

import (
	"time"

	"gig-negotiation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderRequestResponse struct {
	ID           uuid.UUID       `json:"id"`
	ClientID     uuid.UUID       `json:"client_id"`
	SellerID     uuid.UUID       `json:"seller_id"`
	Status       string          `json:"status"`
	Revisions    string          `json:"revisions"`
	DeliveryDays int             `json:"delivery_days"`
	PackageType  string          `json:"package_type"`
	SubTotal     decimal.Decimal `json:"sub_total"`
	Total        decimal.Decimal `json:"total"`
	Expires      time.Time       `json:"expires"`
	ActionTaken  time.Time       `json:"action_taken"`
	TurnCount    int             `json:"turn_count"`
	OrderID      *uuid.UUID      `json:"order_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromOrderRequestView(v *queries.OrderRequestView) *OrderRequestResponse {
	return &OrderRequestResponse{
		ID:           v.ID,
		ClientID:     v.ClientID,
		SellerID:     v.SellerID,
		Status:       v.Status,
		Revisions:    v.Revisions,
		DeliveryDays: v.DeliveryDays,
		PackageType:  v.PackageType,
		SubTotal:     v.SubTotal,
		Total:        v.Total,
		Expires:      v.Expires,
		ActionTaken:  v.ActionTaken,
		TurnCount:    v.TurnCount,
		OrderID:      v.OrderID,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type OrderRequestListResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	Status      string          `json:"status"`
	PackageType string          `json:"package_type"`
	Total       decimal.Decimal `json:"total"`
	Expires     time.Time       `json:"expires"`
	ActionTaken time.Time       `json:"action_taken"`
}

func FromOrderRequestList(items []*queries.OrderRequestListItem) []*OrderRequestListResponse {
	return lo.Map(items, func(it *queries.OrderRequestListItem, _ int) *OrderRequestListResponse {
		return &OrderRequestListResponse{
			ID:          it.ID,
			ClientID:    it.ClientID,
			SellerID:    it.SellerID,
			Status:      it.Status,
			PackageType: it.PackageType,
			Total:       it.Total,
			Expires:     it.Expires,
			ActionTaken: it.ActionTaken,
		}
	})
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ActionResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
