package lead

import (
	"time"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/lead"
)

type leadResponse struct {
	ID           uuid.UUID  `json:"id"`
	StageID      *uuid.UUID `json:"stage_id,omitempty"`
	CustomerName string     `json:"customer_name"`
	Value        int64      `json:"value"`
	IsRevenue    bool       `json:"is_revenue"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	Assignee     *uuid.UUID `json:"assignee,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type itemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

func toResponse(l *lead.Lead) leadResponse {
	return leadResponse{
		ID:           l.ID,
		StageID:      l.StageID,
		CustomerName: l.CustomerName,
		Value:        l.Value,
		IsRevenue:    l.IsRevenue,
		ClosedAt:     l.ClosedAt,
		Assignee:     l.Assignee,
		CreatedAt:    l.CreatedAt,
	}
}

func toItemResponse(item *lead.Item) itemResponse {
	return itemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.Name,
		SKU:       item.SKU,
		Price:     item.Price,
		Quantity:  item.Quantity,
	}
}

func toItemList(items []*lead.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}

	return resp
}
