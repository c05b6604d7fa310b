package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/product"
	"github.com/nveloso/pipeflow/internal/sale"
)

type productResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	SKU   string    `json:"sku"`
	Price int64     `json:"price"`
	Stock int       `json:"stock"`
}

type commitResponse struct {
	SaleID      uuid.UUID `json:"sale_id"`
	OrderNumber int64     `json:"order_number"`
}

type lineResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

type saleResponse struct {
	ID          uuid.UUID      `json:"id"`
	OrderNumber int64          `json:"order_number"`
	Subtotal    int64          `json:"subtotal"`
	AppliedTax  int64          `json:"applied_tax"`
	Total       int64          `json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	Lines       []lineResponse `json:"lines"`
}

func toProductResponse(p *product.Product) productResponse {
	return productResponse{
		ID:    p.ID,
		Name:  p.Name,
		SKU:   p.SKU,
		Price: p.Price,
		Stock: p.Stock,
	}
}

func toProductList(products []*product.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}

	return resp
}

func toCommitResponse(result *sale.CommitResult) commitResponse {
	return commitResponse{
		SaleID:      result.SaleID,
		OrderNumber: result.OrderNumber,
	}
}

func toSaleResponse(s *sale.Sale, lines []*sale.Line) saleResponse {
	resp := saleResponse{
		ID:          s.ID,
		OrderNumber: s.OrderNumber,
		Subtotal:    s.Subtotal,
		AppliedTax:  s.AppliedTax,
		Total:       s.Total,
		CreatedAt:   s.CreatedAt,
		Lines:       make([]lineResponse, len(lines)),
	}

	for i, l := range lines {
		resp.Lines[i] = lineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			SKU:       l.SKU,
			Price:     l.Price,
			Quantity:  l.Quantity,
		}
	}

	return resp
}
