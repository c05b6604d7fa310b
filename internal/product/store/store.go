package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SearchProducts(ctx context.Context, businessID uuid.UUID, query string, limit int) ([]*product.Product, error) {
	q := `
		SELECT id, business_id, name, sku, price, stock
		FROM products
		WHERE business_id = $1 AND (name ILIKE '%' || $2 || '%' OR sku ILIKE '%' || $2 || '%')
		ORDER BY name ASC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, q, businessID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.SKU, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, businessID, id uuid.UUID) (*product.Product, error) {
	q := `
		SELECT id, business_id, name, sku, price, stock
		FROM products
		WHERE id = $1 AND business_id = $2
	`

	var p product.Product

	err := s.db.QueryRowContext(ctx, q, id, businessID).
		Scan(&p.ID, &p.BusinessID, &p.Name, &p.SKU, &p.Price, &p.Stock)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return &p, nil
}
