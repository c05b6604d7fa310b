package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/sale"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// orderLockKey serializes order-number generation per business.
func orderLockKey(businessID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(businessID[:])

	return int64(h.Sum64())
}

// CommitSale performs the whole conversion as one database transaction:
// every line's stock decrement, the sale row with its generated order
// number, and the line snapshots. A guarded decrement that matches no
// row means the product lacks stock and aborts everything.
func (s *Store) CommitSale(ctx context.Context, req sale.CommitRequest) (*sale.CommitResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning sale tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", orderLockKey(req.BusinessID)); err != nil {
		return nil, fmt.Errorf("acquiring order lock: %w", err)
	}

	stockQuery := `
		UPDATE products
		SET stock = stock - $1
		WHERE id = $2 AND business_id = $3 AND stock >= $1
	`

	for _, item := range req.Items {
		res, err := tx.ExecContext(ctx, stockQuery, item.Quantity, item.ProductID, req.BusinessID)
		if err != nil {
			return nil, fmt.Errorf("decrementing stock: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("decrementing stock: %w", err)
		}

		if affected == 0 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, sale.ErrInsufficientStock)
		}
	}

	var orderNumber int64

	numberQuery := `
		SELECT COALESCE(MAX(order_number), 0) + 1
		FROM sales
		WHERE business_id = $1
	`
	if err := tx.QueryRowContext(ctx, numberQuery, req.BusinessID).Scan(&orderNumber); err != nil {
		return nil, fmt.Errorf("generating order number: %w", err)
	}

	saleQuery := `
		INSERT INTO sales (business_id, employee_id, lead_id, order_number, subtotal, applied_tax_percentage, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`

	var saleID uuid.UUID

	err = tx.QueryRowContext(ctx, saleQuery,
		req.BusinessID,
		req.EmployeeID,
		req.LeadID,
		orderNumber,
		req.Subtotal,
		req.AppliedTaxPercent,
		req.Total,
	).Scan(&saleID)
	if err != nil {
		return nil, fmt.Errorf("creating sale: %w", err)
	}

	lineQuery := `
		INSERT INTO sale_lines (sale_id, business_id, product_id, name, sku, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, item := range req.Items {
		if _, err := tx.ExecContext(ctx, lineQuery,
			saleID,
			req.BusinessID,
			item.ProductID,
			item.Name,
			item.SKU,
			item.Price,
			item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("creating sale line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	return &sale.CommitResult{SaleID: saleID, OrderNumber: orderNumber}, nil
}

func (s *Store) GetSale(ctx context.Context, businessID, id uuid.UUID) (*sale.Sale, error) {
	query := `
		SELECT id, business_id, order_number, subtotal,
		       total - subtotal AS applied_tax, total, created_at
		FROM sales
		WHERE id = $1 AND business_id = $2
	`

	var sl sale.Sale

	err := s.db.QueryRowContext(ctx, query, id, businessID).Scan(
		&sl.ID, &sl.BusinessID, &sl.OrderNumber, &sl.Subtotal,
		&sl.AppliedTax, &sl.Total, &sl.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	return &sl, nil
}

func (s *Store) ListLines(ctx context.Context, businessID, saleID uuid.UUID) ([]*sale.Line, error) {
	query := `
		SELECT id, sale_id, product_id, name, sku, price, quantity
		FROM sale_lines
		WHERE sale_id = $1 AND business_id = $2
	`

	rows, err := s.db.QueryContext(ctx, query, saleID, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing sale lines: %w", err)
	}
	defer rows.Close()

	var lines []*sale.Line

	for rows.Next() {
		var ln sale.Line
		if err := rows.Scan(&ln.ID, &ln.SaleID, &ln.ProductID, &ln.Name, &ln.SKU, &ln.Price, &ln.Quantity); err != nil {
			return nil, fmt.Errorf("scanning sale line: %w", err)
		}

		lines = append(lines, &ln)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale line rows: %w", err)
	}

	return lines, nil
}
