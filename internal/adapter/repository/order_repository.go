package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/likeam/mernpos/internal/domain/order"
	"github.com/likeam/mernpos/internal/infrastructure/database"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository implements order.Repository on PostgreSQL.
//
// Checkout runs as one transaction: product rows are locked FOR UPDATE in
// cart order, so two concurrent checkouts of the same product serialize on
// the row lock, and a failure at any step (missing product, short stock,
// short payment, duplicate order number) rolls back every stock decrement.
type OrderRepository struct {
	db *pgxpool.Pool

	// sellInactive keeps soft-deleted products purchasable, which is the
	// historical behavior of the store. Disable via POS_SELL_INACTIVE=false.
	sellInactive bool
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *pgxpool.Pool, sellInactive bool) order.Repository {
	return &OrderRepository{db: db, sellInactive: sellInactive}
}

// Create implements order.Repository.Create.
func (r *OrderRepository) Create(ctx context.Context, draft *order.Order, cart []order.CartItem) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, line := range cart {
			if _, err := uuid.Parse(line.ProductID); err != nil {
				return order.ProductNotFoundError{ID: line.ProductID}
			}

			var (
				name     string
				nameUrdu string
				price    float64
				stock    int
				isActive bool
			)
			err := tx.QueryRow(ctx,
				`SELECT name, name_urdu, price, stock, is_active FROM products WHERE id = $1 FOR UPDATE`,
				line.ProductID).Scan(&name, &nameUrdu, &price, &stock, &isActive)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return order.ProductNotFoundError{ID: line.ProductID}
				}
				return fmt.Errorf("failed to lock product %s: %w", line.ProductID, err)
			}

			if !isActive && !r.sellInactive {
				return order.ProductNotFoundError{ID: line.ProductID}
			}
			if line.Quantity > stock {
				return order.InsufficientStockError{ProductName: name, Available: stock}
			}

			draft.AddItem(line.ProductID, name, nameUrdu, price, line.Quantity)

			// The row lock already serializes this; the stock guard is the
			// invariant the schema enforces as well.
			tag, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id = $1 AND stock >= $2`,
				line.ProductID, line.Quantity)
			if err != nil {
				return fmt.Errorf("failed to decrement stock for %s: %w", line.ProductID, err)
			}
			if tag.RowsAffected() == 0 {
				return order.InsufficientStockError{ProductName: name, Available: stock}
			}
		}

		if err := draft.Finalize(); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO orders (id, order_number, subtotal, tax, discount, total, payment_method,
			                     cash_received, change, customer_name, customer_phone, order_date, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13)`,
			draft.ID, draft.OrderNumber, draft.Subtotal, draft.Tax, draft.Discount, draft.Total,
			string(draft.PaymentMethod), draft.CashReceived, draft.Change,
			draft.CustomerName, draft.CustomerPhone, draft.OrderDate, draft.CreatedAt)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return order.ErrDuplicateOrderNumber
			}
			return fmt.Errorf("failed to insert order: %w", err)
		}

		for _, it := range draft.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO order_items (id, order_id, product_id, product_name, product_name_urdu, quantity, price, total)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				it.ID, draft.ID, it.ProductID, it.ProductName, it.ProductNameUrdu, it.Quantity, it.Price, it.Total)
			if err != nil {
				return fmt.Errorf("failed to insert order item: %w", err)
			}
		}

		return nil
	})
}

const orderSelect = `
	SELECT id, order_number, subtotal, tax, discount, total, payment_method, cash_received,
	       change, COALESCE(customer_name, ''), COALESCE(customer_phone, ''), order_date, created_at
	FROM orders`

// FindByID implements order.Repository.FindByID.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrOrderNotFound
	}
	return r.findOne(ctx, orderSelect+` WHERE id = $1`, id)
}

// FindByNumber implements order.Repository.FindByNumber.
func (r *OrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	return r.findOne(ctx, orderSelect+` WHERE order_number = $1`, orderNumber)
}

// List implements order.Repository.List.
func (r *OrderRepository) List(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	query := orderSelect
	var args []interface{}
	var conds []string

	if !from.IsZero() {
		args = append(args, from)
		conds = append(conds, fmt.Sprintf("order_date >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		conds = append(conds, fmt.Sprintf("order_date < $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY order_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) findOne(ctx context.Context, query string, arg interface{}) (*order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if err := r.loadItems(ctx, []*order.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// loadItems fills Items for the given orders in one query.
func (r *OrderRepository) loadItems(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*order.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, product_name, product_name_urdu, quantity, price, total
		 FROM order_items WHERE order_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it order.Item
		var orderID string
		if err := rows.Scan(&it.ID, &orderID, &it.ProductID, &it.ProductName, &it.ProductNameUrdu,
			&it.Quantity, &it.Price, &it.Total); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var o order.Order
	var method string
	if err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Subtotal, &o.Tax, &o.Discount, &o.Total, &method,
		&o.CashReceived, &o.Change, &o.CustomerName, &o.CustomerPhone, &o.OrderDate, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.PaymentMethod = order.PaymentMethod(method)
	return &o, nil
}
