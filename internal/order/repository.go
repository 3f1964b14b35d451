package order

import (
	"context"
	"database/sql"

	"digipasal-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx writes the order, its line items and the cart clear in
// one transaction so checkout never leaves a half-written order behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_id, payment_method, shipping_address, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, o.ID, o.UserID, o.PaymentMethod, o.ShippingAddress, o.Phone, o.Status,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.String("user_id", o.UserID), zap.Error(err))
		return err
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, title, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, o.Items[i].ID, o.ID, o.Items[i].ProductID, o.Items[i].Title, o.Items[i].Price, o.Items[i].Quantity)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.String("order_id", o.ID),
				zap.String("product_id", o.Items[i].ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	// The cart snapshot is consumed by the checkout.
	if _, err = tx.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, o.UserID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) GetOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.user_id, o.payment_method, o.shipping_address, o.phone, o.status,
		       o.created_at, o.updated_at,
		       i.id, i.product_id, i.title, i.price, i.quantity
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, i.id
	`, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query orders",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func (r *repository) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.user_id, o.payment_method, o.shipping_address, o.phone, o.status,
		       o.created_at, o.updated_at,
		       i.id, i.product_id, i.title, i.price, i.quantity
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = $1
		ORDER BY i.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders[0], nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// scanOrderRows folds the joined order/item rows into orders, preserving
// row order.
func scanOrderRows(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order
	byID := make(map[string]*Order)

	for rows.Next() {
		var (
			o        Order
			itemID   sql.NullString
			prodID   sql.NullString
			title    sql.NullString
			price    sql.NullInt64
			quantity sql.NullInt64
		)

		if err := rows.Scan(
			&o.ID, &o.UserID, &o.PaymentMethod, &o.ShippingAddress, &o.Phone, &o.Status,
			&o.CreatedAt, &o.UpdatedAt,
			&itemID, &prodID, &title, &price, &quantity,
		); err != nil {
			return nil, err
		}

		existing, ok := byID[o.ID]
		if !ok {
			existing = &o
			byID[o.ID] = existing
			orders = append(orders, existing)
		}

		if itemID.Valid {
			existing.Items = append(existing.Items, Item{
				ID:        itemID.String,
				OrderID:   existing.ID,
				ProductID: prodID.String,
				Title:     title.String,
				Price:     price.Int64,
				Quantity:  int(quantity.Int64),
			})
		}
	}

	return orders, rows.Err()
}
