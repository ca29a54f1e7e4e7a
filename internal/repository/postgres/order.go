package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mtw/paperstore/internal/domain"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, order_number, customer, delivery, payment_type, items,
		subtotal, delivery_charges, promo_code, promo_discount, total,
		status, payment_status, estimated_delivery, created_at`

// CreateOrder сохраняет заказ. Номер заказа выдается из последовательности
// order_numbers в формате MTW%012d: счетчик долговечен и не сбрасывается
// при перезапуске.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to marshal customer: %w", err)
	}
	delivery, err := json.Marshal(order.Delivery)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to marshal delivery: %w", err)
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to marshal items: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO orders (id, order_number, customer, delivery, payment_type, items,
		                     subtotal, delivery_charges, promo_code, promo_discount, total,
		                     status, payment_status, estimated_delivery)
		 VALUES ($1, 'MTW' || lpad(nextval('order_numbers')::text, 12, '0'),
		         $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING order_number, created_at`,
		order.ID, customer, delivery, order.PaymentType, items,
		order.Subtotal, order.DeliveryCharges, order.PromoCode, order.PromoDiscount, order.Total,
		order.Status, order.PaymentStatus, order.EstimatedDelivery,
	).Scan(&order.Number, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create order %q: %w", order.ID, err)
	}

	return order, nil
}

// GetOrderByID получает заказ по идентификатору
func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %q: %w", id, err)
	}

	return order, nil
}

// GetOrders возвращает заказы от новых к старым с необязательными
// фильтрами по статусам и текстовым поиском по номеру, имени и телефону
func (r *OrderRepository) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.PaymentStatus != "" {
		args = append(args, filter.PaymentStatus)
		query += fmt.Sprintf(" AND payment_status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(
			" AND (order_number ILIKE $%d"+
				" OR customer->>'first_name' ILIKE $%d"+
				" OR customer->>'last_name' ILIKE $%d"+
				" OR customer->>'phone' ILIKE $%d)",
			n, n, n, n)
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus обновляет статус заказа
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update order %q status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus обновляет статус оплаты заказа
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update order %q payment status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// DeleteOrder удаляет заказ безвозвратно
func (r *OrderRepository) DeleteOrder(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM orders WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to delete order %q: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// ClearOrders удаляет все заказы безвозвратно
func (r *OrderRepository) ClearOrders(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM orders`)
	if err != nil {
		return fmt.Errorf("repository: failed to clear orders: %w", err)
	}

	return nil
}

// scanOrder читает строку заказа, распаковывая jsonb-поля
func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	var customer, delivery, items []byte

	err := row.Scan(
		&order.ID, &order.Number, &customer, &delivery, &order.PaymentType, &items,
		&order.Subtotal, &order.DeliveryCharges, &order.PromoCode, &order.PromoDiscount, &order.Total,
		&order.Status, &order.PaymentStatus, &order.EstimatedDelivery, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(customer, &order.Customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer: %w", err)
	}
	if err := json.Unmarshal(delivery, &order.Delivery); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery: %w", err)
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}

	return order, nil
}
