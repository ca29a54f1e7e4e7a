package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Customer: domain.CustomerInfo{
			FirstName: "Ali",
			LastName:  "Khan",
			Email:     "ali@example.com",
			Phone:     "+92 300 1234567",
		},
		Delivery: domain.DeliveryAddress{
			Address: "House 12, Street 4",
			City:    "Lahore",
		},
		PaymentType:       domain.PaymentTypeEasypaisa,
		Items:             []domain.OrderItem{{ID: "product-1", Kind: domain.ItemKindProduct, Name: "Notes", UnitPrice: 1000, Quantity: 2}},
		Subtotal:          2000,
		DeliveryCharges:   450,
		PromoCode:         "MTXUH",
		PromoDiscount:     50,
		Total:             2400,
		Status:            domain.OrderStatusPending,
		PaymentStatus:     domain.PaymentStatusPending,
		EstimatedDelivery: "Wednesday, 12 June 2024",
	}
}

// orderRow собирает строку результата в порядке orderColumns
func orderRow(order *domain.Order, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "order_number", "customer", "delivery", "payment_type", "items",
		"subtotal", "delivery_charges", "promo_code", "promo_discount", "total",
		"status", "payment_status", "estimated_delivery", "created_at",
	}).AddRow(
		order.ID, order.Number,
		[]byte(`{"first_name":"Ali","last_name":"Khan","email":"ali@example.com","phone":"+92 300 1234567"}`),
		[]byte(`{"address":"House 12, Street 4","city":"Lahore"}`),
		order.PaymentType,
		[]byte(`[{"id":"product-1","kind":"product","name":"Notes","unit_price":1000,"quantity":2}]`),
		order.Subtotal, order.DeliveryCharges, order.PromoCode, order.PromoDiscount, order.Total,
		order.Status, order.PaymentStatus, order.EstimatedDelivery, createdAt,
	)
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := testOrder()
		now := time.Now()

		rows := pgxmock.NewRows([]string{"order_number", "created_at"}).
			AddRow("MTW000000000001", now)

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(
				order.ID, pgxmock.AnyArg(), pgxmock.AnyArg(), order.PaymentType, pgxmock.AnyArg(),
				order.Subtotal, order.DeliveryCharges, order.PromoCode, order.PromoDiscount, order.Total,
				order.Status, order.PaymentStatus, order.EstimatedDelivery,
			).
			WillReturnRows(rows)

		created, err := repo.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, "MTW000000000001", created.Number)
		assert.Equal(t, now, created.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		order := testOrder()

		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(
				order.ID, pgxmock.AnyArg(), pgxmock.AnyArg(), order.PaymentType, pgxmock.AnyArg(),
				order.Subtotal, order.DeliveryCharges, order.PromoCode, order.PromoDiscount, order.Total,
				order.Status, order.PaymentStatus, order.EstimatedDelivery,
			).
			WillReturnError(errors.New("connection lost"))

		_, err := repo.CreateOrder(ctx, order)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order := testOrder()
		order.Number = "MTW000000000001"

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id`).
			WithArgs(order.ID).
			WillReturnRows(orderRow(order, time.Now()))

		got, err := repo.GetOrderByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, "MTW000000000001", got.Number)
		assert.Equal(t, "Ali", got.Customer.FirstName)
		assert.Equal(t, "Lahore", got.Delivery.City)
		require.Len(t, got.Items, 1)
		assert.Equal(t, 2, got.Items[0].Quantity)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders WHERE id`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetOrderByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("No filters", func(t *testing.T) {
		order := testOrder()
		order.Number = "MTW000000000001"

		mock.ExpectQuery(`SELECT .+ FROM orders WHERE 1=1 ORDER BY created_at DESC`).
			WillReturnRows(orderRow(order, time.Now()))

		orders, err := repo.GetOrders(ctx, domain.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "MTW000000000001", orders[0].Number)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Status and payment filters", func(t *testing.T) {
		order := testOrder()

		mock.ExpectQuery(`AND status = \$1 AND payment_status = \$2`).
			WithArgs(domain.OrderStatusPending, domain.PaymentStatusPaid).
			WillReturnRows(orderRow(order, time.Now()))

		orders, err := repo.GetOrders(ctx, domain.OrderFilter{
			Status:        domain.OrderStatusPending,
			PaymentStatus: domain.PaymentStatusPaid,
		})
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Search by number, name or phone", func(t *testing.T) {
		order := testOrder()

		mock.ExpectQuery(`order_number ILIKE \$1`).
			WithArgs("%Ali%").
			WillReturnRows(orderRow(order, time.Now()))

		orders, err := repo.GetOrders(ctx, domain.OrderFilter{Search: "Ali"})
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty result", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{
			"id", "order_number", "customer", "delivery", "payment_type", "items",
			"subtotal", "delivery_charges", "promo_code", "promo_discount", "total",
			"status", "payment_status", "estimated_delivery", "created_at",
		})

		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WillReturnRows(rows)

		orders, err := repo.GetOrders(ctx, domain.OrderFilter{})
		require.NoError(t, err)
		assert.Empty(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(domain.OrderStatusShipped, "order-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateOrderStatus(ctx, "order-1", domain.OrderStatusShipped)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(domain.OrderStatusShipped, "missing").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateOrderStatus(ctx, "missing", domain.OrderStatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdatePaymentStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET payment_status`).
			WithArgs(domain.PaymentStatusPaid, "order-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdatePaymentStatus(ctx, "order-1", domain.PaymentStatusPaid)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET payment_status`).
			WithArgs(domain.PaymentStatusPaid, "missing").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdatePaymentStatus(ctx, "missing", domain.PaymentStatusPaid)
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_DeleteOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders WHERE id`).
			WithArgs("order-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.DeleteOrder(ctx, "order-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM orders WHERE id`).
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteOrder(ctx, "missing")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ClearOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM orders`).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	err = repo.ClearOrders(ctx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
