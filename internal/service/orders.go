package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/repository/postgres"
)

// OrderService реализует domain.OrderService: операции дашборда
type OrderService struct {
	orderRepo domain.OrderRepository
}

// NewOrderService создает новый OrderService
func NewOrderService(orderRepo domain.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// Orders возвращает заказы по фильтру, от новых к старым
func (s *OrderService) Orders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders: %w", err)
	}
	return orders, nil
}

// OrderByID возвращает заказ по идентификатору
func (s *OrderService) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to get order %q: %w", id, err)
	}
	return order, nil
}

// UpdateStatus устанавливает статус заказа. Переходы не ограничены:
// администратор может выставить любой статус. Единственное автоматическое
// правило: доставленный заказ с ожидающей COD-оплатой помечается оплаченным.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to get order %q: %w", id, err)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to update order %q status: %w", id, err)
	}

	if status == domain.OrderStatusDelivered && order.PaymentStatus == domain.PaymentStatusCODPending {
		if err := s.orderRepo.UpdatePaymentStatus(ctx, id, domain.PaymentStatusPaid); err != nil {
			return fmt.Errorf("order service: failed to mark order %q paid: %w", id, err)
		}
	}

	return nil
}

// UpdatePaymentStatus устанавливает статус оплаты заказа
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	err := s.orderRepo.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to update order %q payment status: %w", id, err)
	}
	return nil
}

// Delete удаляет заказ безвозвратно
func (s *OrderService) Delete(ctx context.Context, id string) error {
	err := s.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to delete order %q: %w", id, err)
	}
	return nil
}

// ClearAll удаляет все заказы безвозвратно
func (s *OrderService) ClearAll(ctx context.Context) error {
	if err := s.orderRepo.ClearOrders(ctx); err != nil {
		return fmt.Errorf("order service: failed to clear orders: %w", err)
	}
	return nil
}
