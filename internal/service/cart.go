package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/repository/postgres"
)

// CartService реализует domain.CartService
type CartService struct {
	cartRepo domain.CartRepository
}

// NewCartService создает новый CartService
func NewCartService(cartRepo domain.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddItem добавляет позицию в корзину; повторное добавление той же
// позиции увеличивает количество
func (s *CartService) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	if err := s.cartRepo.AddItem(ctx, cartID, item); err != nil {
		return fmt.Errorf("cart service: failed to add item %q: %w", item.ID, err)
	}
	return nil
}

// Items возвращает содержимое корзины
func (s *CartService) Items(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	items, err := s.cartRepo.GetItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to get items: %w", err)
	}
	return items, nil
}

// UpdateQuantity устанавливает количество позиции; неположительное
// количество удаляет позицию
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	err := s.cartRepo.UpdateQuantity(ctx, cartID, itemID, quantity)
	if err != nil {
		if errors.Is(err, postgres.ErrCartItemNotFound) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("cart service: failed to update quantity for %q: %w", itemID, err)
	}
	return nil
}

// RemoveItem удаляет позицию; отсутствие позиции не ошибка
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) error {
	if err := s.cartRepo.RemoveItem(ctx, cartID, itemID); err != nil {
		return fmt.Errorf("cart service: failed to remove item %q: %w", itemID, err)
	}
	return nil
}

// Clear очищает корзину
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	if err := s.cartRepo.Clear(ctx, cartID); err != nil {
		return fmt.Errorf("cart service: failed to clear cart: %w", err)
	}
	return nil
}

// TotalPrice возвращает сумму корзины
func (s *CartService) TotalPrice(ctx context.Context, cartID string) (int64, error) {
	total, err := s.cartRepo.TotalPrice(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("cart service: failed to get total: %w", err)
	}
	return total, nil
}
