package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mtw/paperstore/internal/domain"
)

// CartRepository реализует domain.CartRepository
type CartRepository struct {
	db DBTX
}

// NewCartRepository создает новый CartRepository
func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem добавляет позицию в корзину. Повторное добавление позиции с тем
// же id увеличивает количество на единицу вместо дублирования строки.
func (r *CartRepository) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	var details []byte
	if item.Details != nil {
		var err error
		details, err = json.Marshal(item.Details)
		if err != nil {
			return fmt.Errorf("repository: failed to marshal item details: %w", err)
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO cart_items (cart_id, item_id, kind, name, unit_price, quantity, details)
		 VALUES ($1, $2, $3, $4, $5, 1, $6)
		 ON CONFLICT (cart_id, item_id)
		 DO UPDATE SET quantity = cart_items.quantity + 1`,
		cartID, item.ID, item.Kind, item.Name, item.UnitPrice, details,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to add cart item %q: %w", item.ID, err)
	}

	return nil
}

// GetItems возвращает позиции корзины в порядке добавления
func (r *CartRepository) GetItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item_id, kind, name, unit_price, quantity, details
		 FROM cart_items
		 WHERE cart_id = $1
		 ORDER BY added_at ASC`,
		cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		var details []byte
		if err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.UnitPrice, &item.Quantity, &details); err != nil {
			return nil, fmt.Errorf("repository: failed to scan cart item: %w", err)
		}
		if len(details) > 0 {
			item.Details = &domain.PackageDetails{}
			if err := json.Unmarshal(details, item.Details); err != nil {
				return nil, fmt.Errorf("repository: failed to unmarshal item details: %w", err)
			}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cart items: %w", err)
	}

	return items, nil
}

// UpdateQuantity устанавливает количество позиции. Неположительное
// количество удаляет позицию, как и removeItem.
func (r *CartRepository) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	if quantity <= 0 {
		return r.RemoveItem(ctx, cartID, itemID)
	}

	result, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND item_id = $3`,
		quantity, cartID, itemID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update quantity for %q: %w", itemID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// RemoveItem удаляет позицию корзины; отсутствие позиции не ошибка
func (r *CartRepository) RemoveItem(ctx context.Context, cartID, itemID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND item_id = $2`,
		cartID, itemID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to remove cart item %q: %w", itemID, err)
	}

	return nil
}

// Clear очищает корзину
func (r *CartRepository) Clear(ctx context.Context, cartID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`,
		cartID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to clear cart: %w", err)
	}

	return nil
}

// TotalPrice возвращает сумму корзины: Σ unit_price * quantity
func (r *CartRepository) TotalPrice(ctx context.Context, cartID string) (int64, error) {
	var total int64

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(unit_price * quantity), 0)
		 FROM cart_items
		 WHERE cart_id = $1`,
		cartID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to get cart total: %w", err)
	}

	return total, nil
}
