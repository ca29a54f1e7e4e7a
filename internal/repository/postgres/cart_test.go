package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()
	cartID := "11111111-2222-3333-4444-555555555555"

	t.Run("Success without details", func(t *testing.T) {
		item := domain.CartItem{
			ID:        "product-biology-notes",
			Kind:      domain.ItemKindProduct,
			Name:      "Biology Notes",
			UnitPrice: 500,
		}

		mock.ExpectExec(`INSERT INTO cart_items`).
			WithArgs(cartID, item.ID, item.Kind, item.Name, item.UnitPrice, []byte(nil)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.AddItem(ctx, cartID, item)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Details marshaled to jsonb", func(t *testing.T) {
		item := domain.CartItem{
			ID:        "package-abc",
			Kind:      domain.ItemKindCustom,
			Name:      "O Level Biology",
			UnitPrice: 950,
			Details:   &domain.PackageDetails{Level: "O Level", Binding: "Tape Binding"},
		}

		mock.ExpectExec(`INSERT INTO cart_items`).
			WithArgs(cartID, item.ID, item.Kind, item.Name, item.UnitPrice, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.AddItem(ctx, cartID, item)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		item := domain.CartItem{ID: "x", Kind: domain.ItemKindProduct, Name: "X", UnitPrice: 1}

		mock.ExpectExec(`INSERT INTO cart_items`).
			WithArgs(cartID, item.ID, item.Kind, item.Name, item.UnitPrice, []byte(nil)).
			WillReturnError(errors.New("connection lost"))

		err := repo.AddItem(ctx, cartID, item)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_GetItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()
	cartID := "11111111-2222-3333-4444-555555555555"

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"item_id", "kind", "name", "unit_price", "quantity", "details"}).
			AddRow("product-biology-notes", domain.ItemKindProduct, "Biology Notes", int64(500), 2, []byte(nil)).
			AddRow("package-abc", domain.ItemKindCustom, "O Level Biology", int64(950), 1,
				[]byte(`{"level":"O Level","binding":"Tape Binding"}`))

		mock.ExpectQuery(`SELECT item_id, kind, name, unit_price, quantity, details`).
			WithArgs(cartID).
			WillReturnRows(rows)

		items, err := repo.GetItems(ctx, cartID)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "product-biology-notes", items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Nil(t, items[0].Details)

		require.NotNil(t, items[1].Details)
		assert.Equal(t, "O Level", items[1].Details.Level)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty cart", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"item_id", "kind", "name", "unit_price", "quantity", "details"})

		mock.ExpectQuery(`SELECT item_id, kind, name, unit_price, quantity, details`).
			WithArgs(cartID).
			WillReturnRows(rows)

		items, err := repo.GetItems(ctx, cartID)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()
	cartID := "11111111-2222-3333-4444-555555555555"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cart_items SET quantity`).
			WithArgs(3, cartID, "product-biology-notes").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateQuantity(ctx, cartID, "product-biology-notes", 3)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cart_items SET quantity`).
			WithArgs(3, cartID, "missing").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateQuantity(ctx, cartID, "missing", 3)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero quantity removes item", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(cartID, "product-biology-notes").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.UpdateQuantity(ctx, cartID, "product-biology-notes", 0)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Negative quantity removes item", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(cartID, "product-biology-notes").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.UpdateQuantity(ctx, cartID, "product-biology-notes", -1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_RemoveItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()
	cartID := "11111111-2222-3333-4444-555555555555"

	t.Run("Missing item is not an error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(cartID, "missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.RemoveItem(ctx, cartID, "missing")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_Clear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()
	cartID := "11111111-2222-3333-4444-555555555555"

	mock.ExpectExec(`DELETE FROM cart_items WHERE cart_id`).
		WithArgs(cartID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err = repo.Clear(ctx, cartID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_TotalPrice(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCartRepository(mock)
	ctx := context.Background()
	cartID := "11111111-2222-3333-4444-555555555555"

	t.Run("Sums price times quantity", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(1950))

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(unit_price \* quantity\), 0\)`).
			WithArgs(cartID).
			WillReturnRows(rows)

		total, err := repo.TotalPrice(ctx, cartID)
		require.NoError(t, err)
		assert.Equal(t, int64(1950), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty cart is zero", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(0))

		mock.ExpectQuery(`SELECT COALESCE`).
			WithArgs(cartID).
			WillReturnRows(rows)

		total, err := repo.TotalPrice(ctx, cartID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
