package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mtw/paperstore/internal/domain"
	domainmocks "github.com/mtw/paperstore/internal/domain/mocks"
	"github.com/mtw/paperstore/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	mockRepo := domainmocks.NewCartRepositoryMock(t)
	svc := NewCartService(mockRepo)
	ctx := context.Background()

	item := domain.CartItem{ID: "product-1", Kind: domain.ItemKindProduct, Name: "Notes", UnitPrice: 500}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().AddItem(mock.Anything, "cart-1", item).Return(nil).Once()

		err := svc.AddItem(ctx, "cart-1", item)
		assert.NoError(t, err)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo.EXPECT().AddItem(mock.Anything, "cart-1", item).Return(errors.New("db down")).Once()

		err := svc.AddItem(ctx, "cart-1", item)
		assert.Error(t, err)
	})
}

func TestCartService_Items(t *testing.T) {
	mockRepo := domainmocks.NewCartRepositoryMock(t)
	svc := NewCartService(mockRepo)
	ctx := context.Background()

	items := []domain.CartItem{
		{ID: "product-1", Kind: domain.ItemKindProduct, Name: "Notes", UnitPrice: 500, Quantity: 2},
	}

	mockRepo.EXPECT().GetItems(mock.Anything, "cart-1").Return(items, nil).Once()

	got, err := svc.Items(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	mockRepo := domainmocks.NewCartRepositoryMock(t)
	svc := NewCartService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().UpdateQuantity(mock.Anything, "cart-1", "product-1", 3).Return(nil).Once()

		err := svc.UpdateQuantity(ctx, "cart-1", "product-1", 3)
		assert.NoError(t, err)
	})

	t.Run("Not found maps to service error", func(t *testing.T) {
		mockRepo.EXPECT().UpdateQuantity(mock.Anything, "cart-1", "missing", 3).
			Return(postgres.ErrCartItemNotFound).Once()

		err := svc.UpdateQuantity(ctx, "cart-1", "missing", 3)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestCartService_TotalPrice(t *testing.T) {
	mockRepo := domainmocks.NewCartRepositoryMock(t)
	svc := NewCartService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().TotalPrice(mock.Anything, "cart-1").Return(int64(1950), nil).Once()

	total, err := svc.TotalPrice(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1950), total)
}

func TestCartService_Clear(t *testing.T) {
	mockRepo := domainmocks.NewCartRepositoryMock(t)
	svc := NewCartService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().Clear(mock.Anything, "cart-1").Return(nil).Once()

	assert.NoError(t, svc.Clear(ctx, "cart-1"))
}
