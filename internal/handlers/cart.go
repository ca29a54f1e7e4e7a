package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mtw/paperstore/internal/catalog"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/service"
	"go.uber.org/zap"
)

// CartService определяет операции над корзиной.
type CartService interface {
	AddItem(ctx context.Context, cartID string, item domain.CartItem) error
	Items(ctx context.Context, cartID string) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
	TotalPrice(ctx context.Context, cartID string) (int64, error)
}

// DeliveryQuoter считает стоимость доставки для суммы корзины.
type DeliveryQuoter interface {
	DeliveryQuote(subtotal int64) int64
}

type CartHandler struct {
	cartService CartService
	quoter      DeliveryQuoter
	logger      *zap.Logger
}

func NewCartHandler(cartService CartService, quoter DeliveryQuoter, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		quoter:      quoter,
		logger:      logger,
	}
}

type cartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal int64             `json:"subtotal"`
	Delivery int64             `json:"delivery"`
}

// Get возвращает содержимое корзины с суммой и стоимостью доставки
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	items, err := h.cartService.Items(r.Context(), cartID)
	if err != nil {
		h.logger.Error("failed to get cart items", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}

	resp := cartResponse{
		Items:    items,
		Subtotal: subtotal,
	}
	if subtotal > 0 {
		resp.Delivery = h.quoter.DeliveryQuote(subtotal)
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

type addItemRequest struct {
	ID string `json:"id"`
}

// AddItem добавляет готовый товар каталога в корзину. Название и цена
// берутся из каталога по идентификатору, присланные клиентом значения
// не принимаются. Повторное добавление товара увеличивает количество.
// Собранные пакеты попадают в корзину только через сборщик.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	note, ok := catalog.NoteProduct(req.ID)
	if !ok {
		writeError(w, h.logger, http.StatusUnprocessableEntity, "unknown product")
		return
	}

	item := domain.CartItem{
		ID:        note.ID,
		Kind:      domain.ItemKindProduct,
		Name:      note.Name,
		UnitPrice: note.Price,
		Quantity:  1,
	}
	if err := h.cartService.AddItem(r.Context(), cartID, item); err != nil {
		h.logger.Error("failed to add cart item", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, item)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity меняет количество позиции. Нулевое или отрицательное
// количество удаляет позицию из корзины.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if err := h.cartService.UpdateQuantity(r.Context(), cartID, itemID, req.Quantity); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "cart item not found")
			return
		}
		h.logger.Error("failed to update cart item quantity", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem удаляет позицию из корзины
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if err := h.cartService.RemoveItem(r.Context(), cartID, itemID); err != nil {
		h.logger.Error("failed to remove cart item", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear опустошает корзину
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.cartService.Clear(r.Context(), cartID); err != nil {
		h.logger.Error("failed to clear cart", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
