package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtw/paperstore/internal/catalog"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/service"
	"go.uber.org/zap"
)

// CheckoutService определяет оформление заказа.
type CheckoutService interface {
	Submit(ctx context.Context, cartID string, req domain.CheckoutRequest) (*domain.Order, error)
	ValidatePromo(code string, subtotal int64) domain.PromoResult
	DeliveryQuote(subtotal int64) int64
}

type CheckoutHandler struct {
	checkoutService CheckoutService
	cartService     CartService
	logger          *zap.Logger
}

func NewCheckoutHandler(checkoutService CheckoutService, cartService CartService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
		logger:          logger,
	}
}

type submitResponse struct {
	Order               *domain.Order               `json:"order"`
	PaymentInstructions *domain.PaymentInstructions `json:"payment_instructions,omitempty"`
}

// Submit оформляет заказ из корзины. Ответ содержит заказ и реквизиты
// для перевода оплаты выбранным способом.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.checkoutService.Submit(r.Context(), cartID, req)
	if err != nil {
		var fieldErrs domain.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			writeFieldErrors(w, h.logger, fieldErrs)
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, h.logger, http.StatusConflict, "cart is empty")
		default:
			h.logger.Error("failed to submit order", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	instructions, _ := catalog.PaymentInstructions(order.PaymentType)
	writeJSON(w, h.logger, http.StatusCreated, submitResponse{
		Order:               order,
		PaymentInstructions: instructions,
	})
}

type promoRequest struct {
	Code string `json:"code"`
}

// ValidatePromo проверяет промокод против текущей суммы корзины
func (h *CheckoutHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req promoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	subtotal, err := h.cartService.TotalPrice(r.Context(), cartID)
	if err != nil {
		h.logger.Error("failed to get cart total", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, h.checkoutService.ValidatePromo(req.Code, subtotal))
}

type quoteResponse struct {
	Subtotal int64 `json:"subtotal"`
	Delivery int64 `json:"delivery"`
	Total    int64 `json:"total"`
}

// Quote возвращает раскладку стоимости для текущей корзины
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	subtotal, err := h.cartService.TotalPrice(r.Context(), cartID)
	if err != nil {
		h.logger.Error("failed to get cart total", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	resp := quoteResponse{Subtotal: subtotal}
	if subtotal > 0 {
		resp.Delivery = h.checkoutService.DeliveryQuote(subtotal)
	}
	resp.Total = resp.Subtotal + resp.Delivery

	writeJSON(w, h.logger, http.StatusOK, resp)
}
