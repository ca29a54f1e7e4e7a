package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/service"
	"github.com/mtw/paperstore/internal/utils/slip"
	"go.uber.org/zap"
)

// OrderService определяет операции дашборда над заказами.
type OrderService interface {
	Orders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	OrderByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type OrderHandler struct {
	orderService OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List возвращает заказы по фильтрам из query-параметров
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.OrderFilter{
		Search: r.URL.Query().Get("search"),
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.OrderStatus(status)
		if !s.Valid() {
			writeError(w, h.logger, http.StatusBadRequest, "unknown order status")
			return
		}
		filter.Status = s
	}
	if payment := r.URL.Query().Get("payment_status"); payment != "" {
		s := domain.PaymentStatus(payment)
		if !s.Valid() {
			writeError(w, h.logger, http.StatusBadRequest, "unknown payment status")
			return
		}
		filter.PaymentStatus = s
	}

	orders, err := h.orderService.Orders(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

// Get возвращает заказ по идентификатору
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.OrderByID(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to get order", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// UpdateStatus меняет статус заказа
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		writeError(w, h.logger, http.StatusBadRequest, "unknown order status")
		return
	}

	if err := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), req.Status); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to update order status", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

// UpdatePaymentStatus меняет статус оплаты заказа
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req updatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if !req.PaymentStatus.Valid() {
		writeError(w, h.logger, http.StatusBadRequest, "unknown payment status")
		return
	}

	if err := h.orderService.UpdatePaymentStatus(r.Context(), chi.URLParam(r, "orderID"), req.PaymentStatus); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to update payment status", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет заказ
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Delete(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to delete order", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear удаляет все заказы
func (h *OrderHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.ClearAll(r.Context()); err != nil {
		h.logger.Error("failed to clear orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Slip отдает накладную заказа в HTML для печати
func (h *OrderHandler) Slip(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.OrderByID(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to get order", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := slip.Render(w, order); err != nil {
		h.logger.Error("failed to render delivery slip", zap.Error(err))
	}
}
