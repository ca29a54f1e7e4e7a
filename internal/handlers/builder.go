package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mtw/paperstore/internal/configurator"
	"github.com/mtw/paperstore/internal/domain"
	"go.uber.org/zap"
)

// BuilderHandler обслуживает пошаговую сборку пакета.
// Состояние сборщика живет в памяти и привязано к токену корзины.
type BuilderHandler struct {
	store       *configurator.Store
	cartService CartService
	logger      *zap.Logger
}

func NewBuilderHandler(store *configurator.Store, cartService CartService, logger *zap.Logger) *BuilderHandler {
	return &BuilderHandler{
		store:       store,
		cartService: cartService,
		logger:      logger,
	}
}

type builderState struct {
	Level      domain.Level              `json:"level"`
	Selections []domain.SubjectSelection `json:"selections"`
	Binding    domain.Binding            `json:"binding"`
	Price      int64                     `json:"price"`
}

func snapshot(b *configurator.Builder) builderState {
	return builderState{
		Level:      b.Level(),
		Selections: b.Selections(),
		Binding:    b.Binding(),
		Price:      b.Price(),
	}
}

// State возвращает текущее состояние сборщика и цену
func (h *BuilderHandler) State(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var state builderState
	_ = h.store.WithBuilder(cartID, func(b *configurator.Builder) error {
		state = snapshot(b)
		return nil
	})

	writeJSON(w, h.logger, http.StatusOK, state)
}

type selectLevelRequest struct {
	Level domain.Level `json:"level"`
}

// SelectLevel выбирает уровень; смена уровня сбрасывает выбор предметов
func (h *BuilderHandler) SelectLevel(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req selectLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.mutate(w, cartID, func(b *configurator.Builder) error {
		return b.SelectLevel(req.Level)
	})
}

// ToggleSubject добавляет или убирает предмет
func (h *BuilderHandler) ToggleSubject(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	subjectID := chi.URLParam(r, "subjectID")
	h.mutate(w, cartID, func(b *configurator.Builder) error {
		return b.ToggleSubject(subjectID)
	})
}

// TogglePaper включает или выключает работу предмета
func (h *BuilderHandler) TogglePaper(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	subjectID := chi.URLParam(r, "subjectID")
	paper := chi.URLParam(r, "paper")
	h.mutate(w, cartID, func(b *configurator.Builder) error {
		return b.TogglePaper(subjectID, paper)
	})
}

type adjustYearRequest struct {
	Bound configurator.YearBound `json:"bound"`
	Delta int                    `json:"delta"`
}

// AdjustYear сдвигает границу диапазона годов работы.
// Выход за пределы диапазона молча игнорируется.
func (h *BuilderHandler) AdjustYear(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req adjustYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Bound != configurator.BoundStart && req.Bound != configurator.BoundEnd {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	subjectID := chi.URLParam(r, "subjectID")
	paper := chi.URLParam(r, "paper")
	h.mutate(w, cartID, func(b *configurator.Builder) error {
		b.AdjustYear(subjectID, paper, req.Bound, req.Delta)
		return nil
	})
}

// ToggleSession включает или выключает сессию работы
func (h *BuilderHandler) ToggleSession(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	subjectID := chi.URLParam(r, "subjectID")
	paper := chi.URLParam(r, "paper")
	session := domain.Session(chi.URLParam(r, "session"))
	h.mutate(w, cartID, func(b *configurator.Builder) error {
		b.ToggleSession(subjectID, paper, session)
		return nil
	})
}

type setBindingRequest struct {
	Binding domain.Binding `json:"binding"`
}

// SetBinding выбирает переплет
func (h *BuilderHandler) SetBinding(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req setBindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.mutate(w, cartID, func(b *configurator.Builder) error {
		return b.SetBinding(req.Binding)
	})
}

// Commit фиксирует собранный пакет как позицию корзины. Сеанс сборщика
// удаляется только после успешной записи в корзину: при ошибке записи
// собранный пакет остается на месте.
func (h *BuilderHandler) Commit(w http.ResponseWriter, r *http.Request) {
	cartID, ok := GetCartID(r.Context())
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var item *domain.CartItem
	err := h.store.WithBuilder(cartID, func(b *configurator.Builder) error {
		var err error
		item, err = b.Commit()
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoPapersSelected) {
			writeError(w, h.logger, http.StatusUnprocessableEntity, "Please select at least one paper.")
			return
		}
		h.logger.Error("failed to commit package", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.cartService.AddItem(r.Context(), cartID, *item); err != nil {
		h.logger.Error("failed to add package to cart", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.store.Drop(cartID)
	writeJSON(w, h.logger, http.StatusCreated, item)
}

// mutate применяет изменение к сборщику и возвращает новое состояние
func (h *BuilderHandler) mutate(w http.ResponseWriter, cartID string, fn func(*configurator.Builder) error) {
	var state builderState
	err := h.store.WithBuilder(cartID, func(b *configurator.Builder) error {
		if err := fn(b); err != nil {
			return err
		}
		state = snapshot(b)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownLevel),
			errors.Is(err, domain.ErrSubjectNotFound),
			errors.Is(err, domain.ErrPaperNotAvailable):
			writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("failed to update package builder", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusOK, state)
}
