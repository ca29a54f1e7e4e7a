package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mtw/paperstore/internal/catalog"
	"github.com/mtw/paperstore/internal/domain"
	"go.uber.org/zap"
)

// CatalogHandler отдает статический каталог: уровни, предметы с ценами,
// города доставки и телефонные коды стран
type CatalogHandler struct {
	logger *zap.Logger
}

func NewCatalogHandler(logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger}
}

type levelResponse struct {
	ID   domain.Level `json:"id"`
	Name string       `json:"name"`
}

// Levels возвращает список уровней
func (h *CatalogHandler) Levels(w http.ResponseWriter, r *http.Request) {
	levels := make([]levelResponse, 0, 3)
	for _, level := range catalog.Levels() {
		levels = append(levels, levelResponse{ID: level, Name: level.Name()})
	}
	writeJSON(w, h.logger, http.StatusOK, levels)
}

type subjectResponse struct {
	domain.Subject
	Pricing map[string]int64 `json:"pricing,omitempty"`
}

// Subjects возвращает предметы уровня вместе с прайсом по работам
func (h *CatalogHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	level := domain.Level(chi.URLParam(r, "level"))

	subjects, err := catalog.LevelSubjects(level)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLevel) {
			writeError(w, h.logger, http.StatusNotFound, "Unknown exam level")
			return
		}
		h.logger.Error("failed to get subjects", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response := make([]subjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		response = append(response, subjectResponse{
			Subject: subject,
			Pricing: catalog.SubjectPricing(level, subject.ID),
		})
	}

	writeJSON(w, h.logger, http.StatusOK, response)
}

// Notes возвращает готовые конспекты уровня
func (h *CatalogHandler) Notes(w http.ResponseWriter, r *http.Request) {
	level := domain.Level(chi.URLParam(r, "level"))

	notes, err := catalog.LevelNotes(level)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLevel) {
			writeError(w, h.logger, http.StatusNotFound, "Unknown exam level")
			return
		}
		h.logger.Error("failed to get notes", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, notes)
}

// Cities возвращает города доставки
func (h *CatalogHandler) Cities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, catalog.Cities())
}

// CountryCodes возвращает телефонные коды стран
func (h *CatalogHandler) CountryCodes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, catalog.CountryCodes())
}
