// Package configurator реализует пошаговую сборку пакета: уровень,
// предметы, работы, диапазоны годов, сессии и переплет. Состояние
// сборщика — временное состояние сеанса, в отличие от корзины оно
// не сохраняется между перезапусками.
package configurator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mtw/paperstore/internal/catalog"
	"github.com/mtw/paperstore/internal/domain"
	"github.com/mtw/paperstore/internal/pricing"
)

// Границы диапазона годов
const (
	MinYear = 2010
	MaxYear = 2024
)

// defaultYearSpan задает диапазон по умолчанию при включении работы
const defaultYearSpan = 5

// Builder представляет состояние сборщика пакета.
// Методы не потокобезопасны; синхронизацию обеспечивает Store.
type Builder struct {
	level    domain.Level
	subjects []string                             // порядок выбора предметов
	papers   map[string][]domain.PaperSelection   // предмет -> выбранные работы
	binding  domain.Binding
	now      func() time.Time
}

// NewBuilder создает пустой сборщик
func NewBuilder() *Builder {
	return &Builder{
		papers:  make(map[string][]domain.PaperSelection),
		binding: domain.BindingNone,
		now:     time.Now,
	}
}

// SelectLevel выбирает уровень. Смена уровня сбрасывает предметы и
// работы: каталоги уровней не совпадают.
func (b *Builder) SelectLevel(level domain.Level) error {
	if !level.Valid() {
		return domain.ErrUnknownLevel
	}
	b.level = level
	b.subjects = nil
	b.papers = make(map[string][]domain.PaperSelection)
	return nil
}

// Level возвращает выбранный уровень (пустой, если уровень не выбран)
func (b *Builder) Level() domain.Level {
	return b.level
}

// ToggleSubject добавляет или убирает предмет. Снятие предмета
// отбрасывает выбор его работ.
func (b *Builder) ToggleSubject(subjectID string) error {
	if _, err := catalog.Subject(b.level, subjectID); err != nil {
		return err
	}

	for i, id := range b.subjects {
		if id == subjectID {
			b.subjects = append(b.subjects[:i], b.subjects[i+1:]...)
			delete(b.papers, subjectID)
			return nil
		}
	}

	b.subjects = append(b.subjects, subjectID)
	return nil
}

// TogglePaper включает или выключает работу предмета. При включении
// создается выбор по умолчанию: сессия May/June, последние шесть лет.
// Повторное включение после выключения возвращает значения по умолчанию —
// прежняя настройка не сохраняется.
func (b *Builder) TogglePaper(subjectID, paper string) error {
	subject, err := catalog.Subject(b.level, subjectID)
	if err != nil {
		return err
	}
	if !b.subjectSelected(subjectID) {
		return domain.ErrSubjectNotFound
	}

	known := false
	for _, p := range subject.Papers {
		if p == paper {
			known = true
			break
		}
	}
	if !known {
		return domain.ErrPaperNotAvailable
	}

	selections := b.papers[subjectID]
	for i := range selections {
		if selections[i].Paper == paper {
			b.papers[subjectID] = append(selections[:i], selections[i+1:]...)
			return nil
		}
	}

	end := b.now().Year()
	if end > MaxYear {
		end = MaxYear
	}
	start := end - defaultYearSpan
	if start < MinYear {
		start = MinYear
	}

	b.papers[subjectID] = append(selections, domain.PaperSelection{
		Paper:    paper,
		Sessions: []domain.Session{domain.SessionMayJun},
		Years:    domain.YearRange{Start: start, End: end},
	})
	return nil
}

// YearBound задает границу диапазона годов
type YearBound string

const (
	BoundStart YearBound = "start"
	BoundEnd   YearBound = "end"
)

// AdjustYear сдвигает границу диапазона годов работы. Выход за пределы
// [MinYear, MaxYear] молча игнорируется. Если start поднимается выше end,
// end подтягивается следом (и симметрично для end).
func (b *Builder) AdjustYear(subjectID, paper string, bound YearBound, delta int) {
	sel := b.findPaper(subjectID, paper)
	if sel == nil {
		return
	}

	switch bound {
	case BoundStart:
		year := sel.Years.Start + delta
		if year < MinYear || year > MaxYear {
			return
		}
		sel.Years.Start = year
		if sel.Years.Start > sel.Years.End {
			sel.Years.End = sel.Years.Start
		}
	case BoundEnd:
		year := sel.Years.End + delta
		if year < MinYear || year > MaxYear {
			return
		}
		sel.Years.End = year
		if sel.Years.End < sel.Years.Start {
			sel.Years.Start = sel.Years.End
		}
	}
}

// ToggleSession включает или выключает сессию работы. Снятие последней
// оставшейся сессии игнорируется: хотя бы одна сессия выбрана всегда.
func (b *Builder) ToggleSession(subjectID, paper string, session domain.Session) {
	sel := b.findPaper(subjectID, paper)
	if sel == nil {
		return
	}

	for i, s := range sel.Sessions {
		if s == session {
			if len(sel.Sessions) == 1 {
				return
			}
			sel.Sessions = append(sel.Sessions[:i], sel.Sessions[i+1:]...)
			return
		}
	}

	sel.Sessions = append(sel.Sessions, session)
}

// SetBinding выбирает переплет
func (b *Builder) SetBinding(binding domain.Binding) error {
	if !binding.Valid() {
		return fmt.Errorf("unknown binding %q", binding)
	}
	b.binding = binding
	return nil
}

// Selections возвращает текущий выбор в порядке выбора предметов
func (b *Builder) Selections() []domain.SubjectSelection {
	result := make([]domain.SubjectSelection, 0, len(b.subjects))
	for _, id := range b.subjects {
		result = append(result, domain.SubjectSelection{
			SubjectID: id,
			Papers:    b.papers[id],
		})
	}
	return result
}

// Binding возвращает выбранный переплет
func (b *Builder) Binding() domain.Binding {
	return b.binding
}

// Price возвращает текущую стоимость собираемого пакета
func (b *Builder) Price() int64 {
	level := b.level
	return pricing.PackagePrice(b.Selections(), b.binding, func(subjectID, paper string) int64 {
		return catalog.PaperPrice(level, subjectID, paper)
	})
}

// Commit собирает позицию корзины из текущего выбора. Состояние
// сборщика не меняется: вызывающий сбрасывает сеанс после того, как
// позиция действительно попала в корзину, чтобы неудачная запись не
// теряла собранный пакет. Если не выбрано ни одной работы,
// возвращается domain.ErrNoPapersSelected.
func (b *Builder) Commit() (*domain.CartItem, error) {
	paperCount := 0
	for _, id := range b.subjects {
		paperCount += len(b.papers[id])
	}
	if paperCount == 0 {
		return nil, domain.ErrNoPapersSelected
	}

	details := &domain.PackageDetails{
		Level:   b.level.Name(),
		Binding: b.binding.Description(),
	}

	names := make([]string, 0, len(b.subjects))
	for _, id := range b.subjects {
		if len(b.papers[id]) == 0 {
			continue
		}
		subject, err := catalog.Subject(b.level, id)
		if err != nil {
			return nil, err
		}
		names = append(names, subject.Name)

		detail := domain.PackageSubjectDetail{Name: subject.Name, Code: subject.Code}
		for _, sel := range b.papers[id] {
			detail.Papers = append(detail.Papers, domain.PackagePaperDetail{
				Paper:     sel.Paper,
				Sessions:  joinSessions(sel.Sessions),
				YearRange: fmt.Sprintf("%d-%d", sel.Years.Start, sel.Years.End),
			})
		}
		details.Subjects = append(details.Subjects, detail)
	}

	item := &domain.CartItem{
		ID:        fmt.Sprintf("package-%s", uuid.New().String()),
		Kind:      domain.ItemKindCustom,
		Name:      fmt.Sprintf("%s %s", b.level.Name(), strings.Join(names, ", ")),
		UnitPrice: b.Price(),
		Quantity:  1,
		Details:   details,
	}

	return item, nil
}

// Reset возвращает сборщик к пустому состоянию, включая уровень
func (b *Builder) Reset() {
	b.level = ""
	b.subjects = nil
	b.papers = make(map[string][]domain.PaperSelection)
	b.binding = domain.BindingNone
}

func (b *Builder) subjectSelected(subjectID string) bool {
	for _, id := range b.subjects {
		if id == subjectID {
			return true
		}
	}
	return false
}

func (b *Builder) findPaper(subjectID, paper string) *domain.PaperSelection {
	selections := b.papers[subjectID]
	for i := range selections {
		if selections[i].Paper == paper {
			return &selections[i]
		}
	}
	return nil
}

func joinSessions(sessions []domain.Session) string {
	parts := make([]string, len(sessions))
	for i, s := range sessions {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
