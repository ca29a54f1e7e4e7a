package configurator

import (
	"strings"
	"testing"
	"time"

	"github.com/mtw/paperstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBuilder создает сборщик с фиксированным временем
func newTestBuilder(year int) *Builder {
	b := NewBuilder()
	b.now = func() time.Time {
		return time.Date(year, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	return b
}

func TestBuilder_SelectLevel(t *testing.T) {
	t.Run("Valid level", func(t *testing.T) {
		b := newTestBuilder(2024)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		assert.Equal(t, domain.LevelOLevel, b.Level())
	})

	t.Run("Unknown level", func(t *testing.T) {
		b := newTestBuilder(2024)
		assert.ErrorIs(t, b.SelectLevel("gcse"), domain.ErrUnknownLevel)
	})

	t.Run("Switching level resets selections", func(t *testing.T) {
		b := newTestBuilder(2024)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))
		require.NoError(t, b.TogglePaper("biology", "P1"))

		require.NoError(t, b.SelectLevel(domain.LevelIGCSE))
		assert.Empty(t, b.Selections())
	})
}

func TestBuilder_ToggleSubject(t *testing.T) {
	b := newTestBuilder(2024)
	require.NoError(t, b.SelectLevel(domain.LevelOLevel))

	t.Run("Adds subject", func(t *testing.T) {
		require.NoError(t, b.ToggleSubject("biology"))
		selections := b.Selections()
		require.Len(t, selections, 1)
		assert.Equal(t, "biology", selections[0].SubjectID)
	})

	t.Run("Unknown subject", func(t *testing.T) {
		assert.ErrorIs(t, b.ToggleSubject("astrology"), domain.ErrSubjectNotFound)
	})

	t.Run("Second toggle removes subject and its papers", func(t *testing.T) {
		require.NoError(t, b.TogglePaper("biology", "P1"))
		require.NoError(t, b.ToggleSubject("biology"))
		assert.Empty(t, b.Selections())

		// После повторного добавления выбор работ не восстанавливается
		require.NoError(t, b.ToggleSubject("biology"))
		selections := b.Selections()
		require.Len(t, selections, 1)
		assert.Empty(t, selections[0].Papers)
	})
}

func TestBuilder_TogglePaper(t *testing.T) {
	b := newTestBuilder(2024)
	require.NoError(t, b.SelectLevel(domain.LevelOLevel))
	require.NoError(t, b.ToggleSubject("biology"))

	t.Run("Defaults on first toggle", func(t *testing.T) {
		require.NoError(t, b.TogglePaper("biology", "P1"))

		selections := b.Selections()
		require.Len(t, selections[0].Papers, 1)
		sel := selections[0].Papers[0]
		assert.Equal(t, "P1", sel.Paper)
		assert.Equal(t, []domain.Session{domain.SessionMayJun}, sel.Sessions)
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2024}, sel.Years)
	})

	t.Run("Paper not offered for subject", func(t *testing.T) {
		assert.ErrorIs(t, b.TogglePaper("biology", "P9"), domain.ErrPaperNotAvailable)
	})

	t.Run("Subject not selected", func(t *testing.T) {
		assert.ErrorIs(t, b.TogglePaper("chemistry", "P1"), domain.ErrSubjectNotFound)
	})

	t.Run("Second toggle removes, third restores defaults", func(t *testing.T) {
		b.AdjustYear("biology", "P1", BoundStart, 2)

		require.NoError(t, b.TogglePaper("biology", "P1"))
		assert.Empty(t, b.Selections()[0].Papers)

		require.NoError(t, b.TogglePaper("biology", "P1"))
		sel := b.Selections()[0].Papers[0]
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2024}, sel.Years)
	})
}

func TestBuilder_DefaultYearsClamped(t *testing.T) {
	t.Run("Current year above catalog ceiling", func(t *testing.T) {
		b := newTestBuilder(2026)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))
		require.NoError(t, b.TogglePaper("biology", "P1"))

		sel := b.Selections()[0].Papers[0]
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2024}, sel.Years)
	})

	t.Run("Span clamped to floor", func(t *testing.T) {
		b := newTestBuilder(2012)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))
		require.NoError(t, b.TogglePaper("biology", "P1"))

		sel := b.Selections()[0].Papers[0]
		assert.Equal(t, domain.YearRange{Start: 2010, End: 2012}, sel.Years)
	})
}

func TestBuilder_AdjustYear(t *testing.T) {
	setup := func(t *testing.T) *Builder {
		b := newTestBuilder(2024)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))
		require.NoError(t, b.TogglePaper("biology", "P1"))
		return b
	}

	t.Run("Shift start", func(t *testing.T) {
		b := setup(t)
		b.AdjustYear("biology", "P1", BoundStart, 2)
		assert.Equal(t, domain.YearRange{Start: 2021, End: 2024}, b.Selections()[0].Papers[0].Years)
	})

	t.Run("Out of range is a no-op", func(t *testing.T) {
		b := setup(t)
		b.AdjustYear("biology", "P1", BoundEnd, 1) // 2025 > MaxYear
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2024}, b.Selections()[0].Papers[0].Years)

		b.AdjustYear("biology", "P1", BoundStart, -100)
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2024}, b.Selections()[0].Papers[0].Years)
	})

	t.Run("Start crossing end pulls end along", func(t *testing.T) {
		b := setup(t)
		b.AdjustYear("biology", "P1", BoundEnd, -4) // 2019..2020
		b.AdjustYear("biology", "P1", BoundStart, 3)
		assert.Equal(t, domain.YearRange{Start: 2022, End: 2022}, b.Selections()[0].Papers[0].Years)
	})

	t.Run("End crossing start pulls start along", func(t *testing.T) {
		b := setup(t)
		b.AdjustYear("biology", "P1", BoundStart, 4) // 2023..2024
		b.AdjustYear("biology", "P1", BoundEnd, -3)
		assert.Equal(t, domain.YearRange{Start: 2021, End: 2021}, b.Selections()[0].Papers[0].Years)
	})

	t.Run("Unknown paper ignored", func(t *testing.T) {
		b := setup(t)
		b.AdjustYear("biology", "P2", BoundStart, 1)
		assert.Equal(t, domain.YearRange{Start: 2019, End: 2024}, b.Selections()[0].Papers[0].Years)
	})
}

func TestBuilder_ToggleSession(t *testing.T) {
	b := newTestBuilder(2024)
	require.NoError(t, b.SelectLevel(domain.LevelOLevel))
	require.NoError(t, b.ToggleSubject("biology"))
	require.NoError(t, b.TogglePaper("biology", "P1"))

	t.Run("Add second session", func(t *testing.T) {
		b.ToggleSession("biology", "P1", domain.SessionOctNov)
		sessions := b.Selections()[0].Papers[0].Sessions
		assert.Equal(t, []domain.Session{domain.SessionMayJun, domain.SessionOctNov}, sessions)
	})

	t.Run("Remove session", func(t *testing.T) {
		b.ToggleSession("biology", "P1", domain.SessionMayJun)
		sessions := b.Selections()[0].Papers[0].Sessions
		assert.Equal(t, []domain.Session{domain.SessionOctNov}, sessions)
	})

	t.Run("Removing last session is a no-op", func(t *testing.T) {
		b.ToggleSession("biology", "P1", domain.SessionOctNov)
		sessions := b.Selections()[0].Papers[0].Sessions
		assert.Equal(t, []domain.Session{domain.SessionOctNov}, sessions)
	})
}

func TestBuilder_Price(t *testing.T) {
	b := newTestBuilder(2024)
	require.NoError(t, b.SelectLevel(domain.LevelOLevel))
	require.NoError(t, b.ToggleSubject("biology"))
	require.NoError(t, b.TogglePaper("biology", "P1"))

	// biology P1 в o-level стоит 180 за год, диапазон 2019-2024
	assert.Equal(t, int64(1080), b.Price())

	// Сужение диапазона до пяти лет
	b.AdjustYear("biology", "P1", BoundStart, 1)
	assert.Equal(t, int64(900), b.Price())

	// Переплет добавляет 50 за работу
	require.NoError(t, b.SetBinding(domain.BindingTape))
	assert.Equal(t, int64(950), b.Price())
}

func TestBuilder_Commit(t *testing.T) {
	t.Run("No papers selected", func(t *testing.T) {
		b := newTestBuilder(2024)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))

		item, err := b.Commit()
		assert.ErrorIs(t, err, domain.ErrNoPapersSelected)
		assert.Nil(t, item)

		// Состояние не сброшено
		assert.Equal(t, domain.LevelOLevel, b.Level())
	})

	t.Run("Success", func(t *testing.T) {
		b := newTestBuilder(2024)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))
		require.NoError(t, b.TogglePaper("biology", "P1"))
		require.NoError(t, b.SetBinding(domain.BindingTape))

		item, err := b.Commit()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(item.ID, "package-"))
		assert.Equal(t, domain.ItemKindCustom, item.Kind)
		assert.Equal(t, "O Level Biology", item.Name)
		assert.Equal(t, int64(1080+50), item.UnitPrice)
		assert.Equal(t, 1, item.Quantity)

		require.NotNil(t, item.Details)
		assert.Equal(t, "O Level", item.Details.Level)
		require.Len(t, item.Details.Subjects, 1)
		assert.Equal(t, "Biology", item.Details.Subjects[0].Name)
		assert.Equal(t, "5090", item.Details.Subjects[0].Code)
		require.Len(t, item.Details.Subjects[0].Papers, 1)
		assert.Equal(t, "2019-2024", item.Details.Subjects[0].Papers[0].YearRange)

		// Фиксация не трогает состояние: если запись в корзину не
		// удалась, собранный пакет не теряется
		assert.Equal(t, domain.LevelOLevel, b.Level())
		require.Len(t, b.Selections(), 1)
		assert.Equal(t, domain.BindingTape, b.Binding())
	})

	t.Run("Reset clears everything", func(t *testing.T) {
		b := newTestBuilder(2024)
		require.NoError(t, b.SelectLevel(domain.LevelOLevel))
		require.NoError(t, b.ToggleSubject("biology"))
		require.NoError(t, b.TogglePaper("biology", "P1"))
		require.NoError(t, b.SetBinding(domain.BindingRing))

		b.Reset()

		assert.Empty(t, b.Level())
		assert.Empty(t, b.Selections())
		assert.Equal(t, domain.BindingNone, b.Binding())
	})

	t.Run("Unique item IDs", func(t *testing.T) {
		build := func() string {
			b := newTestBuilder(2024)
			require.NoError(t, b.SelectLevel(domain.LevelOLevel))
			require.NoError(t, b.ToggleSubject("biology"))
			require.NoError(t, b.TogglePaper("biology", "P1"))
			item, err := b.Commit()
			require.NoError(t, err)
			return item.ID
		}
		assert.NotEqual(t, build(), build())
	})
}

func TestStore(t *testing.T) {
	store := NewStore()

	t.Run("Same token yields same builder", func(t *testing.T) {
		a := store.Get("cart-1")
		b := store.Get("cart-1")
		assert.Same(t, a, b)
	})

	t.Run("Different tokens are isolated", func(t *testing.T) {
		require.NoError(t, store.Get("cart-1").SelectLevel(domain.LevelOLevel))
		assert.Empty(t, store.Get("cart-2").Level())
	})

	t.Run("Drop removes state", func(t *testing.T) {
		store.Drop("cart-1")
		assert.Empty(t, store.Get("cart-1").Level())
	})
}

func TestStore_Eviction(t *testing.T) {
	store := NewStore()
	current := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Get("stale").SelectLevel(domain.LevelOLevel))

	t.Run("Recently touched builder survives", func(t *testing.T) {
		current = current.Add(builderTTL - time.Minute)
		assert.Equal(t, domain.LevelOLevel, store.Get("stale").Level())
	})

	t.Run("Abandoned builder is evicted", func(t *testing.T) {
		current = current.Add(builderTTL + time.Minute)
		// Обращение к другому сеансу вычищает брошенный
		store.Get("fresh")
		assert.Empty(t, store.Get("stale").Level())
	})
}
