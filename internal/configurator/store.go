package configurator

import (
	"sync"
	"time"
)

// builderTTL задает срок жизни незавершенной сборки с момента
// последнего обращения. Брошенные сеансы вычищаются при очередном
// обращении к хранилищу.
const builderTTL = 24 * time.Hour

type entry struct {
	builder *Builder
	touched time.Time
}

// Store хранит сборщики по токену корзины. Состояние живет в памяти
// процесса: незавершенная сборка пакета теряется при перезапуске,
// как и в исходном поведении витрины.
type Store struct {
	mu       sync.Mutex
	builders map[string]*entry
	now      func() time.Time
}

// NewStore создает пустое хранилище сборщиков
func NewStore() *Store {
	return &Store{
		builders: make(map[string]*entry),
		now:      time.Now,
	}
}

// Get возвращает сборщик сеанса, создавая его при первом обращении
func (s *Store) Get(cartID string) *Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(cartID)
}

// Drop удаляет сборщик сеанса
func (s *Store) Drop(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.builders, cartID)
}

// WithBuilder выполняет fn над сборщиком сеанса под блокировкой
func (s *Store) WithBuilder(cartID string, fn func(*Builder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.get(cartID))
}

// get возвращает сборщик сеанса и отмечает обращение.
// Вызывается под s.mu.
func (s *Store) get(cartID string) *Builder {
	s.sweep()

	e, ok := s.builders[cartID]
	if !ok {
		e = &entry{builder: NewBuilder()}
		s.builders[cartID] = e
	}
	e.touched = s.now()
	return e.builder
}

// sweep удаляет сборщики, к которым не обращались дольше builderTTL
func (s *Store) sweep() {
	cutoff := s.now().Add(-builderTTL)
	for cartID, e := range s.builders {
		if e.touched.Before(cutoff) {
			delete(s.builders, cartID)
		}
	}
}
