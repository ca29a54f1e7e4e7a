// Package worker реализует пул воркеров для асинхронной отправки
// уведомлений о заказах. Доставка best effort: неудачная отправка
// логируется и не повторяется.
package worker

import (
	"context"
	"sync"

	"github.com/mtw/paperstore/internal/domain"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров отправки уведомлений
type Pool struct {
	workers  int
	queue    chan *domain.Order
	notifier domain.Notifier
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewPool создает новый worker pool
func NewPool(workers, queueSize int, notifier domain.Notifier, logger *zap.Logger) *Pool {
	return &Pool{
		workers:  workers,
		queue:    make(chan *domain.Order, queueSize),
		notifier: notifier,
		logger:   logger,
	}
}

// Start запускает воркеры
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop останавливает пул и дожидается воркеров
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// Enqueue ставит уведомление о заказе в очередь, не блокируясь.
// При заполненной очереди уведомление отбрасывается с предупреждением:
// заказ уже создан, доставка письма best effort.
func (p *Pool) Enqueue(order *domain.Order) {
	select {
	case p.queue <- order:
	default:
		p.logger.Warn("notification queue is full, dropping notification",
			zap.String("order", order.Number),
		)
	}
}

// QueueDepth возвращает текущую заполненность и емкость очереди
func (p *Pool) QueueDepth() (used, size int) {
	return len(p.queue), cap(p.queue)
}

// worker отправляет уведомления из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("notification worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("notification worker stopping", zap.Int("worker_id", id))
			return
		case order, ok := <-p.queue:
			if !ok {
				return
			}
			p.send(ctx, order)
		}
	}
}

// send выполняет одну отправку. Ошибка логируется и не повторяется
func (p *Pool) send(ctx context.Context, order *domain.Order) {
	if err := p.notifier.SendOrderEmail(ctx, order); err != nil {
		p.logger.Error("failed to send order notification",
			zap.String("order", order.Number),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("order notification sent", zap.String("order", order.Number))
}
