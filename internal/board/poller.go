package board

import (
	"context"
	"sync"
	"time"

	"github.com/mkotelnikov/restaurant-pos/internal/logging"
	"github.com/mkotelnikov/restaurant-pos/internal/models"
)

// Default refresh intervals: the kitchen queue turns over faster than
// the per-type order boards.
const (
	KitchenInterval = 5 * time.Second
	OrdersInterval  = 10 * time.Second
)

// FetchFunc loads the current order list from the API.
type FetchFunc func(ctx context.Context) ([]models.Order, error)

// Poller re-fetches a view's order list on a fixed interval. It is
// owned by the view's lifecycle: cancelling the context passed to Run
// stops the ticker and no callback fires afterwards. A response that
// comes back after a newer fetch has started is dropped, so the view
// only ever sees the most recent server state.
type Poller struct {
	Fetch    FetchFunc
	Interval time.Duration
	OnUpdate func([]models.Order)
	OnError  func(error)

	mu  sync.Mutex
	gen uint64
}

// Refresh performs one fetch and delivers the result unless a newer
// fetch has started in the meantime.
func (p *Poller) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	orders, err := p.Fetch(ctx)

	p.mu.Lock()
	stale := gen != p.gen
	p.mu.Unlock()
	if stale || ctx.Err() != nil {
		return
	}

	if err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return
	}
	if p.OnUpdate != nil {
		p.OnUpdate(orders)
	}
}

// Run fetches immediately, then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = OrdersInterval
	}

	p.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.FromContext(ctx).Info("board poller stopped")
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}
