// kitchenboard is a terminal kitchen display: it polls the order API
// for the active queue and redraws the board every few seconds until
// interrupted.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkotelnikov/restaurant-pos/internal/board"
	"github.com/mkotelnikov/restaurant-pos/internal/logging"
	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/pkg/apiclient"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "base URL of the order API")
	interval := flag.Duration("interval", board.KitchenInterval, "refresh interval")
	flag.Parse()

	logger := logging.New("info")
	client := apiclient.New(*apiURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.IntoContext(ctx, logger)

	p := &board.Poller{
		Fetch:    client.ActiveOrders,
		Interval: *interval,
		OnUpdate: func(orders []models.Order) {
			now := time.Now()
			board.Render(os.Stdout, board.Decorate(orders, now), now)
		},
		OnError: func(err error) {
			logger.Warn("refresh failed", "error", err)
		},
	}

	p.Run(ctx)
}
