// Package board renders terminal views of the order lifecycle and owns
// the polling that keeps them current. Views never mutate local order
// state after a transition request; they re-fetch and trust the server.
package board

import (
	"fmt"
	"io"
	"time"

	"github.com/mkotelnikov/restaurant-pos/internal/models"
	"github.com/mkotelnikov/restaurant-pos/internal/status"
	"github.com/mkotelnikov/restaurant-pos/internal/transport"
)

// Decorate derives the display attributes for each order: urgency,
// status label and color, and the lifecycle actions to offer.
func Decorate(orders []models.Order, now time.Time) []transport.BoardOrder {
	out := make([]transport.BoardOrder, len(orders))
	for i, o := range orders {
		st := status.Status(o.Status)
		out[i] = transport.BoardOrder{
			Order:   o,
			Urgent:  status.Urgent(st, o.CreatedAt, now),
			Label:   st.Label(),
			Color:   st.Color(),
			Actions: status.Actions(st),
		}
	}
	return out
}

// Render writes the kitchen queue as a plain-text board.
func Render(w io.Writer, orders []transport.BoardOrder, now time.Time) {
	fmt.Fprintf(w, "=== KITCHEN %s ===\n", now.Format("15:04:05"))
	if len(orders) == 0 {
		fmt.Fprintln(w, "no active orders")
		return
	}

	for _, o := range orders {
		mark := " "
		if o.Urgent {
			mark = "!"
		}
		age := now.Sub(o.CreatedAt).Round(time.Minute)
		fmt.Fprintf(w, "%s %-8s %-10s %-9s %4s", mark, o.Token, o.Label, o.OrderType, age)
		if o.TableNumber != nil {
			fmt.Fprintf(w, "  table %d", *o.TableNumber)
		}
		fmt.Fprintln(w)
		for _, it := range o.Items {
			fmt.Fprintf(w, "    %dx %s", it.Quantity, it.ItemName)
			if it.Customization != "" {
				fmt.Fprintf(w, " (%s)", it.Customization)
			}
			fmt.Fprintln(w)
		}
	}
}
