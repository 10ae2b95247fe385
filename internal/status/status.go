package status

import "time"

// Status is the lifecycle state of an order.
type Status string

const (
	Pending   Status = "pending"
	Preparing Status = "preparing"
	Ready     Status = "ready"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// UrgentAfter is how long an active order may wait before the kitchen
// board highlights it.
const UrgentAfter = 15 * time.Minute

var transitions = map[Status][]Status{
	Pending:   {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Completed, Cancelled},
	Completed: {},
	Cancelled: {},
}

func Parse(s string) (Status, bool) {
	st := Status(s)
	_, ok := transitions[st]
	return st, ok
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Next returns the statuses reachable from s. The returned slice is
// shared; callers must not mutate it.
func (s Status) Next() []Status {
	return transitions[s]
}

func (s Status) CanTransition(to Status) bool {
	for _, n := range transitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == Completed || s == Cancelled
}

// Active reports whether the order still belongs on the kitchen board.
func (s Status) Active() bool {
	return s.Valid() && !s.Terminal()
}

// Urgent reports whether an active order created at createdAt has waited
// longer than UrgentAfter as of now. Terminal orders are never urgent.
func Urgent(s Status, createdAt, now time.Time) bool {
	if !s.Active() {
		return false
	}
	return now.Sub(createdAt) > UrgentAfter
}

// Label and Color back every view that renders a status, so the
// per-page mappings stay in one place.

var labels = map[Status]string{
	Pending:   "Pending",
	Preparing: "Preparing",
	Ready:     "Ready",
	Completed: "Completed",
	Cancelled: "Cancelled",
}

var colors = map[Status]string{
	Pending:   "#f0ad4e",
	Preparing: "#5bc0de",
	Ready:     "#5cb85c",
	Completed: "#777777",
	Cancelled: "#d9534f",
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Color() string {
	if c, ok := colors[s]; ok {
		return c
	}
	return "#777777"
}

// Action is a lifecycle action a view may offer for an order.
type Action string

const (
	ActionStartPreparing Action = "start_preparing"
	ActionMarkReady      Action = "mark_ready"
	ActionGenerateBill   Action = "generate_bill"
	ActionCancel         Action = "cancel"
)

var actionTargets = map[Action]Status{
	ActionStartPreparing: Preparing,
	ActionMarkReady:      Ready,
	ActionGenerateBill:   Completed,
	ActionCancel:         Cancelled,
}

// Target returns the status the action drives the order towards.
func (a Action) Target() Status {
	return actionTargets[a]
}

// Actions returns the lifecycle actions a view should offer for an
// order in status s. Terminal statuses get none.
func Actions(s Status) []Action {
	switch s {
	case Pending:
		return []Action{ActionStartPreparing, ActionCancel}
	case Preparing:
		return []Action{ActionMarkReady, ActionCancel}
	case Ready:
		return []Action{ActionGenerateBill, ActionCancel}
	default:
		return nil
	}
}
