package navigation

import "sync"

const RouteOrderTracking = "OrderTracking"

// Route is a presentation destination plus its parameters.
type Route struct {
	Name    string
	OrderID string
}

// Navigator is the readiness-guarded navigation entry point. Until the
// presentation layer marks it ready, navigation requests are rejected
// instead of queued; the caller decides whether that matters.
type Navigator struct {
	mu      sync.Mutex
	ready   bool
	current Route
}

func New() *Navigator {
	return &Navigator{}
}

func (n *Navigator) SetReady(ready bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.ready = ready
}

func (n *Navigator) Ready() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.ready
}

// NavigateToOrderTracking opens the tracking screen for the given order.
// Reports false when the navigator is not ready yet.
func (n *Navigator) NavigateToOrderTracking(orderID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.ready {
		return false
	}
	n.current = Route{Name: RouteOrderTracking, OrderID: orderID}
	return true
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}
