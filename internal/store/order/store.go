package order

import (
	"sync"

	"github.com/Ralet11/pandaApp/internal/entities"
)

// Store is the single source of truth for order data visible to the
// presentation layer. It holds three views: the current order being
// tracked, orders not yet in a terminal status, and the append-only
// historic set. All mutation goes through the operations below; the store
// is injected where needed rather than imported as a singleton.
type Store struct {
	mu       sync.Mutex
	current  entities.Order
	active   []entities.Order
	historic []entities.Order

	// lastSeq tracks the highest applied ordering token per order, so a
	// late-delivered status event cannot regress a newer one. Events
	// without a token (seq 0) keep last-write-wins semantics.
	lastSeq map[string]int64

	// epoch changes whenever the identity of the current order changes.
	// In-flight refreshes compare epochs and discard stale results.
	epoch uint64
}

func New() *Store {
	return &Store{
		lastSeq: make(map[string]int64),
	}
}

// SetCurrentOrder shallow-merges the given fields into the current order.
func (s *Store) SetCurrentOrder(modify entities.OrderModify) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if modify.ID != nil && *modify.ID != s.current.ID {
		s.epoch++
	}
	applyModify(&s.current, modify)
}

// SetOrderItems replaces the current order's line items.
func (s *Store) SetOrderItems(items []entities.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Items = copyItems(items)
}

// ClearCurrentOrder resets the current order to an empty record. Used on
// logout and when a new cart is started.
func (s *Store) ClearCurrentOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.ID != "" {
		s.epoch++
	}
	s.current = entities.Order{Status: entities.OrderPending}
}

// AddCurrentOrderToActiveOrders seeds a freshly created order into the
// active and historic views and makes it the current order.
func (s *Store) AddCurrentOrderToActiveOrders(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.Status == "" {
		order.Status = entities.OrderPending
	}

	if findOrder(s.active, order.ID) == nil {
		s.active = append(s.active, cloneOrder(order))
	}
	if findOrder(s.historic, order.ID) == nil {
		s.historic = append(s.historic, cloneOrder(order))
	}

	if order.ID != s.current.ID {
		s.epoch++
	}
	s.current = cloneOrder(order)
}

// AddHistoricOrder upserts by identifier: fields of an existing record are
// replaced in place, otherwise the order is appended.
func (s *Store) AddHistoricOrder(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if found := findOrder(s.historic, order.ID); found != nil {
		*found = cloneOrder(order)
		return
	}
	s.historic = append(s.historic, cloneOrder(order))
}

// SetHistoricOrders replaces the historic view wholesale (list bootstrap).
func (s *Store) SetHistoricOrders(orders []entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.historic = make([]entities.Order, 0, len(orders))
	s.active = s.active[:0]
	for _, o := range orders {
		s.historic = append(s.historic, cloneOrder(o))
		if !o.Status.Terminal() {
			s.active = append(s.active, cloneOrder(o))
		}
	}
}

func (s *Store) RemoveHistoricOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.historic[:0]
	for _, o := range s.historic {
		if o.ID != orderID {
			filtered = append(filtered, o)
		}
	}
	s.historic = filtered
}

// SetCurrentOrderByID promotes a historic order to current. Reports whether
// the order was found.
func (s *Store) SetCurrentOrderByID(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := findOrder(s.historic, orderID)
	if found == nil {
		return false
	}
	if found.ID != s.current.ID {
		s.epoch++
	}
	s.current = cloneOrder(*found)
	return true
}

// UpdateOrderState updates the status of orderID wherever the order is
// currently held: historic, active and the current order are each checked
// independently. A terminal status evicts the order from the active view.
// Reports false when the event's seq is not newer than the last applied
// one for that order; nothing is mutated in that case.
func (s *Store) UpdateOrderState(orderID string, status entities.OrderStatusType, seq int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq > 0 {
		if last, ok := s.lastSeq[orderID]; ok && seq <= last {
			return false
		}
		s.lastSeq[orderID] = seq
	}

	if o := findOrder(s.historic, orderID); o != nil {
		o.Status = status
	}
	if o := findOrder(s.active, orderID); o != nil {
		o.Status = status
	}
	if s.current.ID == orderID {
		s.current.Status = status
	}

	if status.Terminal() {
		filtered := s.active[:0]
		for _, o := range s.active {
			if o.ID != orderID {
				filtered = append(filtered, o)
			}
		}
		s.active = filtered
	}
	return true
}

// UpdateOrderLocation merges only the courier-position fields into the
// current order; everything else is untouched.
func (s *Store) UpdateOrderLocation(pos entities.CourierPosition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Courier = &pos
}

// Knows reports whether orderID is present in the active or historic view.
func (s *Store) Knows(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return findOrder(s.active, orderID) != nil || findOrder(s.historic, orderID) != nil
}

func (s *Store) CurrentOrder() entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneOrder(s.current)
}

func (s *Store) ActiveOrders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneOrders(s.active)
}

func (s *Store) HistoricOrders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneOrders(s.historic)
}

func (s *Store) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.epoch
}

// Snapshot is the persisted subset of the store.
type Snapshot struct {
	Current  entities.Order
	Active   []entities.Order
	Historic []entities.Order
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Current:  cloneOrder(s.current),
		Active:   cloneOrders(s.active),
		Historic: cloneOrders(s.historic),
	}
}

func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = cloneOrder(snap.Current)
	s.active = cloneOrders(snap.Active)
	s.historic = cloneOrders(snap.Historic)
	s.epoch++
}

func findOrder(orders []entities.Order, id string) *entities.Order {
	if id == "" {
		return nil
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i]
		}
	}
	return nil
}

func applyModify(order *entities.Order, modify entities.OrderModify) {
	if modify.ID != nil {
		order.ID = *modify.ID
	}
	if modify.UserID != nil {
		order.UserID = *modify.UserID
	}
	if modify.ShopID != nil {
		order.ShopID = *modify.ShopID
	}
	if modify.Price != nil {
		order.Price = *modify.Price
	}
	if modify.DeliveryFee != nil {
		order.DeliveryFee = *modify.DeliveryFee
	}
	if modify.Tip != nil {
		order.Tip = *modify.Tip
	}
	if modify.FinalPrice != nil {
		order.FinalPrice = *modify.FinalPrice
	}
	if modify.DeliveryAddress != nil {
		order.DeliveryAddress = *modify.DeliveryAddress
	}
	if modify.Items != nil {
		order.Items = copyItems(*modify.Items)
	}
	if modify.Status != nil {
		order.Status = *modify.Status
	}
	if modify.Courier != nil {
		courier := *modify.Courier
		order.Courier = &courier
	}
	if modify.CreatedAt != nil {
		order.CreatedAt = *modify.CreatedAt
	}
}

func cloneOrder(order entities.Order) entities.Order {
	clone := order
	clone.Items = copyItems(order.Items)
	if order.Courier != nil {
		courier := *order.Courier
		clone.Courier = &courier
	}
	return clone
}

func cloneOrders(orders []entities.Order) []entities.Order {
	if orders == nil {
		return nil
	}
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

func copyItems(items []entities.OrderItem) []entities.OrderItem {
	if items == nil {
		return nil
	}
	out := make([]entities.OrderItem, len(items))
	copy(out, items)
	return out
}
