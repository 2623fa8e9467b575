// Package cart is the single source of truth for cart contents and the
// checkout lifecycle. Every mutation runs mutate -> persist -> notify, with
// persistence written through to storage synchronously.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"github.com/AnujGadekar1/verto-eshop/internal/storage"
	"go.uber.org/zap"
)

// CheckoutClient submits an order to the remote backend. Consumers define
// this interface, not the HTTP implementation.
type CheckoutClient interface {
	Checkout(ctx context.Context, items []domain.CheckoutItem) (*domain.OrderResponse, error)
}

// Notifier reports operation outcomes to the user. Satisfied by
// notification.Store.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
}

type Store struct {
	storage  storage.CartStorage
	checkout CheckoutClient
	notifier Notifier
	logger   *zap.Logger

	mu          sync.Mutex
	items       []domain.LineItem
	checkingOut bool
	lastOrderID string
	open        bool
}

// NewStore loads the persisted cart and returns a ready store. A missing or
// unparsable persisted cart degrades to an empty one; startup never fails
// on storage contents. Nil dependencies are a wiring bug and panic.
func NewStore(ctx context.Context, st storage.CartStorage, checkout CheckoutClient, notifier Notifier, logger *zap.Logger) *Store {
	if st == nil || checkout == nil || notifier == nil || logger == nil {
		panic("cart: store constructed without its dependencies")
	}

	items, err := st.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("discarding unreadable persisted cart", zap.Error(err))
		}
		items = nil
	}

	return &Store{
		storage:  st,
		checkout: checkout,
		notifier: notifier,
		logger:   logger,
		items:    items,
	}
}

// AddItem puts one unit of product into the cart. An existing line item for
// the same product id has its quantity incremented; otherwise a new line
// item is appended, preserving first-addition order.
func (s *Store) AddItem(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	message := fmt.Sprintf("%s added to cart!", product.Name)
	merged := false
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			message = fmt.Sprintf("Increased quantity of %s to %d.", product.Name, s.items[i].Quantity)
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, domain.LineItem{Product: product, Quantity: 1})
	}
	persistErr := s.persistLocked(ctx)
	s.mu.Unlock()

	s.reportPersist(persistErr)
	s.notifier.Success(message)
}

// SetQuantity replaces the quantity of the line item with the given product
// id. Quantity zero or below removes the item. Unknown ids are a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	idx := s.indexLocked(productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	var message string
	if quantity <= 0 {
		message = fmt.Sprintf("%s removed from cart.", s.items[idx].Name)
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		s.items[idx].Quantity = quantity
	}
	persistErr := s.persistLocked(ctx)
	s.mu.Unlock()

	s.reportPersist(persistErr)
	if message != "" {
		s.notifier.Success(message)
	}
}

// RemoveItem drops the line item with the given product id. Unknown ids are
// a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	idx := s.indexLocked(productID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	message := fmt.Sprintf("%s removed from cart.", s.items[idx].Name)
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	persistErr := s.persistLocked(ctx)
	s.mu.Unlock()

	s.reportPersist(persistErr)
	s.notifier.Success(message)
}

// Checkout submits the cart to the backend. Refused outright, with no
// network call and no state change, when the cart is empty or another
// checkout is still in flight. On success the cart is emptied, persisted
// storage cleared, the order id recorded, and the cart view closed. On
// failure the cart is left untouched and an error notification is queued.
// The in-flight flag is cleared last in every path.
func (s *Store) Checkout(ctx context.Context) {
	s.mu.Lock()
	if s.checkingOut || len(s.items) == 0 {
		inFlight := s.checkingOut
		s.mu.Unlock()
		s.logger.Debug("checkout refused",
			zap.Bool("in_flight", inFlight),
		)
		return
	}
	s.checkingOut = true
	items := make([]domain.CheckoutItem, len(s.items))
	for i, li := range s.items {
		items[i] = domain.CheckoutItem{ProductID: li.ID, Quantity: li.Quantity}
	}
	s.mu.Unlock()

	order, err := s.checkout.Checkout(ctx, items)

	if err != nil {
		s.logger.Error("checkout failed", zap.Error(err))
		s.notifier.Error("Checkout failed. Please try again.")
	} else {
		s.mu.Lock()
		s.lastOrderID = order.OrderID
		s.items = nil
		s.open = false
		clearErr := s.storage.Clear(ctx)
		s.mu.Unlock()

		if clearErr != nil {
			s.logger.Warn("could not clear persisted cart", zap.Error(clearErr))
		}
		s.logger.Info("order placed",
			zap.String("order_id", order.OrderID),
			zap.Int64("total_cents", order.TotalCents),
		)
		s.notifier.Success(fmt.Sprintf("Order Placed! Order ID: %s", order.OrderID))
	}

	s.mu.Lock()
	s.checkingOut = false
	s.mu.Unlock()
}

// ClearLastOrder resets the last-completed order id, dismissing the order
// confirmation view.
func (s *Store) ClearLastOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrderID = ""
}

// ToggleCart flips the cart view open or closed.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}

// Items returns a snapshot of the cart's line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalCents is recomputed from the current line items on every call.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.TotalCents(s.items)
}

func (s *Store) IsCheckingOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkingOut
}

func (s *Store) LastOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrderID
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Store) indexLocked(productID string) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) error {
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return s.storage.Save(ctx, items)
}

// reportPersist surfaces a failed write-through. The in-memory cart is kept;
// the user just loses persistence for this session.
func (s *Store) reportPersist(err error) {
	if err == nil {
		return
	}
	s.logger.Warn("could not persist cart", zap.Error(err))
	s.notifier.Warning("Could not save your cart.")
}
