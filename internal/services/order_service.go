package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"order-fulfillment/internal/auth"
	"order-fulfillment/internal/catalog"
	"order-fulfillment/internal/domain"
	rabbit "order-fulfillment/internal/infra/rabbitmq"
	"order-fulfillment/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// OrderService orchestrates validation, pricing, stock reservation and
// persistence, and applies the authorization rules of the order API.
type OrderService struct {
	repo        repository.OrderRepository
	catalog     catalog.Store
	validator   *OrderValidator
	reservation *InventoryReservation
	publisher   rabbit.PublisherInterface
	now         func() time.Time
	newID       func() string
}

func NewOrderService(repo repository.OrderRepository, store catalog.Store, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:        repo,
		catalog:     store,
		validator:   NewOrderValidator(store),
		reservation: NewInventoryReservation(store),
		publisher:   pub,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// SetClock overrides the timestamp source. Tests use this to pin time.
func (s *OrderService) SetClock(now func() time.Time) {
	s.now = now
}

// SetIDGenerator overrides order ID generation.
func (s *OrderService) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// Create runs validate -> price -> reserve -> insert. The order row is
// written only after the reservation committed, so a reservation failure
// never leaves an orphaned order. A failed insert releases the stock again.
func (s *OrderService) Create(ctx context.Context, p auth.Principal, reqs []LineItemRequest, addr domain.Address, paymentMethod string) (*domain.Order, error) {
	items, err := s.validator.Validate(ctx, reqs)
	if err != nil {
		return nil, err
	}

	quote := domain.Price(items)

	if err := s.reservation.Reserve(ctx, items); err != nil {
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		ID:              s.newID(),
		OwnerID:         p.ID,
		Items:           items,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
		Subtotal:        quote.Subtotal,
		TaxAmount:       quote.Tax,
		ShippingAmount:  quote.Shipping,
		TotalAmount:     quote.Total,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		s.reservation.Release(ctx, items)
		return nil, err
	}

	go s.publish(rabbit.PatternOrderCreated, domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OwnerID:     order.OwnerID,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	})

	return order, nil
}

// GetOwn returns the principal's own orders, newest first.
func (s *OrderService) GetOwn(ctx context.Context, p auth.Principal) ([]domain.Order, error) {
	return s.repo.FindByOwner(ctx, p.ID)
}

// GetByID returns one order; only its owner or an admin may read it.
func (s *OrderService) GetByID(ctx context.Context, p auth.Principal, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if o.OwnerID != p.ID && !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// Pay marks the order paid and advances it to preparing. Only the owner may
// pay, and only from pending. The write is CAS on status, so a racing
// second pay loses and gets ErrIllegalTransition.
func (s *OrderService) Pay(ctx context.Context, p auth.Principal, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if o.OwnerID != p.ID {
		return nil, domain.ErrForbidden
	}
	if o.Status != domain.StatusPending {
		return nil, domain.TransitionErr(o.Status, domain.StatusPreparing)
	}

	now := s.now()
	o.Status = domain.StatusPreparing
	o.IsPaid = true
	o.PaidAt = &now
	o.UpdatedAt = now

	ok, err := s.repo.UpdateIfStatus(ctx, o, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.TransitionErr(domain.StatusPending, domain.StatusPreparing)
	}

	go s.publish(rabbit.PatternOrderPaid, domain.OrderPaidEvent{
		OrderID: o.ID,
		OwnerID: o.OwnerID,
		PaidAt:  now,
	})

	return o, nil
}

// ListAll returns every order, newest first. Admin only.
func (s *OrderService) ListAll(ctx context.Context, p auth.Principal) ([]domain.Order, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindAll(ctx)
}

// UpdateStatus moves an order along the lifecycle graph. Admin only; any
// edge outside the transition table is rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, p auth.Principal, id string, newStatus domain.OrderStatus) (*domain.Order, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrIllegalTransition, newStatus)
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}

	from := o.Status
	if !domain.CanTransition(from, newStatus) {
		return nil, domain.TransitionErr(from, newStatus)
	}

	now := s.now()
	o.Status = newStatus
	o.UpdatedAt = now
	if newStatus == domain.StatusDelivered {
		o.IsDelivered = true
		o.DeliveredAt = &now
	}

	ok, err := s.repo.UpdateIfStatus(ctx, o, from)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.TransitionErr(from, newStatus)
	}

	go s.publish(rabbit.PatternOrderStatusChanged, domain.OrderStatusChangedEvent{
		OrderID:   o.ID,
		From:      from,
		To:        newStatus,
		ChangedAt: now,
	})

	return o, nil
}

// WarmupProductCache primes the catalog read cache for the given products.
// Lookup failures are logged and skipped.
func (s *OrderService) WarmupProductCache(ctx context.Context, productIDs []uint64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, id := range productIDs {
		id := id
		g.Go(func() error {
			if _, err := s.catalog.FindByID(ctx, id); err != nil {
				slog.Warn("cache warmup lookup failed", "productId", id, "error", err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Event publishing is best-effort and off the request path; a broker
// hiccup must not fail an order that already committed.
func (s *OrderService) publish(pattern string, data any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, pattern, data); err != nil {
		slog.Error("failed to publish event", "pattern", pattern, "error", err)
	}
}
