// Package checkout turns a purchase into a persisted order owned by the
// buyer's customer record.
package checkout

import (
	"context"
	"fmt"

	"shop-backend/internal/domain"
	"shop-backend/internal/events"
	"shop-backend/internal/logger"
	customerrepo "shop-backend/internal/repository/customer"

	"go.uber.org/zap"
)

type (
	// UnitOfWork scopes the customer store to one transaction.
	UnitOfWork interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		Customers() customerrepo.Repository
	}

	UnitOfWorkFactory interface {
		Create() UnitOfWork
	}

	// UnitOfWorkFactoryFunc adapts a plain constructor to UnitOfWorkFactory.
	UnitOfWorkFactoryFunc func() UnitOfWork
)

func (f UnitOfWorkFactoryFunc) Create() UnitOfWork { return f() }

type Service struct {
	uowFactory     UnitOfWorkFactory
	publisher      events.Publisher
	trackingNumber func() string
	log            *zap.SugaredLogger
}

func New(uowFactory UnitOfWorkFactory, publisher events.Publisher, log *zap.SugaredLogger) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		uowFactory:     uowFactory,
		publisher:      publisher,
		trackingNumber: newTrackingNumber,
		log:            logger.OrNop(log).With("service", "checkout"),
	}
}

// PlaceOrder builds the order, attaches it to the customer resolved by email
// and saves the whole graph in one transaction. Failures are returned as-is
// after rollback; nothing is retried.
func (s *Service) PlaceOrder(ctx context.Context, p domain.Purchase) (*domain.PurchaseResponse, error) {
	if p.Order == nil || p.Customer == nil {
		return nil, domain.ErrInvalidPurchase
	}

	order := buildOrder(p, s.trackingNumber)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.Customers()
	customer, created, err := customers.FindOrCreate(ctx, p.Customer)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	customer.Add(order)

	if err := customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	s.log.Infow("order placed",
		"trackingNumber", order.TrackingNumber,
		"customerID", customer.ID,
		"newCustomer", created,
		"items", len(order.Items()),
	)
	s.announce(ctx, customer, order)

	return &domain.PurchaseResponse{OrderTrackingNumber: order.TrackingNumber}, nil
}

// announce is best-effort: the order is already committed.
func (s *Service) announce(ctx context.Context, c *domain.Customer, o *domain.Order) {
	err := s.publisher.PublishOrderPlaced(ctx, events.OrderPlaced{
		OrderTrackingNumber: o.TrackingNumber,
		CustomerEmail:       c.Email,
		TotalQuantity:       o.TotalQuantity,
		TotalPrice:          o.TotalPrice,
	})
	if err != nil {
		s.log.Warnw("publish order placed failed", "trackingNumber", o.TrackingNumber, "error", err)
	}
}
