package checkout

import (
	"context"
	"errors"
	"sync"

	"shop-backend/internal/domain"
	customerrepo "shop-backend/internal/repository/customer"
)

// memStore is a transactional in-memory customer store. Writes made through a
// unit of work become visible only on Commit.
type memStore struct {
	mu        sync.Mutex
	customers map[string]storedCustomer
	nextID    int64
	saveErr   error
	commitErr error
}

type storedCustomer struct {
	id     int64
	first  string
	email  string
	orders []storedOrder
}

type storedOrder struct {
	trackingNumber string
	productIDs     []int64
	billing        *domain.Address
	shipping       *domain.Address
}

func newMemStore() *memStore {
	return &memStore{customers: map[string]storedCustomer{}}
}

func (s *memStore) seed(c storedCustomer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.id = s.nextID
	s.customers[c.email] = c
}

func (s *memStore) get(email string) (storedCustomer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[email]
	return c, ok
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

func (s *memStore) factory() UnitOfWorkFactory {
	return UnitOfWorkFactoryFunc(func() UnitOfWork { return &memUoW{store: s} })
}

type memUoW struct {
	store  *memStore
	staged map[string]storedCustomer
	nextID int64
	began  bool
}

func (u *memUoW) Begin(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.staged = make(map[string]storedCustomer, len(u.store.customers))
	for k, v := range u.store.customers {
		v.orders = append([]storedOrder(nil), v.orders...)
		u.staged[k] = v
	}
	u.nextID = u.store.nextID
	u.began = true
	return nil
}

func (u *memUoW) Commit(context.Context) error {
	if !u.began {
		return errors.New("no transaction")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	if u.store.commitErr != nil {
		return u.store.commitErr
	}
	u.store.customers = u.staged
	u.store.nextID = u.nextID
	u.began = false
	return nil
}

func (u *memUoW) Rollback(context.Context) error {
	u.staged = nil
	u.began = false
	return nil
}

func (u *memUoW) Customers() customerrepo.Repository {
	return &memCustomers{uow: u}
}

type memCustomers struct {
	uow *memUoW
}

func (r *memCustomers) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	c, ok := r.uow.staged[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Customer{ID: c.id, FirstName: c.first, Email: c.email}, nil
}

func (r *memCustomers) FindOrCreate(ctx context.Context, candidate *domain.Customer) (*domain.Customer, bool, error) {
	if found, err := r.FindByEmail(ctx, candidate.Email); err == nil {
		return found, false, nil
	}
	r.uow.nextID++
	candidate.ID = r.uow.nextID
	r.uow.staged[candidate.Email] = storedCustomer{id: candidate.ID, first: candidate.FirstName, email: candidate.Email}
	return candidate, true, nil
}

func (r *memCustomers) Save(_ context.Context, c *domain.Customer) error {
	if r.uow.store.saveErr != nil {
		return r.uow.store.saveErr
	}
	stored := r.uow.staged[c.Email]
	stored.id, stored.email = c.ID, c.Email
	for _, o := range c.Orders() {
		if !o.IsNew() {
			continue
		}
		so := storedOrder{trackingNumber: o.TrackingNumber, billing: o.BillingAddress, shipping: o.ShippingAddress}
		for _, it := range o.Items() {
			so.productIDs = append(so.productIDs, it.ProductID)
		}
		r.uow.nextID++
		o.ID = r.uow.nextID
		stored.orders = append(stored.orders, so)
	}
	r.uow.staged[c.Email] = stored
	return nil
}
