package test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = "u" + strconv.FormatInt(s.Next, 10)
	s.Next++
	s.Users[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MenuRepositoryStub keeps catalog items in insertion order.
type MenuRepositoryStub struct {
	Items []model.MenuItem
	Err   error

	ListCalls       int
	CategoriesCalls int
	Updates         []MenuUpdateCall

	// OnList runs inside ListAvailable before the result is built.
	OnList func()
}

// MenuUpdateCall stores arguments of Update invocations.
type MenuUpdateCall struct {
	ID        string
	Patch     model.MenuItemPatch
	UpdatedAt time.Time
}

// ListAvailable returns items with IsAvailable set.
func (s *MenuRepositoryStub) ListAvailable(ctx context.Context) ([]model.MenuItem, error) {
	s.ListCalls++
	if s.OnList != nil {
		s.OnList()
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.MenuItem{}
	for _, item := range s.Items {
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetByID returns stored item or not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create appends item with sequential identifier.
func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *item
	stored.ID = "m" + strconv.Itoa(len(s.Items)+1)
	s.Items = append(s.Items, stored)
	return &stored, nil
}

// CreateMany appends every item or nothing when stub has explicit error.
func (s *MenuRepositoryStub) CreateMany(ctx context.Context, items []model.MenuItem) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range items {
		if _, err := s.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

// Update applies patch to stored item.
func (s *MenuRepositoryStub) Update(ctx context.Context, id string, patch model.MenuItemPatch, updatedAt time.Time) error {
	s.Updates = append(s.Updates, MenuUpdateCall{ID: id, Patch: patch, UpdatedAt: updatedAt})
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			patch.Apply(&s.Items[i])
			s.Items[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Categories returns distinct categories of all items in insertion order.
func (s *MenuRepositoryStub) Categories(ctx context.Context) ([]string, error) {
	s.CategoriesCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, item := range s.Items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out, nil
}

// Count returns number of stored items.
func (s *MenuRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Items)), nil
}

// OrderRepositoryStub keeps orders in memory and honours guarded updates.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[string]*model.Order
	Next   int
	Err    error

	PaymentUpdates []PaymentUpdateCall
	StatusUpdates  []StatusUpdateCall
}

// PaymentUpdateCall stores arguments of UpdatePaymentStatus invocations.
type PaymentUpdateCall struct {
	ID     string
	Status model.PaymentStatus
	From   []model.PaymentStatus
}

// StatusUpdateCall stores arguments of UpdateOrderStatus invocations.
type StatusUpdateCall struct {
	ID     string
	Status model.OrderStatus
	From   []model.OrderStatus
}

// NewOrderRepositoryStub constructs stub seeded with provided orders.
func NewOrderRepositoryStub(orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
	for _, o := range orders {
		stored := o
		s.Orders[o.ID] = &stored
	}
	return s
}

// Create stores order with sequential identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	s.Next++
	stored := *order
	stored.ID = "o" + strconv.Itoa(s.Next)
	s.Orders[stored.ID] = &stored
	out := stored
	return &out, nil
}

// GetByID returns a copy of stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if o, ok := s.Orders[id]; ok {
		out := *o
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all orders newest first.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	return s.filter(func(model.Order) bool { return true })
}

// ListByUser returns orders of user newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.filter(func(o model.Order) bool { return o.UserID == userID })
}

func (s *OrderRepositoryStub) filter(keep func(model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Order{}
	for _, o := range s.Orders {
		if keep(*o) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdatePaymentStatus records call and applies it when guard matches.
func (s *OrderRepositoryStub) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, from []model.PaymentStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PaymentUpdates = append(s.PaymentUpdates, PaymentUpdateCall{ID: id, Status: status, From: from})
	if s.Err != nil {
		return s.Err
	}
	o, ok := s.Orders[id]
	if !ok || (len(from) > 0 && !containsPayment(from, o.PaymentStatus)) {
		return domainErrors.ErrNotFound
	}
	o.PaymentStatus = status
	o.UpdatedAt = updatedAt
	return nil
}

// UpdateOrderStatus records call and applies it when guard matches.
func (s *OrderRepositoryStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, from []model.OrderStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdateCall{ID: id, Status: status, From: from})
	if s.Err != nil {
		return s.Err
	}
	o, ok := s.Orders[id]
	if !ok || (len(from) > 0 && !containsOrder(from, o.OrderStatus)) {
		return domainErrors.ErrNotFound
	}
	o.OrderStatus = status
	o.UpdatedAt = updatedAt
	return nil
}

func containsPayment(list []model.PaymentStatus, v model.PaymentStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsOrder(list []model.OrderStatus, v model.OrderStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// FactoryStub bundles repository stubs behind repository.Factory.
type FactoryStub struct {
	UserRepo  *UserRepositoryStub
	MenuRepo  *MenuRepositoryStub
	OrderRepo *OrderRepositoryStub
	PingErr   error
	Closed    bool
}

// Users returns user repository stub.
func (f *FactoryStub) Users() repository.UserRepository { return f.UserRepo }

// Menu returns menu repository stub.
func (f *FactoryStub) Menu() repository.MenuRepository { return f.MenuRepo }

// Orders returns order repository stub.
func (f *FactoryStub) Orders() repository.OrderRepository { return f.OrderRepo }

// Ping returns configured error.
func (f *FactoryStub) Ping(context.Context) error { return f.PingErr }

// Close marks the factory closed.
func (f *FactoryStub) Close(context.Context) error {
	f.Closed = true
	return nil
}

var _ repository.Factory = (*FactoryStub)(nil)
