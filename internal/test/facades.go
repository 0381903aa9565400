package test

import (
	"context"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	StaffLoginFn   func(context.Context, string, string) (string, error)
	ParseFn        func(string) (model.Identity, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.User{ID: "u1", Name: in.Name, Email: in.Email}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "u1", Name: "User", Email: email}, "token", nil
}

// StaffLogin returns staff token unless overridden.
func (s AuthFacadeStub) StaffLogin(ctx context.Context, username, password string) (string, error) {
	if s.StaffLoginFn != nil {
		return s.StaffLoginFn(ctx, username, password)
	}
	return "staff-token", nil
}

// StaffUsername returns the configured staff login in tests.
func (s AuthFacadeStub) StaffUsername() string {
	return "admin123"
}

// ParseToken returns customer identity unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.CustomerIdentity("u1"), nil
}

// MenuFacadeStub provides controllable behaviour for menu endpoints.
type MenuFacadeStub struct {
	ItemsFn      func(context.Context) ([]model.MenuItem, error)
	ItemFn       func(context.Context, string) (*model.MenuItem, error)
	CreateFn     func(context.Context, model.Identity, usecase.MenuItemInput) (*model.MenuItem, error)
	UpdateFn     func(context.Context, model.Identity, string, model.MenuItemPatch) error
	DeleteFn     func(context.Context, model.Identity, string) error
	CategoriesFn func(context.Context) ([]string, error)
}

// MenuItems returns configured items or a single default entry.
func (s MenuFacadeStub) MenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx)
	}
	return []model.MenuItem{{ID: "m1", Name: "Masala Dosa", Price: 60, Category: "South Indian", IsAvailable: true}}, nil
}

// MenuItem returns configured item.
func (s MenuFacadeStub) MenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Name: "Masala Dosa", Price: 60, IsAvailable: true}, nil
}

// CreateMenuItem delegates to provided function or echoes input.
func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, caller model.Identity, in usecase.MenuItemInput) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, caller, in)
	}
	return &model.MenuItem{ID: "m1", Name: in.Name}, nil
}

// UpdateMenuItem delegates to provided function.
func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, caller model.Identity, id string, patch model.MenuItemPatch) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, caller, id, patch)
	}
	return nil
}

// DeleteMenuItem delegates to provided function.
func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, caller model.Identity, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, caller, id)
	}
	return nil
}

// Categories returns configured categories.
func (s MenuFacadeStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []string{"Beverages", "Snacks"}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, model.Identity, usecase.OrderInput) (*model.Order, error)
	OrderFn   func(context.Context, model.Identity, string) (*model.Order, error)
	OrdersFn  func(context.Context, model.Identity) ([]model.Order, error)
	PaymentFn func(context.Context, model.Identity, string, model.PaymentStatus) error
	StatusFn  func(context.Context, model.Identity, string, model.OrderStatus) error
}

// PlaceOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, caller model.Identity, in usecase.OrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, caller, in)
	}
	return &model.Order{ID: "o1", UserID: caller.Subject(), TotalAmount: 100, PerPersonAmount: 100, SplitCount: 1}, nil
}

// Order returns configured order.
func (s OrderFacadeStub) Order(ctx context.Context, caller model.Identity, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, caller, id)
	}
	return &model.Order{ID: id, UserID: caller.Subject(), CreatedAt: time.Unix(0, 0).UTC()}, nil
}

// Orders returns predefined orders for caller.
func (s OrderFacadeStub) Orders(ctx context.Context, caller model.Identity) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, caller)
	}
	return []model.Order{{ID: "o1", UserID: caller.Subject()}}, nil
}

// SetPaymentStatus delegates to provided function.
func (s OrderFacadeStub) SetPaymentStatus(ctx context.Context, caller model.Identity, id string, status model.PaymentStatus) error {
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, caller, id, status)
	}
	return nil
}

// SetOrderStatus delegates to provided function.
func (s OrderFacadeStub) SetOrderStatus(ctx context.Context, caller model.Identity, id string, status model.OrderStatus) error {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, caller, id, status)
	}
	return nil
}

// PaymentFacadeStub simulates payment operations.
type PaymentFacadeStub struct {
	LinkFn   func(context.Context, usecase.LinkRequest) (*model.PaymentLink, error)
	VerifyFn func(context.Context, string, string) (*model.PaymentVerification, error)
}

// PaymentLink returns configured link or a fixed one.
func (s PaymentFacadeStub) PaymentLink(ctx context.Context, req usecase.LinkRequest) (*model.PaymentLink, error) {
	if s.LinkFn != nil {
		return s.LinkFn(ctx, req)
	}
	return &model.PaymentLink{Link: "upi://pay?pa=canteen%40upi", Amount: *req.Amount, PayeeID: "canteen@upi", PayeeName: "Canteen"}, nil
}

// VerifyPayment reports verified unless overridden.
func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, orderRef, transactionID string) (*model.PaymentVerification, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, orderRef, transactionID)
	}
	return &model.PaymentVerification{OrderRef: orderRef, TransactionID: transactionID, Verified: true}, nil
}

// QRFacadeStub simulates QR rendering.
type QRFacadeStub struct {
	TableFn  func(context.Context, string, string) (*model.TableCode, error)
	TablesFn func(context.Context, string, []string) ([]model.TableCode, error)
}

// TableCode returns configured code or a tiny fake PNG.
func (s QRFacadeStub) TableCode(ctx context.Context, baseURL, table string) (*model.TableCode, error) {
	if s.TableFn != nil {
		return s.TableFn(ctx, baseURL, table)
	}
	return &model.TableCode{TableNumber: table, URL: usecase.TableURL(baseURL, table), PNG: []byte("png")}, nil
}

// TableCodes returns one fake code per table.
func (s QRFacadeStub) TableCodes(ctx context.Context, baseURL string, tables []string) ([]model.TableCode, error) {
	if s.TablesFn != nil {
		return s.TablesFn(ctx, baseURL, tables)
	}
	out := make([]model.TableCode, 0, len(tables))
	for _, table := range tables {
		out = append(out, model.TableCode{TableNumber: table, URL: usecase.TableURL(baseURL, table), PNG: []byte("png")})
	}
	return out, nil
}

// HealthFacadeStub reports configured ping result.
type HealthFacadeStub struct {
	Err error
}

// Ping returns configured error.
func (s HealthFacadeStub) Ping(context.Context) error {
	return s.Err
}

// CanteenFacadeStub aggregates facade dependencies for HTTP layer tests.
type CanteenFacadeStub struct {
	AuthFacadeStub
	MenuFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	QRFacadeStub
	HealthFacadeStub
}

// MenuCacheStub is an in-memory menu cache. Stores carrying a version older
// than Version are dropped.
type MenuCacheStub struct {
	ItemsVal      []model.MenuItem
	HasItems      bool
	CategoriesVal []string
	HasCategories bool
	Version       int64
	Invalidations int
}

// Items returns cached items when present.
func (c *MenuCacheStub) Items(context.Context) ([]model.MenuItem, int64, bool) {
	return c.ItemsVal, c.Version, c.HasItems
}

// StoreItems caches items.
func (c *MenuCacheStub) StoreItems(_ context.Context, version int64, items []model.MenuItem) {
	if version != c.Version {
		return
	}
	c.ItemsVal, c.HasItems = items, true
}

// Categories returns cached categories when present.
func (c *MenuCacheStub) Categories(context.Context) ([]string, int64, bool) {
	return c.CategoriesVal, c.Version, c.HasCategories
}

// StoreCategories caches categories.
func (c *MenuCacheStub) StoreCategories(_ context.Context, version int64, categories []string) {
	if version != c.Version {
		return
	}
	c.CategoriesVal, c.HasCategories = categories, true
}

// Invalidate drops every cached view.
func (c *MenuCacheStub) Invalidate(context.Context) {
	c.Invalidations++
	c.Version++
	c.ItemsVal, c.HasItems = nil, false
	c.CategoriesVal, c.HasCategories = nil, false
}

// VerifierStub answers payment verification from configured values.
type VerifierStub struct {
	Verified bool
	Err      error
	Calls    int
}

// Verify records call and returns configured result.
func (v *VerifierStub) Verify(context.Context, string, string) (bool, error) {
	v.Calls++
	return v.Verified, v.Err
}

var _ usecase.MenuCache = (*MenuCacheStub)(nil)
var _ usecase.PaymentVerifier = (*VerifierStub)(nil)
