package app

import (
	"context"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
	"github.com/polkiloo/canteen/internal/usecase"
)

// CanteenFacade exposes use cases to the HTTP layer under one type.
type CanteenFacade struct {
	auth    *usecase.AuthUseCase
	menu    *usecase.MenuUseCase
	orders  *usecase.OrderUseCase
	payment *usecase.PaymentUseCase
	qr      *usecase.QRUseCase
	store   repository.Factory
}

// NewCanteenFacade wires use cases into facade.
func NewCanteenFacade(
	auth *usecase.AuthUseCase,
	menu *usecase.MenuUseCase,
	orders *usecase.OrderUseCase,
	payment *usecase.PaymentUseCase,
	qr *usecase.QRUseCase,
	store repository.Factory,
) *CanteenFacade {
	return &CanteenFacade{auth: auth, menu: menu, orders: orders, payment: payment, qr: qr, store: store}
}

func (f *CanteenFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *CanteenFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CanteenFacade) StaffLogin(ctx context.Context, username, password string) (string, error) {
	return f.auth.StaffLogin(ctx, username, password)
}

func (f *CanteenFacade) StaffUsername() string {
	return f.auth.StaffUsername()
}

func (f *CanteenFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *CanteenFacade) MenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return f.menu.List(ctx)
}

func (f *CanteenFacade) MenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	return f.menu.Get(ctx, id)
}

func (f *CanteenFacade) CreateMenuItem(ctx context.Context, caller model.Identity, in usecase.MenuItemInput) (*model.MenuItem, error) {
	return f.menu.Create(ctx, caller, in)
}

func (f *CanteenFacade) UpdateMenuItem(ctx context.Context, caller model.Identity, id string, patch model.MenuItemPatch) error {
	return f.menu.Update(ctx, caller, id, patch)
}

func (f *CanteenFacade) DeleteMenuItem(ctx context.Context, caller model.Identity, id string) error {
	return f.menu.Delete(ctx, caller, id)
}

func (f *CanteenFacade) Categories(ctx context.Context) ([]string, error) {
	return f.menu.Categories(ctx)
}

// SeedMenu fills an empty catalog with sample items.
func (f *CanteenFacade) SeedMenu(ctx context.Context) (int, error) {
	return f.menu.Seed(ctx)
}

func (f *CanteenFacade) PlaceOrder(ctx context.Context, caller model.Identity, in usecase.OrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, caller, in)
}

func (f *CanteenFacade) Order(ctx context.Context, caller model.Identity, id string) (*model.Order, error) {
	return f.orders.Get(ctx, caller, id)
}

func (f *CanteenFacade) Orders(ctx context.Context, caller model.Identity) ([]model.Order, error) {
	return f.orders.List(ctx, caller)
}

func (f *CanteenFacade) SetPaymentStatus(ctx context.Context, caller model.Identity, id string, status model.PaymentStatus) error {
	return f.orders.SetPaymentStatus(ctx, caller, id, status)
}

func (f *CanteenFacade) SetOrderStatus(ctx context.Context, caller model.Identity, id string, status model.OrderStatus) error {
	return f.orders.SetOrderStatus(ctx, caller, id, status)
}

func (f *CanteenFacade) PaymentLink(ctx context.Context, req usecase.LinkRequest) (*model.PaymentLink, error) {
	return f.payment.GenerateLink(ctx, req)
}

func (f *CanteenFacade) VerifyPayment(ctx context.Context, orderRef, transactionID string) (*model.PaymentVerification, error) {
	return f.payment.Verify(ctx, orderRef, transactionID)
}

func (f *CanteenFacade) TableCode(ctx context.Context, baseURL, table string) (*model.TableCode, error) {
	return f.qr.Table(ctx, baseURL, table)
}

func (f *CanteenFacade) TableCodes(ctx context.Context, baseURL string, tables []string) ([]model.TableCode, error) {
	return f.qr.Tables(ctx, baseURL, tables)
}

// Ping reports backing store availability.
func (f *CanteenFacade) Ping(ctx context.Context) error {
	return f.store.Ping(ctx)
}
