package handlers

import (
	"context"

	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	StaffLogin(ctx context.Context, username, password string) (string, error)
	StaffUsername() string
	ParseToken(token string) (model.Identity, error)
}

// MenuFacade exposes catalog operations.
type MenuFacade interface {
	MenuItems(ctx context.Context) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, caller model.Identity, in usecase.MenuItemInput) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, caller model.Identity, id string, patch model.MenuItemPatch) error
	DeleteMenuItem(ctx context.Context, caller model.Identity, id string) error
	Categories(ctx context.Context) ([]string, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, caller model.Identity, in usecase.OrderInput) (*model.Order, error)
	Order(ctx context.Context, caller model.Identity, id string) (*model.Order, error)
	Orders(ctx context.Context, caller model.Identity) ([]model.Order, error)
	SetPaymentStatus(ctx context.Context, caller model.Identity, id string, status model.PaymentStatus) error
	SetOrderStatus(ctx context.Context, caller model.Identity, id string, status model.OrderStatus) error
}

// PaymentFacade provides UPI link and verification operations.
type PaymentFacade interface {
	PaymentLink(ctx context.Context, req usecase.LinkRequest) (*model.PaymentLink, error)
	VerifyPayment(ctx context.Context, orderRef, transactionID string) (*model.PaymentVerification, error)
}

// QRFacade renders table QR codes.
type QRFacade interface {
	TableCode(ctx context.Context, baseURL, table string) (*model.TableCode, error)
	TableCodes(ctx context.Context, baseURL string, tables []string) ([]model.TableCode, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// CanteenFacade aggregates the full set of operations used across handlers.
type CanteenFacade interface {
	AuthFacade
	MenuFacade
	OrderFacade
	PaymentFacade
	QRFacade
	HealthFacade
}
