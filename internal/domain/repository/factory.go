package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Menu() MenuRepository
	Orders() OrderRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
