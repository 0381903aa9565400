package repository

import (
	"context"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// MenuRepository describes persistence operations for the menu catalog.
type MenuRepository interface {
	ListAvailable(ctx context.Context) ([]model.MenuItem, error)
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	CreateMany(ctx context.Context, items []model.MenuItem) error
	Update(ctx context.Context, id string, patch model.MenuItemPatch, updatedAt time.Time) error
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
