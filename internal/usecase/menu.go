package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/domain/repository"
)

// MenuCache keeps read-mostly catalog views. Misses and failures are
// reported as a false second value; callers fall back to the repository.
type MenuCache interface {
	Items(ctx context.Context) ([]model.MenuItem, int64, bool)
	StoreItems(ctx context.Context, version int64, items []model.MenuItem)
	Categories(ctx context.Context) ([]string, int64, bool)
	StoreCategories(ctx context.Context, version int64, categories []string)
	Invalidate(ctx context.Context)
}

// MenuItemInput carries fields of a new catalog entry.
type MenuItemInput struct {
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       *float64
	IsAvailable *bool
}

// MenuUseCase manages the menu catalog.
type MenuUseCase struct {
	items  repository.MenuRepository
	cache  MenuCache
	logger *zap.Logger
	now    func() time.Time
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(items repository.MenuRepository, cache MenuCache, logger *zap.Logger) *MenuUseCase {
	return &MenuUseCase{items: items, cache: cache, logger: logger, now: utcNow}
}

// List returns available items.
func (u *MenuUseCase) List(ctx context.Context) ([]model.MenuItem, error) {
	items, version, ok := u.cache.Items(ctx)
	if ok {
		return items, nil
	}
	items, err := u.items.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	u.cache.StoreItems(ctx, version, items)
	return items, nil
}

// Get returns a single item, including soft-deleted ones.
func (u *MenuUseCase) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	return u.items.GetByID(ctx, id)
}

// Create adds a catalog entry. Staff only.
func (u *MenuUseCase) Create(ctx context.Context, caller model.Identity, in MenuItemInput) (*model.MenuItem, error) {
	if !caller.IsStaff() {
		return nil, domainErrors.ErrForbidden
	}
	if blank(in.Name, in.Description, in.Category, in.ImageURL) || in.Price == nil {
		return nil, domainErrors.Validation("Missing required fields")
	}
	if *in.Price < 0 {
		return nil, domainErrors.Validation("Price must be non-negative")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	now := u.now()
	item, err := u.items.Create(ctx, &model.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    in.ImageURL,
		IsAvailable: available,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx)
	return item, nil
}

// Update merges provided fields into an item. Staff only.
func (u *MenuUseCase) Update(ctx context.Context, caller model.Identity, id string, patch model.MenuItemPatch) error {
	if !caller.IsStaff() {
		return domainErrors.ErrForbidden
	}
	if patch.Empty() {
		return domainErrors.Validation("No fields to update")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return domainErrors.Validation("Price must be non-negative")
	}

	if err := u.items.Update(ctx, id, patch, u.now()); err != nil {
		return err
	}

	u.cache.Invalidate(ctx)
	return nil
}

// Delete hides an item from the catalog. The record stays stored. Staff only.
func (u *MenuUseCase) Delete(ctx context.Context, caller model.Identity, id string) error {
	if !caller.IsStaff() {
		return domainErrors.ErrForbidden
	}

	unavailable := false
	if err := u.items.Update(ctx, id, model.MenuItemPatch{IsAvailable: &unavailable}, u.now()); err != nil {
		return err
	}

	u.cache.Invalidate(ctx)
	return nil
}

// Categories returns distinct categories of every stored item, sorted.
func (u *MenuUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, version, ok := u.cache.Categories(ctx)
	if ok {
		return categories, nil
	}
	categories, err := u.items.Categories(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(categories)
	u.cache.StoreCategories(ctx, version, categories)
	return categories, nil
}

// Seed inserts sample items when the catalog is empty and returns how many were added.
func (u *MenuUseCase) Seed(ctx context.Context) (int, error) {
	count, err := u.items.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := u.now()
	items := make([]model.MenuItem, len(sampleMenu))
	for i, item := range sampleMenu {
		item.IsAvailable = true
		item.CreatedAt = now
		item.UpdatedAt = now
		items[i] = item
	}
	if err := u.items.CreateMany(ctx, items); err != nil {
		return 0, err
	}

	u.cache.Invalidate(ctx)
	u.logger.Info("menu seeded", zap.Int("items", len(sampleMenu)))
	return len(sampleMenu), nil
}

var sampleMenu = []model.MenuItem{
	{
		Name:        "Masala Dosa",
		Description: "Crispy dosa filled with spiced potato masala, served with sambar and chutney",
		Price:       60,
		Category:    "South Indian",
		ImageURL:    "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=500",
	},
	{
		Name:        "Veg Biryani",
		Description: "Fragrant basmati rice cooked with mixed vegetables and aromatic spices",
		Price:       120,
		Category:    "Main Course",
		ImageURL:    "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=500",
	},
	{
		Name:        "Paneer Butter Masala",
		Description: "Cottage cheese cubes in rich tomato and butter gravy with cream",
		Price:       150,
		Category:    "Main Course",
		ImageURL:    "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=500",
	},
	{
		Name:        "Cold Coffee",
		Description: "Refreshing iced coffee blended with milk and ice cream",
		Price:       50,
		Category:    "Beverages",
		ImageURL:    "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=500",
	},
	{
		Name:        "Samosa (2 pcs)",
		Description: "Crispy fried pastry filled with spiced potatoes and peas",
		Price:       30,
		Category:    "Snacks",
		ImageURL:    "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=500",
	},
}
