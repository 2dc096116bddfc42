package repository

import (
	"context"
	"time"

	"tastebuds/internal/cache"
	"tastebuds/internal/models"

	"gorm.io/gorm"
)

// CocktailRepository defines persistence operations for cocktails. Point reads
// are served through the cache when one is configured.
type CocktailRepository interface {
	List(ctx context.Context) ([]models.Cocktail, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Cocktail, error)
	GetByID(ctx context.Context, id uint) (*models.Cocktail, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, cocktail *models.Cocktail) error
	Update(ctx context.Context, cocktail *models.Cocktail) error
	Delete(ctx context.Context, id uint) error
	Evict(ctx context.Context, ids ...uint)
}

// DishRepository mirrors CocktailRepository for dishes.
type DishRepository interface {
	List(ctx context.Context) ([]models.Dish, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Dish, error)
	GetByID(ctx context.Context, id uint) (*models.Dish, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, dish *models.Dish) error
	Update(ctx context.Context, dish *models.Dish) error
	Delete(ctx context.Context, id uint) error
	Evict(ctx context.Context, ids ...uint)
}

var recipeColumns = []string{"name", "preparation_steps", "flavor_profile"}

// cachedStore adds cache-aside point reads and invalidation to store.
type cachedStore[T any] struct {
	store[T]
	cache  *cache.Store
	family string
	key    func(uint) string
	ttl    time.Duration
}

func (s cachedStore[T]) cachedGet(ctx context.Context, id uint) (*T, error) {
	var item T
	err := s.cache.Aside(ctx, s.family, s.key(id), &item, s.ttl, func() error {
		found, err := s.get(ctx, id)
		if err != nil {
			return err
		}
		item = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s cachedStore[T]) cachedUpdate(ctx context.Context, id uint, item *T, columns ...string) error {
	err := s.update(ctx, id, item, columns...)
	s.cache.Invalidate(ctx, s.key(id))
	return err
}

func (s cachedStore[T]) cachedDelete(ctx context.Context, id uint) error {
	err := s.delete(ctx, id)
	s.cache.Invalidate(ctx, s.key(id))
	return err
}

// Evict drops cached copies of ids, for rows removed behind the repository's
// back such as by a cascading delete.
func (s cachedStore[T]) Evict(ctx context.Context, ids ...uint) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	s.cache.Invalidate(ctx, keys...)
}

type cocktailRepository struct {
	cachedStore[models.Cocktail]
}

// NewCocktailRepository returns a CocktailRepository. c may be nil.
func NewCocktailRepository(db *gorm.DB, c *cache.Store) CocktailRepository {
	return &cocktailRepository{cachedStore[models.Cocktail]{
		store:  newStore[models.Cocktail](db, "Cocktail"),
		cache:  c,
		family: cache.FamilyCocktail,
		key:    cache.CocktailKey,
		ttl:    cache.CocktailTTL,
	}}
}

func (r *cocktailRepository) List(ctx context.Context) ([]models.Cocktail, error) {
	return r.list(ctx)
}

func (r *cocktailRepository) ListByUser(ctx context.Context, userID uint) ([]models.Cocktail, error) {
	return r.list(ctx, byUser(userID))
}

func (r *cocktailRepository) GetByID(ctx context.Context, id uint) (*models.Cocktail, error) {
	return r.cachedGet(ctx, id)
}

func (r *cocktailRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, id)
}

func (r *cocktailRepository) Create(ctx context.Context, cocktail *models.Cocktail) error {
	return r.create(ctx, cocktail)
}

func (r *cocktailRepository) Update(ctx context.Context, cocktail *models.Cocktail) error {
	return r.cachedUpdate(ctx, cocktail.ID, cocktail, recipeColumns...)
}

func (r *cocktailRepository) Delete(ctx context.Context, id uint) error {
	return r.cachedDelete(ctx, id)
}

type dishRepository struct {
	cachedStore[models.Dish]
}

// NewDishRepository returns a DishRepository. c may be nil.
func NewDishRepository(db *gorm.DB, c *cache.Store) DishRepository {
	return &dishRepository{cachedStore[models.Dish]{
		store:  newStore[models.Dish](db, "Dish"),
		cache:  c,
		family: cache.FamilyDish,
		key:    cache.DishKey,
		ttl:    cache.DishTTL,
	}}
}

func (r *dishRepository) List(ctx context.Context) ([]models.Dish, error) {
	return r.list(ctx)
}

func (r *dishRepository) ListByUser(ctx context.Context, userID uint) ([]models.Dish, error) {
	return r.list(ctx, byUser(userID))
}

func (r *dishRepository) GetByID(ctx context.Context, id uint) (*models.Dish, error) {
	return r.cachedGet(ctx, id)
}

func (r *dishRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, id)
}

func (r *dishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return r.create(ctx, dish)
}

func (r *dishRepository) Update(ctx context.Context, dish *models.Dish) error {
	return r.cachedUpdate(ctx, dish.ID, dish, recipeColumns...)
}

func (r *dishRepository) Delete(ctx context.Context, id uint) error {
	return r.cachedDelete(ctx, id)
}
