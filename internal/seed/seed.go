// Package seed populates a database with demo users, recipes and social
// activity for development and testing.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"

	"gorm.io/gorm"
)

// SeedOptions configure a seeding run.
type SeedOptions struct {
	// Users is the number of fake users; at least one is always created.
	Users int
	// Clean deletes every existing row first.
	Clean bool
	// DryRun builds everything in memory without writing.
	DryRun bool
	// SkipBcrypt stores DefaultPassword unhashed, for fast local runs.
	SkipBcrypt bool
	// RandSeed makes fake data reproducible; 0 picks a random seed.
	RandSeed int64
}

// Summary counts what a run created.
type Summary struct {
	Ingredients int `json:"ingredients"`
	Users       int `json:"users"`
	Cocktails   int `json:"cocktails"`
	Dishes      int `json:"dishes"`
	Pairings    int `json:"pairings"`
	Favorites   int `json:"favorites"`
	Follows     int `json:"follows"`
	Posts       int `json:"posts"`
	Comments    int `json:"comments"`
	Chats       int `json:"chats"`
}

// Seeder runs the catalog plus generated social data against a database.
type Seeder struct {
	db      *gorm.DB
	opts    SeedOptions
	catalog *Catalog
}

// NewSeeder returns a Seeder using the embedded catalog.
func NewSeeder(db *gorm.DB, opts SeedOptions) (*Seeder, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, opts: opts, catalog: catalog}, nil
}

// clearOrder lists tables children first so deletes never trip a foreign key.
var clearOrder = []any{
	&models.Notification{},
	&models.Message{},
	&models.ChatParticipant{},
	&models.Chat{},
	&models.Follow{},
	&models.Comment{},
	&models.Post{},
	&models.Pairing{},
	&models.Favorite{},
	&models.Dish{},
	&models.Cocktail{},
	&models.Ingredient{},
	&models.User{},
}

// Clear deletes every row of every table.
func (s *Seeder) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range clearOrder {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("clear %T: %w", m, err)
			}
		}
		return nil
	})
}

// Run seeds the database in one transaction, or in memory for a dry run.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	observability.Logger.InfoContext(ctx, "seeding database",
		slog.Int("users", s.opts.Users),
		slog.Bool("clean", s.opts.Clean),
		slog.Bool("dry_run", s.opts.DryRun))

	if s.opts.DryRun {
		return s.populate(ctx, NewFactory(nil, s.opts))
	}

	if s.opts.Clean {
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
	}

	var summary *Summary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		summary, err = s.populate(ctx, NewFactory(tx, s.opts))
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.Logger.InfoContext(ctx, "seeding complete", slog.Any("summary", summary))
	return summary, nil
}

func (s *Seeder) populate(ctx context.Context, f *Factory) (*Summary, error) {
	sum := &Summary{}

	for _, ing := range s.catalog.Ingredients {
		if err := f.EnsureIngredient(ctx, ing.Name, ing.Type); err != nil {
			return nil, fmt.Errorf("ingredient %s: %w", ing.Name, err)
		}
		sum.Ingredients++
	}

	n := max(s.opts.Users, 1)
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := f.CreateUser(ctx, i+1)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	sum.Users = len(users)
	owner := func(i int) *models.User { return users[i%len(users)] }

	cocktails := make(map[string]*models.Cocktail, len(s.catalog.Cocktails))
	cocktailList := make([]*models.Cocktail, 0, len(s.catalog.Cocktails))
	for i, r := range s.catalog.Cocktails {
		c, err := f.CreateCocktail(ctx, owner(i), r)
		if err != nil {
			return nil, err
		}
		cocktails[r.Name] = c
		cocktailList = append(cocktailList, c)
	}
	sum.Cocktails = len(cocktailList)

	dishes := make(map[string]*models.Dish, len(s.catalog.Dishes))
	dishList := make([]*models.Dish, 0, len(s.catalog.Dishes))
	for i, r := range s.catalog.Dishes {
		d, err := f.CreateDish(ctx, owner(i+1), r)
		if err != nil {
			return nil, err
		}
		dishes[r.Name] = d
		dishList = append(dishList, d)
	}
	sum.Dishes = len(dishList)

	for i, p := range s.catalog.Pairings {
		if _, err := f.CreatePairing(ctx, owner(i), cocktails[p.Cocktail], dishes[p.Dish]); err != nil {
			return nil, err
		}
		sum.Pairings++
	}

	// Users alternate between favoriting a cocktail and a dish.
	for i, u := range users {
		var err error
		if i%2 == 0 && len(cocktailList) > 0 {
			_, err = f.CreateFavorite(ctx, u, cocktailList[i%len(cocktailList)], nil)
		} else if len(dishList) > 0 {
			_, err = f.CreateFavorite(ctx, u, nil, dishList[i%len(dishList)])
		} else {
			continue
		}
		if err != nil {
			return nil, err
		}
		sum.Favorites++
	}

	posts := make([]*models.Post, 0, len(users))
	for _, u := range users {
		p, err := f.CreatePost(ctx, u)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	sum.Posts = len(posts)

	if len(users) < 2 {
		return sum, nil
	}

	// Each user follows, and comments on the post of, the next user in a ring.
	for i, u := range users {
		next := users[(i+1)%len(users)]
		if err := f.CreateFollow(ctx, u, next); err != nil {
			return nil, err
		}
		sum.Follows++
		if _, err := f.CreateComment(ctx, posts[(i+1)%len(posts)], u); err != nil {
			return nil, err
		}
		sum.Comments++
	}

	if _, err := f.CreateChat(ctx, "", users[0], users[1]); err != nil {
		return nil, err
	}
	sum.Chats++
	if len(users) > 2 {
		if _, err := f.CreateChat(ctx, "Supper club", users...); err != nil {
			return nil, err
		}
		sum.Chats++
	}
	return sum, nil
}
