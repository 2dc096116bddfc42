package seed

import (
	"context"
	"fmt"
	"strings"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPassword is the plaintext password of every seeded user.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
// In DryRun mode nothing is written and ids are synthetic.
type Factory struct {
	db     *gorm.DB
	opts   SeedOptions
	faker  *gofakeit.Faker
	hash   string
	nextID uint
}

// NewFactory creates a Factory bound to db. db may be nil in DryRun mode.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	return &Factory{db: db, opts: opts, faker: gofakeit.New(opts.RandSeed), nextID: 1000}
}

func (f *Factory) password() (string, error) {
	if f.opts.SkipBcrypt {
		return DefaultPassword, nil
	}
	if f.hash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash seed password: %w", err)
		}
		f.hash = string(h)
	}
	return f.hash, nil
}

func (f *Factory) create(ctx context.Context, value any, assignID func(uint)) error {
	if f.opts.DryRun {
		if assignID != nil {
			f.nextID++
			assignID(f.nextID)
		}
		observability.Logger.DebugContext(ctx, "dry-run create", "type", fmt.Sprintf("%T", value))
		return nil
	}
	return f.db.WithContext(ctx).Create(value).Error
}

// CreateUser persists a fake user. n keeps usernames and emails unique within a run.
func (f *Factory) CreateUser(ctx context.Context, n int, overrides ...func(*models.User)) (*models.User, error) {
	password, err := f.password()
	if err != nil {
		return nil, err
	}
	handle := strings.ToLower(f.faker.Username())
	if len(handle) > 40 {
		handle = handle[:40]
	}
	handle = fmt.Sprintf("%s%d", handle, n)

	user := &models.User{
		Name:        f.faker.Name(),
		Username:    handle,
		Email:       handle + "@tastebuds.test",
		Password:    password,
		ProfileInfo: f.faker.Sentence(12),
		AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.faker.UUID()),
	}
	for _, o := range overrides {
		o(user)
	}
	if err := f.create(ctx, user, func(id uint) { user.ID = id }); err != nil {
		return nil, fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return user, nil
}

// EnsureIngredient inserts the ingredient unless one with the same name exists.
func (f *Factory) EnsureIngredient(ctx context.Context, name string, t models.IngredientType) error {
	ing := &models.Ingredient{Name: name, Type: t}
	if f.opts.DryRun {
		return f.create(ctx, ing, func(id uint) { ing.ID = id })
	}
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(ing).Error
}

func (f *Factory) CreateCocktail(ctx context.Context, owner *models.User, r CatalogRecipe) (*models.Cocktail, error) {
	c := &models.Cocktail{
		Name:             r.Name,
		PreparationSteps: r.PreparationSteps,
		FlavorProfile:    r.FlavorProfile,
		UserID:           owner.ID,
	}
	if err := f.create(ctx, c, func(id uint) { c.ID = id }); err != nil {
		return nil, fmt.Errorf("create cocktail %s: %w", r.Name, err)
	}
	return c, nil
}

func (f *Factory) CreateDish(ctx context.Context, owner *models.User, r CatalogRecipe) (*models.Dish, error) {
	d := &models.Dish{
		Name:             r.Name,
		PreparationSteps: r.PreparationSteps,
		FlavorProfile:    r.FlavorProfile,
		UserID:           owner.ID,
	}
	if err := f.create(ctx, d, func(id uint) { d.ID = id }); err != nil {
		return nil, fmt.Errorf("create dish %s: %w", r.Name, err)
	}
	return d, nil
}

func (f *Factory) CreatePairing(ctx context.Context, owner *models.User, c *models.Cocktail, d *models.Dish) (*models.Pairing, error) {
	p := &models.Pairing{UserID: owner.ID, CocktailID: c.ID, DishID: d.ID}
	if err := f.create(ctx, p, func(id uint) { p.ID = id }); err != nil {
		return nil, fmt.Errorf("create pairing: %w", err)
	}
	return p, nil
}

// CreateFavorite saves either a cocktail or a dish for user; pass nil for the other.
func (f *Factory) CreateFavorite(ctx context.Context, user *models.User, c *models.Cocktail, d *models.Dish) (*models.Favorite, error) {
	fav := &models.Favorite{UserID: user.ID}
	if c != nil {
		fav.CocktailID = &c.ID
	} else {
		fav.DishID = &d.ID
	}
	if err := f.create(ctx, fav, func(id uint) { fav.ID = id }); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return fav, nil
}

func (f *Factory) CreatePost(ctx context.Context, author *models.User) (*models.Post, error) {
	p := &models.Post{UserID: author.ID, Content: f.faker.Paragraph(1, 3, 12, " ")}
	if err := f.create(ctx, p, func(id uint) { p.ID = id }); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// CreateComment comments on post and notifies its author.
func (f *Factory) CreateComment(ctx context.Context, post *models.Post, author *models.User) (*models.Comment, error) {
	c := &models.Comment{PostID: post.ID, UserID: author.ID, Content: f.faker.Sentence(10)}
	if err := f.create(ctx, c, func(id uint) { c.ID = id }); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	note := &models.Notification{
		UserID:  post.UserID,
		Type:    models.NotificationComment,
		Content: fmt.Sprintf("%s commented on your post", author.Username),
	}
	if err := f.create(ctx, note, func(id uint) { note.ID = id }); err != nil {
		return nil, fmt.Errorf("create comment notification: %w", err)
	}
	return c, nil
}

// CreateFollow records follower -> followed and notifies the followed user.
func (f *Factory) CreateFollow(ctx context.Context, follower, followed *models.User) error {
	if err := f.create(ctx, &models.Follow{FollowerID: follower.ID, FollowedID: followed.ID}, nil); err != nil {
		return fmt.Errorf("create follow: %w", err)
	}
	note := &models.Notification{
		UserID:  followed.ID,
		Type:    models.NotificationNewFollower,
		Content: fmt.Sprintf("%s started following you", follower.Username),
	}
	return f.create(ctx, note, func(id uint) { note.ID = id })
}

// CreateChat opens a chat between members and has the first one say hello.
func (f *Factory) CreateChat(ctx context.Context, name string, members ...*models.User) (*models.Chat, error) {
	chat := &models.Chat{Name: name, IsGroup: len(members) != 2}
	if err := f.create(ctx, chat, func(id uint) { chat.ID = id }); err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	for _, m := range members {
		if err := f.create(ctx, &models.ChatParticipant{ChatID: chat.ID, UserID: m.ID}, nil); err != nil {
			return nil, fmt.Errorf("add chat participant: %w", err)
		}
	}
	if len(members) == 0 {
		return chat, nil
	}
	msg := &models.Message{ChatID: chat.ID, UserID: members[0].ID, Content: f.faker.Sentence(8)}
	if err := f.create(ctx, msg, func(id uint) { msg.ID = id }); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	for _, m := range members[1:] {
		note := &models.Notification{
			UserID:  m.ID,
			Type:    models.NotificationMessage,
			Content: fmt.Sprintf("New message from %s", members[0].Username),
		}
		if err := f.create(ctx, note, func(id uint) { note.ID = id }); err != nil {
			return nil, err
		}
	}
	return chat, nil
}
