package repository

import (
	"context"
	"testing"
	"time"

	"tastebuds/internal/cache"
	"tastebuds/internal/models"
	"tastebuds/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func uintPtr(v uint) *uint { return &v }

func TestUserRepository_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ana", Username: "ana1", Email: "a@x.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	ok, err := repo.Exists(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	user.ProfileInfo = "Loves amaro"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loves amaro", got.ProfileInfo)
	assert.Equal(t, "hash", got.Password)

	dup := &models.User{Name: "Ana", Username: "ana1", Email: "b@x.com", Password: "hash"}
	requireCode(t, repo.Create(ctx, dup), models.CodeConflict)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	requireCode(t, err, models.CodeNotFound)
	requireCode(t, repo.Delete(ctx, user.ID), models.CodeNotFound)
	requireCode(t, repo.Update(ctx, user), models.CodeNotFound)
}

func TestUserRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestIngredientRepository_UniqueNameAndTypeCheck(t *testing.T) {
	repo := NewIngredientRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	lime := &models.Ingredient{Name: "lime", Type: models.IngredientCocktail}
	require.NoError(t, repo.Create(ctx, lime))
	requireCode(t, repo.Create(ctx, &models.Ingredient{Name: "lime", Type: models.IngredientDish}), models.CodeConflict)
	requireCode(t, repo.Create(ctx, &models.Ingredient{Name: "salt", Type: "garnish"}), models.CodeValidation)

	lime.Type = models.IngredientDish
	require.NoError(t, repo.Update(ctx, lime))
	got, err := repo.GetByID(ctx, lime.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IngredientDish, got.Type)
}

func TestCocktailRepository_PartialUpdateKeepsOtherFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	repo := NewCocktailRepository(db, nil)
	ctx := context.Background()

	c := &models.Cocktail{Name: "Negroni", PreparationSteps: "Stir", FlavorProfile: models.FlavorBitter, UserID: user.ID}
	require.NoError(t, repo.Create(ctx, c))
	created := c.CreationDate

	c.Name = "Negroni Sbagliato"
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Negroni Sbagliato", got.Name)
	assert.Equal(t, "Stir", got.PreparationSteps)
	assert.Equal(t, models.FlavorBitter, got.FlavorProfile)
	assert.WithinDuration(t, created, got.CreationDate, time.Second)

	mine, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCocktailRepository_CachesAndInvalidates(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	repo := NewCocktailRepository(db, cache.NewStore(client))
	ctx := context.Background()

	c := testutil.CreateCocktail(t, db, user.ID, "Boulevardier")

	_, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.CocktailKey(c.ID)))

	c.FlavorProfile = models.FlavorSweet
	require.NoError(t, repo.Update(ctx, c))
	assert.False(t, mr.Exists(cache.CocktailKey(c.ID)))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FlavorSweet, got.FlavorProfile)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.False(t, mr.Exists(cache.CocktailKey(c.ID)))
	_, err = repo.GetByID(ctx, c.ID)
	requireCode(t, err, models.CodeNotFound)
}

func TestDishRepository_Evict(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	repo := NewDishRepository(db, cache.NewStore(client))
	ctx := context.Background()

	d := testutil.CreateDish(t, db, user.ID, "Ramen")
	_, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.DishKey(d.ID)))

	repo.Evict(ctx, d.ID)
	assert.False(t, mr.Exists(cache.DishKey(d.ID)))
}

func TestFavoriteRepository_RetargetClearsOtherReference(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	cocktail := testutil.CreateCocktail(t, db, user.ID, "Negroni")
	dish := testutil.CreateDish(t, db, user.ID, "Ramen")
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	fav := &models.Favorite{UserID: user.ID, CocktailID: uintPtr(cocktail.ID)}
	require.NoError(t, repo.Create(ctx, fav))

	fav.CocktailID = nil
	fav.DishID = uintPtr(dish.ID)
	require.NoError(t, repo.Update(ctx, fav))

	got, err := repo.GetByID(ctx, fav.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CocktailID)
	require.NotNil(t, got.DishID)
	assert.Equal(t, dish.ID, *got.DishID)

	both := &models.Favorite{UserID: user.ID, CocktailID: uintPtr(cocktail.ID), DishID: uintPtr(dish.ID)}
	requireCode(t, repo.Create(ctx, both), models.CodeValidation)

	mine, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestFavoriteAndPairingCascadeFromRecipes(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	cocktail := testutil.CreateCocktail(t, db, user.ID, "Negroni")
	dish := testutil.CreateDish(t, db, user.ID, "Ramen")
	favorites := NewFavoriteRepository(db)
	pairings := NewPairingRepository(db)
	ctx := context.Background()

	require.NoError(t, favorites.Create(ctx, &models.Favorite{UserID: user.ID, DishID: uintPtr(dish.ID)}))
	require.NoError(t, pairings.Create(ctx, &models.Pairing{UserID: user.ID, CocktailID: cocktail.ID, DishID: dish.ID}))

	require.NoError(t, NewDishRepository(db, nil).Delete(ctx, dish.ID))

	favs, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
	pairs, err := pairings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestPairingRepository_UpdateReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	c1 := testutil.CreateCocktail(t, db, user.ID, "Negroni")
	c2 := testutil.CreateCocktail(t, db, user.ID, "Martini")
	dish := testutil.CreateDish(t, db, user.ID, "Ramen")
	repo := NewPairingRepository(db)
	ctx := context.Background()

	p := &models.Pairing{UserID: user.ID, CocktailID: c1.ID, DishID: dish.ID}
	require.NoError(t, repo.Create(ctx, p))

	p.CocktailID = c2.ID
	require.NoError(t, repo.Update(ctx, p))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, c2.ID, got.CocktailID)
	assert.Equal(t, dish.ID, got.DishID)

	p.DishID = 9999
	requireCode(t, repo.Update(ctx, p), models.CodeValidation)
}

func TestCommentRepository_CreateWithNotificationIsAtomic(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "ana")
	reader := testutil.CreateUser(t, db, "bo")
	post := testutil.CreatePost(t, db, author.ID, "First!")
	repo := NewCommentRepository(db)
	notes := NewNotificationRepository(db)
	ctx := context.Background()

	comment := &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "Nice"}
	note := &models.Notification{UserID: author.ID, Type: models.NotificationComment, Content: "bo commented"}
	require.NoError(t, repo.Create(ctx, comment, note))

	inbox, err := notes.ListByUser(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.False(t, inbox[0].Read)

	bad := &models.Notification{UserID: author.ID, Type: "bogus"}
	err = repo.Create(ctx, &models.Comment{PostID: post.ID, UserID: reader.ID, Content: "again"}, bad)
	requireCode(t, err, models.CodeValidation)

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1, "failed notification must roll back the comment")
}

func TestChatRepository_Membership(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	b := testutil.CreateUser(t, db, "bo")
	c := testutil.CreateUser(t, db, "cy")
	repo := NewChatRepository(db)
	ctx := context.Background()

	chat := &models.Chat{Name: "dinner club", IsGroup: true}
	require.NoError(t, repo.Create(ctx, chat, []uint{a.ID, b.ID}))

	members, err := repo.ListParticipants(ctx, chat.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	in, err := repo.IsParticipant(ctx, chat.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, in)

	require.NoError(t, repo.AddParticipant(ctx, &models.ChatParticipant{ChatID: chat.ID, UserID: c.ID}))
	dupErr := repo.AddParticipant(ctx, &models.ChatParticipant{ChatID: chat.ID, UserID: c.ID})
	requireCode(t, dupErr, models.CodeConflict)
	assert.Contains(t, dupErr.Error(), "is already in chat")

	require.NoError(t, repo.RemoveParticipant(ctx, chat.ID, c.ID))
	requireCode(t, repo.RemoveParticipant(ctx, chat.ID, c.ID), models.CodeNotFound)

	chat.IsGroup = false
	require.NoError(t, repo.Update(ctx, chat))
	got, err := repo.GetByID(ctx, chat.ID)
	require.NoError(t, err)
	assert.False(t, got.IsGroup)

	require.NoError(t, repo.Delete(ctx, chat.ID))
	members, err = repo.ListParticipants(ctx, chat.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestChatRepository_CreateRollsBackOnBadParticipant(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	repo := NewChatRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.Chat{Name: "x"}, []uint{a.ID, 4242})
	requireCode(t, err, models.CodeValidation)

	chats, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestMessageRepository_CreateWithNotifications(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	b := testutil.CreateUser(t, db, "bo")
	chat := testutil.CreateChat(t, db, "", false, a.ID, b.ID)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	msg := &models.Message{ChatID: chat.ID, UserID: a.ID, Content: "hi"}
	notes := []models.Notification{{UserID: b.ID, Type: models.NotificationMessage, Content: "ana: hi"}}
	require.NoError(t, repo.Create(ctx, msg, notes))

	msgs, err := repo.ListByChat(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].SentDate.IsZero())

	inbox, err := NewNotificationRepository(db).ListByUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)

	require.NoError(t, repo.Delete(ctx, msg.ID))
	requireCode(t, repo.Delete(ctx, msg.ID), models.CodeNotFound)
}

func TestFollowRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	b := testutil.CreateUser(t, db, "bo")
	repo := NewFollowRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: b.ID}, nil))
	dupErr := repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: b.ID}, nil)
	requireCode(t, dupErr, models.CodeConflict)
	assert.Contains(t, dupErr.Error(), "already follows")
	requireCode(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FollowedID: a.ID}, nil), models.CodeValidation)

	followers, err := repo.ListFollowers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].FollowerID)

	following, err := repo.ListFollowing(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	ok, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))
	requireCode(t, repo.Delete(ctx, a.ID, b.ID), models.CodeNotFound)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	note := &models.Notification{UserID: a.ID, Type: models.NotificationOther, Content: "welcome"}
	require.NoError(t, repo.Create(ctx, note))

	note.Read = true
	require.NoError(t, repo.Update(ctx, note))
	got, err := repo.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	note.Read = false
	require.NoError(t, repo.Update(ctx, note))
	got, err = repo.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, got.Read)
}

func TestPostRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{UserID: a.ID, Content: "Pairing tips"}
	require.NoError(t, repo.Create(ctx, post))
	post.Content = "Better pairing tips"
	require.NoError(t, repo.Update(ctx, post))

	ok, err := repo.Exists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, post.ID))
	ok, err = repo.Exists(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
