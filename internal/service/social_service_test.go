package service

import (
	"context"
	"testing"

	"tastebuds/internal/models"
	"tastebuds/internal/repository"
	"tastebuds/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_NotifiesPostAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "ana")
	reader := testutil.CreateUser(t, db, "bo")
	post := testutil.CreatePost(t, db, author.ID, "Mezcal with mole?")

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)
	notes := repository.NewNotificationRepository(db)
	svc := NewCommentService(comments, posts, users)
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, UserID: reader.ID, Content: "Yes!"})
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, UserID: author.ID, Content: "Agreed"})
	require.NoError(t, err)

	inbox, err := notes.ListByUser(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1, "self comments do not notify")
	assert.Equal(t, models.NotificationComment, inbox[0].Type)

	_, err = svc.CreateComment(ctx, CreateCommentInput{PostID: 999, UserID: reader.ID, Content: "?"})
	assertValidationError(t, err)
	_, err = svc.CreateComment(ctx, CreateCommentInput{PostID: post.ID, UserID: reader.ID, Content: ""})
	assertValidationError(t, err)

	postSvc := NewPostService(posts, comments, users)
	thread, err := postSvc.ListPostComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, thread, 2)
	_, err = postSvc.ListPostComments(ctx, 999)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestPostService(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "ana")
	svc := NewPostService(repository.NewPostRepository(db), repository.NewCommentRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, CreatePostInput{UserID: author.ID})
	assertValidationError(t, err)
	_, err = svc.CreatePost(ctx, CreatePostInput{UserID: 55, Content: "hi"})
	assertValidationError(t, err)

	post, err := svc.CreatePost(ctx, CreatePostInput{UserID: author.ID, Content: "hi"})
	require.NoError(t, err)
	updated, err := svc.UpdatePost(ctx, post.ID, UpdatePostInput{Content: strPtr("hello")})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Content)
	require.NoError(t, svc.DeletePost(ctx, post.ID))
}

func newChatService(t *testing.T) (*ChatService, []*models.User, repository.NotificationRepository) {
	t.Helper()
	db := testutil.NewTestDB(t)
	users := []*models.User{
		testutil.CreateUser(t, db, "ana"),
		testutil.CreateUser(t, db, "bo"),
		testutil.CreateUser(t, db, "cy"),
	}
	svc := NewChatService(repository.NewChatRepository(db), repository.NewMessageRepository(db), repository.NewUserRepository(db))
	return svc, users, repository.NewNotificationRepository(db)
}

func TestChatService_CreateRules(t *testing.T) {
	svc, users, _ := newChatService(t)
	ctx := context.Background()

	_, err := svc.CreateChat(ctx, CreateChatInput{ParticipantIDs: []uint{users[0].ID}})
	assertValidationError(t, err)
	_, err = svc.CreateChat(ctx, CreateChatInput{ParticipantIDs: []uint{users[0].ID, users[0].ID}})
	assertValidationError(t, err)
	_, err = svc.CreateChat(ctx, CreateChatInput{IsGroup: true, ParticipantIDs: []uint{users[0].ID, 808}})
	assertValidationError(t, err)

	direct, err := svc.CreateChat(ctx, CreateChatInput{ParticipantIDs: []uint{users[0].ID, users[1].ID}})
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, direct.ID, AddParticipantInput{UserID: users[2].ID})
	assertValidationError(t, err)
	assertValidationError(t, svc.RemoveParticipant(ctx, direct.ID, users[1].ID))
	participants, err := svc.ListParticipants(ctx, direct.ID)
	require.NoError(t, err)
	assert.Len(t, participants, 2)

	group, err := svc.CreateChat(ctx, CreateChatInput{Name: "supper club", IsGroup: true, ParticipantIDs: []uint{users[0].ID}})
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, group.ID, AddParticipantInput{UserID: users[1].ID})
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, group.ID, AddParticipantInput{UserID: users[1].ID})
	assertAppErrorCode(t, err, models.CodeConflict)

	_, err = svc.UpdateChat(ctx, group.ID, UpdateChatInput{Name: strPtr("dinner club")})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveParticipant(ctx, group.ID, users[1].ID))
	assertAppErrorCode(t, svc.RemoveParticipant(ctx, group.ID, users[1].ID), models.CodeNotFound)
	assertAppErrorCode(t, svc.RemoveParticipant(ctx, 999, users[1].ID), models.CodeNotFound)

	isGroup := false
	_, err = svc.UpdateChat(ctx, group.ID, UpdateChatInput{IsGroup: &isGroup})
	assertValidationError(t, err)
}

func TestChatService_SendMessageNotifiesOthers(t *testing.T) {
	svc, users, notes := newChatService(t)
	ctx := context.Background()

	chat, err := svc.CreateChat(ctx, CreateChatInput{IsGroup: true, ParticipantIDs: []uint{users[0].ID, users[1].ID, users[2].ID}})
	require.NoError(t, err)

	msg, err := svc.SendMessage(ctx, chat.ID, SendMessageInput{UserID: users[0].ID, Content: "Tacos tonight?"})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	for _, u := range users {
		inbox, err := notes.ListByUser(ctx, u.ID)
		require.NoError(t, err)
		if u.ID == users[0].ID {
			assert.Empty(t, inbox)
		} else {
			require.Len(t, inbox, 1)
			assert.Equal(t, models.NotificationMessage, inbox[0].Type)
		}
	}

	outsider, err := svc.CreateChat(ctx, CreateChatInput{ParticipantIDs: []uint{users[1].ID, users[2].ID}})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, outsider.ID, SendMessageInput{UserID: users[0].ID, Content: "hey"})
	assertValidationError(t, err)
	_, err = svc.SendMessage(ctx, 999, SendMessageInput{UserID: users[0].ID, Content: "hey"})
	assertAppErrorCode(t, err, models.CodeNotFound)

	history, err := svc.ListMessages(ctx, chat.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	require.NoError(t, svc.DeleteMessage(ctx, msg.ID))
}

func TestFollowService(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	b := testutil.CreateUser(t, db, "bo")
	notes := repository.NewNotificationRepository(db)
	svc := NewFollowService(repository.NewFollowRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.Follow(ctx, FollowInput{FollowerID: a.ID, FollowedID: a.ID})
	assertValidationError(t, err)
	_, err = svc.Follow(ctx, FollowInput{FollowerID: a.ID, FollowedID: 999})
	assertValidationError(t, err)

	_, err = svc.Follow(ctx, FollowInput{FollowerID: a.ID, FollowedID: b.ID})
	require.NoError(t, err)
	_, err = svc.Follow(ctx, FollowInput{FollowerID: a.ID, FollowedID: b.ID})
	assertAppErrorCode(t, err, models.CodeConflict)

	inbox, err := notes.ListByUser(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1, "the duplicate follow must not leave a second notification")
	assert.Equal(t, models.NotificationNewFollower, inbox[0].Type)

	following, err := svc.ListFollowing(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, following, 1)
	_, err = svc.ListFollowers(ctx, 999)
	assertAppErrorCode(t, err, models.CodeNotFound)

	require.NoError(t, svc.Unfollow(ctx, a.ID, b.ID))
	assertAppErrorCode(t, svc.Unfollow(ctx, a.ID, b.ID), models.CodeNotFound)
}

func TestNotificationService(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "ana")
	svc := NewNotificationService(repository.NewNotificationRepository(db), repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.CreateNotification(ctx, CreateNotificationInput{UserID: a.ID, Type: "like"})
	assertValidationError(t, err)

	note, err := svc.CreateNotification(ctx, CreateNotificationInput{UserID: a.ID, Type: models.NotificationOther, Content: "hi"})
	require.NoError(t, err)
	assert.False(t, note.Read)

	read := true
	updated, err := svc.UpdateNotification(ctx, note.ID, UpdateNotificationInput{Read: &read})
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, "hi", updated.Content)

	mine, err := svc.ListNotifications(ctx, &a.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	all, err := svc.ListNotifications(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
