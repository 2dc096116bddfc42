package service

import (
	"context"
	"fmt"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
)

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

type CreatePostInput struct {
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
}

type UpdatePostInput struct {
	Content *string `json:"content"`
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{postRepo: postRepo, commentRepo: commentRepo, userRepo: userRepo}
}

func (s *PostService) ListPosts(ctx context.Context) (_ []models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.ListPosts")
	defer func() { observability.EndSpan(span, err) }()

	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (_ *models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.GetPost")
	defer func() { observability.EndSpan(span, err) }()

	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListPostComments(ctx context.Context, postID uint) (_ []models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.ListPostComments")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.postRepo.Exists, "Post", postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (_ *models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.CreatePost")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireText("content", in.Content); err != nil {
		return nil, err
	}
	if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", in.UserID); err != nil {
		return nil, err
	}
	post := &models.Post{UserID: in.UserID, Content: in.Content}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (_ *models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.UpdatePost")
	defer func() { observability.EndSpan(span, err) }()

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Content != nil {
		if err := requireText("content", *in.Content); err != nil {
			return nil, err
		}
		post.Content = *in.Content
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.DeletePost")
	defer func() { observability.EndSpan(span, err) }()

	return s.postRepo.Delete(ctx, id)
}

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	PostID  uint   `json:"post_id"`
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
}

type UpdateCommentInput struct {
	Content *string `json:"content"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo, userRepo: userRepo}
}

func (s *CommentService) ListComments(ctx context.Context) (_ []models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.ListComments")
	defer func() { observability.EndSpan(span, err) }()

	return s.commentRepo.List(ctx)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (_ *models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.GetComment")
	defer func() { observability.EndSpan(span, err) }()

	return s.commentRepo.GetByID(ctx, id)
}

// CreateComment stores the comment and notifies the post author, unless the
// author is commenting on their own post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (_ *models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.CreateComment")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireText("content", in.Content); err != nil {
		return nil, err
	}
	if in.PostID == 0 {
		return nil, models.NewValidationError("post_id is required")
	}
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewValidationError(fmt.Sprintf("Post with ID %d does not exist", in.PostID))
		}
		return nil, err
	}
	if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", in.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{PostID: in.PostID, UserID: in.UserID, Content: in.Content}
	var note *models.Notification
	if post.UserID != in.UserID {
		note = &models.Notification{
			UserID:  post.UserID,
			Type:    models.NotificationComment,
			Content: fmt.Sprintf("User %d commented on your post %d", in.UserID, post.ID),
		}
	}
	if err := s.commentRepo.Create(ctx, comment, note); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, in UpdateCommentInput) (_ *models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.UpdateComment")
	defer func() { observability.EndSpan(span, err) }()

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Content != nil {
		if err := requireText("content", *in.Content); err != nil {
			return nil, err
		}
		comment.Content = *in.Content
	}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.DeleteComment")
	defer func() { observability.EndSpan(span, err) }()

	return s.commentRepo.Delete(ctx, id)
}
