package service

import (
	"context"
	"fmt"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type FollowInput struct {
	FollowerID uint `json:"follower_id"`
	FollowedID uint `json:"followed_id"`
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowService) ListFollows(ctx context.Context) (_ []models.Follow, err error) {
	ctx, span := observability.StartSpan(ctx, "FollowService.ListFollows")
	defer func() { observability.EndSpan(span, err) }()

	return s.followRepo.List(ctx)
}

func (s *FollowService) ListFollowers(ctx context.Context, userID uint) (_ []models.Follow, err error) {
	ctx, span := observability.StartSpan(ctx, "FollowService.ListFollowers")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.userRepo.Exists, "User", userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID uint) (_ []models.Follow, err error) {
	ctx, span := observability.StartSpan(ctx, "FollowService.ListFollowing")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.userRepo.Exists, "User", userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, userID)
}

// Follow records the edge and tells the followed user about it.
func (s *FollowService) Follow(ctx context.Context, in FollowInput) (_ *models.Follow, err error) {
	ctx, span := observability.StartSpan(ctx, "FollowService.Follow")
	defer func() { observability.EndSpan(span, err) }()

	if in.FollowerID != 0 && in.FollowerID == in.FollowedID {
		return nil, models.NewValidationError("Users cannot follow themselves")
	}
	if err := requireReference(ctx, s.userRepo.Exists, "follower_id", "User", in.FollowerID); err != nil {
		return nil, err
	}
	if err := requireReference(ctx, s.userRepo.Exists, "followed_id", "User", in.FollowedID); err != nil {
		return nil, err
	}

	follow := &models.Follow{FollowerID: in.FollowerID, FollowedID: in.FollowedID}
	note := &models.Notification{
		UserID:  in.FollowedID,
		Type:    models.NotificationNewFollower,
		Content: fmt.Sprintf("User %d started following you", in.FollowerID),
	}
	if err := s.followRepo.Create(ctx, follow, note); err != nil {
		return nil, err
	}
	return follow, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "FollowService.Unfollow")
	defer func() { observability.EndSpan(span, err) }()

	return s.followRepo.Delete(ctx, followerID, followedID)
}
