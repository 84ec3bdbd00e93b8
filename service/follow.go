package service

import (
	"context"
	"errors"

	"Savora/dao"
	"Savora/models"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/response"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	CreateFollow(ctx context.Context, followerID, followingID uint64) (*models.Follow, error)
	DeleteFollow(ctx context.Context, followerID, followingID uint64) error
	ListFollowers(ctx context.Context, userID uint64) ([]models.Follow, error)
	ListFollowing(ctx context.Context, userID uint64) ([]models.Follow, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	Oracle    oracle.Checker
	Outcomes  *metrics.Recorder
}

func (s *FollowService) CreateFollow(ctx context.Context, followerID, followingID uint64) (follow *models.Follow, err error) {
	defer func() { s.Outcomes.RecordFollow(metrics.ActionFollow, err) }()

	// 自关注直接拒绝，不看 oracle
	if followerID == followingID {
		return nil, response.NewError(response.KindValidation, "Cannot follow yourself")
	}

	existing, err := s.FollowDAO.Get(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(response.KindValidation, "Already following this user")
	}

	switch s.Oracle.CheckUser(ctx, followingID) {
	case oracle.NotFound:
		return nil, response.NewError(response.KindNotFound, "User to follow not found")
	case oracle.Unknown:
		return nil, response.NewError(response.KindUpstream, "user service unavailable")
	}

	follow = &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err = s.FollowDAO.Create(ctx, follow); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			err = response.NewError(response.KindValidation, "Already following this user")
		}
		return nil, err
	}

	return follow, nil
}

func (s *FollowService) DeleteFollow(ctx context.Context, followerID, followingID uint64) (err error) {
	defer func() { s.Outcomes.RecordFollow(metrics.ActionUnfollow, err) }()

	var existing *models.Follow
	existing, err = s.FollowDAO.Get(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.NewError(response.KindNotFound, "Follow relationship not found")
	}

	if err = s.FollowDAO.Delete(ctx, followerID, followingID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NewError(response.KindNotFound, "Follow relationship not found")
		}
		return err
	}

	return nil
}

func (s *FollowService) ListFollowers(ctx context.Context, userID uint64) ([]models.Follow, error) {
	return s.FollowDAO.ListFollowers(ctx, userID)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID uint64) ([]models.Follow, error) {
	return s.FollowDAO.ListFollowing(ctx, userID)
}
