package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FollowRepo interface {
	CreateEdge(ctx context.Context, edge *model.FollowEdge) error
	DeleteEdge(ctx context.Context, followerID, channelID uint64) error
	GetEdge(ctx context.Context, followerID, channelID uint64) (*model.FollowEdge, error)
	ListChannelIDsByFollower(ctx context.Context, followerID uint64) ([]uint64, error)
	ListEdgesByFollower(ctx context.Context, followerID uint64) ([]*model.FollowEdge, error)
	ListEdgesByChannel(ctx context.Context, channelID uint64) ([]*model.FollowEdge, error)
	CountFollowers(ctx context.Context, channelID uint64) (int64, error)
	DeleteEdgesByChannel(ctx context.Context, channelID uint64) error
	DeleteEdgesByFollower(ctx context.Context, followerID uint64) error
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// CreateEdge 创建关注边，复合主键冲突由调用方识别为重复关注
func (s *FollowRepoImpl) CreateEdge(ctx context.Context, edge *model.FollowEdge) error {
	return s.db.WithContext(ctx).Create(edge).Error
}

func (s *FollowRepoImpl) DeleteEdge(ctx context.Context, followerID, channelID uint64) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND channel_id = ?", followerID, channelID).
		Delete(&model.FollowEdge{}).Error
}

func (s *FollowRepoImpl) GetEdge(ctx context.Context, followerID, channelID uint64) (*model.FollowEdge, error) {
	var edge model.FollowEdge
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND channel_id = ?", followerID, channelID).
		First(&edge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &edge, nil
}

func (s *FollowRepoImpl) ListChannelIDsByFollower(ctx context.Context, followerID uint64) ([]uint64, error) {
	var channelIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.FollowEdge{}).
		Where("follower_id = ?", followerID).
		Pluck("channel_id", &channelIDs).Error
	return channelIDs, err
}

func (s *FollowRepoImpl) ListEdgesByFollower(ctx context.Context, followerID uint64) ([]*model.FollowEdge, error) {
	var edges []*model.FollowEdge
	err := s.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Order("created_at desc").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (s *FollowRepoImpl) ListEdgesByChannel(ctx context.Context, channelID uint64) ([]*model.FollowEdge, error) {
	var edges []*model.FollowEdge
	err := s.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("created_at desc").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (s *FollowRepoImpl) CountFollowers(ctx context.Context, channelID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.FollowEdge{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *FollowRepoImpl) DeleteEdgesByChannel(ctx context.Context, channelID uint64) error {
	return s.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Delete(&model.FollowEdge{}).Error
}

func (s *FollowRepoImpl) DeleteEdgesByFollower(ctx context.Context, followerID uint64) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Delete(&model.FollowEdge{}).Error
}
