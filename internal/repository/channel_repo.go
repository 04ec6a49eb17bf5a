package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ChannelRepo interface {
	CreateChannel(ctx context.Context, channel *model.Channel) error
	GetChannel(ctx context.Context, id uint64) (*model.Channel, error)
	GetChannelByOwnerAndName(ctx context.Context, ownerID uint64, name string) (*model.Channel, error)
	ListChannels(ctx context.Context) ([]*model.Channel, error)
	ListChannelsByOwner(ctx context.Context, ownerID uint64) ([]*model.Channel, error)
	UpdateChannel(ctx context.Context, channel *model.Channel) error
	DeleteChannelCascade(ctx context.Context, channelID uint64) error
}

type ChannelRepoImpl struct {
	db *gorm.DB
}

func NewChannelRepo(db *gorm.DB) ChannelRepo {
	return &ChannelRepoImpl{db: db}
}

func (s *ChannelRepoImpl) CreateChannel(ctx context.Context, channel *model.Channel) error {
	return s.db.WithContext(ctx).Create(channel).Error
}

func (s *ChannelRepoImpl) GetChannel(ctx context.Context, id uint64) (*model.Channel, error) {
	var channel model.Channel
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&channel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &channel, nil
}

func (s *ChannelRepoImpl) GetChannelByOwnerAndName(ctx context.Context, ownerID uint64, name string) (*model.Channel, error) {
	var channel model.Channel
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&channel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &channel, nil
}

// ListChannels 获取所有频道，按修改时间从新到旧
func (s *ChannelRepoImpl) ListChannels(ctx context.Context) ([]*model.Channel, error) {
	var channels []*model.Channel
	err := s.db.WithContext(ctx).Order("updated_at desc").Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

func (s *ChannelRepoImpl) ListChannelsByOwner(ctx context.Context, ownerID uint64) ([]*model.Channel, error) {
	var channels []*model.Channel
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at desc").
		Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

func (s *ChannelRepoImpl) UpdateChannel(ctx context.Context, channel *model.Channel) error {
	return s.db.WithContext(ctx).Save(channel).Error
}

// DeleteChannelCascade 删除频道并级联：先删内容上的投票，再删内容，
// 再删关注边，最后删频道记录；库不保证外键级联，必须显式按序执行
func (s *ChannelRepoImpl) DeleteChannelCascade(ctx context.Context, channelID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteChannelCascadeTx(tx, channelID)
	})
}

func deleteChannelCascadeTx(tx *gorm.DB, channelID uint64) error {
	var contentIDs []uint64
	if err := tx.Model(&model.Content{}).Where("channel_id = ?", channelID).
		Pluck("id", &contentIDs).Error; err != nil {
		return err
	}
	if len(contentIDs) > 0 {
		if err := tx.Where("content_id IN ?", contentIDs).Delete(&model.AlertVote{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("channel_id = ?", channelID).Delete(&model.Content{}).Error; err != nil {
		return err
	}
	if err := tx.Where("channel_id = ?", channelID).Delete(&model.FollowEdge{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", channelID).Delete(&model.Channel{}).Error
}
