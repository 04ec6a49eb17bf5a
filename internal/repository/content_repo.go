package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ContentRepo interface {
	CreateContent(ctx context.Context, content *model.Content) error
	GetContent(ctx context.Context, id uint64) (*model.Content, error)
	ListContentsByChannel(ctx context.Context, channelID uint64) ([]*model.Content, error)
	DeleteContentCascade(ctx context.Context, contentID uint64) error
}

type ContentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepo {
	return &ContentRepoImpl{db: db}
}

func (s *ContentRepoImpl) CreateContent(ctx context.Context, content *model.Content) error {
	return s.db.WithContext(ctx).Create(content).Error
}

func (s *ContentRepoImpl) GetContent(ctx context.Context, id uint64) (*model.Content, error) {
	var content model.Content
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &content, nil
}

// ListContentsByChannel 获取频道下全部内容，按修改时间从新到旧
func (s *ContentRepoImpl) ListContentsByChannel(ctx context.Context, channelID uint64) ([]*model.Content, error) {
	var contents []*model.Content
	err := s.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("updated_at desc").
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// DeleteContentCascade 删除内容及其上的投票
func (s *ContentRepoImpl) DeleteContentCascade(ctx context.Context, contentID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", contentID).Delete(&model.AlertVote{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", contentID).Delete(&model.Content{}).Error
	})
}
