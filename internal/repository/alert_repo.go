package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AlertRepo interface {
	CreateVote(ctx context.Context, vote *model.AlertVote) error
	DeleteVote(ctx context.Context, voterID, contentID uint64) error
	GetVote(ctx context.Context, voterID, contentID uint64) (*model.AlertVote, error)
	ListVotesByContent(ctx context.Context, contentID uint64) ([]*model.AlertVote, error)
	ListAllVotes(ctx context.Context) ([]*model.AlertVote, error)
	CountByClassification(ctx context.Context, contentID uint64, classification string) (int64, error)
	DeleteOrphanVotes(ctx context.Context) (int64, error)
}

type AlertRepoImpl struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &AlertRepoImpl{db: db}
}

// CreateVote 写入投票，复合主键冲突由调用方识别为重复投票
func (s *AlertRepoImpl) CreateVote(ctx context.Context, vote *model.AlertVote) error {
	return s.db.WithContext(ctx).Create(vote).Error
}

// DeleteVote 按 (voter, content) 删除投票
func (s *AlertRepoImpl) DeleteVote(ctx context.Context, voterID, contentID uint64) error {
	return s.db.WithContext(ctx).
		Where("voter_id = ? AND content_id = ?", voterID, contentID).
		Delete(&model.AlertVote{}).Error
}

func (s *AlertRepoImpl) GetVote(ctx context.Context, voterID, contentID uint64) (*model.AlertVote, error) {
	var vote model.AlertVote
	result := s.db.WithContext(ctx).
		Where("voter_id = ? AND content_id = ?", voterID, contentID).
		First(&vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &vote, nil
}

func (s *AlertRepoImpl) ListVotesByContent(ctx context.Context, contentID uint64) ([]*model.AlertVote, error) {
	var votes []*model.AlertVote
	err := s.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at desc").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *AlertRepoImpl) ListAllVotes(ctx context.Context) ([]*model.AlertVote, error) {
	var votes []*model.AlertVote
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *AlertRepoImpl) CountByClassification(ctx context.Context, contentID uint64, classification string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.AlertVote{}).
		Where("content_id = ? AND classification = ?", contentID, classification).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteOrphanVotes 清理指向已删除内容的投票，返回删除行数
func (s *AlertRepoImpl) DeleteOrphanVotes(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("content_id NOT IN (?)", s.db.Model(&model.Content{}).Select("id")).
		Delete(&model.AlertVote{})
	return result.RowsAffected, result.Error
}
