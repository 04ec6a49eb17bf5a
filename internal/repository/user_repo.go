package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []uint64) ([]*model.User, error)
	DeleteUserCascade(ctx context.Context, userID uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUsersByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	var users []*model.User
	if len(ids) == 0 {
		return users, nil
	}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUserCascade 注销用户：删除其投票、关注、所有频道（连同频道级联）、
// 发布的内容及其上的投票，最后删除用户本身，整体在一个事务内完成
func (s *UserRepoImpl) DeleteUserCascade(ctx context.Context, userID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voter_id = ?", userID).Delete(&model.AlertVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ?", userID).Delete(&model.FollowEdge{}).Error; err != nil {
			return err
		}

		var channelIDs []uint64
		if err := tx.Model(&model.Channel{}).Where("owner_id = ?", userID).
			Pluck("id", &channelIDs).Error; err != nil {
			return err
		}
		for _, cid := range channelIDs {
			if err := deleteChannelCascadeTx(tx, cid); err != nil {
				return err
			}
		}

		var contentIDs []uint64
		if err := tx.Model(&model.Content{}).Where("author_id = ?", userID).
			Pluck("id", &contentIDs).Error; err != nil {
			return err
		}
		if len(contentIDs) > 0 {
			if err := tx.Where("content_id IN ?", contentIDs).Delete(&model.AlertVote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", contentIDs).Delete(&model.Content{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", userID).Delete(&model.User{}).Error
	})
}
