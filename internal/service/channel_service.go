package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"
	"strconv"
	"strings"
)

const (
	MaxChannelNameLen = 50
	MaxDisplayNameLen = 50
	MaxDescriptionLen = 140
)

type ChannelService interface {
	CreateChannel(ctx context.Context, ownerID uint64, dto *dto.ChannelBaseDTO) (*dto.ChannelDTO, error)
	GetChannel(ctx context.Context, id uint64) (*dto.ChannelDTO, error)
	ListChannels(ctx context.Context) ([]*dto.ChannelDTO, error)
	ListChannelsByOwnerName(ctx context.Context, username string) ([]*dto.ChannelDTO, error)
	UpdateChannel(ctx context.Context, operatorID, channelID uint64, dto *dto.ChannelBaseDTO) (*dto.ChannelDTO, error)
	DeleteChannel(ctx context.Context, operatorID, channelID uint64) error
}

type ChannelServiceImpl struct {
	channelRepo repository.ChannelRepo
	userRepo    repository.UserRepo
}

func NewChannelService(channelRepo repository.ChannelRepo, userRepo repository.UserRepo) ChannelService {
	return &ChannelServiceImpl{
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

// validateProfile 频道画像校验链：空名为 400，超长为 413
func (s *ChannelServiceImpl) validateProfile(base *dto.ChannelBaseDTO) error {
	return util.RunChecks(
		func() error {
			if strings.TrimSpace(base.Name) == "" {
				return ErrChannelNameEmpty
			}
			return nil
		},
		func() error {
			if len([]rune(base.Name)) > MaxChannelNameLen {
				return ErrChannelNameTooLong
			}
			return nil
		},
		func() error {
			if len([]rune(base.DisplayName)) > MaxDisplayNameLen {
				return ErrChannelDisplayTooLong
			}
			return nil
		},
		func() error {
			if len([]rune(base.Description)) > MaxDescriptionLen {
				return ErrChannelDescTooLong
			}
			return nil
		},
	)
}

func (s *ChannelServiceImpl) CreateChannel(ctx context.Context, ownerID uint64, base *dto.ChannelBaseDTO) (*dto.ChannelDTO, error) {
	if err := s.validateProfile(base); err != nil {
		return nil, err
	}
	exist, err := s.channelRepo.GetChannelByOwnerAndName(ctx, ownerID, base.Name)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrChannelNameExist
	}

	channel := &model.Channel{
		OwnerID:     ownerID,
		Name:        base.Name,
		DisplayName: base.DisplayName,
		Description: base.Description,
	}
	err = s.channelRepo.CreateChannel(ctx, channel)
	if err != nil {
		if isDuplicateError(err) {
			return nil, ErrChannelNameExist
		}
		return nil, err
	}
	return s.toChannelDTO(ctx, channel), nil
}

func (s *ChannelServiceImpl) GetChannel(ctx context.Context, id uint64) (*dto.ChannelDTO, error) {
	channel, err := s.channelRepo.GetChannel(ctx, id)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	return s.toChannelDTO(ctx, channel), nil
}

func (s *ChannelServiceImpl) ListChannels(ctx context.Context) ([]*dto.ChannelDTO, error) {
	channels, err := s.channelRepo.ListChannels(ctx)
	if err != nil {
		return nil, err
	}
	return s.toChannelDTOs(ctx, channels)
}

// ListChannelsByOwnerName 按用户名过滤频道，用户不存在为 404
func (s *ChannelServiceImpl) ListChannelsByOwnerName(ctx context.Context, username string) ([]*dto.ChannelDTO, error) {
	owner, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}
	channels, err := s.channelRepo.ListChannelsByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return s.toChannelDTOs(ctx, channels)
}

func (s *ChannelServiceImpl) UpdateChannel(ctx context.Context, operatorID, channelID uint64, base *dto.ChannelBaseDTO) (*dto.ChannelDTO, error) {
	channel, err := s.getOwnedChannel(ctx, operatorID, channelID)
	if err != nil {
		return nil, err
	}
	if err = s.validateProfile(base); err != nil {
		return nil, err
	}
	if base.Name != channel.Name {
		exist, err := s.channelRepo.GetChannelByOwnerAndName(ctx, operatorID, base.Name)
		if err != nil {
			return nil, err
		}
		if exist != nil {
			return nil, ErrChannelNameExist
		}
	}

	channel.Name = base.Name
	channel.DisplayName = base.DisplayName
	channel.Description = base.Description
	err = s.channelRepo.UpdateChannel(ctx, channel)
	if err != nil {
		if isDuplicateError(err) {
			return nil, ErrChannelNameExist
		}
		return nil, err
	}
	return s.toChannelDTO(ctx, channel), nil
}

// DeleteChannel 仅限属主操作，级联删除内容、投票与关注边，并清理计数缓存
func (s *ChannelServiceImpl) DeleteChannel(ctx context.Context, operatorID, channelID uint64) error {
	_, err := s.getOwnedChannel(ctx, operatorID, channelID)
	if err != nil {
		return err
	}
	err = s.channelRepo.DeleteChannelCascade(ctx, channelID)
	if err != nil {
		return err
	}
	_ = redis.DeleteKeys(ctx,
		consts.ChannelFollowerKey+strconv.FormatUint(channelID, 10),
		consts.ChannelFollowerCountKey+strconv.FormatUint(channelID, 10),
	)
	return nil
}

func (s *ChannelServiceImpl) getOwnedChannel(ctx context.Context, operatorID, channelID uint64) (*model.Channel, error) {
	channel, err := s.channelRepo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	if channel.OwnerID != operatorID {
		return nil, ErrChannelNotOwner
	}
	return channel, nil
}

func (s *ChannelServiceImpl) toChannelDTO(ctx context.Context, channel *model.Channel) *dto.ChannelDTO {
	item := &dto.ChannelDTO{
		ID:          channel.ID,
		OwnerID:     channel.OwnerID,
		Name:        channel.Name,
		DisplayName: channel.DisplayName,
		Description: channel.Description,
		CreatedAt:   util.FormatTime(channel.CreatedAt),
		UpdatedAt:   util.FormatTime(channel.UpdatedAt),
	}
	owner, err := s.userRepo.GetUserByID(ctx, channel.OwnerID)
	if err == nil && owner != nil {
		item.OwnerUsername = owner.Username
	}
	return item
}

func (s *ChannelServiceImpl) toChannelDTOs(ctx context.Context, channels []*model.Channel) ([]*dto.ChannelDTO, error) {
	ownerIds := make([]uint64, 0, len(channels))
	for _, channel := range channels {
		ownerIds = append(ownerIds, channel.OwnerID)
	}
	owners, err := s.userRepo.GetUsersByIDs(ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	mp := make(map[uint64]string, len(owners))
	for _, owner := range owners {
		mp[owner.ID] = owner.Username
	}
	list := make([]*dto.ChannelDTO, 0, len(channels))
	for _, channel := range channels {
		list = append(list, &dto.ChannelDTO{
			ID:            channel.ID,
			OwnerID:       channel.OwnerID,
			OwnerUsername: mp[channel.OwnerID],
			Name:          channel.Name,
			DisplayName:   channel.DisplayName,
			Description:   channel.Description,
			CreatedAt:     util.FormatTime(channel.CreatedAt),
			UpdatedAt:     util.FormatTime(channel.UpdatedAt),
		})
	}
	return list, nil
}
