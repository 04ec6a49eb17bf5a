package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const followerCountTTL = time.Hour * 1

type FollowService interface {
	FollowChannel(ctx context.Context, followerID, channelID uint64) error
	UnfollowChannel(ctx context.Context, followerID, channelID uint64) error
	ListFollowing(ctx context.Context, followerID uint64) ([]*dto.FollowDTO, error)
	ListFollowers(ctx context.Context, channelID uint64) ([]*dto.FollowDTO, error)
	GetFollowerCount(ctx context.Context, channelID uint64) (int64, error)
	IsFollowing(ctx context.Context, followerID, channelID uint64) (bool, error)
}

type FollowServiceImpl struct {
	followRepo  repository.FollowRepo
	channelRepo repository.ChannelRepo
}

func NewFollowService(followRepo repository.FollowRepo, channelRepo repository.ChannelRepo) FollowService {
	return &FollowServiceImpl{
		followRepo:  followRepo,
		channelRepo: channelRepo,
	}
}

// FollowChannel 关注频道，不能关注自己的频道，并发下以唯一键兜底判重
func (s *FollowServiceImpl) FollowChannel(ctx context.Context, followerID, channelID uint64) error {
	err := performAction(func() error {
		return util.RunChecks(
			func() error {
				channel, err := s.channelRepo.GetChannel(ctx, channelID)
				if err != nil {
					return err
				}
				if channel == nil {
					return ErrChannelNotFound
				}
				if channel.OwnerID == followerID {
					return ErrFollowOwnChannel
				}
				return nil
			},
			func() error {
				edge, err := s.followRepo.GetEdge(ctx, followerID, channelID)
				if err != nil {
					return err
				}
				if edge != nil {
					return ErrFollowExist
				}
				return nil
			},
		)
	}, func() error {
		return s.followRepo.CreateEdge(ctx, &model.FollowEdge{
			FollowerID: followerID,
			ChannelID:  channelID,
			CreatedAt:  time.Now(),
		})
	}, ErrFollowExist)
	if err != nil {
		return err
	}
	s.invalidateFollowerCount(ctx, channelID)
	return nil
}

// UnfollowChannel 取消关注，频道不存在为 404，关系不存在视为冲突
func (s *FollowServiceImpl) UnfollowChannel(ctx context.Context, followerID, channelID uint64) error {
	err := revokeAction(func() error {
		return util.RunChecks(
			func() error {
				channel, err := s.channelRepo.GetChannel(ctx, channelID)
				if err != nil {
					return err
				}
				if channel == nil {
					return ErrChannelNotFound
				}
				return nil
			},
			func() error {
				edge, err := s.followRepo.GetEdge(ctx, followerID, channelID)
				if err != nil {
					return err
				}
				if edge == nil {
					return ErrFollowNotExist
				}
				return nil
			},
		)
	}, func() error {
		return s.followRepo.DeleteEdge(ctx, followerID, channelID)
	})
	if err != nil {
		return err
	}
	s.invalidateFollowerCount(ctx, channelID)
	return nil
}

func (s *FollowServiceImpl) ListFollowing(ctx context.Context, followerID uint64) ([]*dto.FollowDTO, error) {
	edges, err := s.followRepo.ListEdgesByFollower(ctx, followerID)
	if err != nil {
		return nil, err
	}
	return toFollowDTOs(edges), nil
}

// ListFollowers 优先读 CDC 维护的最近关注者集合，缓存为空时回源数据库
func (s *FollowServiceImpl) ListFollowers(ctx context.Context, channelID uint64) ([]*dto.FollowDTO, error) {
	channel, err := s.channelRepo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	if cached, err := s.listFollowersFromCache(ctx, channelID); err == nil && len(cached) > 0 {
		return cached, nil
	}
	edges, err := s.followRepo.ListEdgesByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return toFollowDTOs(edges), nil
}

func (s *FollowServiceImpl) listFollowersFromCache(ctx context.Context, channelID uint64) ([]*dto.FollowDTO, error) {
	key := consts.ChannelFollowerKey + strconv.FormatUint(channelID, 10)
	members, err := redis.GetRdbClient().ZRevRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.FollowDTO, 0, len(members))
	for _, member := range members {
		followerID, err := strconv.ParseUint(member.Member.(string), 10, 64)
		if err != nil {
			return nil, err
		}
		list = append(list, &dto.FollowDTO{
			FollowerID: followerID,
			ChannelID:  channelID,
			CreatedAt:  util.FormatTime(time.Unix(int64(member.Score), 0)),
		})
	}
	return list, nil
}

// GetFollowerCount 计数走 Redis 缓存，未命中回源并回填
func (s *FollowServiceImpl) GetFollowerCount(ctx context.Context, channelID uint64) (int64, error) {
	key := consts.ChannelFollowerCountKey + strconv.FormatUint(channelID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, redisv9.Nil) {
		return 0, err
	}
	channel, err := s.channelRepo.GetChannel(ctx, channelID)
	if err != nil {
		return 0, err
	}
	if channel == nil {
		return 0, ErrChannelNotFound
	}
	count, err = s.followRepo.CountFollowers(ctx, channelID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, count, followerCountTTL)
	return count, nil
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, followerID, channelID uint64) (bool, error) {
	edge, err := s.followRepo.GetEdge(ctx, followerID, channelID)
	if err != nil {
		return false, err
	}
	return edge != nil, nil
}

func (s *FollowServiceImpl) invalidateFollowerCount(ctx context.Context, channelID uint64) {
	_ = redis.DeleteKey(ctx, consts.ChannelFollowerCountKey+strconv.FormatUint(channelID, 10))
}

func toFollowDTOs(edges []*model.FollowEdge) []*dto.FollowDTO {
	list := make([]*dto.FollowDTO, 0, len(edges))
	for _, edge := range edges {
		list = append(list, &dto.FollowDTO{
			FollowerID: edge.FollowerID,
			ChannelID:  edge.ChannelID,
			CreatedAt:  util.FormatTime(edge.CreatedAt),
		})
	}
	return list
}
