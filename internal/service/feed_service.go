package service

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type FeedService interface {
	GetFeed(ctx context.Context, userID uint64) (*dto.FeedDTO, error)
}

type FeedServiceImpl struct {
	followRepo  repository.FollowRepo
	contentRepo repository.ContentRepo
	userRepo    repository.UserRepo
}

func NewFeedService(followRepo repository.FollowRepo, contentRepo repository.ContentRepo, userRepo repository.UserRepo) FeedService {
	return &FeedServiceImpl{
		followRepo:  followRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
	}
}

// GetFeed 聚合已关注频道的内容为单一信息流
// 并发扇出受配置上限约束，单频道拉取失败只降级跳过不拖垮整条流
// 排序规则：更新时间倒序，相同时间按 ID 升序保证稳定
func (s *FeedServiceImpl) GetFeed(ctx context.Context, userID uint64) (*dto.FeedDTO, error) {
	channelIds, err := s.followRepo.ListChannelIDsByFollower(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(channelIds) == 0 {
		return &dto.FeedDTO{Items: []*dto.ContentDTO{}}, nil
	}

	feedCfg := config.Cfg.Feed
	fanout := feedCfg.FanoutLimit
	if fanout <= 0 {
		fanout = 8
	}

	var mu sync.Mutex
	merged := make([]*model.Content, 0, len(channelIds)*4)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(fanout)
	for _, channelId := range channelIds {
		g.Go(func() error {
			fetchCtx := gCtx
			if feedCfg.FetchTimeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(gCtx, time.Duration(feedCfg.FetchTimeout)*time.Second)
				defer cancel()
			}
			contents, err := s.contentRepo.ListContentsByChannel(fetchCtx, channelId)
			if err != nil {
				log.WarnContext(gCtx, "feed fetch degraded, channel skipped",
					"channel_id", channelId, "err", err)
				return nil
			}
			mu.Lock()
			merged = append(merged, contents...)
			mu.Unlock()
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].UpdatedAt.Equal(merged[j].UpdatedAt) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].UpdatedAt.After(merged[j].UpdatedAt)
	})

	items, err := ExpandContentList(ctx, s.userRepo, merged)
	if err != nil {
		return nil, err
	}
	return &dto.FeedDTO{Items: items}, nil
}
