package handler

import (
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
	feedSvc   service.FeedService
}

func NewFollowHandler(followSvc service.FollowService, feedSvc service.FeedService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
		feedSvc:   feedSvc,
	}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.followSvc.FollowChannel(c.Request.Context(), userId, channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.followSvc.UnfollowChannel(c.Request.Context(), userId, channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) GetFollowing(c *gin.Context) {
	userId := c.GetUint64("user_id")
	list, err := s.followSvc.ListFollowing(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	list, err := s.followSvc.ListFollowers(c.Request.Context(), channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *FollowHandler) GetFollowerCount(c *gin.Context) {
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	count, err := s.followSvc.GetFollowerCount(c.Request.Context(), channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *FollowHandler) GetIsFollowing(c *gin.Context) {
	userId := c.GetUint64("user_id")
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	isFollowing, err := s.followSvc.IsFollowing(c.Request.Context(), userId, channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"is_following": isFollowing})
}

// GetFeed 关注频道的聚合信息流
func (s *FollowHandler) GetFeed(c *gin.Context) {
	userId := c.GetUint64("user_id")
	feed, err := s.feedSvc.GetFeed(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}
