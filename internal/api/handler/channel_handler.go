package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelSvc service.ChannelService
}

func NewChannelHandler(channelSvc service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelSvc: channelSvc}
}

func (s *ChannelHandler) CreateChannel(c *gin.Context) {
	userId := c.GetUint64("user_id")
	var baseDTO dto.ChannelBaseDTO
	err := c.ShouldBind(&baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	channelDTO, err := s.channelSvc.CreateChannel(c.Request.Context(), userId, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, channelDTO)
}

func (s *ChannelHandler) GetChannel(c *gin.Context) {
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	channelDTO, err := s.channelSvc.GetChannel(c.Request.Context(), channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channelDTO)
}

// ListChannels 列出全部频道，带 owner 参数时只列该用户名名下的频道
func (s *ChannelHandler) ListChannels(c *gin.Context) {
	owner := c.Query("owner")
	if owner != "" {
		list, err := s.channelSvc.ListChannelsByOwnerName(c.Request.Context(), owner)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, list)
		return
	}
	list, err := s.channelSvc.ListChannels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ChannelHandler) UpdateChannel(c *gin.Context) {
	userId := c.GetUint64("user_id")
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var baseDTO dto.ChannelBaseDTO
	err = c.ShouldBind(&baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	channelDTO, err := s.channelSvc.UpdateChannel(c.Request.Context(), userId, channelId, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channelDTO)
}

func (s *ChannelHandler) DeleteChannel(c *gin.Context) {
	userId := c.GetUint64("user_id")
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.channelSvc.DeleteChannel(c.Request.Context(), userId, channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
