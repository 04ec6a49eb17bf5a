package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

func (s *ContentHandler) PublishContent(c *gin.Context) {
	userId := c.GetUint64("user_id")
	var createDTO dto.ContentCreateDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	contentDTO, err := s.contentSvc.PublishContent(c.Request.Context(), userId, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, contentDTO)
}

func (s *ContentHandler) GetContent(c *gin.Context) {
	contentId, err := parseIDParam(c, "content_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	contentDTO, err := s.contentSvc.GetContent(c.Request.Context(), contentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contentDTO)
}

func (s *ContentHandler) ListContentsByChannel(c *gin.Context) {
	channelId, err := parseIDParam(c, "channel_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	list, err := s.contentSvc.ListContentsByChannel(c.Request.Context(), channelId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ContentHandler) DeleteContent(c *gin.Context) {
	userId := c.GetUint64("user_id")
	contentId, err := parseIDParam(c, "content_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.contentSvc.DeleteContent(c.Request.Context(), userId, contentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
