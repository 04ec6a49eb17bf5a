package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertSvc service.AlertService
}

func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

func (s *AlertHandler) CastVote(c *gin.Context) {
	userId := c.GetUint64("user_id")
	contentId, err := parseIDParam(c, "content_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var castDTO dto.AlertCastDTO
	err = c.ShouldBind(&castDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.alertSvc.CastVote(c.Request.Context(), userId, contentId, castDTO.Classification)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, nil)
}

func (s *AlertHandler) RetractVote(c *gin.Context) {
	userId := c.GetUint64("user_id")
	contentId, err := parseIDParam(c, "content_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.alertSvc.RetractVote(c.Request.Context(), userId, contentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AlertHandler) GetVotesByContent(c *gin.Context) {
	contentId, err := parseIDParam(c, "content_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	list, err := s.alertSvc.ListVotesByContent(c.Request.Context(), contentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *AlertHandler) GetAllVotes(c *gin.Context) {
	list, err := s.alertSvc.ListAllVotes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetScore 实时计算内容的社区风险评分
func (s *AlertHandler) GetScore(c *gin.Context) {
	contentId, err := parseIDParam(c, "content_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	score, err := s.alertSvc.ComputeScore(c.Request.Context(), contentId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, score)
}
