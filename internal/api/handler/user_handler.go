package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/pkg/util"
	"Beacon/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedSuccess(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userId := c.GetUint64("user_id")
	userDTO, err := s.userSvc.GetUserInfo(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

// GetUserSimpleInfoByIds 批量获取用户简要信息，ids 逗号分隔
func (s *UserHandler) GetUserSimpleInfoByIds(c *gin.Context) {
	idsStr := c.Query("ids")
	if idsStr == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	ids, err := util.StrSliceToUInt64Slice(strings.Split(idsStr, ","))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	mp, err := s.userSvc.GetUserSimpleInfoByIds(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, mp)
}

func (s *UserHandler) CancelUser(c *gin.Context) {
	userId := c.GetUint64("user_id")
	err := s.userSvc.CancelUser(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
