package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	PayloadTooLarge     = 413
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")

	ErrChannelNotFound       = errors.New("频道不存在")
	ErrChannelNameEmpty      = errors.New("频道名不能为空")
	ErrChannelNameTooLong    = errors.New("频道名不能超过50个字符")
	ErrChannelDisplayTooLong = errors.New("频道显示名不能超过50个字符")
	ErrChannelDescTooLong    = errors.New("频道描述不能超过140个字符")
	ErrChannelNameExist      = errors.New("该用户下已存在同名频道")
	ErrChannelNotOwner       = errors.New("不能操作他人的频道")

	ErrContentNotFound  = errors.New("内容不存在")
	ErrContentBodyEmpty = errors.New("内容不能为空")
	ErrContentNotAuthor = errors.New("不能操作他人的内容")

	ErrFollowOwnChannel = errors.New("不能关注自己的频道")
	ErrFollowExist      = errors.New("已关注该频道")
	ErrFollowNotExist   = errors.New("未关注该频道")

	ErrAlertInvalidSignal = errors.New("无效的分类信号")
	ErrAlertOwnContent    = errors.New("不能对自己的内容投票")
	ErrAlertExist         = errors.New("不能重复投票")
	ErrAlertNotExist      = errors.New("尚未对该内容投票")

	UnauthorizedError = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserUsernameExist:       Conflict,
	ErrPasswordIncorrect:       Forbidden,
	ErrMissingLoginCredentials: Forbidden,

	ErrChannelNotFound:       NotFound,
	ErrChannelNameEmpty:      BadRequest,
	ErrChannelNameTooLong:    PayloadTooLarge,
	ErrChannelDisplayTooLong: PayloadTooLarge,
	ErrChannelDescTooLong:    PayloadTooLarge,
	ErrChannelNameExist:      Conflict,
	ErrChannelNotOwner:       Forbidden,

	ErrContentNotFound:  NotFound,
	ErrContentBodyEmpty: BadRequest,
	ErrContentNotAuthor: Forbidden,

	ErrFollowOwnChannel: Forbidden,
	ErrFollowExist:      Conflict,
	ErrFollowNotExist:   Conflict,

	ErrAlertInvalidSignal: BadRequest,
	ErrAlertOwnContent:    Forbidden,
	ErrAlertExist:         Conflict,
	ErrAlertNotExist:      Conflict,

	UnauthorizedError: Forbidden,
	UnExpectedError:   InternalServerError,
}
