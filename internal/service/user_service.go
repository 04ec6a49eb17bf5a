package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/security"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUserSimpleInfoByIds(ctx context.Context, ids []uint64) (map[uint64]*dto.UserDTO, error)
	CancelUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	user := &model.User{}
	err = copier.Copy(user, regDTO)
	if err != nil {
		return err
	}
	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash
	if user.Nickname == "" {
		user.Nickname = user.Username
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if isDuplicateError(err) {
			return ErrUserUsernameExist
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	if credDTO.Username == "" || credDTO.Password == "" {
		return nil, ErrMissingLoginCredentials
	}
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	err = security.CheckPasswordHash(credDTO.Password, user.Password)
	if err != nil {
		return nil, ErrPasswordIncorrect
	}
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// Logout 将 token 签名写入 Redis 黑名单，有效期与 token 本身一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// GetUserSimpleInfoByIds 批量取用户信息，供信息流回填作者昵称
func (s *UserServiceImpl) GetUserSimpleInfoByIds(ctx context.Context, ids []uint64) (map[uint64]*dto.UserDTO, error) {
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	mp := make(map[uint64]*dto.UserDTO, len(users))
	for _, user := range users {
		mp[user.ID] = toUserDTO(user)
	}
	return mp, nil
}

// CancelUser 注销账号，级联清理名下频道、内容、关注与投票
func (s *UserServiceImpl) CancelUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUserCascade(ctx, id)
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		CreatedAt: util.FormatTime(user.CreatedAt),
	}
}
