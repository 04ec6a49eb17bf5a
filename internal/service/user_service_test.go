package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/security"
	"Beacon/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserTestEnv(t *testing.T) (UserService, *gorm.DB) {
	db := setupTestDB(t)
	setupTestRedis(t)
	svc := NewUserService(repository.NewUserRepo(db))
	return svc, db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newUserTestEnv(t)
	ctx := context.Background()

	err := svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	// 用户名唯一
	err = svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "other456"})
	assert.ErrorIs(t, err, ErrUserUsernameExist)

	result, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)

	claims, err := security.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "", Password: ""})
	assert.ErrorIs(t, err, ErrMissingLoginCredentials)
}

func TestLogoutDenylistsSignature(t *testing.T) {
	svc, _ := newUserTestEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret123"}))
	result, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Token))

	signature, err := security.ExtractSignature(result.Token)
	require.NoError(t, err)
	value, err := redis.GetValue(ctx, signature)
	require.NoError(t, err)
	assert.NotEmpty(t, value)
}

func TestCancelUserCascade(t *testing.T) {
	svc, db := newUserTestEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Password: "secret123"}))
	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: "bob", Password: "secret123"}))

	var alice, bob model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)
	require.NoError(t, db.Where("username = ?", "bob").First(&bob).Error)

	channel := seedChannel(t, db, alice.ID, "news")
	content := seedContent(t, db, channel.ID, alice.ID, "post")
	require.NoError(t, db.Create(&model.FollowEdge{FollowerID: bob.ID, ChannelID: channel.ID}).Error)
	require.NoError(t, db.Create(&model.AlertVote{VoterID: bob.ID, ContentID: content.ID, Classification: model.AlertSignalB}).Error)

	require.NoError(t, svc.CancelUser(ctx, alice.ID))

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&model.Channel{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Content{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.FollowEdge{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.AlertVote{}).Count(&count)
	assert.Zero(t, count)

	err := svc.CancelUser(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
