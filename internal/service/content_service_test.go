package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentTestEnv(t *testing.T) (ContentService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewContentService(repository.NewContentRepo(db), repository.NewChannelRepo(db), repository.NewUserRepo(db))
	return svc, db
}

func TestPublishContent(t *testing.T) {
	svc, db := newContentTestEnv(t)
	owner := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")
	channel := seedChannel(t, db, owner.ID, "news")
	ctx := context.Background()

	_, err := svc.PublishContent(ctx, owner.ID, &dto.ContentCreateDTO{ChannelID: channel.ID, Body: "  "})
	assert.ErrorIs(t, err, ErrContentBodyEmpty)

	_, err = svc.PublishContent(ctx, owner.ID, &dto.ContentCreateDTO{ChannelID: 9999, Body: "post"})
	assert.ErrorIs(t, err, ErrChannelNotFound)

	// 只有频道属主能发布
	_, err = svc.PublishContent(ctx, stranger.ID, &dto.ContentCreateDTO{ChannelID: channel.ID, Body: "post"})
	assert.ErrorIs(t, err, ErrChannelNotOwner)

	created, err := svc.PublishContent(ctx, owner.ID, &dto.ContentCreateDTO{ChannelID: channel.ID, Body: "post"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.AuthorID)
	assert.Equal(t, "alice", created.AuthorNickname)
}

func TestDeleteContent(t *testing.T) {
	svc, db := newContentTestEnv(t)
	owner := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	channel := seedChannel(t, db, owner.ID, "news")
	content := seedContent(t, db, channel.ID, owner.ID, "post")
	require.NoError(t, db.Create(&model.AlertVote{VoterID: voter.ID, ContentID: content.ID, Classification: model.AlertSignalA}).Error)
	ctx := context.Background()

	err := svc.DeleteContent(ctx, voter.ID, content.ID)
	assert.ErrorIs(t, err, ErrContentNotAuthor)

	require.NoError(t, svc.DeleteContent(ctx, owner.ID, content.ID))

	// 内容删除连带清理投票
	var count int64
	db.Model(&model.Content{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.AlertVote{}).Count(&count)
	assert.Zero(t, count)

	err = svc.DeleteContent(ctx, owner.ID, content.ID)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestListContentsByChannel(t *testing.T) {
	svc, db := newContentTestEnv(t)
	owner := seedUser(t, db, "alice")
	channel := seedChannel(t, db, owner.ID, "news")
	ctx := context.Background()

	_, err := svc.ListContentsByChannel(ctx, 9999)
	assert.ErrorIs(t, err, ErrChannelNotFound)

	seedContent(t, db, channel.ID, owner.ID, "first")
	seedContent(t, db, channel.ID, owner.ID, "second")

	list, err := svc.ListContentsByChannel(ctx, channel.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, "alice", item.AuthorNickname)
	}
}
