package service

import (
	"Beacon/internal/model"
	"Beacon/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAlertTestEnv(t *testing.T) (AlertService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewAlertService(repository.NewAlertRepo(db), repository.NewContentRepo(db))
	return svc, db
}

func seedContent(t *testing.T, db *gorm.DB, channelID, authorID uint64, body string) *model.Content {
	t.Helper()
	content := &model.Content{ChannelID: channelID, AuthorID: authorID, Body: body}
	require.NoError(t, db.Create(content).Error)
	return content
}

func TestCastVoteChecks(t *testing.T) {
	svc, db := newAlertTestEnv(t)
	author := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	channel := seedChannel(t, db, author.ID, "news")
	content := seedContent(t, db, channel.ID, author.ID, "post")
	ctx := context.Background()

	err := svc.CastVote(ctx, voter.ID, content.ID, "X")
	assert.ErrorIs(t, err, ErrAlertInvalidSignal)

	err = svc.CastVote(ctx, voter.ID, 9999, model.AlertSignalA)
	assert.ErrorIs(t, err, ErrContentNotFound)

	// 作者不能给自己的内容投票
	err = svc.CastVote(ctx, author.ID, content.ID, model.AlertSignalA)
	assert.ErrorIs(t, err, ErrAlertOwnContent)

	require.NoError(t, svc.CastVote(ctx, voter.ID, content.ID, model.AlertSignalA))

	// 重复投票是冲突，换方向也一样
	err = svc.CastVote(ctx, voter.ID, content.ID, model.AlertSignalA)
	assert.ErrorIs(t, err, ErrAlertExist)
	err = svc.CastVote(ctx, voter.ID, content.ID, model.AlertSignalB)
	assert.ErrorIs(t, err, ErrAlertExist)
}

func TestRetractVote(t *testing.T) {
	svc, db := newAlertTestEnv(t)
	author := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	channel := seedChannel(t, db, author.ID, "news")
	content := seedContent(t, db, channel.ID, author.ID, "post")
	ctx := context.Background()

	// 内容不存在先于投票关系报 404
	err := svc.RetractVote(ctx, voter.ID, 9999)
	assert.ErrorIs(t, err, ErrContentNotFound)

	err = svc.RetractVote(ctx, voter.ID, content.ID)
	assert.ErrorIs(t, err, ErrAlertNotExist)

	require.NoError(t, svc.CastVote(ctx, voter.ID, content.ID, model.AlertSignalB))
	require.NoError(t, svc.RetractVote(ctx, voter.ID, content.ID))

	// 撤回后可以换方向重投
	require.NoError(t, svc.CastVote(ctx, voter.ID, content.ID, model.AlertSignalA))
}

func TestComputeScore(t *testing.T) {
	svc, db := newAlertTestEnv(t)
	author := seedUser(t, db, "alice")
	channel := seedChannel(t, db, author.ID, "news")
	content := seedContent(t, db, channel.ID, author.ID, "post")
	ctx := context.Background()

	// 无投票时评分为零
	score, err := svc.ComputeScore(ctx, content.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, score.Score)

	voters := make([]*model.User, 0, 5)
	for _, name := range []string{"v1", "v2", "v3", "v4", "v5"} {
		voters = append(voters, seedUser(t, db, name))
	}
	// 3 票 A，2 票 B
	for i, voter := range voters {
		signal := model.AlertSignalA
		if i >= 3 {
			signal = model.AlertSignalB
		}
		require.NoError(t, svc.CastVote(ctx, voter.ID, content.ID, signal))
	}

	score, err = svc.ComputeScore(ctx, content.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, score.Score)

	// 撤回一张 A 票后实时重算
	require.NoError(t, svc.RetractVote(ctx, voters[0].ID, content.ID))
	score, err = svc.ComputeScore(ctx, content.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, score.Score)

	_, err = svc.ComputeScore(ctx, 9999)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestListVotesByContent(t *testing.T) {
	svc, db := newAlertTestEnv(t)
	author := seedUser(t, db, "alice")
	voter := seedUser(t, db, "bob")
	channel := seedChannel(t, db, author.ID, "news")
	content := seedContent(t, db, channel.ID, author.ID, "post")
	ctx := context.Background()

	require.NoError(t, svc.CastVote(ctx, voter.ID, content.ID, model.AlertSignalB))

	votes, err := svc.ListVotesByContent(ctx, content.ID)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, voter.ID, votes[0].VoterID)
	assert.Equal(t, model.AlertSignalB, votes[0].Classification)

	_, err = svc.ListVotesByContent(ctx, 9999)
	assert.ErrorIs(t, err, ErrContentNotFound)
}
