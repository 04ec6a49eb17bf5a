package repository

import (
	"Beacon/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Channel{},
		&model.Content{},
		&model.FollowEdge{},
		&model.AlertVote{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestAlertRepoVoteRoundTrip(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewAlertRepo(db)
	ctx := context.Background()

	vote, err := repo.GetVote(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, vote)

	require.NoError(t, repo.CreateVote(ctx, &model.AlertVote{VoterID: 1, ContentID: 2, Classification: model.AlertSignalA}))

	vote, err = repo.GetVote(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, vote)
	assert.Equal(t, model.AlertSignalA, vote.Classification)

	require.NoError(t, repo.DeleteVote(ctx, 1, 2))
	vote, err = repo.GetVote(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, vote)
}

func TestAlertRepoCountByClassification(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewAlertRepo(db)
	ctx := context.Background()

	content := &model.Content{ChannelID: 1, AuthorID: 1, Body: "post"}
	require.NoError(t, db.Create(content).Error)

	for voter := uint64(1); voter <= 3; voter++ {
		require.NoError(t, repo.CreateVote(ctx, &model.AlertVote{VoterID: voter, ContentID: content.ID, Classification: model.AlertSignalA}))
	}
	require.NoError(t, repo.CreateVote(ctx, &model.AlertVote{VoterID: 4, ContentID: content.ID, Classification: model.AlertSignalB}))

	countA, err := repo.CountByClassification(ctx, content.ID, model.AlertSignalA)
	require.NoError(t, err)
	assert.EqualValues(t, 3, countA)
	countB, err := repo.CountByClassification(ctx, content.ID, model.AlertSignalB)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countB)
}

func TestDeleteOrphanVotes(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewAlertRepo(db)
	ctx := context.Background()

	alive := &model.Content{ChannelID: 1, AuthorID: 1, Body: "alive"}
	require.NoError(t, db.Create(alive).Error)

	require.NoError(t, repo.CreateVote(ctx, &model.AlertVote{VoterID: 1, ContentID: alive.ID, Classification: model.AlertSignalA}))
	// 指向不存在内容的孤儿票
	require.NoError(t, repo.CreateVote(ctx, &model.AlertVote{VoterID: 1, ContentID: 9999, Classification: model.AlertSignalB}))
	require.NoError(t, repo.CreateVote(ctx, &model.AlertVote{VoterID: 2, ContentID: 8888, Classification: model.AlertSignalB}))

	deleted, err := repo.DeleteOrphanVotes(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	var count int64
	db.Model(&model.AlertVote{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// 幂等：再跑一次没有可删的
	deleted, err = repo.DeleteOrphanVotes(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
