package service

import (
	"Beacon/internal/model"
	"Beacon/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedTestEnv(t *testing.T) (FeedService, *gorm.DB) {
	db := setupTestDB(t)
	setupTestConfig(t)
	svc := NewFeedService(repository.NewFollowRepo(db), repository.NewContentRepo(db), repository.NewUserRepo(db))
	return svc, db
}

func seedContentAt(t *testing.T, db *gorm.DB, channelID, authorID uint64, body string, at time.Time) *model.Content {
	t.Helper()
	content := &model.Content{
		ChannelID: channelID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, db.Create(content).Error)
	return content
}

func TestGetFeedEmpty(t *testing.T) {
	svc, db := newFeedTestEnv(t)
	reader := seedUser(t, db, "reader")

	feed, err := svc.GetFeed(context.Background(), reader.ID)
	require.NoError(t, err)
	assert.NotNil(t, feed.Items)
	assert.Empty(t, feed.Items)
}

func TestGetFeedMembership(t *testing.T) {
	svc, db := newFeedTestEnv(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	reader := seedUser(t, db, "reader")

	followed := seedChannel(t, db, alice.ID, "followed")
	ignored := seedChannel(t, db, bob.ID, "ignored")
	require.NoError(t, db.Create(&model.FollowEdge{FollowerID: reader.ID, ChannelID: followed.ID}).Error)

	now := time.Now().Truncate(time.Second)
	seedContentAt(t, db, followed.ID, alice.ID, "in feed", now)
	seedContentAt(t, db, ignored.ID, bob.ID, "not in feed", now)

	feed, err := svc.GetFeed(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "in feed", feed.Items[0].Body)
	assert.Equal(t, "alice", feed.Items[0].AuthorNickname)
}

func TestGetFeedOrdering(t *testing.T) {
	svc, db := newFeedTestEnv(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	reader := seedUser(t, db, "reader")

	ch1 := seedChannel(t, db, alice.ID, "one")
	ch2 := seedChannel(t, db, bob.ID, "two")
	require.NoError(t, db.Create(&model.FollowEdge{FollowerID: reader.ID, ChannelID: ch1.ID}).Error)
	require.NoError(t, db.Create(&model.FollowEdge{FollowerID: reader.ID, ChannelID: ch2.ID}).Error)

	base := time.Now().Truncate(time.Second)
	oldest := seedContentAt(t, db, ch1.ID, alice.ID, "oldest", base.Add(-2*time.Hour))
	tieA := seedContentAt(t, db, ch1.ID, alice.ID, "tie-a", base.Add(-time.Hour))
	tieB := seedContentAt(t, db, ch2.ID, bob.ID, "tie-b", base.Add(-time.Hour))
	newest := seedContentAt(t, db, ch2.ID, bob.ID, "newest", base)

	feed, err := svc.GetFeed(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Len(t, feed.Items, 4)

	// 更新时间倒序，时间相同时 ID 小者在前
	assert.Equal(t, newest.ID, feed.Items[0].ID)
	if tieA.ID < tieB.ID {
		assert.Equal(t, tieA.ID, feed.Items[1].ID)
		assert.Equal(t, tieB.ID, feed.Items[2].ID)
	} else {
		assert.Equal(t, tieB.ID, feed.Items[1].ID)
		assert.Equal(t, tieA.ID, feed.Items[2].ID)
	}
	assert.Equal(t, oldest.ID, feed.Items[3].ID)
}

// brokenChannelContentRepo 指定频道拉取必败，其余委托真实仓储
type brokenChannelContentRepo struct {
	repository.ContentRepo
	brokenChannelID uint64
}

func (s *brokenChannelContentRepo) ListContentsByChannel(ctx context.Context, channelID uint64) ([]*model.Content, error) {
	if channelID == s.brokenChannelID {
		return nil, errors.New("storage unavailable")
	}
	return s.ContentRepo.ListContentsByChannel(ctx, channelID)
}

func TestGetFeedDegradesOnChannelFetchError(t *testing.T) {
	db := setupTestDB(t)
	setupTestConfig(t)
	alice := seedUser(t, db, "alice")
	reader := seedUser(t, db, "reader")

	healthy := seedChannel(t, db, alice.ID, "healthy")
	broken := seedChannel(t, db, alice.ID, "broken")
	require.NoError(t, db.Create(&model.FollowEdge{FollowerID: reader.ID, ChannelID: healthy.ID}).Error)
	require.NoError(t, db.Create(&model.FollowEdge{FollowerID: reader.ID, ChannelID: broken.ID}).Error)

	now := time.Now().Truncate(time.Second)
	seedContentAt(t, db, healthy.ID, alice.ID, "still served", now)
	seedContentAt(t, db, broken.ID, alice.ID, "lost to outage", now)

	contentRepo := &brokenChannelContentRepo{
		ContentRepo:     repository.NewContentRepo(db),
		brokenChannelID: broken.ID,
	}
	svc := NewFeedService(repository.NewFollowRepo(db), contentRepo, repository.NewUserRepo(db))

	// 单频道故障只丢该频道的内容，整条流仍然成功
	feed, err := svc.GetFeed(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "still served", feed.Items[0].Body)
}

func TestGetFeedManyChannels(t *testing.T) {
	svc, db := newFeedTestEnv(t)
	alice := seedUser(t, db, "alice")
	reader := seedUser(t, db, "reader")

	// 频道数量超过扇出上限，验证限流下依然聚合完整
	base := time.Now().Truncate(time.Second)
	total := 0
	for i := 0; i < 10; i++ {
		channel := seedChannel(t, db, alice.ID, "ch"+string(rune('a'+i)))
		require.NoError(t, db.Create(&model.FollowEdge{FollowerID: reader.ID, ChannelID: channel.ID}).Error)
		seedContentAt(t, db, channel.ID, alice.ID, "post", base.Add(time.Duration(i)*time.Minute))
		total++
	}

	feed, err := svc.GetFeed(context.Background(), reader.ID)
	require.NoError(t, err)
	assert.Len(t, feed.Items, total)
	for i := 1; i < len(feed.Items); i++ {
		assert.True(t, feed.Items[i-1].UpdatedAt >= feed.Items[i].UpdatedAt)
	}
}
