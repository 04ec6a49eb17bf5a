package kafka

import (
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/redis"
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKafkaTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	return mr
}

func canalMsg(table, opType, rowJSON string) *sarama.ConsumerMessage {
	value := `{"database":"beacon","table":"` + table + `","type":"` + opType + `","data":[` + rowJSON + `]}`
	return &sarama.ConsumerMessage{Value: []byte(value)}
}

func TestToCanalMessage(t *testing.T) {
	msg := canalMsg("follow_edges", INSERT, `{"follower_id":"7","channel_id":"3"}`)
	parsed, err := ToCanalMessage(msg, "follow_edges")
	require.NoError(t, err)
	assert.Equal(t, INSERT, parsed.Type)
	assert.Len(t, parsed.Data, 1)

	// 表名不匹配
	_, err = ToCanalMessage(msg, "users")
	assert.Error(t, err)

	// 空数据
	empty := &sarama.ConsumerMessage{Value: []byte(`{"table":"follow_edges","type":"INSERT","data":[]}`)}
	_, err = ToCanalMessage(empty, "follow_edges")
	assert.Error(t, err)

	// 非法 JSON
	bad := &sarama.ConsumerMessage{Value: []byte(`{not json`)}
	_, err = ToCanalMessage(bad, "follow_edges")
	assert.Error(t, err)
}

func TestFollowEdgesHandlerLogic(t *testing.T) {
	mr := setupKafkaTestRedis(t)
	handler := NewFollowEdgesHandler()
	ctx := context.Background()

	// 预置一个过期的计数缓存，变更到达后应只被失效，不被增减
	require.NoError(t, mr.Set(consts.ChannelFollowerCountKey+"3", "41"))

	err := handler.logic(ctx, canalMsg("follow_edges", INSERT, `{"follower_id":"7","channel_id":"3"}`))
	require.NoError(t, err)

	assert.False(t, mr.Exists(consts.ChannelFollowerCountKey+"3"))
	members, err := mr.ZMembers(consts.ChannelFollowerKey + "3")
	require.NoError(t, err)
	assert.Contains(t, members, "7")

	require.NoError(t, mr.Set(consts.ChannelFollowerCountKey+"3", "42"))

	err = handler.logic(ctx, canalMsg("follow_edges", DELETE, `{"follower_id":"7","channel_id":"3"}`))
	require.NoError(t, err)

	assert.False(t, mr.Exists(consts.ChannelFollowerCountKey+"3"))
	members, err = mr.ZMembers(consts.ChannelFollowerKey + "3")
	if err == nil {
		assert.NotContains(t, members, "7")
	}
}

func TestFollowEdgesHandlerIgnoresOtherTables(t *testing.T) {
	setupKafkaTestRedis(t)
	handler := NewFollowEdgesHandler()

	// 其他表的变更直接放行，不报错不重试
	err := handler.logic(context.Background(), canalMsg("users", INSERT, `{"id":"1"}`))
	assert.NoError(t, err)
}
