package kafka

import (
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	redisv9 "github.com/redis/go-redis/v9"
)

// FollowEdgesHandler 消费 follow_edges 表的 Canal 变更，
// 维护频道粉丝集合与双端计数缓存
type FollowEdgesHandler struct {
}

func NewFollowEdgesHandler() *FollowEdgesHandler {
	return &FollowEdgesHandler{}
}

func (s *FollowEdgesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("follow edges consumer setup")
	return nil
}

func (s *FollowEdgesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("follow edges consumer cleanup")
	return nil
}

func (s *FollowEdgesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-follow-edges consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-follow-edges process batch error", "err", err)
		return err
	}
	log.Info("topic-follow-edges consume claim end")
	return nil
}

func (s *FollowEdgesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "follow_edges")
	if err != nil || canalMsg == nil {
		return nil
	}

	rdb := redis.GetRdbClient()
	pipe := rdb.Pipeline()

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		channelID := StrToUint64(row["channel_id"])

		fdrKey := consts.ChannelFollowerKey + strconv.FormatUint(channelID, 10)
		fdrCountKey := consts.ChannelFollowerCountKey + strconv.FormatUint(channelID, 10)

		// 计数键只失效不增减，由读路径回源回填，避免与服务端失效写并发漂移
		if canalMsg.Type == INSERT {
			now := float64(time.Now().Unix())
			pipe.ZAdd(ctx, fdrKey, redisv9.Z{Score: now, Member: followerID})
			pipe.ZRemRangeByRank(ctx, fdrKey, 0, -1001)
			pipe.Del(ctx, fdrCountKey)
		} else if canalMsg.Type == DELETE {
			pipe.ZRem(ctx, fdrKey, followerID)
			pipe.Del(ctx, fdrCountKey)
		}
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}

	return nil
}
