package kafka

import (
	"Beacon/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	followEdgesConsumer sarama.ConsumerGroup
	followEdgesHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	followEdgesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaFollowConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	followEdgesHandler := NewFollowEdgesHandler()

	return &ConsumerManager{
		followEdgesConsumer: followEdgesConsumer,
		followEdgesHandler:  followEdgesHandler,
	}, nil
}

// Start 启动所有消费者，阻塞到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaFollowConsumer.Topic
		log.Info("Follow edges consumer started", "topic", topic)
		for {
			if err := m.followEdgesConsumer.Consume(ctx, []string{topic}, m.followEdgesHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	err := m.followEdgesConsumer.Close()
	if err != nil {
		log.Error("Failed to close follow edges consumer", "err", err)
	}

	return nil
}
