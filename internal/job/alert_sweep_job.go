package job

import (
	"Beacon/internal/pkg/logger"
	"Beacon/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// AlertSweepJob 定期清理指向已删除内容的残留投票
// 级联删除正常情况下不会留下孤儿，这里兜底处理历史数据与异常中断
type AlertSweepJob struct {
	alertRepo repository.AlertRepo
}

func NewAlertSweepJob(alertRepo repository.AlertRepo) *AlertSweepJob {
	return &AlertSweepJob{
		alertRepo: alertRepo,
	}
}

func (s *AlertSweepJob) Run() {
	traceID := "job-alert-sweep-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	deleted, err := s.alertRepo.DeleteOrphanVotes(ctx)
	if err != nil {
		log.ErrorContext(ctx, "sweep orphan votes error", "err", err)
		return
	}

	log.InfoContext(ctx, "AlertSweepJob finished", "deleted", deleted)
}
