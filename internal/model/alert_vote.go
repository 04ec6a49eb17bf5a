package model

import "time"

const (
	// AlertSignalA 正向分类票
	AlertSignalA = "A"
	// AlertSignalB 负向分类票
	AlertSignalB = "B"
)

// AlertVote 单用户对单条内容的二值分类投票，复合主键保证 (voter, content) 唯一
// UpdatedAt 仅随建立写入，重复投票按冲突拒绝而不是原地修改
type AlertVote struct {
	VoterID        uint64    `gorm:"primaryKey" json:"voter_id"`
	ContentID      uint64    `gorm:"primaryKey;index:idx_alert_votes_content_id" json:"content_id"`
	Classification string    `gorm:"type:varchar(1);not null" json:"classification"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (AlertVote) TableName() string {
	return "alert_votes"
}
