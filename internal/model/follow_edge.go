package model

import "time"

// FollowEdge 关注关系，复合主键保证 (follower, channel) 唯一
type FollowEdge struct {
	FollowerID uint64    `gorm:"primaryKey" json:"follower_id"`
	ChannelID  uint64    `gorm:"primaryKey;index:idx_follow_edges_channel_id" json:"channel_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (FollowEdge) TableName() string {
	return "follow_edges"
}
