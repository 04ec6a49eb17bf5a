package dto

// FollowDTO 关注关系
type FollowDTO struct {
	FollowerID uint64 `json:"follower_id"`
	ChannelID  uint64 `json:"channel_id"`
	CreatedAt  string `json:"created_at"`
}
