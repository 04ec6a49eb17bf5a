package dto

// ContentCreateDTO 发布内容请求
type ContentCreateDTO struct {
	ChannelID uint64 `json:"channel_id" binding:"required"`
	Body      string `json:"body" binding:"required"`
}

// ContentDTO 内容详情，作者昵称由聚合时显式回填
type ContentDTO struct {
	ID             uint64 `json:"id"`
	ChannelID      uint64 `json:"channel_id"`
	AuthorID       uint64 `json:"author_id"`
	AuthorNickname string `json:"author_nickname,omitempty"`
	Body           string `json:"body"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// FeedDTO 聚合信息流
type FeedDTO struct {
	Items []*ContentDTO `json:"items"`
}
