package dto

// AlertCastDTO 投票请求
type AlertCastDTO struct {
	Classification string `json:"classification" binding:"required,oneof=A B"`
}

// AlertDTO 投票详情
type AlertDTO struct {
	VoterID        uint64 `json:"voter_id"`
	ContentID      uint64 `json:"content_id"`
	Classification string `json:"classification"`
	CreatedAt      string `json:"created_at"`
}

// ScoreDTO 内容的社区风险评分
type ScoreDTO struct {
	ContentID uint64 `json:"content_id"`
	Score     int64  `json:"score"`
}
