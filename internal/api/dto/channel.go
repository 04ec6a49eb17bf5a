package dto

// ChannelBaseDTO 创建/更新频道请求
// 长度上限在服务层的校验链里检查，以区分 400 与 413
type ChannelBaseDTO struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// ChannelDTO 频道详情
type ChannelDTO struct {
	ID            uint64 `json:"id"`
	OwnerID       uint64 `json:"owner_id"`
	OwnerUsername string `json:"owner_username,omitempty"`
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
