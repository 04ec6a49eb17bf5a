package model

import "time"

// Channel 用户拥有的内容频道，(owner_id, name) 唯一
type Channel struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	OwnerID     uint64    `gorm:"not null;index:idx_channels_owner_id;uniqueIndex:uk_channels_owner_name" json:"owner_id"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_channels_owner_name" json:"name"`
	DisplayName string    `gorm:"type:varchar(50)" json:"display_name"`
	Description string    `gorm:"type:varchar(140)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Channel) TableName() string {
	return "channels"
}
