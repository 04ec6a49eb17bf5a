package model

import "time"

type Content struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ChannelID uint64    `gorm:"not null;index:idx_contents_channel_id" json:"channel_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_contents_author_id" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}
