package model

import "time"

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex:uk_users_username;not null" json:"username"`
	Password  string    `gorm:"type:varchar(128);not null" json:"-"`
	Nickname  string    `gorm:"type:varchar(64)" json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
