package dto

// RegisterDTO 注册请求
type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=6,max=20"`
	Nickname string `json:"nickname" binding:"max=64"`
}

// CredentialDTO 登录请求
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户信息
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"created_at"`
}

// LoginResultDTO 登录结果
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
