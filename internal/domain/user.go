package domain

// User is an administrator account.
type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Nickname      string    `json:"nickname,omitempty"`
	Email         string    `json:"email,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	Status        int       `json:"status"`
	LastLoginTime Timestamp `json:"lastLoginTime"`
	CreatedTime   Timestamp `json:"createdTime"`
	UpdatedTime   Timestamp `json:"updatedTime"`
}
