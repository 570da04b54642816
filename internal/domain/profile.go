package domain

// AdminProfile is what the backend returns on administrator login.
type AdminProfile struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname,omitempty"`
	Email     string    `json:"email,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Token     string    `json:"token,omitempty"`
	LoginTime Timestamp `json:"loginTime"`
}

// StudentProfile is what the backend returns on student login.
type StudentProfile struct {
	ID            int64     `json:"id"`
	StudentNumber string    `json:"studentNumber"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	ClassName     string    `json:"className,omitempty"`
	Major         string    `json:"major,omitempty"`
	Grade         string    `json:"grade,omitempty"`
	Token         string    `json:"token,omitempty"`
	LoginTime     Timestamp `json:"loginTime"`
}

// AdminCredentials are submitted on administrator login.
type AdminCredentials struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// StudentCredentials are submitted on student login.
type StudentCredentials struct {
	StudentNumber string `json:"studentNumber"`
	Password      string `json:"password"`
}
