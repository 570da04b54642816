package domain

// Student is a student account as seen by administrators.
type Student struct {
	ID            int64     `json:"id"`
	StudentNumber string    `json:"studentNumber"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	ClassName     string    `json:"className,omitempty"`
	Major         string    `json:"major,omitempty"`
	Grade         string    `json:"grade,omitempty"`
	Status        int       `json:"status"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// StudentStatistics summarises the student population.
type StudentStatistics struct {
	TotalStudents    int64 `json:"totalStudents"`
	ActiveStudents   int64 `json:"activeStudents"`
	InactiveStudents int64 `json:"inactiveStudents"`
}
