package domain

// CodeOK is the envelope code the backend uses for success.
const CodeOK = 200

// Envelope is the backend's uniform response wrapper.
type Envelope[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// Page is a backend page of results.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// PageQuery carries paging and sorting parameters.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Stats is a free-form statistics object.
type Stats map[string]any
