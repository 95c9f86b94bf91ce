package dto

// PageResponse is the paginated response envelope. Page is 0-based;
// TotalElements is the number of elements on this page, not overall.
type PageResponse[T any] struct {
	Content       []T  `json:"content"`
	Page          int  `json:"page"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}
