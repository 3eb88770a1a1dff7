package dto

// DeadlineLayout is the ISO local date-time used on the wire. Seconds are
// optional on input.
const DeadlineLayout = "2006-01-02T15:04"

type TaskItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Deadline    string  `json:"deadline"`
	CategoryID  uint64  `json:"categoryId"`
	Author      string  `json:"author"`
}

// TaskRequest is the body of POST and PUT /tasks. There is no author field:
// one sent by the client is dropped by the decoder.
type TaskRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Deadline    string  `json:"deadline" binding:"required"`
	CategoryID  *uint64 `json:"categoryId" binding:"required,gt=0,max=9223372036854775807"`
}

type TaskSearchQuery struct {
	Author      *string
	Name        *string
	Description *string
	Deadline    *string
	Category    *string
}
