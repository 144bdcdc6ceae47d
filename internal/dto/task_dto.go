package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// EditTaskRequest may only grow the contributor set; removal has no path.
type EditTaskRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Contributors []string `json:"contributors"`
}

type TaskResponse struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Deadline     time.Time   `json:"deadline"`
	Status       string      `json:"status"`
	Creator      uuid.UUID   `json:"creator"`
	Contributors []uuid.UUID `json:"contributors"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
