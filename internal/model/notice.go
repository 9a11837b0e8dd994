package model

// Notice is an announcement on the society notice board.
type Notice struct {
	ID        int64  `json:"id"`                                        // notices.id
	Title     string `json:"title" validate:"required,notblank"`        // notices.title
	Content   string `json:"content" validate:"required,notblank"`      // notices.content
	PostedBy  string `json:"posted_by"`                                 // notices.posted_by
	Priority  string `json:"priority" validate:"oneof=low normal high"` // notices.priority (low, normal, high)
	CreatedAt string `json:"created_at"`                                // notices.created_at
}
