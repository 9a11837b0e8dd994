package model

// Complaint is an issue raised by a resident.
type Complaint struct {
	ID          int64  `json:"id"`                                                // complaints.id
	ResidentID  *int64 `json:"resident_id" validate:"omitempty,gt=0"`             // complaints.resident_id (nullable)
	Title       string `json:"title" validate:"required,notblank"`                // complaints.title
	Description string `json:"description"`                                       // complaints.description
	Category    string `json:"category"`                                          // complaints.category
	Status      string `json:"status" validate:"oneof=open in_progress resolved"` // complaints.status (open, in_progress, resolved)
	CreatedAt   string `json:"created_at"`                                        // complaints.created_at
}
