package model

// Staff represents an employee of the society (security, maintenance,
// housekeeping and so on). Rows live in the `staff` table. There is no
// account foreign key; staff records are matched to accounts by name.
type Staff struct {
	ID          int64   `json:"id"`                                                         // staff.id
	Name        string  `json:"name" validate:"required,notblank"`                          // staff.name
	Email       string  `json:"email" validate:"omitempty,email"`                           // staff.email
	Contact     string  `json:"contact"`                                                    // staff.contact
	Position    string  `json:"position" validate:"required,notblank"`                      // staff.position
	Salary      float64 `json:"salary" validate:"gte=0"`                                    // staff.salary
	Status      string  `json:"status" validate:"omitempty,oneof=active on_leave inactive"` // staff.status (active, on_leave, inactive)
	JoiningDate string  `json:"joining_date"`                                               // staff.joining_date
}
