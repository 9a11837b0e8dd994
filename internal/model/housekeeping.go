package model

// HousekeepingTask assigns a cleaning or upkeep task to a staff member,
// optionally for a specific apartment.
type HousekeepingTask struct {
	ID           int64  `json:"id"`                                                       // housekeeping.id
	StaffID      *int64 `json:"staff_id" validate:"omitempty,gt=0"`                       // housekeeping.staff_id (nullable)
	ApartmentID  *int64 `json:"apartment_id" validate:"omitempty,gt=0"`                   // housekeeping.apartment_id (nullable)
	Task         string `json:"task" validate:"required,notblank"`                        // housekeeping.task
	Status       string `json:"status" validate:"omitempty,oneof=scheduled done skipped"` // housekeeping.status (scheduled, done, skipped)
	ScheduledFor string `json:"scheduled_for"`                                            // housekeeping.scheduled_for
}
