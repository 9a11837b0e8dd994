package model

// ParkingSpot is a numbered parking slot. ResidentID is nil while the spot is
// unassigned; assignment does not check that the resident exists.
type ParkingSpot struct {
	ID            int64  `json:"id"`                                                            // parking.id
	SpotNumber    string `json:"spot_number" validate:"required,notblank"`                      // parking.spot_number
	SpotType      string `json:"spot_type" validate:"omitempty,oneof=car two_wheeler visitor"`  // parking.spot_type (car, two_wheeler, visitor)
	Status        string `json:"status" validate:"omitempty,oneof=available occupied reserved"` // parking.status (available, occupied, reserved)
	ResidentID    *int64 `json:"resident_id" validate:"omitempty,gt=0"`                         // parking.resident_id (nullable)
	VehicleNumber string `json:"vehicle_number"`                                                // parking.vehicle_number
}
