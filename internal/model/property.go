package model

// Wing is a building block of the society (Wing A, Wing B ...).
type Wing struct {
	ID          int64  `json:"id"`                                // wings.id
	Name        string `json:"name" validate:"required,notblank"` // wings.name
	TotalFloors int    `json:"total_floors" validate:"gte=0"`     // wings.total_floors
	Description string `json:"description"`                       // wings.description
}

// Apartment is a unit inside a wing. The dashboard lists apartments under
// the "properties" view.
type Apartment struct {
	ID            int64  `json:"id"`                                                // apartments.id
	WingID        *int64 `json:"wing_id" validate:"omitempty,gt=0"`                 // apartments.wing_id (nullable)
	Number        string `json:"number" validate:"required,notblank"`               // apartments.number
	Floor         int    `json:"floor"`                                             // apartments.floor
	ApartmentType string `json:"apartment_type"`                                    // apartments.apartment_type (1BHK, 2BHK ...)
	Status        string `json:"status" validate:"omitempty,oneof=occupied vacant"` // apartments.status (occupied, vacant)
	ResidentID    *int64 `json:"resident_id" validate:"omitempty,gt=0"`             // apartments.resident_id (nullable)
}
