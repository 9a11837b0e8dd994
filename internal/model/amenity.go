package model

// Amenity is a shared facility such as the clubhouse or swimming pool.
type Amenity struct {
	ID              int64  `json:"id"`                                                             // amenities.id
	Name            string `json:"name" validate:"required,notblank"`                              // amenities.name
	Description     string `json:"description"`                                                    // amenities.description
	Capacity        int    `json:"capacity" validate:"gte=0"`                                      // amenities.capacity
	OpeningHours    string `json:"opening_hours"`                                                  // amenities.opening_hours
	BookingRequired bool   `json:"booking_required"`                                               // amenities.booking_required
	Status          string `json:"status" validate:"omitempty,oneof=available maintenance closed"` // amenities.status (available, maintenance, closed)
}
