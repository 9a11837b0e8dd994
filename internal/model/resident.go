package model

// Resident represents a person living in the society. It corresponds to a
// row in the `residents` table. Email is the key the dashboard uses to find
// the resident record behind a signed-in account.
type Resident struct {
	ID              int64  `json:"id"`                                                      // residents.id
	Name            string `json:"name" validate:"required,notblank"`                       // residents.name
	Email           string `json:"email" validate:"omitempty,email"`                        // residents.email
	Contact         string `json:"contact"`                                                 // residents.contact
	ApartmentNumber string `json:"apartment_number"`                                        // residents.apartment_number
	Status          string `json:"status" validate:"omitempty,oneof=owner tenant inactive"` // residents.status (owner, tenant, inactive)
}
