package model

// Payment is a maintenance or utility transaction made by a resident.
type Payment struct {
	ID          int64   `json:"id"`                                                                      // payments.id
	ResidentID  *int64  `json:"resident_id" validate:"omitempty,gt=0"`                                   // payments.resident_id (nullable)
	Amount      float64 `json:"amount" validate:"gt=0"`                                                  // payments.amount
	PaymentType string  `json:"payment_type" validate:"omitempty,oneof=maintenance water parking event"` // payments.payment_type (maintenance, water, parking, event)
	Status      string  `json:"status" validate:"omitempty,oneof=paid pending overdue"`                  // payments.status (paid, pending, overdue)
	PaymentDate string  `json:"payment_date"`                                                            // payments.payment_date
	Description string  `json:"description"`                                                             // payments.description
}
