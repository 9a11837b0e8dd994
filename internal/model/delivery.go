package model

// Delivery records a parcel received at the gate for a resident.
type Delivery struct {
	ID             int64  `json:"id"`                                                            // deliveries.id
	ResidentID     *int64 `json:"resident_id" validate:"omitempty,gt=0"`                         // deliveries.resident_id (nullable)
	Courier        string `json:"courier" validate:"required,notblank"`                          // deliveries.courier
	TrackingNumber string `json:"tracking_number"`                                               // deliveries.tracking_number
	Status         string `json:"status" validate:"omitempty,oneof=received collected returned"` // deliveries.status (received, collected, returned)
	ReceivedAt     string `json:"received_at"`                                                   // deliveries.received_at
}
