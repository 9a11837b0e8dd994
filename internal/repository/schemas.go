package repository

import (
	"database/sql"

	"github.com/harshbadhann2/society-home-connect/internal/model"
)

// Table schemas for the society collections. Column order must match the
// Fields functions.

var ResidentSchema = Schema[model.Resident]{
	Table:   "residents",
	Columns: []string{"name", "email", "contact", "apartment_number", "status"},
	OrderBy: "name",
	Fields: func(r *model.Resident) []any {
		return []any{&r.Name, &r.Email, &r.Contact, &r.ApartmentNumber, &r.Status}
	},
	ID: func(r *model.Resident) *int64 { return &r.ID },
}

var StaffSchema = Schema[model.Staff]{
	Table:   "staff",
	Columns: []string{"name", "email", "contact", "position", "salary", "status", "joining_date"},
	OrderBy: "name",
	Fields: func(s *model.Staff) []any {
		return []any{&s.Name, &s.Email, &s.Contact, &s.Position, &s.Salary, &s.Status, &s.JoiningDate}
	},
	ID: func(s *model.Staff) *int64 { return &s.ID },
}

var AmenitySchema = Schema[model.Amenity]{
	Table:   "amenities",
	Columns: []string{"name", "description", "capacity", "opening_hours", "booking_required", "status"},
	OrderBy: "name",
	Fields: func(a *model.Amenity) []any {
		return []any{&a.Name, &a.Description, &a.Capacity, &a.OpeningHours, &a.BookingRequired, &a.Status}
	},
	ID: func(a *model.Amenity) *int64 { return &a.ID },
}

var ParkingSchema = Schema[model.ParkingSpot]{
	Table:   "parking",
	Columns: []string{"spot_number", "spot_type", "status", "resident_id", "vehicle_number"},
	OrderBy: "spot_number",
	Fields: func(p *model.ParkingSpot) []any {
		return []any{&p.SpotNumber, &p.SpotType, &p.Status, &p.ResidentID, &p.VehicleNumber}
	},
	ID: func(p *model.ParkingSpot) *int64 { return &p.ID },
}

var ComplaintSchema = Schema[model.Complaint]{
	Table:    "complaints",
	Columns:  []string{"resident_id", "title", "description", "category", "status"},
	ReadOnly: []string{"created_at"},
	OrderBy:  "id DESC",
	Fields: func(c *model.Complaint) []any {
		return []any{&c.ResidentID, &c.Title, &c.Description, &c.Category, &c.Status}
	},
	ReadOnlyFields: func(c *model.Complaint) []any { return []any{&c.CreatedAt} },
	ID:             func(c *model.Complaint) *int64 { return &c.ID },
}

var NoticeSchema = Schema[model.Notice]{
	Table:    "notices",
	Columns:  []string{"title", "content", "posted_by", "priority"},
	ReadOnly: []string{"created_at"},
	OrderBy:  "id DESC",
	Fields: func(n *model.Notice) []any {
		return []any{&n.Title, &n.Content, &n.PostedBy, &n.Priority}
	},
	ReadOnlyFields: func(n *model.Notice) []any { return []any{&n.CreatedAt} },
	ID:             func(n *model.Notice) *int64 { return &n.ID },
}

var PaymentSchema = Schema[model.Payment]{
	Table:   "payments",
	Columns: []string{"resident_id", "amount", "payment_type", "status", "payment_date", "description"},
	OrderBy: "id DESC",
	Fields: func(p *model.Payment) []any {
		return []any{&p.ResidentID, &p.Amount, &p.PaymentType, &p.Status, &p.PaymentDate, &p.Description}
	},
	ID: func(p *model.Payment) *int64 { return &p.ID },
}

var DeliverySchema = Schema[model.Delivery]{
	Table:   "deliveries",
	Columns: []string{"resident_id", "courier", "tracking_number", "status", "received_at"},
	OrderBy: "id DESC",
	Fields: func(d *model.Delivery) []any {
		return []any{&d.ResidentID, &d.Courier, &d.TrackingNumber, &d.Status, &d.ReceivedAt}
	},
	ID: func(d *model.Delivery) *int64 { return &d.ID },
}

var HousekeepingSchema = Schema[model.HousekeepingTask]{
	Table:   "housekeeping",
	Columns: []string{"staff_id", "apartment_id", "task", "status", "scheduled_for"},
	OrderBy: "scheduled_for",
	Fields: func(h *model.HousekeepingTask) []any {
		return []any{&h.StaffID, &h.ApartmentID, &h.Task, &h.Status, &h.ScheduledFor}
	},
	ID: func(h *model.HousekeepingTask) *int64 { return &h.ID },
}

var WingSchema = Schema[model.Wing]{
	Table:   "wings",
	Columns: []string{"name", "total_floors", "description"},
	OrderBy: "name",
	Fields: func(w *model.Wing) []any {
		return []any{&w.Name, &w.TotalFloors, &w.Description}
	},
	ID: func(w *model.Wing) *int64 { return &w.ID },
}

var ApartmentSchema = Schema[model.Apartment]{
	Table:   "apartments",
	Columns: []string{"wing_id", "number", "floor", "apartment_type", "status", "resident_id"},
	OrderBy: "number",
	Fields: func(a *model.Apartment) []any {
		return []any{&a.WingID, &a.Number, &a.Floor, &a.ApartmentType, &a.Status, &a.ResidentID}
	},
	ID: func(a *model.Apartment) *int64 { return &a.ID },
}

// Store bundles one Table per society collection.
type Store struct {
	Residents    *Table[model.Resident]
	Staff        *Table[model.Staff]
	Amenities    *Table[model.Amenity]
	Parking      *Table[model.ParkingSpot]
	Complaints   *Table[model.Complaint]
	Notices      *Table[model.Notice]
	Payments     *Table[model.Payment]
	Deliveries   *Table[model.Delivery]
	Housekeeping *Table[model.HousekeepingTask]
	Wings        *Table[model.Wing]
	Apartments   *Table[model.Apartment]
}

// NewStore builds every collection table on top of db.
func NewStore(db *sql.DB) *Store {
	return &Store{
		Residents:    NewTable(db, ResidentSchema),
		Staff:        NewTable(db, StaffSchema),
		Amenities:    NewTable(db, AmenitySchema),
		Parking:      NewTable(db, ParkingSchema),
		Complaints:   NewTable(db, ComplaintSchema),
		Notices:      NewTable(db, NoticeSchema),
		Payments:     NewTable(db, PaymentSchema),
		Deliveries:   NewTable(db, DeliverySchema),
		Housekeeping: NewTable(db, HousekeepingSchema),
		Wings:        NewTable(db, WingSchema),
		Apartments:   NewTable(db, ApartmentSchema),
	}
}
