// Package sample holds the hand-authored records the dashboard shows when
// the backend cannot answer. Every function builds a new slice, so callers
// may modify what they get without affecting later reads.
package sample

import "github.com/harshbadhann2/society-home-connect/internal/model"

func ref(v int64) *int64 { return &v }

func Residents() []model.Resident {
	return []model.Resident{
		{ID: 1, Name: "Aarav Sharma", Email: "aarav.sharma@example.com", Contact: "+91 98200 11001", ApartmentNumber: "A-101", Status: "owner"},
		{ID: 2, Name: "Priya Nair", Email: "priya.nair@example.com", Contact: "+91 98200 11002", ApartmentNumber: "A-204", Status: "tenant"},
		{ID: 3, Name: "Rohan Mehta", Email: "rohan.mehta@example.com", Contact: "+91 98200 11003", ApartmentNumber: "B-302", Status: "owner"},
		{ID: 4, Name: "Sneha Kulkarni", Email: "sneha.k@example.com", Contact: "+91 98200 11004", ApartmentNumber: "B-105", Status: "tenant"},
		{ID: 5, Name: "Vikram Iyer", Email: "vikram.iyer@example.com", Contact: "+91 98200 11005", ApartmentNumber: "C-401", Status: "inactive"},
	}
}

func Staff() []model.Staff {
	return []model.Staff{
		{ID: 1, Name: "Ramesh Yadav", Email: "ramesh@society.example.com", Contact: "+91 99300 22001", Position: "Security Supervisor", Salary: 28000, Status: "active", JoiningDate: "2021-04-01"},
		{ID: 2, Name: "Sunita Devi", Email: "sunita@society.example.com", Contact: "+91 99300 22002", Position: "Housekeeping", Salary: 18000, Status: "active", JoiningDate: "2022-01-15"},
		{ID: 3, Name: "Manoj Patil", Email: "manoj@society.example.com", Contact: "+91 99300 22003", Position: "Electrician", Salary: 24000, Status: "on_leave", JoiningDate: "2020-08-10"},
		{ID: 4, Name: "Anita Desai", Email: "anita@society.example.com", Contact: "+91 99300 22004", Position: "Society Manager", Salary: 45000, Status: "active", JoiningDate: "2019-06-20"},
	}
}

func Amenities() []model.Amenity {
	return []model.Amenity{
		{ID: 1, Name: "Clubhouse", Description: "Party hall with kitchenette", Capacity: 80, OpeningHours: "08:00-22:00", BookingRequired: true, Status: "available"},
		{ID: 2, Name: "Swimming Pool", Description: "Outdoor pool with kids section", Capacity: 30, OpeningHours: "06:00-20:00", BookingRequired: false, Status: "maintenance"},
		{ID: 3, Name: "Gymnasium", Description: "Cardio and weights", Capacity: 20, OpeningHours: "05:30-22:30", BookingRequired: false, Status: "available"},
		{ID: 4, Name: "Badminton Court", Description: "Indoor synthetic court", Capacity: 4, OpeningHours: "06:00-21:00", BookingRequired: true, Status: "available"},
	}
}

func Parking() []model.ParkingSpot {
	return []model.ParkingSpot{
		{ID: 1, SpotNumber: "P-01", SpotType: "car", Status: "occupied", ResidentID: ref(1), VehicleNumber: "MH 12 AB 1234"},
		{ID: 2, SpotNumber: "P-02", SpotType: "car", Status: "occupied", ResidentID: ref(3), VehicleNumber: "MH 14 CD 5678"},
		{ID: 3, SpotNumber: "P-03", SpotType: "two_wheeler", Status: "available"},
		{ID: 4, SpotNumber: "V-01", SpotType: "visitor", Status: "reserved"},
	}
}

func Complaints() []model.Complaint {
	return []model.Complaint{
		{ID: 3, ResidentID: ref(4), Title: "Lift not working", Description: "Wing B lift stuck on 3rd floor since morning", Category: "maintenance", Status: "open", CreatedAt: "2024-03-18 09:15:00"},
		{ID: 2, ResidentID: ref(2), Title: "Water leakage", Description: "Seepage in bathroom ceiling", Category: "plumbing", Status: "in_progress", CreatedAt: "2024-03-12 18:40:00"},
		{ID: 1, ResidentID: ref(1), Title: "Street light off", Description: "Light near gate 2 not working", Category: "electrical", Status: "resolved", CreatedAt: "2024-03-02 21:05:00"},
	}
}

func Notices() []model.Notice {
	return []model.Notice{
		{ID: 3, Title: "Annual General Meeting", Content: "AGM in the clubhouse on Sunday at 11 AM. All owners are requested to attend.", PostedBy: "Committee", Priority: "high", CreatedAt: "2024-03-20 10:00:00"},
		{ID: 2, Title: "Water supply interruption", Content: "Tank cleaning on Thursday between 10 AM and 2 PM.", PostedBy: "Society Manager", Priority: "normal", CreatedAt: "2024-03-15 08:30:00"},
		{ID: 1, Title: "Holi celebration", Content: "Join us in the central lawn for Holi festivities.", PostedBy: "Cultural Committee", Priority: "low", CreatedAt: "2024-03-01 17:00:00"},
	}
}

func Payments() []model.Payment {
	return []model.Payment{
		{ID: 1, ResidentID: ref(1), Amount: 3500, PaymentType: "maintenance", Status: "paid", PaymentDate: "2024-03-05", Description: "March maintenance"},
		{ID: 2, ResidentID: ref(2), Amount: 3500, PaymentType: "maintenance", Status: "pending", PaymentDate: "2024-03-10", Description: "March maintenance"},
		{ID: 3, ResidentID: ref(3), Amount: 650, PaymentType: "water", Status: "overdue", PaymentDate: "2024-02-28", Description: "February water charges"},
		{ID: 4, ResidentID: ref(1), Amount: 1000, PaymentType: "parking", Status: "paid", PaymentDate: "2024-03-05", Description: "Quarterly parking fee"},
	}
}

func Deliveries() []model.Delivery {
	return []model.Delivery{
		{ID: 1, ResidentID: ref(2), Courier: "BlueDart", TrackingNumber: "BD123456789IN", Status: "received", ReceivedAt: "2024-03-19 14:20:00"},
		{ID: 2, ResidentID: ref(3), Courier: "Delhivery", TrackingNumber: "DL987654321", Status: "collected", ReceivedAt: "2024-03-18 11:05:00"},
		{ID: 3, ResidentID: ref(1), Courier: "Amazon", TrackingNumber: "AMZ-55512", Status: "received", ReceivedAt: "2024-03-19 16:45:00"},
	}
}

func Housekeeping() []model.HousekeepingTask {
	return []model.HousekeepingTask{
		{ID: 1, StaffID: ref(2), Task: "Clean Wing A lobby", Status: "done", ScheduledFor: "2024-03-19"},
		{ID: 2, StaffID: ref(2), ApartmentID: ref(4), Task: "Deep clean vacant flat B-105", Status: "scheduled", ScheduledFor: "2024-03-21"},
		{ID: 3, StaffID: ref(3), Task: "Replace corridor bulbs, Wing C", Status: "skipped", ScheduledFor: "2024-03-18"},
	}
}

func Wings() []model.Wing {
	return []model.Wing{
		{ID: 1, Name: "Wing A", TotalFloors: 7, Description: "Garden facing"},
		{ID: 2, Name: "Wing B", TotalFloors: 7, Description: "Near the clubhouse"},
		{ID: 3, Name: "Wing C", TotalFloors: 10, Description: "Road facing, newest block"},
	}
}

func Apartments() []model.Apartment {
	return []model.Apartment{
		{ID: 1, WingID: ref(1), Number: "A-101", Floor: 1, ApartmentType: "2BHK", Status: "occupied", ResidentID: ref(1)},
		{ID: 2, WingID: ref(1), Number: "A-204", Floor: 2, ApartmentType: "1BHK", Status: "occupied", ResidentID: ref(2)},
		{ID: 3, WingID: ref(2), Number: "B-302", Floor: 3, ApartmentType: "3BHK", Status: "occupied", ResidentID: ref(3)},
		{ID: 4, WingID: ref(2), Number: "B-105", Floor: 1, ApartmentType: "2BHK", Status: "vacant"},
		{ID: 5, WingID: ref(3), Number: "C-401", Floor: 4, ApartmentType: "3BHK", Status: "occupied", ResidentID: ref(5)},
	}
}
