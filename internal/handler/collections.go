package handler

import (
	"log/slog"

	"github.com/harshbadhann2/society-home-connect/internal/fallback"
	"github.com/harshbadhann2/society-home-connect/internal/model"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
	"github.com/harshbadhann2/society-home-connect/internal/sample"
)

// Views holds the handler of every collection view.
type Views struct {
	Residents    *Collection[model.Resident]
	Staff        *Collection[model.Staff]
	Amenities    *Collection[model.Amenity]
	Parking      *Collection[model.ParkingSpot]
	Complaints   *Collection[model.Complaint]
	Notices      *Collection[model.Notice]
	Payments     *Collection[model.Payment]
	Deliveries   *Collection[model.Delivery]
	Housekeeping *Collection[model.HousekeepingTask]
	Wings        *Collection[model.Wing]
	Properties   *Collection[model.Apartment]
}

// NewViews wires each collection to its table, sample dataset and
// validator.
func NewViews(s *repository.Store, rep fallback.Reporter, cache Invalidator, logger *slog.Logger) *Views {
	return &Views{
		Residents:    newCollection("residents", s.Residents, sample.Residents, validateResident, rep, cache, logger),
		Staff:        newCollection("staff", s.Staff, sample.Staff, validateStaff, rep, cache, logger),
		Amenities:    newCollection("amenities", s.Amenities, sample.Amenities, validateAmenity, rep, cache, logger),
		Parking:      newCollection("parking", s.Parking, sample.Parking, validateParking, rep, cache, logger),
		Complaints:   newCollection("complaints", s.Complaints, sample.Complaints, validateComplaint, rep, cache, logger),
		Notices:      newCollection("notices", s.Notices, sample.Notices, validateNotice, rep, cache, logger),
		Payments:     newCollection("payments", s.Payments, sample.Payments, validatePayment, rep, cache, logger),
		Deliveries:   newCollection("deliveries", s.Deliveries, sample.Deliveries, validateDelivery, rep, cache, logger),
		Housekeeping: newCollection("housekeeping", s.Housekeeping, sample.Housekeeping, validateHousekeeping, rep, cache, logger),
		Wings:        newCollection("wings", s.Wings, sample.Wings, validateWing, rep, cache, logger),
		Properties:   newCollection("properties", s.Apartments, sample.Apartments, validateApartment, rep, cache, logger),
	}
}

func newCollection[T any](view string, rows Rows[T], smp func() []T, validate func(*T) error, rep fallback.Reporter, cache Invalidator, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{
		View:     view,
		Route:    "/" + view,
		Rows:     rows,
		Sample:   smp,
		Validate: validate,
		Reporter: rep,
		Cache:    cache,
		Log:      logger,
	}
}

// Counters returns the dashboard counter of every view.
func (v *Views) Counters() []Counter {
	return []Counter{
		counterOf(v.Residents),
		counterOf(v.Staff),
		counterOf(v.Amenities),
		counterOf(v.Parking),
		counterOf(v.Complaints),
		counterOf(v.Notices),
		counterOf(v.Payments),
		counterOf(v.Deliveries),
		counterOf(v.Housekeeping),
		counterOf(v.Wings),
		counterOf(v.Properties),
	}
}

func counterOf[T any](h *Collection[T]) Counter {
	return NewCounter(h.View, h.Route, h.Rows, h.Sample)
}
