package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/harshbadhann2/society-home-connect/internal/model"
)

var rowValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs the validate tags of row and reports every failing field.
func check(row any) error {
	err := rowValidator.Struct(row)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	errs := make([]error, len(fields))
	for i, fe := range fields {
		errs[i] = errors.New(fieldMessage(fe))
	}
	return errors.Join(errs...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " is not valid"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		if fe.Param() == "0" {
			return field + " must not be negative"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		if strings.HasSuffix(field, "_id") {
			return field + " must be a positive id"
		}
		if fe.Param() == "0" {
			return field + " must be greater than zero"
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	}
	return field + " is invalid"
}

// Row validators trim text fields and fill defaults in place, then check
// the row's validate tags.

func validateResident(r *model.Resident) error {
	r.Name, r.Email = strings.TrimSpace(r.Name), strings.ToLower(strings.TrimSpace(r.Email))
	if r.Status == "" {
		r.Status = "owner"
	}
	return check(r)
}

func validateStaff(s *model.Staff) error {
	s.Name, s.Email = strings.TrimSpace(s.Name), strings.ToLower(strings.TrimSpace(s.Email))
	return check(s)
}

func validateAmenity(a *model.Amenity) error {
	a.Name = strings.TrimSpace(a.Name)
	return check(a)
}

func validateParking(p *model.ParkingSpot) error {
	p.SpotNumber = strings.TrimSpace(p.SpotNumber)
	return check(p)
}

func validateComplaint(c *model.Complaint) error {
	c.Title = strings.TrimSpace(c.Title)
	if c.Status == "" {
		c.Status = "open"
	}
	return check(c)
}

func validateNotice(n *model.Notice) error {
	n.Title = strings.TrimSpace(n.Title)
	if n.Priority == "" {
		n.Priority = "normal"
	}
	return check(n)
}

func validatePayment(p *model.Payment) error { return check(p) }

func validateDelivery(d *model.Delivery) error {
	d.Courier = strings.TrimSpace(d.Courier)
	return check(d)
}

func validateHousekeeping(h *model.HousekeepingTask) error {
	h.Task = strings.TrimSpace(h.Task)
	return check(h)
}

func validateWing(w *model.Wing) error {
	w.Name = strings.TrimSpace(w.Name)
	return check(w)
}

func validateApartment(a *model.Apartment) error {
	a.Number = strings.TrimSpace(a.Number)
	return check(a)
}
