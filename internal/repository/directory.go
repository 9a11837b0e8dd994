package repository

import (
	"context"
	"strings"

	"github.com/harshbadhann2/society-home-connect/internal/model"
)

// Directory answers the identity lookups used to enrich a signed-in
// account: a resident is found by email, a staff member by name.
type Directory struct {
	residents *Table[model.Resident]
	staff     *Table[model.Staff]
}

func NewDirectory(s *Store) *Directory {
	return &Directory{residents: s.Residents, staff: s.Staff}
}

// ResidentByEmail returns the first resident whose email matches.
func (d *Directory) ResidentByEmail(ctx context.Context, email string) (model.Resident, error) {
	return d.residents.First(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

// StaffByName returns the first staff member with the given name. Names are
// not unique, so the lowest-sorted match wins.
func (d *Directory) StaffByName(ctx context.Context, name string) (model.Staff, error) {
	return d.staff.First(ctx, "name", strings.TrimSpace(name))
}
