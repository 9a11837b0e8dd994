package auth

// Identity is the part of a profile every role shares.
type Identity struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact,omitempty"`
}

// Profile is the display-oriented view of the signed-in identity. It is a
// closed union of AdminProfile, StaffProfile and ResidentProfile; switch on
// the concrete type rather than probing fields.
type Profile interface {
	Role() Role
	Base() Identity
	profile()
}

// AdminProfile is built from session identity alone.
type AdminProfile struct {
	Identity
	Kind Role `json:"role"`
}

// StaffProfile adds the staff record's position. Position is empty when the
// staff lookup found nothing.
type StaffProfile struct {
	Identity
	Kind     Role   `json:"role"`
	Position string `json:"position,omitempty"`
}

// ResidentProfile adds the resident's apartment and occupancy status. Both
// are empty when the resident lookup found nothing.
type ResidentProfile struct {
	Identity
	Kind      Role   `json:"role"`
	Apartment string `json:"apartment,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (p AdminProfile) Role() Role        { return RoleAdmin }
func (p AdminProfile) Base() Identity    { return p.Identity }
func (AdminProfile) profile()            {}
func (p StaffProfile) Role() Role        { return RoleStaff }
func (p StaffProfile) Base() Identity    { return p.Identity }
func (StaffProfile) profile()            {}
func (p ResidentProfile) Role() Role     { return RoleResident }
func (p ResidentProfile) Base() Identity { return p.Identity }
func (ResidentProfile) profile()         {}

// minimalProfile builds the profile for role from session identity only.
func minimalProfile(role Role, id Identity) Profile {
	switch role {
	case RoleAdmin:
		return AdminProfile{Identity: id, Kind: RoleAdmin}
	case RoleStaff:
		return StaffProfile{Identity: id, Kind: RoleStaff}
	default:
		return ResidentProfile{Identity: id, Kind: RoleResident}
	}
}
