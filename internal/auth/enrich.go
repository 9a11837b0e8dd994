package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/harshbadhann2/society-home-connect/internal/model"
	"github.com/harshbadhann2/society-home-connect/internal/session"
)

// Directory finds the domain record behind an account.
type Directory interface {
	ResidentByEmail(ctx context.Context, email string) (model.Resident, error)
	StaffByName(ctx context.Context, name string) (model.Staff, error)
}

// Enricher builds a Profile for a session and its resolved role.
type Enricher struct {
	dir Directory
	log *slog.Logger
}

func NewEnricher(dir Directory, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{dir: dir, log: logger.With("component", "enricher")}
}

// Enrich returns the profile for s under role. Admins get a profile built
// from the session alone. Residents are looked up by email and staff by
// name, exactly once each; when the lookup fails for any reason the
// profile carries only the session's name and email. Enrich never fails.
func (e *Enricher) Enrich(ctx context.Context, s *session.Session, role Role) Profile {
	if s == nil {
		return nil
	}
	id := sessionIdentity(s)
	if !role.Valid() {
		role = DefaultRole
	}

	switch role {
	case RoleStaff:
		st, err := e.dir.StaffByName(ctx, id.Name)
		if err != nil {
			e.log.Debug("staff lookup failed, using session identity", "name", id.Name, "err", err)
			return minimalProfile(RoleStaff, id)
		}
		return StaffProfile{
			Identity: Identity{ID: st.ID, Name: st.Name, Email: firstNonEmpty(st.Email, id.Email), Contact: firstNonEmpty(st.Contact, id.Contact)},
			Kind:     RoleStaff,
			Position: st.Position,
		}
	case RoleResident:
		r, err := e.dir.ResidentByEmail(ctx, id.Email)
		if err != nil {
			e.log.Debug("resident lookup failed, using session identity", "email", id.Email, "err", err)
			return minimalProfile(RoleResident, id)
		}
		return ResidentProfile{
			Identity:  Identity{ID: r.ID, Name: firstNonEmpty(r.Name, id.Name), Email: id.Email, Contact: firstNonEmpty(r.Contact, id.Contact)},
			Kind:      RoleResident,
			Apartment: r.ApartmentNumber,
			Status:    r.Status,
		}
	default:
		return AdminProfile{Identity: id, Kind: RoleAdmin}
	}
}

// sessionIdentity takes the display name from metadata, falling back to the
// email address.
func sessionIdentity(s *session.Session) Identity {
	name, _ := s.MetaString("name")
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.Email
	}
	contact, _ := s.MetaString("contact")
	return Identity{ID: s.UserID, Name: name, Email: s.Email, Contact: contact}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
