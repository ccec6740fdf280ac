package domain

// Role is a tripmate's access level on a trip.
type Role string

// Tripmate roles.
const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Tripmate is a person with access to a trip.
// Avatar is a deterministic image URL derived from the name, so the same
// name always renders the same face without storing any image data.
type Tripmate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   Role   `json:"role"`
}

// IsOwner reports whether this tripmate owns the trip.
func (m *Tripmate) IsOwner() bool {
	return m.Role == RoleOwner
}
