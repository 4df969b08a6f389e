package model

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Staff is the account catalog, keyed by username rather than a surrogate id
// so records line up with the identities carried in shift and request rows.
type Staff struct {
	Username string `gorm:"primaryKey;size:64" json:"username"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Role     string `json:"role"` // admin or staff
	Email    string `json:"email,omitempty"`
}

type Branch struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Role struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `json:"name"`
}

// Actor is the authenticated identity every operation receives explicitly.
// Populated by the auth middleware from the JWT claims.
type Actor struct {
	Username string
	Name     string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
