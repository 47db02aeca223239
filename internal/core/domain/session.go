package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the identity portion of a session, mirrored verbatim from the
// auth service's responses.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the client-held record of the authenticated user: the opaque
// bearer token plus the identity the server reported alongside it. The
// in-memory copy is the owner; durable storage only mirrors it across
// restarts.
type Session struct {
	Token string
	User  User
}
