package models

// Account roles. New sign-ups start as visitors and are promoted through the
// hiring workflow; guests may browse but cannot plan missions.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleVisitor = "visitor"
	RoleGuest   = "guest"
)

// User is a console account. Credentials are stored as plain text in the
// user store and matched verbatim at sign-in.
type User struct {
	Username   string
	Password   string
	Role       string
	Department string
}
