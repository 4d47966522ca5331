package models

// Role tags a user with its access level.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleSuperAdmin Role = "superadmin"
)

// User is the public view of an account. Passwords never leave the auth package.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is returned by a successful login.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
