package model

import "time"

// User is a front-desk staff account stored in the `users` table. Roles
// are MANAGER (full access, including settings and room deletion) and
// RECEPTIONIST (daily booking and billing work).
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique login email.
//  PasswordHash – bcrypt hash of the password.
//  Role         – MANAGER or RECEPTIONIST.
//  IsActive     – whether the account may log in.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Staff roles.
const (
	RoleManager      = "MANAGER"
	RoleReceptionist = "RECEPTIONIST"
)

// RefreshToken models a row in the `refresh_tokens` table. Only the
// SHA-256 hash of the issued token is persisted.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
