package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the account role a user registers with.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleBoth   Role = "both"
)

// CanBuy returns true if the role permits making offers.
func (r Role) CanBuy() bool {
	return r == RoleBuyer || r == RoleBoth
}

// CanSell returns true if the role permits listing businesses.
func (r Role) CanSell() bool {
	return r == RoleSeller || r == RoleBoth
}

// ParseRole validates and normalizes a role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	case RoleBoth:
		return RoleBoth, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// User is the account aggregate. Fields are immutable after registration.
type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	phone        string
	role         Role
	location     string
	isVerified   bool
	createdAt    time.Time
}

// NewUser registers a new account. The password hash must already be computed.
func NewUser(id, name, email, passwordHash, phone string, role Role, location string, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidArgument)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidArgument)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        strings.TrimSpace(phone),
		role:         role,
		location:     strings.TrimSpace(location),
		isVerified:   false,
		createdAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from storage without validation.
func ReconstructUser(id, name, email, passwordHash, phone string, role Role, location string, isVerified bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		location:     location,
		isVerified:   isVerified,
		createdAt:    createdAt,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) Location() string     { return u.location }
func (u *User) IsVerified() bool     { return u.isVerified }
func (u *User) CreatedAt() time.Time { return u.createdAt }
