package contracts

import "context"

// Role is a user's account role as reported by the identity directory.
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

// UserRecord is the identity directory's view of a user.
type UserRecord struct {
	UserID string
	Name   string
	Email  string
	Phone  string
	Role   Role
}

// Contact is the disclosed contact payload for one negotiating party.
// Built from a fresh directory lookup at disclosure time, never from the
// creation-time snapshot.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ContactOf extracts the disclosable contact details from a user record.
func ContactOf(u *UserRecord) Contact {
	return Contact{Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// ListingRecord is the listing directory's view of an active product.
type ListingRecord struct {
	ProductID string
	SellerID  string
	Name      string
}

// UserDirectory resolves user identifiers to current user attributes.
// Fails with domain.ErrUserNotFound if the user is absent.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (*UserRecord, error)
}

// ListingDirectory resolves product identifiers to seller identity and name.
// Fails with domain.ErrProductNotFound if the product is absent or inactive.
type ListingDirectory interface {
	GetActiveProduct(ctx context.Context, productID string) (*ListingRecord, error)
}
