package model

// IdentityKind distinguishes customers from staff.
type IdentityKind int

const (
	IdentityAnonymous IdentityKind = iota
	IdentityCustomer
	IdentityStaff
)

// StaffSubject is the fixed subject carried by staff credentials.
const StaffSubject = "staff_admin"

// Identity is the authenticated caller decoded from a credential.
type Identity struct {
	Kind   IdentityKind
	UserID string
}

// CustomerIdentity builds identity for a registered user.
func CustomerIdentity(userID string) Identity {
	return Identity{Kind: IdentityCustomer, UserID: userID}
}

// StaffIdentity builds the staff identity.
func StaffIdentity() Identity {
	return Identity{Kind: IdentityStaff}
}

// IsStaff reports whether the caller holds the staff role.
func (i Identity) IsStaff() bool {
	return i.Kind == IdentityStaff
}

// Authenticated reports whether the identity came from a valid credential.
func (i Identity) Authenticated() bool {
	switch i.Kind {
	case IdentityStaff:
		return true
	case IdentityCustomer:
		return i.UserID != ""
	}
	return false
}

// Subject returns the identifier recorded as order owner and token subject.
func (i Identity) Subject() string {
	if i.IsStaff() {
		return StaffSubject
	}
	return i.UserID
}

// Owns reports whether the caller is the owner referenced by userID.
func (i Identity) Owns(userID string) bool {
	return i.Authenticated() && i.Subject() == userID
}

// Role returns the role label exposed to clients.
func (i Identity) Role() string {
	switch i.Kind {
	case IdentityStaff:
		return "staff"
	case IdentityCustomer:
		return "customer"
	}
	return ""
}
