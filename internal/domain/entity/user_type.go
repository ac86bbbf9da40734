// Package entity contains the core business objects of the project.
package entity

// UserType represents the marketplace role a user acts under.
type UserType string

const (
	// UserTypeOwner indicates the user requests walks for their pets.
	UserTypeOwner UserType = "owner"
	// UserTypeWalker indicates the user performs walks.
	UserTypeWalker UserType = "walker"
)

// String returns the string representation of the UserType.
func (u UserType) String() string {
	return string(u)
}

// IsValid checks if the UserType is a valid value.
func (u UserType) IsValid() bool {
	switch u {
	case UserTypeOwner, UserTypeWalker:
		return true
	default:
		return false
	}
}
