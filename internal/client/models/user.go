// Package models defines the client-side view models for recco. These are
// transient records deserialized from backend responses; the backend owns
// their shapes, which are not consistent across endpoints (name/firstName,
// surname/lastName, user/userId/user_id). The accessors below absorb that
// inconsistency so the rest of the client never branches on field names.
package models

// User is a directory record. Either Name or FirstName may carry the given
// name, and either Surname or LastName the family name, depending on which
// endpoint produced the record.
type User struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	Surname   string `json:"surname,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// GivenName returns the first non-empty of the two given-name fields.
func (u User) GivenName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.FirstName
}

// FamilyName returns the first non-empty of the two family-name fields.
func (u User) FamilyName() string {
	if u.Surname != "" {
		return u.Surname
	}
	return u.LastName
}
