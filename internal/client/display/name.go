// Package display holds the single source of truth for rendering user
// identities. Every screen goes through Name; the normalization rules live
// nowhere else.
package display

import (
	"strings"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

// UnknownUser is shown when a record carries neither a name nor an email.
const UnknownUser = "Unknown user"

// Name formats a user record as "First Last". A missing part is omitted and
// parts are trimmed; with no name parts at all the email is used, and with no
// email either the UnknownUser fallback.
func Name(u models.User) string {
	first := strings.TrimSpace(u.GivenName())
	last := strings.TrimSpace(u.FamilyName())

	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	case u.Email != "":
		return u.Email
	default:
		return UnknownUser
	}
}

// Initial returns the single uppercase character used for avatars: the first
// rune of the display name.
func Initial(u models.User) string {
	name := Name(u)
	runes := []rune(name)
	if len(runes) == 0 {
		return "U"
	}
	return strings.ToUpper(string(runes[0]))
}
