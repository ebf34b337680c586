package search

import (
	"strings"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

// Match applies the autocomplete rule to one user record: a case-insensitive
// prefix match of the full name or the first name against the query, or an
// email substring match when the query itself looks like (part of) an email,
// i.e. contains '@' or '.'.
//
// The same rule serves every search surface; no screen carries its own
// variant.
func Match(u models.User, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}

	first := strings.ToLower(strings.TrimSpace(u.GivenName()))
	last := strings.ToLower(strings.TrimSpace(u.FamilyName()))
	full := strings.TrimSpace(first + " " + last)

	if first != "" && strings.HasPrefix(first, q) {
		return true
	}
	if full != "" && strings.HasPrefix(full, q) {
		return true
	}

	if strings.ContainsAny(q, "@.") {
		email := strings.ToLower(u.Email)
		if email != "" && strings.Contains(email, q) {
			return true
		}
	}
	return false
}

// Filter returns the users matching the query, keeping directory order.
func Filter(users []models.User, query string) []models.User {
	var matched []models.User
	for _, u := range users {
		if Match(u, query) {
			matched = append(matched, u)
		}
	}
	return matched
}
