package models

import (
	"sort"
	"time"
)

// InterestType is a selectable interest category, available to all users.
type InterestType struct {
	Code        string `json:"code"`
	Label       string `json:"label,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"userId,omitempty"`
}

// Post is one user's entry for an interest. The backend reports the interest
// code and the owner in several shapes; use InterestCode and OwnedBy instead
// of reading the fields directly.
type Post struct {
	ID           string     `json:"id,omitempty"`
	InterestType string     `json:"interestType,omitempty"`
	Code         string     `json:"code,omitempty"`
	TypeName     string     `json:"name,omitempty"`
	Title        string     `json:"title,omitempty"`
	Description  string     `json:"description,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	User         *User      `json:"user,omitempty"`
	UserID       string     `json:"userId,omitempty"`
	UserIDSnake  string     `json:"user_id,omitempty"`
}

// InterestCode returns the interest code under whichever field the backend
// used, or "UNKNOWN" when none is set.
func (p Post) InterestCode() string {
	for _, c := range []string{p.InterestType, p.Code, p.TypeName} {
		if c != "" {
			return c
		}
	}
	return "UNKNOWN"
}

// OwnedBy reports whether the post belongs to u, accepting any of the
// ownership shapes the backend returns: an embedded user object (matched by
// id or email), a camelCase userId, or a snake_case user_id.
func (p Post) OwnedBy(u User) bool {
	if p.User != nil {
		if u.ID != "" && p.User.ID == u.ID {
			return true
		}
		if u.Email != "" && p.User.Email == u.Email {
			return true
		}
	}
	if u.ID == "" {
		return false
	}
	return p.UserID == u.ID || p.UserIDSnake == u.ID
}

// OwnerLabel returns a human-readable owner identifier for display.
func (p Post) OwnerLabel() string {
	if p.User != nil {
		if p.User.Email != "" {
			return p.User.Email
		}
		if p.User.ID != "" {
			return p.User.ID
		}
	}
	if p.UserID != "" {
		return p.UserID
	}
	if p.UserIDSnake != "" {
		return p.UserIDSnake
	}
	return "unknown"
}

// SortPostsNewestFirst orders posts by creation time, newest first. Posts
// without a creation time sort last. The sort is stable so backend order is
// kept for ties.
func SortPostsNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := postTime(posts[i]), postTime(posts[j])
		return ti.After(tj)
	})
}

func postTime(p Post) time.Time {
	if p.CreatedAt == nil {
		return time.Time{}
	}
	return *p.CreatedAt
}

// ReplacePost substitutes the entry matching updated.ID, leaving every other
// element and the overall order untouched. Returns true when a match was
// replaced.
func ReplacePost(posts []Post, updated Post) bool {
	for i := range posts {
		if posts[i].ID == updated.ID {
			posts[i] = updated
			return true
		}
	}
	return false
}

// UniqueInterestCodes deduplicates the interest codes of the given posts,
// preserving first-seen order.
func UniqueInterestCodes(posts []Post) []string {
	seen := make(map[string]struct{}, len(posts))
	codes := make([]string, 0, len(posts))
	for _, p := range posts {
		code := p.InterestCode()
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
