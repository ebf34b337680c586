package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recco/internal/client/models"
)

// InterestPosts lists all users' posts for an interest code, newest first,
// and offers inline editing of the descriptions of posts the current user
// owns. Saving replaces only the edited entry in the displayed list with the
// record the server returned.
func (a *App) InterestPosts(ctx context.Context, code string) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	posts, err := a.backend.GetInterestPosts(ctx, code)
	if err != nil {
		a.errorf("Failed to load posts for this interest")
		return err
	}
	models.SortPostsNewestFirst(posts)

	a.titlef("%s", prettyCode(code))

	if len(posts) == 0 {
		a.mutedf("No posts for this interest yet.")
		return nil
	}
	a.renderPosts(posts, user)

	for {
		line, err := getSimpleText(a.reader, "Type 'edit <n>' to change a description, or press Enter to go back", a.out)
		if err != nil || line == "" {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != "edit" {
			fmt.Fprintln(a.out, "Unknown command:", line)
			continue
		}
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil || n < 1 || n > len(posts) {
			a.errorf("No such post")
			continue
		}
		post := posts[n-1]

		if !post.OwnedBy(user) {
			a.errorf("You can only edit your own posts")
			continue
		}

		if post.Description != "" {
			a.mutedf("Current description: %s", post.Description)
		}
		text, err := GetMultiline(a.reader, "Enter new description:", a.out)
		if err != nil {
			return err
		}

		updated, err := a.backend.UpdatePostDescription(ctx, post.ID, text)
		if err != nil {
			a.errorf("Failed to save description")
			continue
		}

		models.ReplacePost(posts, updated)
		a.successf("Description updated")
		a.renderPosts(posts, user)
	}
}

func (a *App) renderPosts(posts []models.Post, user models.User) {
	for i, p := range posts {
		title := p.Title
		if title == "" {
			title = prettyCode(p.InterestCode())
		}

		owned := ""
		if p.OwnedBy(user) {
			owned = " [yours]"
		}
		fmt.Fprintf(a.out, "%2d. %s%s\n", i+1, title, owned)

		fmt.Fprintf(a.out, "    %s · Rating: %s · Owner: %s\n", postDateLine(p), ratingLabel(p), p.OwnerLabel())

		desc := p.Description
		if desc == "" {
			desc = "No description"
		}
		fmt.Fprintf(a.out, "    %s\n", desc)
	}
}

func prettyCode(code string) string {
	if code == "" {
		return "Interest"
	}
	return strings.ReplaceAll(code, "_", " ")
}

func ratingLabel(p models.Post) string {
	if p.Rating == nil {
		return "No rating"
	}
	return strconv.FormatFloat(*p.Rating, 'f', -1, 64)
}

// postDateLine prefers the update time when the post has been edited since
// creation, matching how the web UI badges updated posts.
func postDateLine(p models.Post) string {
	if p.UpdatedAt != nil && (p.CreatedAt == nil || !p.UpdatedAt.Equal(*p.CreatedAt)) {
		return fmt.Sprintf("Updated on %s (%s)", p.UpdatedAt.Format("2006-01-02"), timeAgo(*p.UpdatedAt))
	}
	if p.CreatedAt == nil {
		return "Unknown date"
	}
	return "Added on " + p.CreatedAt.Format("2006-01-02")
}

// timeAgo renders a coarse relative time: just now, Nm, Nh, Nd.
func timeAgo(t time.Time) string {
	diff := time.Since(t)
	mins := int(diff.Minutes())
	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%dm", mins)
	case mins < 24*60:
		return fmt.Sprintf("%dh", mins/60)
	default:
		return fmt.Sprintf("%dd", mins/(24*60))
	}
}
