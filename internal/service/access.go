package service

import "github.com/d60-Lab/yatube/internal/model"

// Decision is the outcome of an access check. Denials are never surfaced as
// errors on the web surface: DenyToResource sends the actor back to the
// read-only view, DenyToLogin sends them to the login page with the intended
// destination preserved.
type Decision int

const (
	Allow Decision = iota
	DenyToResource
	DenyToLogin
)

// CanEditPost allows mutation only for the post's author. Anyone else,
// anonymous included, is sent to the read-only view of the post.
func CanEditPost(actorID *uint, post *model.Post) Decision {
	if actorID == nil || *actorID != post.AuthorID {
		return DenyToResource
	}
	return Allow
}

// RequireAuth guards actions that need an authenticated actor (create,
// comment, follow, unfollow).
func RequireAuth(actorID *uint) Decision {
	if actorID == nil {
		return DenyToLogin
	}
	return Allow
}
