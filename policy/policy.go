// Package policy holds the pure authorization decisions for post and
// comment mutations. Handlers resolve the actor, policy decides; no
// storage access happens here.
package policy

type Decision int

const (
	Allowed Decision = iota
	Unauthorized
)

// Actor is the identity behind a request. UserId is the self-issued
// board identity (matched against hiddenUserId/userId on content),
// Token the legacy post edit credential, IsAdmin the registry-verified
// admin flag.
type Actor struct {
	UserId  string
	Token   string
	IsAdmin bool
}

// ownsByUserId requires a non-empty match: an actor with no id never
// owns anything, including legacy content whose ownerId is empty.
func ownsByUserId(actor Actor, ownerId string) bool {
	return actor.UserId != "" && actor.UserId == ownerId
}

func ownsByToken(actor Actor, ownerToken string) bool {
	return actor.Token != "" && actor.Token == ownerToken
}

// CanEditPost allows the true owner or a holder of the legacy edit
// token. Admins get no special treatment for edits: moderation is
// delete-only.
func CanEditPost(actor Actor, ownerId, ownerToken string) Decision {
	if ownsByUserId(actor, ownerId) || ownsByToken(actor, ownerToken) {
		return Allowed
	}
	return Unauthorized
}

// CanDeletePost allows admins unconditionally, otherwise the same
// dual-credential check as CanEditPost.
func CanDeletePost(actor Actor, ownerId, ownerToken string) Decision {
	if actor.IsAdmin {
		return Allowed
	}
	return CanEditPost(actor, ownerId, ownerToken)
}

// CanEditComment allows only the true owner. Comments have no token
// fallback.
func CanEditComment(actor Actor, ownerId string) Decision {
	if ownsByUserId(actor, ownerId) {
		return Allowed
	}
	return Unauthorized
}

// CanDeleteComment allows admins or the true owner.
func CanDeleteComment(actor Actor, ownerId string) Decision {
	if actor.IsAdmin {
		return Allowed
	}
	return CanEditComment(actor, ownerId)
}
