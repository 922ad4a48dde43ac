// Package permission holds the role policy for user-generated content as a
// pure table, checked without any transport or storage involvement.
package permission

import (
	"media-catalog/internal/data/entity"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// requirement is what an action demands from the caller.
type requirement struct {
	authenticated bool
	ownerOrStaff  bool
}

var rules = map[Action]requirement{
	ActionView:   {},
	ActionCreate: {authenticated: true},
	ActionEdit:   {authenticated: true, ownerOrStaff: true},
	ActionDelete: {authenticated: true, ownerOrStaff: true},
}

// Allowed decides whether a caller with the given role may perform action on
// a piece of content. Anonymous callers pass role "" — they can only view.
// Owners may change their own content; moderators, admins and superusers may
// change anyone's.
func Allowed(role entity.UserRole, isSuperuser bool, action Action, isOwner bool) bool {
	req, ok := rules[action]
	if !ok {
		return false
	}

	if req.authenticated && !role.Valid() {
		return false
	}

	if req.ownerOrStaff && !isOwner && !role.IsStaff() && !isSuperuser {
		return false
	}

	return true
}

// AdminOnly gates the administration surfaces (catalog writes, user
// management): only admins and superusers pass.
func AdminOnly(role entity.UserRole, isSuperuser bool) bool {
	return role == entity.RoleAdmin || isSuperuser
}
