package permission

import (
	"testing"

	"media-catalog/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name        string
		role        entity.UserRole
		isSuperuser bool
		action      Action
		isOwner     bool
		want        bool
	}{
		{"anonymous can view", "", false, ActionView, false, true},
		{"anonymous cannot create", "", false, ActionCreate, false, false},
		{"anonymous cannot edit", "", false, ActionEdit, false, false},
		{"user can create", entity.RoleUser, false, ActionCreate, false, true},
		{"owner can edit own", entity.RoleUser, false, ActionEdit, true, true},
		{"owner can delete own", entity.RoleUser, false, ActionDelete, true, true},
		{"user cannot edit others", entity.RoleUser, false, ActionEdit, false, false},
		{"user cannot delete others", entity.RoleUser, false, ActionDelete, false, false},
		{"moderator edits others", entity.RoleModerator, false, ActionEdit, false, true},
		{"moderator deletes others", entity.RoleModerator, false, ActionDelete, false, true},
		{"admin edits others", entity.RoleAdmin, false, ActionEdit, false, true},
		{"superuser with user role deletes others", entity.RoleUser, true, ActionDelete, false, true},
		{"unknown action denied", entity.RoleAdmin, true, Action("replace"), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allowed(tt.role, tt.isSuperuser, tt.action, tt.isOwner)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	assert.False(t, AdminOnly(entity.RoleUser, false))
	assert.False(t, AdminOnly(entity.RoleModerator, false))
	assert.True(t, AdminOnly(entity.RoleAdmin, false))
	assert.True(t, AdminOnly(entity.RoleUser, true))
}
