package policy

import (
	"time"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
)

// Field is one projectable attribute of a user.
type Field uint8

const (
	FieldID Field = 1 << iota
	FieldName
	FieldEmail
	FieldAddress
	FieldRole
	FieldTimestamps
)

// FieldSet is a set of user fields.
type FieldSet uint8

const (
	// PublicFields is what anyone may see of another user.
	PublicFields = FieldSet(FieldID | FieldName)
	// RaterFields is what a store owner sees of the users rating their store.
	RaterFields = FieldSet(FieldID | FieldName | FieldEmail)
	// FullFields is what admins and the user themself see.
	FullFields = FieldSet(FieldID | FieldName | FieldEmail | FieldAddress | FieldRole | FieldTimestamps)
)

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	return s&FieldSet(f) != 0
}

// UserView is a user projected onto a FieldSet. Absent fields are omitted
// from JSON. There is no password field.
type UserView struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name,omitempty"`
	Email     string      `json:"email,omitempty"`
	Address   string      `json:"address,omitempty"`
	Role      entity.Role `json:"role,omitempty"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
}

// Project returns the view of user restricted to the set.
func (s FieldSet) Project(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	view := &UserView{ID: user.ID}
	if s.Has(FieldName) {
		view.Name = user.Name
	}
	if s.Has(FieldEmail) {
		view.Email = user.Email
	}
	if s.Has(FieldAddress) {
		view.Address = user.Address
	}
	if s.Has(FieldRole) {
		view.Role = user.Role
	}
	if s.Has(FieldTimestamps) {
		createdAt, updatedAt := user.CreatedAt, user.UpdatedAt
		view.CreatedAt = &createdAt
		view.UpdatedAt = &updatedAt
	}

	return view
}

// FieldsFor returns the fields viewer may see of subject outside of any
// operation-specific decision: everything for admins and for oneself, public
// fields otherwise.
func FieldsFor(viewer *Actor, subject *entity.User) FieldSet {
	if viewer == nil || subject == nil {
		return PublicFields
	}
	if viewer.Role == entity.RoleAdmin || viewer.ID == subject.ID {
		return FullFields
	}

	return PublicFields
}
