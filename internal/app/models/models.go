package models

import "time"

// Action identifies one of the four permissioned operations on a page.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// AdministratorRole is the role name granted implicit bypass of all
// permission checks.
const AdministratorRole = "Administrator"

// Audit carries the creation and modification metadata every mutable
// resource record holds. CreatedBy/CreatedOn are immutable after creation;
// ModifyBy/ModifyOn are stamped on every write.
type Audit struct {
	CreatedBy string     `json:"created_by" db:"created_by"`
	CreatedOn time.Time  `json:"created_on" db:"created_on"`
	ModifyBy  *string    `json:"modify_by,omitempty" db:"modify_by"`
	ModifyOn  *time.Time `json:"modify_on,omitempty" db:"modify_on"`
}

// Touch stamps the modification metadata with the given actor.
func (a *Audit) Touch(actor string) {
	now := time.Now()
	a.ModifyBy = &actor
	a.ModifyOn = &now
}
