package models

// Permission grants a subset of {create, read, update, delete} to a role on
// a page. The boolean-flag row shape is the single authoritative permission
// model; both the middleware and the table exposed to the SPA read it.
type Permission struct {
	ID        int64 `json:"id" db:"id"`
	RoleID    int64 `json:"role_id" db:"role_id"`
	PageID    int64 `json:"page_id" db:"page_id"`
	CanCreate bool  `json:"can_create" db:"can_create"`
	CanRead   bool  `json:"can_read" db:"can_read"`
	CanUpdate bool  `json:"can_update" db:"can_update"`
	CanDelete bool  `json:"can_delete" db:"can_delete"`
}

// Allows reports whether the row grants the given action. A nil row denies
// everything, so an absent permission record defaults to deny.
func (p *Permission) Allows(action Action) bool {
	if p == nil {
		return false
	}
	switch action {
	case ActionCreate:
		return p.CanCreate
	case ActionRead:
		return p.CanRead
	case ActionUpdate:
		return p.CanUpdate
	case ActionDelete:
		return p.CanDelete
	default:
		return false
	}
}
