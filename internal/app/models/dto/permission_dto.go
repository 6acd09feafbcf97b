package dto

// PermissionRequest creates or replaces a permission row for a role on a page
type PermissionRequest struct {
	RoleID    int64 `json:"role_id" binding:"required"`
	PageID    int64 `json:"page_id" binding:"required"`
	CanCreate bool  `json:"can_create"`
	CanRead   bool  `json:"can_read"`
	CanUpdate bool  `json:"can_update"`
	CanDelete bool  `json:"can_delete"`
}

// UpdatePermissionRequest rewrites the flags of an existing permission row
type UpdatePermissionRequest struct {
	CanCreate bool `json:"can_create"`
	CanRead   bool `json:"can_read"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}
