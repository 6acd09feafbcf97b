package dto

// CreateFacultyRequest is the multipart form for adding a faculty member.
// DocumentTitles is a JSON-encoded array of titles matching the uploaded
// document files by position; the profile picture and document files are
// handled separately by the controller.
type CreateFacultyRequest struct {
	Name           string  `form:"name" binding:"required"`
	Qualification  string  `form:"qualification"`
	Designation    string  `form:"designation"`
	MonthlySalary  float64 `form:"monthlySalary"`
	YearlyLeave    int     `form:"yearlyLeave"`
	DocumentTitles string  `form:"documentTitles"`
	CreatedBy      string  `form:"created_by" binding:"required"`
}

// UpdateFacultyRequest is the multipart form for editing a faculty member.
// Omitted files preserve the stored profile picture and documents.
type UpdateFacultyRequest struct {
	Name           string  `form:"name" binding:"required"`
	Qualification  string  `form:"qualification"`
	Designation    string  `form:"designation"`
	MonthlySalary  float64 `form:"monthlySalary"`
	YearlyLeave    int     `form:"yearlyLeave"`
	DocumentTitles string  `form:"documentTitles"`
	ModifyBy       string  `form:"modify_by" binding:"required"`
}

// UpdateDocumentTitleRequest renames one document in a faculty record's
// document list by index
type UpdateDocumentTitleRequest struct {
	DocIndex int    `json:"docIndex" binding:"min=0"`
	NewTitle string `json:"newTitle" binding:"required"`
	ModifyBy string `json:"modify_by" binding:"required"`
}
