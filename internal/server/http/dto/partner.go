package dto

// ArchiveRequest names one consumed import file to move into the
// processed area.
type ArchiveRequest struct {
	Entity string `json:"entity" binding:"required"`
	Path   string `json:"path" binding:"required"`
}
