package model

// FileSlot is one of the fixed uploadable slots (resume, cv) on the
// singleton site content record. A slot holds at most one stored file;
// replacing it deletes the previous file.
type FileSlot struct {
	OriginalName    string `json:"originalName"`
	StoredName      string `json:"storedName"`
	Visible         bool   `json:"visible"`
	DownloadEnabled bool   `json:"downloadEnabled"`
}

// SiteContent is the singleton record carrying the fixed file slots.
// There is exactly one row; it is created on first access.
type SiteContent struct {
	ID     string   `json:"id"`
	Resume FileSlot `json:"resume"`
	CV     FileSlot `json:"cv"`
}

// Slot type identifiers accepted by the slot endpoints.
const (
	SlotResume = "resume"
	SlotCV     = "cv"
)

// Slot returns a pointer to the named slot, or nil for an unknown type.
func (c *SiteContent) Slot(slotType string) *FileSlot {
	switch slotType {
	case SlotResume:
		return &c.Resume
	case SlotCV:
		return &c.CV
	}
	return nil
}
