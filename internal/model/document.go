package model

import "time"

// Document represents a downloadable document published on the site
// (e.g. a whitepaper or article PDF). It is a pure domain model with no
// database-specific dependencies or tags.
//
// StoredName references a file owned by the storage layer; the record is
// removed by the admin listing's reconciliation pass if that file disappears.
type Document struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	OriginalName    string    `json:"originalName"`
	StoredName      string    `json:"storedName"`
	Visible         bool      `json:"visible"`
	DownloadEnabled bool      `json:"downloadEnabled"`
	DisplayOrder    int       `json:"displayOrder"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MaxTitleLen is the upper bound for a document title.
const MaxTitleLen = 140
