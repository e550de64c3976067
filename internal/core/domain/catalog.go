package domain

import "time"

// SourceFile is a file handed to a transform with its project relative path.
type SourceFile struct {
	Path    string
	Content []byte
}

// CatalogMeta is the project metadata written into a translation template header.
type CatalogMeta struct {
	Domain         string
	Package        string
	BugReport      string
	LastTranslator string
	Team           string
	CreatedAt      time.Time
}
