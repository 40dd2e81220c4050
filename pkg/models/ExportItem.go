package models

import (
	"fmt"
)

var (
	ErrMissingItemID       = fmt.Errorf("export item has no identifier")
	ErrMissingItemFilename = fmt.Errorf("export item has no filename")
)

/*
ExportItem is one pending export entry. It carries only metadata and the
path of the source photo; pixels are re-decoded from SourcePath whenever
they are needed. ID, Filename, Name and Artist are empty until the user
supplies them. ID and Filename are required before export.
*/
type ExportItem struct {
	SourcePath  string      `json:"sourcePath"`
	AspectClass AspectClass `json:"aspectClass"`
	ID          string      `json:"id"`
	Filename    string      `json:"filename"`
	Name        string      `json:"name"`
	Artist      string      `json:"artist"`
	Included    bool        `json:"included"`
}

/*
NewExportItem creates an entry for a photo that has just been assigned an
aspect class. New entries start included.
*/
func NewExportItem(sourcePath string, class AspectClass) ExportItem {
	return ExportItem{
		SourcePath:  sourcePath,
		AspectClass: class,
		Included:    true,
	}
}

/*
Sizes returns the size multiples this item will be exported at.
*/
func (e ExportItem) Sizes() []Size {
	return e.AspectClass.Sizes()
}
