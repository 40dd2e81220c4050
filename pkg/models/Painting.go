package models

/*
Painting is one manifest record, describing a single exported image file.
Width and Height are the nominal size-multiple units, not the pixel
dimensions of the file.
*/
type Painting struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
