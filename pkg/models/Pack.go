package models

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	DefaultPackName        = "Default"
	DefaultSchema          = "http://json-schema.org/draft-07/schema#"
	DefaultVersion         = "1.0.0"
	DefaultPackDescription = "A list of paintings in the gallery"

	defaultIDFloor   = 56000
	defaultIDCeiling = 128000
)

/*
PackMeta is the bundle-level metadata of a pack, kept separate from the
painting records on purpose. Field order here is the serialization order
of the manifest.
*/
type PackMeta struct {
	Name        string `json:"name"`
	Schema      string `json:"$schema"`
	Version     string `json:"version"`
	ID          string `json:"id"`
	Description string `json:"description"`
}

/*
Pack is the full manifest: metadata plus the ordered painting records.
Records accumulate in processing order and that order is preserved through
serialization.
*/
type Pack struct {
	PackMeta

	Paintings []Painting `json:"paintings"`
}

/*
NewPack creates a pack with the standard schema tag and an empty record
list.
*/
func NewPack(name, version, id, description string) *Pack {
	return &Pack{
		PackMeta: PackMeta{
			Name:        name,
			Schema:      DefaultSchema,
			Version:     version,
			ID:          id,
			Description: description,
		},
		Paintings: []Painting{},
	}
}

/*
DefaultPackMeta is a fallback scaffold used before the user supplies their
own metadata. The ID is a random numeric string; everything else is fixed.
*/
func DefaultPackMeta() PackMeta {
	randomID := defaultIDFloor + rand.IntN(defaultIDCeiling-defaultIDFloor+1)

	return PackMeta{
		Name:        DefaultPackName,
		Schema:      DefaultSchema,
		Version:     DefaultVersion,
		ID:          fmt.Sprintf("%d", randomID),
		Description: DefaultPackDescription,
	}
}

/*
Setters ignore blank or whitespace-only input and keep the prior value, so
clearing a form field never wipes previously entered metadata.
*/

func (p *PackMeta) SetName(name string) {
	if value, ok := checkInput(name); ok {
		p.Name = value
	}
}

func (p *PackMeta) SetSchema(schema string) {
	if value, ok := checkInput(schema); ok {
		p.Schema = value
	}
}

func (p *PackMeta) SetVersion(version string) {
	if value, ok := checkInput(version); ok {
		p.Version = value
	}
}

func (p *PackMeta) SetID(id string) {
	if value, ok := checkInput(id); ok {
		p.ID = value
	}
}

func (p *PackMeta) SetDescription(description string) {
	if value, ok := checkInput(description); ok {
		p.Description = value
	}
}

func checkInput(input string) (string, bool) {
	if strings.TrimSpace(input) == "" {
		return "", false
	}

	return input, true
}

func (p *Pack) AddPainting(painting Painting) {
	p.Paintings = append(p.Paintings, painting)
}

func (p *Pack) PaintingCount() int {
	return len(p.Paintings)
}

/*
SeparatePaintings splits the pack into its metadata and its record list.
The returned metadata carries no records; the returned slice is the pack's
own backing, surrendered to the caller.
*/
func (p *Pack) SeparatePaintings() (PackMeta, []Painting) {
	paintings := p.Paintings
	p.Paintings = []Painting{}

	return p.PackMeta, paintings
}
