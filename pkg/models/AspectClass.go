package models

import (
	"fmt"
)

var (
	ErrUnknownAspectClass = fmt.Errorf("unknown aspect class")
)

/*
AspectClass is a closed set of named width:height ratio categories. Each
class owns an ordered list of concrete size multiples that all reduce to
the same base ratio. The set is fixed at compile time.
*/
type AspectClass int

const (
	Square AspectClass = iota
	Wide
	LongRectangle
	Tall
	TallRectangle
)

var aspectClassNames = map[AspectClass]string{
	Square:        "square",
	Wide:          "wide",
	LongRectangle: "long-rectangle",
	Tall:          "tall",
	TallRectangle: "tall-rectangle",
}

var aspectClassSizes = map[AspectClass][]Size{
	Square:        {{1, 1}, {2, 2}, {3, 3}, {4, 4}},
	Wide:          {{2, 1}, {4, 2}},
	LongRectangle: {{4, 3}},
	Tall:          {{1, 2}, {2, 4}},
	TallRectangle: {{3, 4}},
}

// Size is a concrete (width, height) pair. Used both as a size multiple
// and as a target ratio.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

/*
AspectClasses returns every class in declared order. Callers that produce
one output per class rely on this ordering.
*/
func AspectClasses() []AspectClass {
	return []AspectClass{Square, Wide, LongRectangle, Tall, TallRectangle}
}

/*
Sizes returns the ordered size multiples belonging to this class.
*/
func (a AspectClass) Sizes() []Size {
	return aspectClassSizes[a]
}

/*
Ratio returns the smallest size multiple, which carries the class's base
ratio.
*/
func (a AspectClass) Ratio() Size {
	return aspectClassSizes[a][0]
}

func (a AspectClass) String() string {
	if name, ok := aspectClassNames[a]; ok {
		return name
	}

	return fmt.Sprintf("aspectclass(%d)", int(a))
}

/*
ParseAspectClass converts a class name, as used by the JSON API, back into
an AspectClass.
*/
func ParseAspectClass(name string) (AspectClass, error) {
	for class, n := range aspectClassNames {
		if n == name {
			return class, nil
		}
	}

	return Square, fmt.Errorf("%w: %q", ErrUnknownAspectClass, name)
}

func (a AspectClass) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AspectClass) UnmarshalText(b []byte) error {
	parsed, err := ParseAspectClass(string(b))

	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
