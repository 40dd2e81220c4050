package assets

import (
	_ "embed"
)

/*
DefaultIcon is the bundled pack icon, compiled into the binary so every
export writes the same bytes regardless of the working directory.
*/
//go:embed icon.png
var DefaultIcon []byte
