package output

import (
	"io"
	"os"
)

// ColorModes lists the accepted values of the --color flag.
var ColorModes = []string{"auto", "always", "never"}

// ResolveColorMode returns whether to use colors for a --color value:
// "never" and "always" force the choice, anything else follows isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
