package scanner

import "strings"

// filenameReplacer maps characters that are unsafe in filenames to
// underscores.
var filenameReplacer = strings.NewReplacer(
	"[", "_",
	"\\", "_",
	"/", "_",
	"\"", "_",
	"*", "_",
	"?", "_",
	"<", "_",
	">", "_",
	"|", "_",
	"]", "_",
	":", "_",
)

// SafeFilename sanitizes a release title for use as a filename stem.
func SafeFilename(title string) string {
	return filenameReplacer.Replace(title)
}
