// Package fileref rewrites $file:Name references in markdown into links
// that the renderer turns into authenticated downloads.
package fileref

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/crewdeck/crewdeck/internal/models"
)

// refPattern matches $file: followed by a name that runs until whitespace,
// a closing bracket, a double quote or a single quote.
var refPattern = regexp.MustCompile(`\$file:([^\s\])"']+)`)

// Resolve rewrites every $file:Name reference in text. A name matching a
// non-folder file becomes a markdown link with a file-dl anchor carrying
// the file id and the escaped name; an unmatched name becomes an inline
// code span so the reader sees the reference is dangling. Folders never
// match.
func Resolve(text string, files []models.FileItem) string {
	return refPattern.ReplaceAllStringFunc(text, func(ref string) string {
		name := refPattern.FindStringSubmatch(ref)[1]
		for _, f := range files {
			if f.Name == name && f.Type != "folder" {
				return fmt.Sprintf("[%s](#file-dl:%s:%s)", name, f.ID, url.PathEscape(name))
			}
		}
		return fmt.Sprintf("`unknown file: %s`", name)
	})
}
