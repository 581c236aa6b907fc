package fileref

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewdeck/crewdeck/internal/models"
)

var testFiles = []models.FileItem{
	{ID: "f1", Name: "report.pdf", Type: "file"},
	{ID: "f2", Name: "design folder", Type: "folder"},
	{ID: "f3", Name: "spec v2.md", Type: "file"},
}

func TestResolve_KnownFile(t *testing.T) {
	got := Resolve("see $file:report.pdf for details", testFiles)
	assert.Equal(t, "see [report.pdf](#file-dl:f1:report.pdf) for details", got)
}

func TestResolve_UnknownFile(t *testing.T) {
	got := Resolve("see $file:missing.txt", testFiles)
	assert.Equal(t, "see `unknown file: missing.txt`", got)
}

func TestResolve_FoldersNeverMatch(t *testing.T) {
	// reference stops at whitespace, so only "design" is looked up;
	// even an exact folder name would not resolve
	got := Resolve("$file:design", []models.FileItem{{ID: "d1", Name: "design", Type: "folder"}})
	assert.Equal(t, "`unknown file: design`", got)
}

func TestResolve_NameStopsAtDelimiters(t *testing.T) {
	got := Resolve(`[link $file:report.pdf] and "$file:report.pdf"`, testFiles)
	assert.Equal(t, `[link [report.pdf](#file-dl:f1:report.pdf)] and "[report.pdf](#file-dl:f1:report.pdf)"`, got)
}

func TestResolve_EscapesNameInAnchor(t *testing.T) {
	got := Resolve("$file:spec", testFiles)
	assert.Equal(t, "`unknown file: spec`", got)

	// names cannot contain spaces, so multi-word files are unreachable
	// by reference; the escape still guards other reserved characters
	files := []models.FileItem{{ID: "f9", Name: "a/b.txt", Type: "file"}}
	got = Resolve("$file:a/b.txt", files)
	assert.Equal(t, "[a/b.txt](#file-dl:f9:a%2Fb.txt)", got)
}

func TestResolve_MultipleReferences(t *testing.T) {
	got := Resolve("$file:report.pdf then $file:nope", testFiles)
	assert.Equal(t, "[report.pdf](#file-dl:f1:report.pdf) then `unknown file: nope`", got)
}

func TestResolve_NoReferences(t *testing.T) {
	text := "plain markdown, nothing to do"
	assert.Equal(t, text, Resolve(text, testFiles))
}
