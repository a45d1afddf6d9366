package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	headerColor = color.New(color.Bold)
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
)

// Lines computes a line-level diff between before and after
func Lines(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(src, dst, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Render writes the changed lines between before and after to w. Nothing is
// written when the texts are equal. It reports whether a difference was found.
func Render(w io.Writer, path, before, after string) (bool, error) {
	if before == after {
		return false, nil
	}

	if _, err := headerColor.Fprintf(w, "--- %s\n+++ %s\n", path, path); err != nil {
		return true, err
	}

	for _, d := range Lines(before, after) {
		var (
			c      *color.Color
			prefix string
		)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			c, prefix = insertColor, "+"
		case diffmatchpatch.DiffDelete:
			c, prefix = deleteColor, "-"
		default:
			continue
		}
		for _, line := range splitLines(d.Text) {
			if _, err := c.Fprintln(w, prefix+line); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

// splitLines splits a diff chunk into lines without the trailing empty entry
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Stats counts inserted and deleted lines
func Stats(before, after string) (added, removed int) {
	for _, d := range Lines(before, after) {
		n := len(splitLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// Summary formats Stats as a short human readable string
func Summary(before, after string) string {
	added, removed := Stats(before, after)
	return fmt.Sprintf("+%d -%d", added, removed)
}
