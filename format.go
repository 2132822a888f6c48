package scriv

import "strings"

// FormatTree renders entries and their descendants one line each, in
// binder order: a folder or document marker, the compile checkbox, and the
// title, indented two spaces per level of depth.
func FormatTree(entries []*Entry) string {
	var lines []string
	for _, entry := range entries {
		for _, e := range entry.Walk() {
			marker := "📄"
			if e.IsFolder() {
				marker = "📁"
			}
			check := " "
			if e.IncludeInCompile {
				check = "✓"
			}
			lines = append(lines, strings.Repeat("  ", e.Depth())+marker+" ["+check+"] "+e.Title)
		}
	}
	return strings.Join(lines, "\n")
}
