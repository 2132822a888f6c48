// Package scrivx reads and mutates the XML index of a Scrivener project,
// the single .scrivx file describing the binder. Reading is tolerant of
// unknown elements; writing only ever inserts binder items and restamps
// the document, leaving everything else untouched.
package scrivx

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/scrivtools/scriv"
)

// Indent used when re-serializing, matching Scrivener's own output.
const indent = 4

// Index is one project's .scrivx document held in memory.
type Index struct {
	doc  *etree.Document
	path string
}

// Parse reads the index file at path.
// Returns EMALFORMEDINDEX if the file cannot be read or is not well-formed
// XML; this is fatal to opening a project, never degraded.
func Parse(path string) (*Index, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, scriv.Errorf(scriv.EMALFORMEDINDEX, "cannot parse project index %s: %s", path, err)
	}
	if doc.Root() == nil {
		return nil, scriv.Errorf(scriv.EMALFORMEDINDEX, "project index %s has no root element", path)
	}
	return &Index{doc: doc, path: path}, nil
}

// Path returns the file the index was parsed from.
func (ix *Index) Path() string {
	return ix.path
}

// Entries builds the binder forest from the document. A missing Binder
// element yields an empty forest. Unknown attributes and elements are
// ignored.
func (ix *Index) Entries() []*scriv.Entry {
	binder := ix.doc.Root().SelectElement("Binder")
	if binder == nil {
		return nil
	}

	var entries []*scriv.Entry
	for _, el := range binder.SelectElements("BinderItem") {
		entries = append(entries, parseItem(el))
	}
	return entries
}

func parseItem(el *etree.Element) *scriv.Entry {
	entry := &scriv.Entry{
		ID:       el.SelectAttrValue("UUID", ""),
		Kind:     scriv.Kind(el.SelectAttrValue("Type", "Text")),
		Created:  el.SelectAttrValue("Created", ""),
		Modified: el.SelectAttrValue("Modified", ""),
		Title:    "Untitled",
	}

	if title := el.SelectElement("Title"); title != nil {
		entry.Title = title.Text()
	}
	if meta := el.SelectElement("MetaData"); meta != nil {
		if inc := meta.SelectElement("IncludeInCompile"); inc != nil {
			entry.IncludeInCompile = strings.EqualFold(strings.TrimSpace(inc.Text()), "yes")
		}
	}
	if children := el.SelectElement("Children"); children != nil {
		for _, child := range children.SelectElements("BinderItem") {
			entry.Children = append(entry.Children, parseItem(child))
		}
	}

	return entry
}

// FindItem returns the BinderItem element with the given identifier, or
// nil. Depth-first, so on duplicate identifiers the match agrees with the
// binder tree built by Entries.
func (ix *Index) FindItem(id string) *etree.Element {
	binder := ix.doc.Root().SelectElement("Binder")
	if binder == nil {
		return nil
	}
	for _, el := range binder.SelectElements("BinderItem") {
		if found := findItem(el, id); found != nil {
			return found
		}
	}
	return nil
}

func findItem(el *etree.Element, id string) *etree.Element {
	if el.SelectAttrValue("UUID", "") == id {
		return el
	}
	if children := el.SelectElement("Children"); children != nil {
		for _, child := range children.SelectElements("BinderItem") {
			if found := findItem(child, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// NewItem describes a binder item to insert.
type NewItem struct {
	ID               string
	Title            string
	Kind             scriv.Kind
	Created          string
	Modified         string
	IncludeInCompile bool
}

// InsertChild adds a BinderItem under the parent's Children element,
// creating that element if needed. Position is the index among existing
// siblings; a negative or out-of-range position appends.
// Returns ENOTFOUND if no item has the parent identifier.
func (ix *Index) InsertChild(parentID string, item NewItem, position int) error {
	parent := ix.FindItem(parentID)
	if parent == nil {
		return scriv.Errorf(scriv.ENOTFOUND, "binder item %q not found in index", parentID)
	}

	children := parent.SelectElement("Children")
	if children == nil {
		children = parent.CreateElement("Children")
	}

	el := etree.NewElement("BinderItem")
	el.CreateAttr("UUID", item.ID)
	el.CreateAttr("Type", string(item.Kind))
	el.CreateAttr("Created", item.Created)
	el.CreateAttr("Modified", item.Modified)
	el.CreateElement("Title").SetText(item.Title)
	include := el.CreateElement("MetaData").CreateElement("IncludeInCompile")
	if item.IncludeInCompile {
		include.SetText("Yes")
	} else {
		include.SetText("No")
	}

	siblings := children.SelectElements("BinderItem")
	if position < 0 || position >= len(siblings) {
		children.AddChild(el)
		return nil
	}
	children.InsertChildAt(siblings[position].Index(), el)
	return nil
}

// Write stamps the root element with a fresh modification time and
// modification ID, then re-serializes the document to path with stable
// indentation.
func (ix *Index) Write(path string) error {
	root := ix.doc.Root()
	root.CreateAttr("Modified", scriv.Timestamp(time.Now()))
	root.CreateAttr("ModID", strings.ToUpper(uuid.NewString()))

	ix.doc.Indent(indent)
	return ix.doc.WriteToFile(path)
}
