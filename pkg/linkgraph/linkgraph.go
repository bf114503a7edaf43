// Package linkgraph holds the relationship model between case subjects:
// directed labeled edges, the relationship-label vocabulary, and the
// resolution of a subject's panel view (both edge directions, de-duplicated
// and grouped by category).
package linkgraph

// Category classifies a case subject.
type Category string

const (
	Person   Category = "person"
	Vehicle  Category = "vehicle"
	Location Category = "location"
	Item     Category = "item"
)

// Categories lists every subject category in canonical order.
func Categories() []Category {
	return []Category{Person, Vehicle, Location, Item}
}

// ValidCategory reports whether c is a known subject category.
func ValidCategory(c Category) bool {
	switch c {
	case Person, Vehicle, Location, Item:
		return true
	}
	return false
}

// Direction tags a resolved link relative to the viewed subject.
type Direction string

const (
	Outgoing Direction = "outgoing"
	Incoming Direction = "incoming"
)

// Edge is one row of the subject link table: a directed, labeled
// relationship between two subjects of the same case.
type Edge struct {
	ID       int64
	SourceID int64
	TargetID int64
	LinkType string
}

// SubjectRef is the minimal endpoint record needed to render a link.
type SubjectRef struct {
	ID       int64
	Name     string
	Category Category
}

// Linked is one entry of a subject's resolved panel: the other endpoint of
// an edge plus the edge's label and direction.
type Linked struct {
	Subject   SubjectRef
	LinkID    int64
	LinkType  string
	Direction Direction
}

// Group is one category section of the panel, in display order.
type Group struct {
	Category Category
	Links    []Linked
}
