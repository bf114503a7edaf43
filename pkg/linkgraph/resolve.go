package linkgraph

// Resolve builds a subject's panel entries from its outgoing and incoming
// edges and the resolved endpoint records. Outgoing edges are processed
// first; if the same endpoint also appears on an incoming edge, the incoming
// occurrence is skipped, so the outgoing label wins on collision. Endpoints
// missing from subjects are dropped.
//
// The outgoing-wins rule reproduces observed behavior and is asserted by
// tests as such; it is not a guaranteed contract.
func Resolve(viewerID int64, outgoing, incoming []Edge, subjects map[int64]SubjectRef) []Linked {
	resolved := make([]Linked, 0, len(outgoing)+len(incoming))
	seen := make(map[int64]bool, len(outgoing)+len(incoming))

	for _, edge := range outgoing {
		otherID := edge.TargetID
		if otherID == viewerID || seen[otherID] {
			continue
		}
		ref, ok := subjects[otherID]
		if !ok {
			continue
		}
		seen[otherID] = true
		resolved = append(resolved, Linked{
			Subject:   ref,
			LinkID:    edge.ID,
			LinkType:  edge.LinkType,
			Direction: Outgoing,
		})
	}

	for _, edge := range incoming {
		otherID := edge.SourceID
		if otherID == viewerID || seen[otherID] {
			continue
		}
		ref, ok := subjects[otherID]
		if !ok {
			continue
		}
		seen[otherID] = true
		resolved = append(resolved, Linked{
			Subject:   ref,
			LinkID:    edge.ID,
			LinkType:  edge.LinkType,
			Direction: Incoming,
		})
	}

	return resolved
}

// DisplayOrder returns the category sections of a subject's panel. The
// viewer's own category is excluded; the rest follow canonical order.
func DisplayOrder(viewer Category) []Category {
	order := make([]Category, 0, 3)
	for _, c := range Categories() {
		if c == viewer {
			continue
		}
		order = append(order, c)
	}
	return order
}

// GroupByCategory arranges resolved links into the panel's category sections
// for the given viewer. Links whose endpoint category has no section (the
// viewer's own category, or an unknown one) are omitted. Empty sections are
// not returned.
func GroupByCategory(viewer Category, links []Linked) []Group {
	byCategory := make(map[Category][]Linked, 3)
	for _, link := range links {
		byCategory[link.Subject.Category] = append(byCategory[link.Subject.Category], link)
	}

	groups := make([]Group, 0, 3)
	for _, c := range DisplayOrder(viewer) {
		if section := byCategory[c]; len(section) > 0 {
			groups = append(groups, Group{Category: c, Links: section})
		}
	}
	return groups
}

// OtherEndpointIDs returns the de-duplicated ids of the non-viewer endpoints
// across both edge directions, in first-seen order. Used to batch the
// endpoint record lookup.
func OtherEndpointIDs(viewerID int64, outgoing, incoming []Edge) []int64 {
	seen := make(map[int64]bool, len(outgoing)+len(incoming))
	ids := make([]int64, 0, len(outgoing)+len(incoming))

	appendOther := func(edge Edge, other int64) {
		if other == viewerID {
			return
		}
		if !seen[other] {
			seen[other] = true
			ids = append(ids, other)
		}
	}

	for _, edge := range outgoing {
		appendOther(edge, edge.TargetID)
	}
	for _, edge := range incoming {
		appendOther(edge, edge.SourceID)
	}
	return ids
}
