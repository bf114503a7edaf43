package linkgraph

import "testing"

func subjectSet(refs ...SubjectRef) map[int64]SubjectRef {
	m := make(map[int64]SubjectRef, len(refs))
	for _, r := range refs {
		m[r.ID] = r
	}
	return m
}

func TestResolveBothDirections(t *testing.T) {
	t.Parallel()

	subjects := subjectSet(
		SubjectRef{ID: 2, Name: "Blue Sedan", Category: Vehicle},
		SubjectRef{ID: 3, Name: "Warehouse", Category: Location},
	)
	outgoing := []Edge{{ID: 10, SourceID: 1, TargetID: 2, LinkType: "Owner"}}
	incoming := []Edge{{ID: 11, SourceID: 3, TargetID: 1, LinkType: "Residence Of"}}

	got := Resolve(1, outgoing, incoming, subjects)
	if len(got) != 2 {
		t.Fatalf("got %d links, want 2", len(got))
	}
	if got[0].Subject.ID != 2 || got[0].Direction != Outgoing || got[0].LinkType != "Owner" {
		t.Errorf("outgoing link resolved wrong: %+v", got[0])
	}
	if got[1].Subject.ID != 3 || got[1].Direction != Incoming || got[1].LinkType != "Residence Of" {
		t.Errorf("incoming link resolved wrong: %+v", got[1])
	}
}

// A subject linked in both directions appears once, and the outgoing edge's
// label wins. This pins down current behavior, which is an artifact of
// processing order rather than a settled product rule.
func TestResolveOutgoingWinsOnCollision(t *testing.T) {
	t.Parallel()

	subjects := subjectSet(SubjectRef{ID: 2, Name: "Blue Sedan", Category: Vehicle})
	outgoing := []Edge{{ID: 10, SourceID: 1, TargetID: 2, LinkType: "Owner"}}
	incoming := []Edge{{ID: 11, SourceID: 2, TargetID: 1, LinkType: "Driven By"}}

	got := Resolve(1, outgoing, incoming, subjects)
	if len(got) != 1 {
		t.Fatalf("got %d links, want 1", len(got))
	}
	if got[0].Direction != Outgoing || got[0].LinkType != "Owner" || got[0].LinkID != 10 {
		t.Fatalf("collision did not keep outgoing edge: %+v", got[0])
	}
}

func TestResolveSkipsUnresolvedEndpoints(t *testing.T) {
	t.Parallel()

	outgoing := []Edge{{ID: 10, SourceID: 1, TargetID: 99, LinkType: "Owner"}}
	got := Resolve(1, outgoing, nil, subjectSet())
	if len(got) != 0 {
		t.Fatalf("got %d links, want 0", len(got))
	}
}

func TestResolveSkipsSelfLinks(t *testing.T) {
	t.Parallel()

	subjects := subjectSet(SubjectRef{ID: 1, Name: "Self", Category: Person})
	outgoing := []Edge{{ID: 10, SourceID: 1, TargetID: 1, LinkType: "Associated"}}
	got := Resolve(1, outgoing, nil, subjects)
	if len(got) != 0 {
		t.Fatalf("got %d links, want 0", len(got))
	}
}

func TestOtherEndpointIDs(t *testing.T) {
	t.Parallel()

	outgoing := []Edge{
		{ID: 10, SourceID: 1, TargetID: 2},
		{ID: 11, SourceID: 1, TargetID: 3},
	}
	incoming := []Edge{
		{ID: 12, SourceID: 2, TargetID: 1}, // duplicate endpoint
		{ID: 13, SourceID: 4, TargetID: 1},
	}

	got := OtherEndpointIDs(1, outgoing, incoming)
	want := []int64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDisplayOrderExcludesOwnCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		viewer Category
		want   []Category
	}{
		{viewer: Person, want: []Category{Vehicle, Location, Item}},
		{viewer: Vehicle, want: []Category{Person, Location, Item}},
		{viewer: Location, want: []Category{Person, Vehicle, Item}},
		{viewer: Item, want: []Category{Person, Vehicle, Location}},
	}

	for _, tc := range tests {
		got := DisplayOrder(tc.viewer)
		if len(got) != len(tc.want) {
			t.Fatalf("DisplayOrder(%s) = %v, want %v", tc.viewer, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("DisplayOrder(%s) = %v, want %v", tc.viewer, got, tc.want)
			}
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	links := []Linked{
		{Subject: SubjectRef{ID: 2, Category: Item}, LinkType: "Owner"},
		{Subject: SubjectRef{ID: 3, Category: Vehicle}, LinkType: "Driver"},
		{Subject: SubjectRef{ID: 4, Category: Vehicle}, LinkType: "Owner"},
		{Subject: SubjectRef{ID: 5, Category: Person}, LinkType: "Spouse"}, // viewer's own category
	}

	groups := GroupByCategory(Person, links)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != Vehicle || len(groups[0].Links) != 2 {
		t.Errorf("first group = %+v, want two vehicles", groups[0])
	}
	if groups[1].Category != Item || len(groups[1].Links) != 1 {
		t.Errorf("second group = %+v, want one item", groups[1])
	}
}

// End-to-end shape of the panel contract: person A owns vehicle B. A's panel
// shows B under vehicles, outgoing; B's panel shows A under people, incoming,
// same label. Removing the edge empties both panels.
func TestResolveSymmetricPanels(t *testing.T) {
	t.Parallel()

	personA := SubjectRef{ID: 1, Name: "A. Example", Category: Person}
	vehicleB := SubjectRef{ID: 2, Name: "Blue Sedan", Category: Vehicle}
	edge := Edge{ID: 10, SourceID: 1, TargetID: 2, LinkType: "Owner"}

	panelA := GroupByCategory(personA.Category,
		Resolve(personA.ID, []Edge{edge}, nil, subjectSet(vehicleB)))
	if len(panelA) != 1 || panelA[0].Category != Vehicle {
		t.Fatalf("panel A = %+v, want one vehicle group", panelA)
	}
	gotA := panelA[0].Links[0]
	if gotA.Subject.ID != 2 || gotA.LinkType != "Owner" || gotA.Direction != Outgoing {
		t.Fatalf("panel A link = %+v", gotA)
	}

	panelB := GroupByCategory(vehicleB.Category,
		Resolve(vehicleB.ID, nil, []Edge{edge}, subjectSet(personA)))
	if len(panelB) != 1 || panelB[0].Category != Person {
		t.Fatalf("panel B = %+v, want one person group", panelB)
	}
	gotB := panelB[0].Links[0]
	if gotB.Subject.ID != 1 || gotB.LinkType != "Owner" || gotB.Direction != Incoming {
		t.Fatalf("panel B link = %+v", gotB)
	}

	// Edge deleted: next fetch has no edges on either side.
	if got := Resolve(personA.ID, nil, nil, subjectSet(vehicleB)); len(got) != 0 {
		t.Fatalf("panel A after delete = %+v, want empty", got)
	}
	if got := Resolve(vehicleB.ID, nil, nil, subjectSet(personA)); len(got) != 0 {
		t.Fatalf("panel B after delete = %+v, want empty", got)
	}
}
