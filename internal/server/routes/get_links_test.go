package routes

import (
	"testing"

	"github.com/emerginginv/traceaid/internal/db"
)

func TestSubjectEdges(t *testing.T) {
	t.Parallel()

	links := []db.SubjectLink{
		{ID: 1, SourceSubjectID: 10, TargetSubjectID: 20, LinkType: "Friend"},
		{ID: 2, SourceSubjectID: 10, TargetSubjectID: 30, LinkType: "Owner"},
	}

	edges := subjectEdges(links)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	if edges[0].ID != 1 || edges[0].SourceID != 10 || edges[0].TargetID != 20 || edges[0].LinkType != "Friend" {
		t.Errorf("unexpected first edge: %+v", edges[0])
	}
	if edges[1].LinkType != "Owner" {
		t.Errorf("got link type %q, want %q", edges[1].LinkType, "Owner")
	}
}

func TestSubjectName(t *testing.T) {
	t.Parallel()

	alias := "The Professor"
	blank := ""

	tests := []struct {
		name    string
		subject db.CaseSubject
		want    string
	}{
		{"no display name", db.CaseSubject{Name: "John Carter"}, "John Carter"},
		{"display name set", db.CaseSubject{Name: "John Carter", DisplayName: &alias}, "The Professor"},
		{"blank display name", db.CaseSubject{Name: "John Carter", DisplayName: &blank}, "John Carter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := subjectName(tt.subject); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
