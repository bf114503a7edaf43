package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/pkg/linkgraph"
)

type linkedSubjectView struct {
	SubjectID int64  `json:"subject_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	LinkID    int64  `json:"link_id"`
	LinkType  string `json:"link_type"`
	Direction string `json:"direction"`
}

type linkGroupView struct {
	Category string              `json:"category"`
	Links    []linkedSubjectView `json:"links"`
}

func subjectEdges(links []db.SubjectLink) []linkgraph.Edge {
	edges := make([]linkgraph.Edge, 0, len(links))
	for _, l := range links {
		edges = append(edges, linkgraph.Edge{
			ID:       l.ID,
			SourceID: l.SourceSubjectID,
			TargetID: l.TargetSubjectID,
			LinkType: l.LinkType,
		})
	}
	return edges
}

func subjectName(s db.CaseSubject) string {
	if s.DisplayName != nil && *s.DisplayName != "" {
		return *s.DisplayName
	}
	return s.Name
}

// GetSubjectLinksHandler returns the subject's resolved relationship panel:
// both edge directions de-duplicated and grouped by category, with the
// viewer's own category excluded from the section order.
func GetSubjectLinksHandler(c echo.Context) error {
	type getSubjectLinksParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type getSubjectLinksResponse struct {
		SubjectID int64           `json:"subject_id"`
		Groups    []linkGroupView `json:"groups"`
	}

	params := new(getSubjectLinksParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	viewer, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Subject not found"})
	}

	outgoingRows, err := q.ListLinksBySource(ctx, db.ListLinksForSubjectParams{
		OrganizationID: user.OrganizationID,
		SubjectID:      viewer.ID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	incomingRows, err := q.ListLinksByTarget(ctx, db.ListLinksForSubjectParams{
		OrganizationID: user.OrganizationID,
		SubjectID:      viewer.ID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	outgoing := subjectEdges(outgoingRows)
	incoming := subjectEdges(incomingRows)

	refs := make(map[int64]linkgraph.SubjectRef)
	ids := linkgraph.OtherEndpointIDs(viewer.ID, outgoing, incoming)
	if len(ids) > 0 {
		endpoints, err := q.ListSubjectsByIDs(ctx, db.ListSubjectsByIDsParams{
			OrganizationID: user.OrganizationID,
			IDs:            ids,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
		for _, s := range endpoints {
			refs[s.ID] = linkgraph.SubjectRef{
				ID:       s.ID,
				Name:     subjectName(s),
				Category: linkgraph.Category(s.SubjectType),
			}
		}
	}

	resolved := linkgraph.Resolve(viewer.ID, outgoing, incoming, refs)
	grouped := linkgraph.GroupByCategory(linkgraph.Category(viewer.SubjectType), resolved)

	groups := make([]linkGroupView, 0, len(grouped))
	for _, g := range grouped {
		links := make([]linkedSubjectView, 0, len(g.Links))
		for _, l := range g.Links {
			links = append(links, linkedSubjectView{
				SubjectID: l.Subject.ID,
				Name:      l.Subject.Name,
				Category:  string(l.Subject.Category),
				LinkID:    l.LinkID,
				LinkType:  l.LinkType,
				Direction: string(l.Direction),
			})
		}
		groups = append(groups, linkGroupView{
			Category: string(g.Category),
			Links:    links,
		})
	}

	return c.JSON(http.StatusOK, getSubjectLinksResponse{
		SubjectID: viewer.ID,
		Groups:    groups,
	})
}

// GetLinkCandidatesHandler lists the case's other active subjects that the
// viewed subject could link to, with the vocabulary for each pairing.
func GetLinkCandidatesHandler(c echo.Context) error {
	type getLinkCandidatesParams struct {
		SubjectID int64 `param:"id" validate:"required,numeric"`
	}

	type linkCandidate struct {
		SubjectID int64    `json:"subject_id"`
		Name      string   `json:"name"`
		Category  string   `json:"category"`
		LinkTypes []string `json:"link_types"`
		Default   string   `json:"default_link_type"`
	}

	params := new(getLinkCandidatesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := db.New(conn)

	viewer, err := q.GetSubject(ctx, db.GetSubjectParams{
		OrganizationID: user.OrganizationID,
		ID:             params.SubjectID,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Subject not found"})
	}

	subjects, err := q.ListSubjectsByCase(ctx, db.ListSubjectsByCaseParams{
		OrganizationID: user.OrganizationID,
		CaseID:         viewer.CaseID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	outgoing, err := q.ListLinksBySource(ctx, db.ListLinksForSubjectParams{
		OrganizationID: user.OrganizationID,
		SubjectID:      viewer.ID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	incoming, err := q.ListLinksByTarget(ctx, db.ListLinksForSubjectParams{
		OrganizationID: user.OrganizationID,
		SubjectID:      viewer.ID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	linked := make(map[int64]bool)
	for _, id := range linkgraph.OtherEndpointIDs(viewer.ID, subjectEdges(outgoing), subjectEdges(incoming)) {
		linked[id] = true
	}

	viewerCat := linkgraph.Category(viewer.SubjectType)
	candidates := make([]linkCandidate, 0)
	for _, s := range subjects {
		if s.ID == viewer.ID || linked[s.ID] {
			continue
		}
		cat := linkgraph.Category(s.SubjectType)
		candidates = append(candidates, linkCandidate{
			SubjectID: s.ID,
			Name:      subjectName(s),
			Category:  string(cat),
			LinkTypes: linkgraph.LinkTypesFor(viewerCat, cat),
			Default:   linkgraph.DefaultLinkType(viewerCat, cat),
		})
	}

	return c.JSON(http.StatusOK, candidates)
}
