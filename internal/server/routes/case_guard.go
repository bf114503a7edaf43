package routes

import (
	"context"
	"errors"

	"github.com/emerginginv/traceaid/internal/db"
)

var errCaseClosed = errors.New("case is closed")

// requireOpenCase rejects subject, link and social mutations once a case is
// closed. Reads stay available.
func requireOpenCase(ctx context.Context, q *db.Queries, organizationID, caseID int64) error {
	caseRow, err := q.GetCase(ctx, db.GetCaseParams{
		OrganizationID: organizationID,
		ID:             caseID,
	})
	if err != nil {
		return err
	}
	if caseRow.Status == "closed" {
		return errCaseClosed
	}
	return nil
}
