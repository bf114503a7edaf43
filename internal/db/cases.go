package db

import (
	"context"
)

const caseColumns = `id, organization_id, case_number, title, description, case_type_id,
	status, closed_at, closed_by, created_by, created_at, updated_at`

func scanCase(row interface{ Scan(dest ...any) error }) (Case, error) {
	var c Case
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.CaseNumber, &c.Title, &c.Description, &c.CaseTypeID,
		&c.Status, &c.ClosedAt, &c.ClosedBy, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

type CreateCaseParams struct {
	OrganizationID int64
	CaseNumber     string
	Title          string
	Description    *string
	CaseTypeID     *int64
	CreatedBy      int64
}

func (q *Queries) CreateCase(ctx context.Context, arg CreateCaseParams) (Case, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO cases (organization_id, case_number, title, description, case_type_id, status, created_by)
		VALUES ($1, $2, $3, $4, $5, 'open', $6)
		RETURNING `+caseColumns,
		arg.OrganizationID, arg.CaseNumber, arg.Title, arg.Description, arg.CaseTypeID, arg.CreatedBy,
	)
	return scanCase(row)
}

type GetCaseParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetCase(ctx context.Context, arg GetCaseParams) (Case, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+caseColumns+` FROM cases
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanCase(row)
}

func (q *Queries) ListCases(ctx context.Context, organizationID int64) ([]Case, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+caseColumns+` FROM cases
		WHERE organization_id = $1
		ORDER BY created_at DESC`,
		organizationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := make([]Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

type UpdateCaseParams struct {
	OrganizationID int64
	ID             int64
	Title          string
	Description    *string
	CaseTypeID     *int64
}

func (q *Queries) UpdateCase(ctx context.Context, arg UpdateCaseParams) (Case, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE cases
		SET title = $3, description = $4, case_type_id = $5, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+caseColumns,
		arg.OrganizationID, arg.ID, arg.Title, arg.Description, arg.CaseTypeID,
	)
	return scanCase(row)
}

type CloseCaseParams struct {
	OrganizationID int64
	ID             int64
	ClosedBy       int64
}

func (q *Queries) CloseCase(ctx context.Context, arg CloseCaseParams) (Case, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE cases
		SET status = 'closed', closed_at = now(), closed_by = $3, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+caseColumns,
		arg.OrganizationID, arg.ID, arg.ClosedBy,
	)
	return scanCase(row)
}

func (q *Queries) ReopenCase(ctx context.Context, arg GetCaseParams) (Case, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE cases
		SET status = 'open', closed_at = NULL, closed_by = NULL, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+caseColumns,
		arg.OrganizationID, arg.ID,
	)
	return scanCase(row)
}

func (q *Queries) DeleteCase(ctx context.Context, arg GetCaseParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM cases WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}

func (q *Queries) ListCaseTypes(ctx context.Context, organizationID int64) ([]CaseType, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, organization_id, name FROM case_types
		WHERE organization_id = $1
		ORDER BY name`,
		organizationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]CaseType, 0)
	for rows.Next() {
		var t CaseType
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

type AddCaseServiceParams struct {
	OrganizationID int64
	CaseID         int64
	Name           string
	RateCents      *int64
}

func (q *Queries) AddCaseService(ctx context.Context, arg AddCaseServiceParams) (CaseService, error) {
	var s CaseService
	err := q.db.QueryRow(ctx, `
		INSERT INTO case_services (organization_id, case_id, name, rate_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, organization_id, case_id, name, rate_cents`,
		arg.OrganizationID, arg.CaseID, arg.Name, arg.RateCents,
	).Scan(&s.ID, &s.OrganizationID, &s.CaseID, &s.Name, &s.RateCents)
	return s, err
}

type ListCaseServicesParams struct {
	OrganizationID int64
	CaseID         int64
}

func (q *Queries) ListCaseServices(ctx context.Context, arg ListCaseServicesParams) ([]CaseService, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, organization_id, case_id, name, rate_cents FROM case_services
		WHERE organization_id = $1 AND case_id = $2
		ORDER BY id`,
		arg.OrganizationID, arg.CaseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]CaseService, 0)
	for rows.Next() {
		var s CaseService
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.CaseID, &s.Name, &s.RateCents); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

type DeleteCaseServiceParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) DeleteCaseService(ctx context.Context, arg DeleteCaseServiceParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM case_services WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
