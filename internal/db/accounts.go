package db

import "context"

const accountColumns = `id, organization_id, name, website, phone, created_at, updated_at`

func scanAccount(row interface{ Scan(dest ...any) error }) (Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.Website, &a.Phone, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

type CreateAccountParams struct {
	OrganizationID int64
	Name           string
	Website        *string
	Phone          *string
}

func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) (Account, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO accounts (organization_id, name, website, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING `+accountColumns,
		arg.OrganizationID, arg.Name, arg.Website, arg.Phone,
	)
	return scanAccount(row)
}

type GetAccountParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetAccount(ctx context.Context, arg GetAccountParams) (Account, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanAccount(row)
}

func (q *Queries) ListAccounts(ctx context.Context, organizationID int64) ([]Account, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE organization_id = $1
		ORDER BY name`,
		organizationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

type UpdateAccountParams struct {
	OrganizationID int64
	ID             int64
	Name           string
	Website        *string
	Phone          *string
}

func (q *Queries) UpdateAccount(ctx context.Context, arg UpdateAccountParams) (Account, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE accounts
		SET name = $3, website = $4, phone = $5, updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+accountColumns,
		arg.OrganizationID, arg.ID, arg.Name, arg.Website, arg.Phone,
	)
	return scanAccount(row)
}

func (q *Queries) DeleteAccount(ctx context.Context, arg GetAccountParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM accounts WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
