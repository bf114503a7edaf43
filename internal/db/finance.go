package db

import (
	"context"
	"time"
)

const invoiceColumns = `id, organization_id, case_id, invoice_number, status, amount_cents,
	due_date, issued_at, created_by, created_at, updated_at`

func scanInvoice(row interface{ Scan(dest ...any) error }) (Invoice, error) {
	var inv Invoice
	err := row.Scan(
		&inv.ID, &inv.OrganizationID, &inv.CaseID, &inv.InvoiceNumber, &inv.Status, &inv.AmountCents,
		&inv.DueDate, &inv.IssuedAt, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

type CreateInvoiceParams struct {
	OrganizationID int64
	CaseID         int64
	InvoiceNumber  string
	AmountCents    int64
	DueDate        *time.Time
	CreatedBy      int64
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO invoices (organization_id, case_id, invoice_number, status, amount_cents, due_date, created_by)
		VALUES ($1, $2, $3, 'draft', $4, $5, $6)
		RETURNING `+invoiceColumns,
		arg.OrganizationID, arg.CaseID, arg.InvoiceNumber, arg.AmountCents, arg.DueDate, arg.CreatedBy,
	)
	return scanInvoice(row)
}

type GetInvoiceParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetInvoice(ctx context.Context, arg GetInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanInvoice(row)
}

type ListInvoicesParams struct {
	OrganizationID int64
	CaseID         int64
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE organization_id = $1 AND case_id = $2
		ORDER BY created_at DESC`,
		arg.OrganizationID, arg.CaseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

type UpdateInvoiceStatusParams struct {
	OrganizationID int64
	ID             int64
	Status         string
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE invoices
		SET status = $3,
			issued_at = CASE WHEN $3 = 'sent' AND issued_at IS NULL THEN now() ELSE issued_at END,
			updated_at = now()
		WHERE organization_id = $1 AND id = $2
		RETURNING `+invoiceColumns,
		arg.OrganizationID, arg.ID, arg.Status,
	)
	return scanInvoice(row)
}

func (q *Queries) DeleteInvoice(ctx context.Context, arg GetInvoiceParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM invoices WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}

const expenseColumns = `id, organization_id, case_id, description, amount_cents, incurred_on,
	receipt_key, created_by, created_at`

func scanExpense(row interface{ Scan(dest ...any) error }) (ExpenseEntry, error) {
	var e ExpenseEntry
	err := row.Scan(
		&e.ID, &e.OrganizationID, &e.CaseID, &e.Description, &e.AmountCents, &e.IncurredOn,
		&e.ReceiptKey, &e.CreatedBy, &e.CreatedAt,
	)
	return e, err
}

type CreateExpenseParams struct {
	OrganizationID int64
	CaseID         int64
	Description    string
	AmountCents    int64
	IncurredOn     time.Time
	ReceiptKey     *string
	CreatedBy      int64
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (ExpenseEntry, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO expense_entries
			(organization_id, case_id, description, amount_cents, incurred_on, receipt_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+expenseColumns,
		arg.OrganizationID, arg.CaseID, arg.Description, arg.AmountCents, arg.IncurredOn,
		arg.ReceiptKey, arg.CreatedBy,
	)
	return scanExpense(row)
}

type GetExpenseParams struct {
	OrganizationID int64
	ID             int64
}

func (q *Queries) GetExpense(ctx context.Context, arg GetExpenseParams) (ExpenseEntry, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+expenseColumns+` FROM expense_entries
		WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return scanExpense(row)
}

type ListExpensesParams struct {
	OrganizationID int64
	CaseID         int64
}

func (q *Queries) ListExpenses(ctx context.Context, arg ListExpensesParams) ([]ExpenseEntry, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+expenseColumns+` FROM expense_entries
		WHERE organization_id = $1 AND case_id = $2
		ORDER BY incurred_on DESC, id DESC`,
		arg.OrganizationID, arg.CaseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]ExpenseEntry, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

type UpdateExpenseParams struct {
	OrganizationID int64
	ID             int64
	Description    string
	AmountCents    int64
	IncurredOn     time.Time
}

func (q *Queries) UpdateExpense(ctx context.Context, arg UpdateExpenseParams) (ExpenseEntry, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE expense_entries
		SET description = $3, amount_cents = $4, incurred_on = $5
		WHERE organization_id = $1 AND id = $2
		RETURNING `+expenseColumns,
		arg.OrganizationID, arg.ID, arg.Description, arg.AmountCents, arg.IncurredOn,
	)
	return scanExpense(row)
}

type SetExpenseReceiptParams struct {
	OrganizationID int64
	ID             int64
	ReceiptKey     *string
}

func (q *Queries) SetExpenseReceipt(ctx context.Context, arg SetExpenseReceiptParams) (ExpenseEntry, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE expense_entries
		SET receipt_key = $3
		WHERE organization_id = $1 AND id = $2
		RETURNING `+expenseColumns,
		arg.OrganizationID, arg.ID, arg.ReceiptKey,
	)
	return scanExpense(row)
}

func (q *Queries) DeleteExpense(ctx context.Context, arg GetExpenseParams) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM expense_entries WHERE organization_id = $1 AND id = $2`,
		arg.OrganizationID, arg.ID,
	)
	return err
}
