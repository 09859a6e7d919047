package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/billings"
)

type BillingsRepo struct {
	db *sql.DB
}

func NewBillingsRepo(db *sql.DB) *BillingsRepo {
	return &BillingsRepo{db: db}
}

const billingColumns = `id, pet_id, date, amount, description, paid`

func (r *BillingsRepo) Create(ctx context.Context, b billings.Billing) (billings.Billing, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO billings (pet_id, date, amount, description, paid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+billingColumns,
		b.PetID, b.Date, b.Amount, b.Description, b.Paid,
	)
	out, err := scanBilling(row)
	if err != nil {
		return billings.Billing{}, mapError(err, "Billing")
	}
	return out, nil
}

func (r *BillingsRepo) List(ctx context.Context) ([]billings.Billing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+billingColumns+` FROM billings ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "Billing")
	}
	defer rows.Close()

	out := make([]billings.Billing, 0)
	for rows.Next() {
		b, err := scanBilling(rows)
		if err != nil {
			return nil, mapError(err, "Billing")
		}
		out = append(out, b)
	}
	return out, mapError(rows.Err(), "Billing")
}

func (r *BillingsRepo) GetByID(ctx context.Context, id int64) (billings.Billing, error) {
	b, err := scanBilling(r.db.QueryRowContext(ctx, `SELECT `+billingColumns+` FROM billings WHERE id = $1`, id))
	if err != nil {
		return billings.Billing{}, mapError(err, "Billing")
	}
	return b, nil
}

func (r *BillingsRepo) SetPaid(ctx context.Context, id int64, paid bool) (billings.Billing, error) {
	b, err := scanBilling(r.db.QueryRowContext(ctx, `
		UPDATE billings SET paid = $2 WHERE id = $1
		RETURNING `+billingColumns,
		id, paid,
	))
	if err != nil {
		return billings.Billing{}, mapError(err, "Billing")
	}
	return b, nil
}

func (r *BillingsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM billings WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "Billing")
	}
	return requireAffected(res, "Billing")
}

func scanBilling(s scanner) (billings.Billing, error) {
	var (
		b    billings.Billing
		date sql.NullTime
	)
	if err := s.Scan(&b.ID, &b.PetID, &date, &b.Amount, &b.Description, &b.Paid); err != nil {
		return billings.Billing{}, err
	}
	b.Date = nullTime(date)
	return b, nil
}
