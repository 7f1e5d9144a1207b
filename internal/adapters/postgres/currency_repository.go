package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

type currencyRow struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r *CurrencyRepository) List(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `select code, name from currencies order by code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := make(map[string]string, 64)
	for rows.Next() {
		var code, name string
		if err = rows.Scan(&code, &name); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies[code] = name
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return currencies, nil
}

func (r *CurrencyRepository) Upsert(ctx context.Context, currencies map[string]string) error {
	if len(currencies) == 0 {
		return nil
	}

	payload := make([]currencyRow, 0, len(currencies))
	for code, name := range currencies {
		payload = append(payload, currencyRow{Code: code, Name: name})
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal currencies: %w", err)
	}

	const q = `
		with input_rows as (
			select upper(code) as code, coalesce(name, '') as name
			from json_to_recordset($1::json) as r(code text, name text)
			where length(code) = 3
		)
		insert into currencies(code, name)
		select code, name from input_rows
		on conflict (code) do update
		set name = excluded.name;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, q, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}
