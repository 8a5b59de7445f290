package bankdir

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fincode/pkg/bic"
	"fincode/pkg/registry"
)

// Postgres serves bank directory lookups from a bank_directory table. Rows
// are keyed by (country_code, bank_code) and by BIC; 8-character BICs stored
// in the table match the expanded 11-character form on lookup.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) BankEntries(ctx context.Context, countryCode, bankCode string) ([]bic.BankEntry, error) {
	const query = `
		SELECT country_code, bank_code, bic, COALESCE(bank_name, '')
		FROM bank_directory
		WHERE country_code = $1 AND bank_code = $2
		ORDER BY id`

	rows, err := p.pool.Query(ctx, query, registry.Normalize(countryCode), registry.Normalize(bankCode))
	if err != nil {
		return nil, fmt.Errorf("query bank entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *Postgres) EntriesByBIC(ctx context.Context, code string) ([]bic.BankEntry, error) {
	const query = `
		SELECT country_code, bank_code, bic, COALESCE(bank_name, '')
		FROM bank_directory
		WHERE CASE WHEN length(bic) = 8 THEN bic || 'XXX' ELSE bic END = $1
		ORDER BY id`

	rows, err := p.pool.Query(ctx, query, expand(registry.Normalize(code)))
	if err != nil {
		return nil, fmt.Errorf("query entries by BIC: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows pgxRows) ([]bic.BankEntry, error) {
	var entries []bic.BankEntry
	for rows.Next() {
		var e bic.BankEntry
		if err := rows.Scan(&e.CountryCode, &e.BankCode, &e.BIC, &e.BankName); err != nil {
			return nil, fmt.Errorf("scan bank entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank entries: %w", err)
	}
	return entries, nil
}
