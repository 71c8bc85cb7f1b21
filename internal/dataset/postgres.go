package dataset

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the dataset from a table (or view) with the same
// column names as the CSV. It only ever issues a single SELECT.
type PostgresSource struct {
	DSN   string
	Table string
}

// selectQuery builds the read query. The relation may be schema-qualified.
func (s *PostgresSource) selectQuery() string {
	ident := pgx.Identifier(strings.Split(s.Table, ".")).Sanitize()
	return fmt.Sprintf(
		`SELECT %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), %s::float8, COALESCE(%s, ''), COALESCE(%s, '') FROM %s`,
		core.ColYear, core.ColSeniority, core.ColContract, core.ColCompanySize,
		core.ColRole, core.ColUSD, core.ColRemote, core.ColResidence, ident,
	)
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) (core.Dataset, error) {
	pool, err := pgxpool.New(ctx, s.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect dataset: %w", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, s.selectQuery())
	if err != nil {
		return nil, fmt.Errorf("query dataset %s: %w", s.Table, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (core.Record, error) {
		var r core.Record
		err := row.Scan(&r.Year, &r.Seniority, &r.Contract, &r.CompanySize,
			&r.Role, &r.USD, &r.Remote, &r.Residence)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("query dataset %s: %w", s.Table, err)
	}

	if err := checkSalaries(records); err != nil {
		return nil, err
	}
	return core.Dataset(records), nil
}

// checkSalaries applies the CSV salary rules to rows scanned from float8,
// which can hold NaN and infinities.
func checkSalaries(records []core.Record) error {
	for i, r := range records {
		if err := checkSalary(r.USD); err != nil {
			return fmt.Errorf("row %d: %w: %s %v: %v", i+1, ErrInvalidRow, core.ColUSD, r.USD, err)
		}
	}
	return nil
}

// String masks the password so the DSN is safe to log.
func (s *PostgresSource) String() string {
	u, err := url.Parse(s.DSN)
	if err != nil {
		return "postgres://[MASKED]/" + s.Table
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String() + "#" + s.Table
}
