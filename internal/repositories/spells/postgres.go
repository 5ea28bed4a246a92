package spells

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// PostgresConfig configures the Postgres spell store
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

// Validate ensures all required dependencies are provided
func (c *PostgresConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Pool == nil {
		return errors.InvalidArgument("pool cannot be nil")
	}
	return nil
}

// Postgres is both a Source and a Store over the spells table
type Postgres struct {
	pool *pgxpool.Pool
}

var (
	_ Source = (*Postgres)(nil)
	_ Store  = (*Postgres)(nil)
)

// NewPostgres creates a Postgres-backed spell store
func NewPostgres(cfg *PostgresConfig) (*Postgres, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Postgres{pool: cfg.Pool}, nil
}

// OpenPool connects to PostgreSQL and verifies the connection
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping database")
	}
	return pool, nil
}

// ListSpells returns every stored spell in ingestion order
func (p *Postgres) ListSpells(ctx context.Context) ([]*dnd5e.Spell, error) {
	rows, err := p.pool.Query(ctx, `SELECT data FROM spells ORDER BY position`)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to query spells")
	}
	defer rows.Close()

	var spells []*dnd5e.Spell
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrap(err, "failed to scan spell row")
		}

		var spell dnd5e.Spell
		if err := json.Unmarshal(data, &spell); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode stored spell")
		}
		spells = append(spells, &spell)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read spells")
	}

	return spells, nil
}

// ReplaceAll swaps the stored catalog for spells in one transaction.
// The slice order becomes the stored ingestion order.
func (p *Postgres) ReplaceAll(ctx context.Context, spells []*dnd5e.Spell) (*ReplaceAllOutput, error) {
	rows := make([][]any, 0, len(spells))
	for i, spell := range spells {
		if spell == nil {
			return nil, errors.InvalidArgumentf("spells[%d] is nil", i)
		}
		data, err := json.Marshal(spell)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode spell %q", spell.Name)
		}
		rows = append(rows, []any{
			int32(i), spell.Key(), spell.Name, int16(spell.Level), string(spell.School), string(data),
		})
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("rollback failed", "error", err)
		}
	}()

	tag, err := tx.Exec(ctx, `DELETE FROM spells`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear spells")
	}

	inserted, err := tx.CopyFrom(ctx,
		pgx.Identifier{"spells"},
		[]string{"position", "key", "name", "level", "school", "data"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert spells")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	slog.Info("replaced stored catalog", "deleted", tag.RowsAffected(), "inserted", inserted)

	return &ReplaceAllOutput{
		Deleted:  tag.RowsAffected(),
		Inserted: inserted,
	}, nil
}
