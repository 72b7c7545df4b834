package pgsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

// Querier is the subset of *pgxpool.Pool used by Load.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// Connect opens a pool whose connections know the pgvector types.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// Row is one dataset row.
type Row struct {
	ID        int64
	Embedding pgvector.Vector
	Label     *string
}

// Load reads all rows of the configured table into a database.
func Load(ctx context.Context, q Querier, optFns ...Option) (*relation.MemoryDatabase, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	rows, err := fetch(ctx, q, opts)
	var db *relation.MemoryDatabase
	if err == nil {
		db, err = Assemble(rows)
	}
	opts.logger.LogLoad(ctx, "postgres:"+opts.table, len(rows), err)
	return db, err
}

func fetch(ctx context.Context, q Querier, opts options) ([]Row, error) {
	sql := buildQuery(opts)
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", opts.table, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Row])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", opts.table, err)
	}
	return out, nil
}

func buildQuery(opts options) string {
	label := "NULL::text"
	if opts.labelColumn != "" {
		label = pgx.Identifier{opts.labelColumn}.Sanitize()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s, %s, %s FROM %s ORDER BY %s",
		pgx.Identifier{opts.idColumn}.Sanitize(),
		pgx.Identifier{opts.embedColumn}.Sanitize(),
		label,
		pgx.Identifier(strings.Split(opts.table, ".")).Sanitize(),
		pgx.Identifier{opts.idColumn}.Sanitize(),
	)
	if opts.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", opts.limit)
	}
	return sb.String()
}

// Assemble builds a database from rows. All embeddings must share one
// dimensionality, and ids must be non-negative and unique.
func Assemble(rows []Row) (*relation.MemoryDatabase, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", relation.ErrInvalidArgument)
	}

	dim := len(rows[0].Embedding.Slice())
	vr := relation.NewMemoryRelation[vector.Float32](relation.NewVectorFieldTypeInformation(dim, vector.NewFloat32))
	lr := relation.NewMemoryRelation[string](relation.TypeString)

	for _, row := range rows {
		if row.ID < 0 {
			return nil, fmt.Errorf("%w: negative id %d", relation.ErrInvalidArgument, row.ID)
		}
		id := ids.ID(row.ID)
		if err := vr.Add(id, vector.Float32(row.Embedding.Slice())); err != nil {
			return nil, fmt.Errorf("row %d: %w", row.ID, err)
		}
		if row.Label != nil {
			if err := lr.Add(id, *row.Label); err != nil {
				return nil, fmt.Errorf("row %d: %w", row.ID, err)
			}
		}
	}

	db := relation.NewMemoryDatabase(vr)
	if lr.Size() > 0 {
		db.Register(lr)
	}
	return db, nil
}
