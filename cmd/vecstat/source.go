package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/vecstat/blobstore"
	minioblob "github.com/hupe1980/vecstat/blobstore/minio"
	s3blob "github.com/hupe1980/vecstat/blobstore/s3"
	"github.com/hupe1980/vecstat/datasource"
	"github.com/hupe1980/vecstat/datasource/pgsource"
	"github.com/hupe1980/vecstat/internal/config"
	"github.com/hupe1980/vecstat/internal/resource"
	"github.com/hupe1980/vecstat/relation"
)

const stdinName = "stdin"

// openStore returns the blob store of a file based source.
func (a *app) openStore(ctx context.Context, stdin io.Reader) (blobstore.BlobStore, error) {
	src := a.cfg.Source

	var (
		store blobstore.BlobStore
		err   error
	)
	switch {
	case src.Path == "-":
		data, rerr := io.ReadAll(stdin)
		if rerr != nil {
			return nil, fmt.Errorf("read stdin: %w", rerr)
		}
		mem := blobstore.NewMemoryStore()
		err = mem.Put(ctx, stdinName, data)
		store = mem
	case src.Type == config.SourceLocal:
		store = blobstore.NewLocalStore(src.Root)
	case src.Type == config.SourceS3:
		store, err = s3blob.New(ctx, src.Bucket,
			s3blob.WithPrefix(src.Prefix),
			s3blob.WithRegion(src.Region),
			s3blob.WithEndpoint(src.Endpoint),
		)
	case src.Type == config.SourceMinIO:
		store, err = minioblob.New(src.Endpoint, src.Bucket, src.Prefix, src.Secure)
	default:
		return nil, fmt.Errorf("source %s has no blob store", src.Type)
	}
	if err != nil {
		return nil, err
	}

	if src.ReadLimitBytes > 0 {
		rc := resource.NewController(resource.Config{
			ReadLimitBytesPerSec: int64(src.ReadLimitBytes),
		})
		store = blobstore.NewThrottledStore(store, rc)
	}
	return store, nil
}

// loadDatabase loads the configured dataset.
func (a *app) loadDatabase(ctx context.Context) (*relation.MemoryDatabase, error) {
	src := a.cfg.Source

	if src.Type == config.SourcePostgres && src.Path != "-" {
		pool, err := pgsource.Connect(ctx, src.DSN)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return pgsource.Load(ctx, pool,
			pgsource.WithTable(src.Table),
			pgsource.WithLogger(a.logger),
		)
	}

	name := src.Path
	if name == "" {
		return nil, fmt.Errorf("no dataset: set source.path or --path")
	}
	store, err := a.openStore(ctx, os.Stdin)
	if err != nil {
		return nil, err
	}
	if name == "-" {
		name = stdinName
	}

	opts := []datasource.Option{
		datasource.WithClassLabelIndex(a.cfg.Parser.ClassLabelIndex),
		datasource.WithLogger(a.logger),
	}
	if a.cfg.Parser.Separator != "" {
		opts = append(opts, datasource.WithSeparator(a.cfg.Parser.Separator))
	}
	return datasource.Load(ctx, store, name, opts...)
}
