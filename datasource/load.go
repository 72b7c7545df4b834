package datasource

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hupe1980/vecstat/blobstore"
	"github.com/hupe1980/vecstat/relation"
)

// Load reads the blob name from store, decompresses it and parses it.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*relation.MemoryDatabase, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	db, n, err := load(ctx, store, name, opts)
	opts.logger.LogLoad(ctx, name, n, err)
	return db, err
}

func load(ctx context.Context, store blobstore.BlobStore, name string, opts options) (*relation.MemoryDatabase, int, error) {
	raw, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", name, err)
	}

	c := opts.compression
	if opts.detect {
		c = CompressionFor(name)
	}
	data, err := Decompress(raw, c)
	if err != nil {
		return nil, 0, fmt.Errorf("decompress %s: %w", name, err)
	}

	db, err := parse(bytes.NewReader(data), opts)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", name, err)
	}

	vr, err := db.Relation(relation.KindVector)
	if err != nil {
		return nil, 0, err
	}
	return db, vr.Size(), nil
}
