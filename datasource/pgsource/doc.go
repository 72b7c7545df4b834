// Package pgsource loads vector datasets from a Postgres table with a
// pgvector column.
//
//	pool, err := pgsource.Connect(ctx, os.Getenv("DATABASE_URL"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	db, err := pgsource.Load(ctx, pool, pgsource.WithTable("embeddings"))
//
// Rows become a vector.Float32 relation keyed by the id column, and a string
// relation holding the non-null labels.
package pgsource
