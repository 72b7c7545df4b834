// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	data, err := blobstore.ReadAll(ctx, store, "points.csv.zst")
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel ranged downloads of whole blobs (Fetch)
//   - Automatic pagination for listing
//   - Custom endpoints for S3-compatible services
package s3
