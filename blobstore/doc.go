// Package blobstore provides read access to dataset files wherever they live.
//
// BlobStore is the interface for opening and listing blobs. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - MemoryStore: In-memory blobs for tests and piped input
//   - ThrottledStore: Memory and read-rate limits around another store
//   - s3.Store: Amazon S3 with range reads and parallel downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// ReadAll loads a whole blob; stores implementing Fetcher can speed that up,
// and Blobs implementing Mappable avoid a copy through io.
package blobstore
