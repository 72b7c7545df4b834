package s3

import "github.com/aws/aws-sdk-go-v2/feature/s3/manager"

// Options configures a Store.
type Options struct {
	// Prefix is prepended to every blob name.
	Prefix string
	// Region overrides the region of the default AWS configuration (New only).
	Region string
	// Endpoint points the client at an S3-compatible service (New only).
	Endpoint string
	// PartSize is the range size of parallel downloads in Fetch.
	PartSize int64
	// Concurrency is the number of parallel range requests in Fetch.
	Concurrency int
}

// Option configures a Store.
type Option func(*Options)

// WithPrefix sets the key prefix, e.g. "datasets/".
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(o *Options) { o.Region = region }
}

// WithEndpoint sets a custom endpoint and enables path-style addressing.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) { o.Endpoint = endpoint }
}

// WithDownloadConcurrency sets the part size and parallelism of Fetch.
func WithDownloadConcurrency(partSize int64, concurrency int) Option {
	return func(o *Options) {
		o.PartSize = partSize
		o.Concurrency = concurrency
	}
}

func defaultOptions() Options {
	return Options{
		PartSize:    manager.DefaultDownloadPartSize,
		Concurrency: manager.DefaultDownloadConcurrency,
	}
}
