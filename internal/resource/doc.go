// Package resource enforces process-wide limits while datasets are loaded and
// summarized.
//
// A Controller manages three budgets:
//
//   - Memory: bytes of blob data held in memory (non-blocking, fail-fast)
//   - Workers: concurrent summary computations (blocking semaphore)
//   - Reads: blob read throughput (token bucket)
//
// # Usage
//
//	c := resource.NewController(resource.Config{
//	    MemoryLimitBytes:     1 << 30,
//	    MaxWorkers:           4,
//	    ReadLimitBytesPerSec: 64 << 20,
//	})
//
//	if err := c.AcquireMemory(size); err != nil {
//	    return err // dataset too large
//	}
//	defer c.ReleaseMemory(size)
//
// All methods accept a nil *Controller, which imposes no limits.
package resource
