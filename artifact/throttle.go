package artifact

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttled wraps a Store, limiting artifact throughput in bytes per second.
// Useful when publishing to shared remote storage.
type Throttled struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottled wraps the given store with a byte-rate limit.
// bytesPerSec must be positive; it is also used as the burst size.
func NewThrottled(inner Store, bytesPerSec int) *Throttled {
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

// waitBytes reserves n bytes of throughput, in burst-sized chunks so single
// large artifacts do not exceed the limiter burst.
func (t *Throttled) waitBytes(ctx context.Context, n int) error {
	burst := t.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := t.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Put implements Store.
func (t *Throttled) Put(ctx context.Context, name string, data []byte) error {
	if err := t.waitBytes(ctx, len(data)); err != nil {
		return err
	}
	return t.inner.Put(ctx, name, data)
}

// Get implements Store.
func (t *Throttled) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := t.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := t.waitBytes(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Delete implements Store.
func (t *Throttled) Delete(ctx context.Context, name string) error {
	return t.inner.Delete(ctx, name)
}

// List implements Store.
func (t *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	return t.inner.List(ctx, prefix)
}
