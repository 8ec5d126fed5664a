package translator

import "context"

// TypeResolver looks up the label of a document type.
type TypeResolver func(ctx context.Context, typeID string) (string, error)

// TypeCache memoizes document type labels for the lifetime of one
// translation. It is not safe for concurrent use and must not outlive the
// request that created it.
type TypeCache struct {
	labels map[string]string
}

func NewTypeCache() *TypeCache {
	return &TypeCache{labels: make(map[string]string)}
}

// Resolve returns the cached label for typeID, or calls resolve once and
// caches its result. Failures are returned as-is and not cached.
func (c *TypeCache) Resolve(ctx context.Context, typeID string, resolve TypeResolver) (label string, hit bool, err error) {
	if label, ok := c.labels[typeID]; ok {
		return label, true, nil
	}
	label, err = resolve(ctx, typeID)
	if err != nil {
		return "", false, err
	}
	c.labels[typeID] = label
	return label, false, nil
}

// Len returns the number of distinct types resolved so far.
func (c *TypeCache) Len() int {
	return len(c.labels)
}
