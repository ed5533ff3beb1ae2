package cache

import (
	"context"
	"encoding/json"
)

func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			// NotFound 不缓存，直接透传
			return nil, e
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}
