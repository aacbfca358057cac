package catalog

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	pingFn         func(ctx context.Context) error
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	lrangeFn       func(ctx context.Context, key string, start, stop int64) ([]string, error)
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if m.lrangeFn != nil {
		return m.lrangeFn(ctx, key, start, stop)
	}
	return nil, nil
}
