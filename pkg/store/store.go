package store

import (
	"context"
	"sort"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the flat string-keyed store the journal is built on. Values are
// opaque strings; there are no transactions across keys and every call is
// independently fallible. Read-modify-write sequences built on top of it can
// lose updates under concurrent writers.
type KV interface {
	// Get returns the value for key, reporting false when the key is absent.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Load creates a KV backed by diskv using the provided config.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &diskKV{d: diskv.New(diskv.Options{
		BasePath: cfg.BasePath(),
		// Journal keys are already flat (responses_2024-05-01), keep the
		// on-disk layout flat too so partitions stay visible.
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type diskKV struct {
	d *diskv.Diskv
}

func (p *diskKV) Get(key string) (string, bool, error) {
	if !p.d.Has(key) {
		return "", false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

func (p *diskKV) Set(key, value string) error {
	return p.d.Write(key, []byte(value))
}

func (p *diskKV) Remove(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *diskKV) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Memory is an in-memory KV used by tests and ephemeral runs.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.m[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.m[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.m, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
