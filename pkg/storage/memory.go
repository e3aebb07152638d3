package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/JaimeStill/sustainassess/pkg/lifecycle"
)

// Memory is an in-process System for local development and tests.
// Contents are lost when the process exits.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

type memoryBlob struct {
	data        []byte
	contentType string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]memoryBlob)}
}

func (m *Memory) Ready() bool { return true }

func (m *Memory) Start(*lifecycle.Coordinator) error { return nil }

func (m *Memory) Upload(_ context.Context, key string, reader io.Reader, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read blob %s: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = memoryBlob{data: data, contentType: contentType}
	return nil
}

func (m *Memory) Download(_ context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(b.data))), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[key]; !ok {
		return ErrNotFound
	}
	delete(m.blobs, key)
	return nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blobs[key]
	return ok, nil
}

// ContentType returns the content type recorded for key.
func (m *Memory) ContentType(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blobs[key].contentType
}
