package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"udaansathi-service/internal/domain/repository"
)

// MemoryStore is an in-process implementation of repository.DocumentStore
// with the same absent-path semantics as the realtime database. Used by
// tests and for running the service without Firebase credentials.
type MemoryStore struct {
	mu   sync.RWMutex
	root map[string]interface{}
}

// NewMemoryStore creates an empty in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		root: make(map[string]interface{}),
	}
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// toTree converts an arbitrary value into the map/slice/primitive shape the
// store holds, going through JSON like the wire format would.
func toTree(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *MemoryStore) lookup(segments []string) (interface{}, bool) {
	var node interface{} = s.root
	for _, seg := range segments {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// parent walks to the map holding the final path segment, creating
// intermediate maps when create is set.
func (s *MemoryStore) parent(segments []string, create bool) (map[string]interface{}, string, bool) {
	if len(segments) == 0 {
		return nil, "", false
	}

	node := s.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			if !create {
				return nil, "", false
			}
			child = make(map[string]interface{})
			node[seg] = child
		}
		node = child
	}
	return node, segments[len(segments)-1], true
}

func (s *MemoryStore) Get(ctx context.Context, path string, into interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.lookup(splitPath(path))
	if !ok || node == nil {
		return nil
	}

	raw, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (s *MemoryStore) Set(ctx context.Context, path string, value interface{}) error {
	tree, err := toTree(value)
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, key, ok := s.parent(splitPath(path), true)
	if !ok {
		return fmt.Errorf("set %s: empty path", path)
	}
	parent[key] = tree
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	tree, err := toTree(fields)
	if err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, key, ok := s.parent(splitPath(path), true)
	if !ok {
		return fmt.Errorf("update %s: empty path", path)
	}

	node, ok := parent[key].(map[string]interface{})
	if !ok {
		node = make(map[string]interface{})
		parent[key] = node
	}
	for k, v := range tree.(map[string]interface{}) {
		node[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, key, ok := s.parent(splitPath(path), false)
	if !ok {
		return nil
	}
	delete(parent, key)
	return nil
}

func (s *MemoryStore) Push(ctx context.Context, path string, value interface{}) (string, error) {
	key := "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	if err := s.Set(ctx, path+"/"+key, value); err != nil {
		return "", err
	}
	return key, nil
}

var _ repository.DocumentStore = (*MemoryStore)(nil)
