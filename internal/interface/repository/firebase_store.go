package repository

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"

	"udaansathi-service/internal/domain/repository"
)

// FirebaseStore implements repository.DocumentStore over the Firebase
// realtime database. Every operation runs under a bounded timeout; an
// expired call is treated as failed.
type FirebaseStore struct {
	client  *db.Client
	timeout time.Duration
}

// NewFirebaseStore creates a new Firebase-backed document store
func NewFirebaseStore(client *db.Client, timeout time.Duration) repository.DocumentStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &FirebaseStore{
		client:  client,
		timeout: timeout,
	}
}

func (s *FirebaseStore) Get(ctx context.Context, path string, into interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Get(ctx, into); err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Set(ctx context.Context, path string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Set(ctx, value); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Update(ctx, fields); err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Delete(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.NewRef(path).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (s *FirebaseStore) Push(ctx context.Context, path string, value interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ref, err := s.client.NewRef(path).Push(ctx, value)
	if err != nil {
		return "", fmt.Errorf("push %s: %w", path, err)
	}
	return ref.Key, nil
}
