package store

import (
	"context"
	"fmt"

	"recycling/internal/entities"
)

// Store справочник магазинов-партнёров и их филиалов.
type Store struct {
	repository Repository
}

func New(repository Repository) *Store {
	return &Store{
		repository: repository,
	}
}

func (s *Store) Stores(ctx context.Context) ([]entities.Store, error) {
	stores, err := s.repository.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (s *Store) Branch(ctx context.Context, id int64) (*entities.Branch, error) {
	if id <= 0 {
		return nil, ErrInvalidBranchID
	}

	branch, err := s.repository.GetBranch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return branch, nil
}
