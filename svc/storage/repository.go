package storage

import "context"

// Item is one stored record.
type Item map[string]any

// Repository persists the items kept under a key.
type Repository interface {
	Get(ctx context.Context, key Key) ([]Item, error)
	Save(ctx context.Context, key Key, items []Item) ([]Item, error)
	Delete(ctx context.Context, key Key) (bool, error)
}

// NopRepository keeps nothing: Get and Save return an empty list and Delete
// reports success. It is the default repository of a Service.
type NopRepository struct{}

func (NopRepository) Get(context.Context, Key) ([]Item, error) {
	return []Item{}, nil
}

func (NopRepository) Save(context.Context, Key, []Item) ([]Item, error) {
	return []Item{}, nil
}

func (NopRepository) Delete(context.Context, Key) (bool, error) {
	return true, nil
}
