// Package repository implements store-independent CRUD for every entity on
// top of gorm. One generic implementation serves all entity types; the only
// per-entity piece is the KeySpec that extracts and matches the entity key.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Update and Remove (and their batch variants)
// when an entity's key is not present in the store.
var ErrNotFound = errors.New("entity not found")

// Repository is the persistence contract shared by all entity types.
type Repository[T any, K comparable] interface {
	GetAll(ctx context.Context) ([]T, error)
	// GetByKey returns nil and no error when no entity has the key.
	GetByKey(ctx context.Context, key K) (*T, error)
	Exists(ctx context.Context, key K) (bool, error)
	// Add inserts entity and fills in any store-generated key.
	Add(ctx context.Context, entity *T) error
	// Update replaces every column of the stored entity with the same key.
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
	AddMultiple(ctx context.Context, entities []T) error
	// UpdateMultiple and RemoveMultiple check every key before mutating
	// anything; one missing key aborts the whole batch.
	UpdateMultiple(ctx context.Context, entities []T) error
	RemoveMultiple(ctx context.Context, entities []T) error
}

// KeySpec tells the generic repository how to read an entity's key and how
// to select rows by key.
type KeySpec[T any, K comparable] struct {
	Extract func(entity *T) K
	Match   func(key K) func(*gorm.DB) *gorm.DB
}

// IntKey is the KeySpec of entities identified by a single integer id column.
func IntKey[T any](extract func(entity *T) int) KeySpec[T, int] {
	return KeySpec[T, int]{
		Extract: extract,
		Match: func(id int) func(*gorm.DB) *gorm.DB {
			return func(db *gorm.DB) *gorm.DB {
				return db.Where("id = ?", id)
			}
		},
	}
}

// GormRepository is the gorm implementation of Repository.
type GormRepository[T any, K comparable] struct {
	db   *gorm.DB
	keys KeySpec[T, K]
}

var _ Repository[struct{}, int] = (*GormRepository[struct{}, int])(nil)

func New[T any, K comparable](db *gorm.DB, keys KeySpec[T, K]) *GormRepository[T, K] {
	return &GormRepository[T, K]{db: db, keys: keys}
}

// Key returns the key of entity.
func (r *GormRepository[T, K]) Key(entity *T) K {
	return r.keys.Extract(entity)
}

func (r *GormRepository[T, K]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %T: %w", *new(T), err)
	}
	return items, nil
}

func (r *GormRepository[T, K]) GetByKey(ctx context.Context, key K) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Scopes(r.keys.Match(key)).Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %T %v: %w", entity, key, err)
	}
	return &entity, nil
}

func (r *GormRepository[T, K]) Exists(ctx context.Context, key K) (bool, error) {
	return r.exists(r.db.WithContext(ctx), key)
}

func (r *GormRepository[T, K]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("add %T: %w", *entity, err)
	}
	return nil
}

func (r *GormRepository[T, K]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key := r.keys.Extract(entity)
		if err := r.mustExist(tx, key); err != nil {
			return err
		}
		return r.replace(tx, entity, key)
	})
}

func (r *GormRepository[T, K]) Remove(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		key := r.keys.Extract(entity)
		if err := r.mustExist(tx, key); err != nil {
			return err
		}
		return r.delete(tx, key)
	})
}

func (r *GormRepository[T, K]) AddMultiple(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&entities).Error; err != nil {
		return fmt.Errorf("add %d %T: %w", len(entities), entities[0], err)
	}
	return nil
}

func (r *GormRepository[T, K]) UpdateMultiple(ctx context.Context, entities []T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustAllExist(tx, entities); err != nil {
			return err
		}
		for i := range entities {
			if err := r.replace(tx, &entities[i], r.keys.Extract(&entities[i])); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository[T, K]) RemoveMultiple(ctx context.Context, entities []T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustAllExist(tx, entities); err != nil {
			return err
		}
		for i := range entities {
			if err := r.delete(tx, r.keys.Extract(&entities[i])); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository[T, K]) exists(tx *gorm.DB, key K) (bool, error) {
	var count int64
	if err := tx.Model(new(T)).Scopes(r.keys.Match(key)).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check %T %v: %w", *new(T), key, err)
	}
	return count > 0, nil
}

func (r *GormRepository[T, K]) mustExist(tx *gorm.DB, key K) error {
	ok, err := r.exists(tx, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%T with key %v: %w", *new(T), key, ErrNotFound)
	}
	return nil
}

func (r *GormRepository[T, K]) mustAllExist(tx *gorm.DB, entities []T) error {
	for i := range entities {
		if err := r.mustExist(tx, r.keys.Extract(&entities[i])); err != nil {
			return err
		}
	}
	return nil
}

// replace writes every updatable column; create-only columns such as
// registration dates are skipped by their gorm write permission.
func (r *GormRepository[T, K]) replace(tx *gorm.DB, entity *T, key K) error {
	if err := tx.Model(entity).Scopes(r.keys.Match(key)).Select("*").Updates(entity).Error; err != nil {
		return fmt.Errorf("update %T %v: %w", *entity, key, err)
	}
	return nil
}

func (r *GormRepository[T, K]) delete(tx *gorm.DB, key K) error {
	if err := tx.Scopes(r.keys.Match(key)).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("remove %T %v: %w", *new(T), key, err)
	}
	return nil
}
