package repository

import (
	"context"
	"errors"

	"github.com/arkanasution/lentera-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CacheRepository interface {
		Find(db *gorm.DB, key string) (*entity.GenerationCache, error)
		Upsert(db *gorm.DB, row *entity.GenerationCache) error
		IncrementHitCount(db *gorm.DB, key string) error
	}

	cacheRepository struct {
		db *gorm.DB
	}
)

func NewCacheRepository(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

func (r *cacheRepository) Find(db *gorm.DB, key string) (*entity.GenerationCache, error) {
	if db == nil {
		db = r.db
	}
	var row entity.GenerationCache
	err := db.Where("cache_key = ?", key).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *cacheRepository) Upsert(db *gorm.DB, row *entity.GenerationCache) error {
	if db == nil {
		db = r.db
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(row).Error
}

func (r *cacheRepository) IncrementHitCount(db *gorm.DB, key string) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.GenerationCache{}).
		Where("cache_key = ?", key).
		UpdateColumn("hit_count", gorm.Expr("hit_count + 1")).Error
}

// GormStore adapts the repository to the cache.Store interface so the
// database can sit behind the in-memory layer.
type GormStore struct {
	db   *gorm.DB
	repo CacheRepository
}

func NewGormStore(db *gorm.DB, repo CacheRepository) *GormStore {
	return &GormStore{db: db, repo: repo}
}

func (s *GormStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	row, err := s.repo.Find(s.db, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	_ = s.repo.IncrementHitCount(s.db, key)
	return []byte(row.Payload), true, nil
}

func (s *GormStore) Set(_ context.Context, key string, payload []byte) error {
	return s.repo.Upsert(s.db, &entity.GenerationCache{
		CacheKey: key,
		Kind:     kindFromKey(key),
		Payload:  string(payload),
	})
}

func kindFromKey(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}
