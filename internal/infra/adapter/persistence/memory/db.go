// Package memory provides in-process implementations of the repository interfaces.
// A DB owns the article and magazine registries of one catalog; the repositories
// created from it share that state the way SQL repositories share one *sql.DB.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// DB holds the registries of a single catalog.
//
// Both registries are append-only and keep insertion order. Access is guarded
// by a sync.RWMutex so that concurrent readers and writers observe a consistent
// registry; the entities themselves are not synchronized.
type DB struct {
	mu sync.RWMutex

	articles    []*entity.Article
	articleIDs  map[uuid.UUID]struct{}
	magazines   []*entity.Magazine
	magazineIDs map[uuid.UUID]int
}

// NewDB creates an empty DB.
func NewDB() *DB {
	return &DB{
		articles:    make([]*entity.Article, 0, 16),
		articleIDs:  make(map[uuid.UUID]struct{}),
		magazines:   make([]*entity.Magazine, 0, 8),
		magazineIDs: make(map[uuid.UUID]int),
	}
}

// snapshotArticles returns a copy of the article registry filtered by keep.
// keep may be nil to copy everything.
func (db *DB) snapshotArticles(keep func(*entity.Article) bool) []*entity.Article {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]*entity.Article, 0, len(db.articles))
	for _, a := range db.articles {
		if keep == nil || keep(a) {
			out = append(out, a)
		}
	}
	return out
}
