// Package store persists registry values in SQLite. Every row keeps the
// canonical payload fingerprint, and every read rebuilds the value through
// its trusted constructor, so what comes out has passed the same checks as
// what went in.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/ncruces/go-sqlite3"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	gocache "github.com/patrickmn/go-cache"

	"github.com/zeusync/gnr/internal/core/observability/log"
	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/registry"
	"github.com/zeusync/gnr/internal/core/schema/types"
)

const MemoryPath = ":memory:"

type Store struct {
	db     *sql.DB
	codec  *registry.Codec
	cache  *gocache.Cache
	logger log.Log
	echo   bool

	positionPoints *table[*types.PositionPointGt]
	gNodes         *table[*types.GNodeGt]
	edges          *table[*types.ConnectivityEdgeGt]
}

// Open connects to the SQLite database at path, creating the file and its
// directory when needed. The schema is not touched; call Migrate.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	codec := o.codec
	if codec == nil {
		var err error
		if codec, err = registry.NewDefault(registry.WithLogger(o.logger)); err != nil {
			return nil, err
		}
	}

	dsn := "file::memory:?_pragma=foreign_keys(1)"
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		dsn = "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if path == MemoryPath {
		// each connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	s := &Store{
		db:     db,
		codec:  codec,
		logger: o.logger.With(log.String("component", "store")),
		echo:   o.echo,
	}
	if o.cacheTTL > 0 {
		s.cache = gocache.New(o.cacheTTL, o.cleanupInterval)
	}
	s.positionPoints = newTable(s, positionPointMapping)
	s.gNodes = newTable(s, gNodeMapping)
	s.edges = newTable(s, edgeMapping)

	s.logger.Debug("store opened", log.String("path", path), log.Duration("cache_ttl", o.cacheTTL))
	return s, nil
}

func (s *Store) Close() error {
	if s.cache != nil {
		s.cache.Flush()
	}
	return s.db.Close()
}

func (s *Store) PositionPoints() Repository[*types.PositionPointGt] { return s.positionPoints }
func (s *Store) GNodes() Repository[*types.GNodeGt]                 { return s.gNodes }
func (s *Store) Edges() Repository[*types.ConnectivityEdgeGt]       { return s.edges }

// GNodeByAlias finds the node currently holding alias.
func (s *Store) GNodeByAlias(ctx context.Context, alias string) (*types.GNodeGt, error) {
	nodes, err := s.gNodes.where(ctx, "alias", alias)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{TypeName: types.GNodeTypeName, ID: alias}
	}
	return nodes[0], nil
}

// EdgesFrom lists the edges leaving the node.
func (s *Store) EdgesFrom(ctx context.Context, gNodeID string) ([]*types.ConnectivityEdgeGt, error) {
	return s.edges.where(ctx, "from_g_node_id", gNodeID)
}

// Put stores any persisted type.
func (s *Store) Put(ctx context.Context, v schema.Value) error {
	switch v := v.(type) {
	case *types.PositionPointGt:
		return s.positionPoints.Put(ctx, v)
	case *types.GNodeGt:
		return s.gNodes.Put(ctx, v)
	case *types.ConnectivityEdgeGt:
		return s.edges.Put(ctx, v)
	case nil:
		return fmt.Errorf("%w: nil value", ErrUnsupportedType)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Descriptor())
	}
}

// PutBytes decodes data with the codec, including legacy translation, and
// stores the current-version value.
func (s *Store) PutBytes(ctx context.Context, data []byte) (schema.Value, error) {
	v, err := s.codec.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	if err = s.Put(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Get loads a value by type name and primary key.
func (s *Store) Get(ctx context.Context, typeName, id string) (schema.Value, error) {
	switch typeName {
	case types.PositionPointTypeName:
		return value(s.positionPoints.Get(ctx, id))
	case types.GNodeTypeName:
		return value(s.gNodes.Get(ctx, id))
	case types.ConnectivityEdgeTypeName:
		return value(s.edges.Get(ctx, id))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typeName)
	}
}

// Persisted lists the type names the store has tables for.
func (s *Store) Persisted() []string {
	return []string{types.ConnectivityEdgeTypeName, types.GNodeTypeName, types.PositionPointTypeName}
}

// Statistics counts the rows per persisted type.
func (s *Store) Statistics(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64, 3)
	for _, c := range []counter{s.positionPoints, s.gNodes, s.edges} {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		stats[c.name()] = n
	}
	return stats, nil
}

type counter interface {
	count(ctx context.Context) (int64, error)
	name() string
}

func value[V schema.Value](v V, err error) (schema.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) trace(query string, args []any) {
	if s.echo {
		s.logger.Debug("sql", log.String("query", query), log.Int("args", len(args)))
	}
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) cached(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Store) remember(key string, v any) {
	if s.cache != nil {
		s.cache.SetDefault(key, v)
	}
}

func (s *Store) forget(key string) {
	if s.cache != nil {
		s.cache.Delete(key)
	}
}

// fingerprint is stored as a signed integer, SQLite has no unsigned type.
func fingerprint(payload []byte) int64 {
	return int64(xxhash.Sum64(payload))
}

// classify maps SQLite constraint failures onto store errors.
func classify(err error) error {
	if errors.Is(err, sqlite3.CONSTRAINT) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
