package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zeusync/gnr/internal/core/observability/log"
	"github.com/zeusync/gnr/internal/core/schema"
)

// Repository stores the values of one type, keyed by their primary id.
type Repository[V schema.Value] interface {
	// Put inserts v or replaces the stored value with the same id.
	Put(ctx context.Context, v V) error
	Get(ctx context.Context, id string) (V, error)
	Delete(ctx context.Context, id string) error
	// List returns every stored value ordered by id.
	List(ctx context.Context) ([]V, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// reference is a row that must exist before a value pointing at it is stored.
type reference struct {
	table  string
	column string
	id     string
}

type mapping[V schema.Value] struct {
	typeName string
	table    string
	// columns lists the indexed columns, primary key first, in the order
	// values returns and scan reads them. payload and fingerprint follow.
	columns []string
	id      func(V) string
	values  func(V) []any
	scan    func(rowScanner) (V, int64, error)
	refs    func(V) []reference
}

type table[V schema.Value] struct {
	mapping[V]
	store *Store

	upsert    string
	selectAll string
	deleteOne string
	countAll  string
}

var _ Repository[schema.Value] = (*table[schema.Value])(nil)

func newTable[V schema.Value](s *Store, m mapping[V]) *table[V] {
	key := m.columns[0]
	cols := append(slices.Clone(m.columns), "payload", "fingerprint")

	sets := make([]string, 0, len(cols)-1)
	for _, c := range cols[1:] {
		sets = append(sets, c+" = excluded."+c)
	}

	return &table[V]{
		mapping: m,
		store:   s,
		upsert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
			m.table, strings.Join(cols, ", "), strings.Repeat("?, ", len(cols)-1)+"?", key, strings.Join(sets, ", ")),
		selectAll: fmt.Sprintf("SELECT %s, fingerprint FROM %s", strings.Join(m.columns, ", "), m.table),
		deleteOne: fmt.Sprintf("DELETE FROM %s WHERE %s = ?", m.table, key),
		countAll:  fmt.Sprintf("SELECT COUNT(*) FROM %s", m.table),
	}
}

func (t *table[V]) Put(ctx context.Context, v V) error {
	id := t.id(v)
	payload, err := t.store.codec.Encode(v)
	if err != nil {
		return err
	}
	args := append(t.values(v), string(payload), fingerprint(payload))

	err = t.store.inTx(ctx, func(tx *sql.Tx) error {
		if t.refs != nil {
			for _, ref := range t.refs(v) {
				if err := t.store.exists(ctx, tx, ref); err != nil {
					return err
				}
			}
		}
		t.store.trace(t.upsert, args)
		_, err := tx.ExecContext(ctx, t.upsert, args...)
		return classify(err)
	})
	if err != nil {
		return fmt.Errorf("put %s %s: %w", t.typeName, id, err)
	}

	t.store.remember(t.cacheKey(id), v)
	t.store.logger.Debug("stored", log.String("type_name", t.typeName), log.String("id", id))
	return nil
}

func (t *table[V]) Get(ctx context.Context, id string) (V, error) {
	if hit, ok := t.store.cached(t.cacheKey(id)); ok {
		if v, ok := hit.(V); ok {
			return v, nil
		}
	}

	var zero V
	found, err := t.where(ctx, t.columns[0], id)
	if err != nil {
		return zero, err
	}
	if len(found) == 0 {
		return zero, &NotFoundError{TypeName: t.typeName, ID: id}
	}
	return found[0], nil
}

func (t *table[V]) Delete(ctx context.Context, id string) error {
	t.store.trace(t.deleteOne, []any{id})
	res, err := t.store.db.ExecContext(ctx, t.deleteOne, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", t.typeName, id, classify(err))
	}
	t.store.forget(t.cacheKey(id))

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{TypeName: t.typeName, ID: id}
	}
	return nil
}

func (t *table[V]) List(ctx context.Context) ([]V, error) {
	return t.query(ctx, t.selectAll+" ORDER BY "+t.columns[0])
}

// where selects by one of the mapping's own columns.
func (t *table[V]) where(ctx context.Context, column, arg string) ([]V, error) {
	return t.query(ctx, t.selectAll+" WHERE "+column+" = ? ORDER BY "+t.columns[0], arg)
}

func (t *table[V]) query(ctx context.Context, query string, args ...any) ([]V, error) {
	t.store.trace(query, args)
	rows, err := t.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []V
	for rows.Next() {
		v, err := t.load(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// load rebuilds a row through the trusted constructor and checks that its
// canonical encoding still hashes to the stored fingerprint.
func (t *table[V]) load(row rowScanner) (V, error) {
	var zero V
	v, stored, err := t.scan(row)
	if err != nil {
		var corrupt *CorruptRowError
		if errors.As(err, &corrupt) {
			corrupt.Table = t.table
			t.store.logger.Warn("stored row does not validate", log.String("table", t.table), log.Error(corrupt.Err))
		}
		return zero, err
	}

	payload, err := t.store.codec.Encode(v)
	if err != nil {
		return zero, err
	}
	id := t.id(v)
	if fingerprint(payload) != stored {
		t.store.logger.Warn("fingerprint mismatch",
			log.String("table", t.table),
			log.String("id", id),
			log.Int64("fingerprint", stored))
		return zero, &CorruptRowError{Table: t.table, ID: id, Err: errFingerprint}
	}

	t.store.remember(t.cacheKey(id), v)
	return v, nil
}

func (t *table[V]) count(ctx context.Context) (int64, error) {
	var n int64
	t.store.trace(t.countAll, nil)
	err := t.store.db.QueryRowContext(ctx, t.countAll).Scan(&n)
	return n, err
}

func (t *table[V]) name() string {
	return t.typeName
}

func (t *table[V]) cacheKey(id string) string {
	return t.typeName + "/" + id
}

func (s *Store) exists(ctx context.Context, q querier, ref reference) error {
	query := "SELECT 1 FROM " + ref.table + " WHERE " + ref.column + " = ?"
	s.trace(query, []any{ref.id})

	var one int
	err := q.QueryRowContext(ctx, query, ref.id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &MissingReferenceError{Table: ref.table, ID: ref.id}
	}
	return err
}
