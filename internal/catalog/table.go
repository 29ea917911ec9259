package catalog

import (
	"reflect"
	"sort"

	"go.uber.org/zap"
)

// KeyFunc extracts the primary-key tuple of a row.
type KeyFunc[R any, K comparable] func(R) K

// LessFunc orders two keys for the catalogue's ascending sort.
type LessFunc[K comparable] func(a, b K) bool

// Options mirrors the construction-time switches of the original tabular
// layer: Sort, DropDuplicates and IgnoreIndex. Only Sort changes behavior:
// a repeated key always replaces the earlier row (last occurrence wins)
// whatever DropDuplicates says, and IgnoreIndex is not read, since rows
// carry no positional index.
type Options struct {
	Sort           bool
	DropDuplicates bool
	IgnoreIndex    bool
}

// DefaultOptions matches the catalogue layer's documented default
// construction behavior.
func DefaultOptions() Options {
	return Options{Sort: true, DropDuplicates: true, IgnoreIndex: true}
}

// Table is a concrete, generically-keyed realization of the tabular
// catalogue layer (see Design Note 9): a statically-typed row struct R with
// a primary key K, offering the shared key-uniqueness/default/merge
// behavior without runtime column introspection.
type Table[K comparable, R any] struct {
	name  string
	rows  []R
	index map[K]int
	keyFn KeyFunc[R, K]
	less  LessFunc[K]
	opts  Options
	log   *zap.Logger
}

// New builds a catalogue from rows, applying duplicate-key resolution
// (last write wins) and ascending sort-by-key per opts.
func New[K comparable, R any](name string, rows []R, keyFn KeyFunc[R, K], less LessFunc[K], opts Options, log *zap.Logger) *Table[K, R] {
	t := &Table[K, R]{
		name:  name,
		keyFn: keyFn,
		less:  less,
		opts:  opts,
		log:   log,
	}
	for _, r := range rows {
		t.upsert(r)
	}
	t.resort()
	return t
}

func (t *Table[K, R]) upsert(r R) {
	k := t.keyFn(r)
	if t.index == nil {
		t.index = make(map[K]int)
	}
	if pos, ok := t.index[k]; ok && t.opts.DropDuplicates {
		t.rows[pos] = r // last occurrence wins, silently
		return
	}
	if pos, ok := t.index[k]; ok {
		t.rows[pos] = r
		return
	}
	t.index[k] = len(t.rows)
	t.rows = append(t.rows, r)
}

func (t *Table[K, R]) resort() {
	if !t.opts.Sort || t.less == nil {
		return
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.less(t.keyFn(t.rows[i]), t.keyFn(t.rows[j]))
	})
	for i, r := range t.rows {
		t.index[t.keyFn(r)] = i
	}
}

// Add inserts or overwrites a row by key (duplicate key on add silently
// overwrites — last-write-wins), keeping the table sorted.
func (t *Table[K, R]) Add(r R) {
	t.upsert(r)
	t.resort()
}

// Update applies partial rows keyed by K: for every key present in patches
// that also exists in the table, the non-zero-valued fields of the patch are
// copied onto the stored row (a zero-valued field is treated as "not
// present/null" and left untouched, mirroring the original pandas update
// semantics). Keys absent from the table are silently ignored.
func (t *Table[K, R]) Update(patches map[K]R) {
	for k, patch := range patches {
		pos, ok := t.index[k]
		if !ok {
			continue
		}
		t.rows[pos] = mergeNonZero(t.rows[pos], patch)
	}
}

func mergeNonZero[R any](dst, patch R) R {
	dv := reflect.ValueOf(&dst).Elem()
	pv := reflect.ValueOf(patch)
	if dv.Kind() != reflect.Struct {
		return patch
	}
	for i := 0; i < dv.NumField(); i++ {
		pf := pv.Field(i)
		if !pf.IsZero() {
			dv.Field(i).Set(pf)
		}
	}
	return dv.Interface().(R)
}

// Merge performs a left-join-by-key against others: rows of t are updated in
// place (see Update) with any row sharing the same key in an "other" table.
// If none of the others share even one key with t, a warning is logged and t
// is returned unchanged (copied), matching the "empty intersection" law.
func (t *Table[K, R]) Merge(others ...*Table[K, R]) *Table[K, R] {
	out := t.Copy()
	anyOverlap := false
	for _, other := range others {
		patches := make(map[K]R, other.Len())
		for _, r := range other.rows {
			k := other.keyFn(r)
			if _, ok := out.index[k]; ok {
				anyOverlap = true
			}
			patches[k] = r
		}
		out.Update(patches)
	}
	if !anyOverlap && t.log != nil {
		t.log.Warn("merge produced no key overlap", zap.String("catalog", t.name))
	}
	return out
}

// Copy returns a deep-enough copy (row slice and index are both cloned; row
// values are copied by value, which is sufficient since catalogue rows are
// plain value structs).
func (t *Table[K, R]) Copy() *Table[K, R] {
	out := &Table[K, R]{
		name:  t.name,
		rows:  append([]R(nil), t.rows...),
		index: make(map[K]int, len(t.index)),
		keyFn: t.keyFn,
		less:  t.less,
		opts:  t.opts,
		log:   t.log,
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	return out
}

// Len reports the row count.
func (t *Table[K, R]) Len() int { return len(t.rows) }

// Name reports the catalogue's declared name, used in log lines and errors.
func (t *Table[K, R]) Name() string { return t.name }

// Rows returns the rows in ascending-key order. The returned slice is owned
// by the caller; mutating it does not affect the table.
func (t *Table[K, R]) Rows() []R {
	return append([]R(nil), t.rows...)
}

// ByKey returns a read-only view of the catalogue keyed by its primary key.
func (t *Table[K, R]) ByKey() map[K]R {
	out := make(map[K]R, len(t.rows))
	for _, r := range t.rows {
		out[t.keyFn(r)] = r
	}
	return out
}

// Lookup returns the row for a given key, if present.
func (t *Table[K, R]) Lookup(k K) (R, bool) {
	pos, ok := t.index[k]
	if !ok {
		var zero R
		return zero, false
	}
	return t.rows[pos], true
}

// Keys returns the declared keys in ascending order (the same order as
// Rows()).
func (t *Table[K, R]) Keys() []K {
	out := make([]K, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, t.keyFn(r))
	}
	return out
}

// Column extracts one logical column across all rows via a type-safe
// accessor, standing in for the dynamic `get(column)` of the original
// catalogue layer.
func Column[K comparable, R any, V any](t *Table[K, R], extract func(R) V) []V {
	out := make([]V, len(t.rows))
	for i, r := range t.rows {
		out[i] = extract(r)
	}
	return out
}
