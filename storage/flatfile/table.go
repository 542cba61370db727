package flatfile

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/services/metrics"
)

var ErrDelimiterInValue = errors.New("value contains the field delimiter or a line break")

// codec maps a record to the fields of one table line.
type codec[K comparable, R any] struct {
	name   string
	fields int
	decode func(fields []string) R
	encode func(rec R) []string
	key    func(rec R) K
}

// rows is a table loaded in memory. Iteration follows the file order.
type rows[K comparable, R any] struct {
	keys  []K
	byKey map[K]R
}

func newRows[K comparable, R any](capacity int) *rows[K, R] {
	return &rows[K, R]{keys: make([]K, 0, capacity), byKey: make(map[K]R, capacity)}
}

func (rs *rows[K, R]) get(key K) (R, bool) {
	rec, ok := rs.byKey[key]
	return rec, ok
}

// set stores rec under key. An existing key keeps its position.
func (rs *rows[K, R]) set(key K, rec R) {
	if _, ok := rs.byKey[key]; !ok {
		rs.keys = append(rs.keys, key)
	}
	rs.byKey[key] = rec
}

func (rs *rows[K, R]) delete(key K) bool {
	if _, ok := rs.byKey[key]; !ok {
		return false
	}
	delete(rs.byKey, key)
	for i, k := range rs.keys {
		if k == key {
			rs.keys = append(rs.keys[:i], rs.keys[i+1:]...)
			break
		}
	}
	return true
}

func (rs *rows[K, R]) values() []R {
	recs := make([]R, 0, len(rs.keys))
	for _, k := range rs.keys {
		recs = append(recs, rs.byKey[k])
	}
	return recs
}

func (rs *rows[K, R]) len() int { return len(rs.keys) }

type table[K comparable, R any] struct {
	sync.RWMutex
	path   string
	codec  codec[K, R]
	logger core.Logger
}

func newTable[K comparable, R any](path string, c codec[K, R], logger core.Logger) *table[K, R] {
	return &table[K, R]{path: path, codec: c, logger: logger}
}

// load reads the whole file. Blank lines are ignored; lines without exactly the
// expected number of fields are skipped with a warning. A repeated key keeps its
// first position and takes the value of its last line.
func (t *table[K, R]) load() (*rows[K, R], error) {
	lines, err := readLines(t.path)
	if err != nil {
		return nil, err
	}
	metrics.IncTableLoads(t.codec.name)

	rs := newRows[K, R](len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, core.Delimiter)
		if len(fields) != t.codec.fields {
			metrics.IncMalformedLines(t.codec.name)
			t.logger.Warn("skipping malformed line", map[string]interface{}{
				"file":    t.path,
				"line":    i + 1,
				"content": line,
			})
			continue
		}
		rec := t.codec.decode(fields)
		rs.set(t.codec.key(rec), rec)
	}
	return rs, nil
}

// save replaces the whole file with rs.
func (t *table[K, R]) save(rs *rows[K, R]) error {
	lines := make([]string, 0, rs.len())
	for _, rec := range rs.values() {
		fields := t.codec.encode(rec)
		for _, f := range fields {
			if strings.ContainsAny(f, core.Delimiter+"\r\n") {
				return errors.Wrapf(ErrDelimiterInValue, "%s: %q", t.codec.name, f)
			}
		}
		lines = append(lines, strings.Join(fields, core.Delimiter))
	}
	err := writeLines(t.path, lines)
	metrics.IncTableSaves(t.codec.name, err)
	return err
}

// view loads the table under a read lock.
func (t *table[K, R]) view() (*rows[K, R], error) {
	t.RLock()
	defer t.RUnlock()
	return t.load()
}

// update loads the table, applies fn and saves the result, all under the write lock.
// Nothing is written when fn fails.
func (t *table[K, R]) update(fn func(rs *rows[K, R]) error) error {
	t.Lock()
	defer t.Unlock()

	rs, err := t.load()
	if err != nil {
		return err
	}
	if err := fn(rs); err != nil {
		return err
	}
	return t.save(rs)
}
