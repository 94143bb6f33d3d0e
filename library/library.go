// Package library keeps gradient presets in a local SQLite database so they
// could be shared between settings documents.
package library

import (
	"fmt"
	"sort"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"layercss/layer"
)

const schema = `
CREATE TABLE IF NOT EXISTS presets (
	name     TEXT PRIMARY KEY NOT NULL,
	gradient TEXT NOT NULL,
	updated  INTEGER NOT NULL
);
`

// Entry is a single stored preset.
type Entry struct {
	Name     string
	Gradient string
	Updated  time.Time
}

// Library is an open preset database. It is not safe for concurrent use.
type Library struct {
	log  *zap.Logger
	conn *sqlite.Conn
	now  func() time.Time
}

// Open opens (creating when necessary) database at path.
func Open(path string, log *zap.Logger) (*Library, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("unable to open preset library '%s': %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to initialize preset library '%s': %w", path, err)
	}
	l := &Library{log: log.Named("library"), conn: conn, now: time.Now}
	l.log.Debug("Preset library opened", zap.String("path", path))
	return l, nil
}

// Close releases database.
func (l *Library) Close() error {
	return l.conn.Close()
}

// Put stores or replaces preset.
func (l *Library) Put(name, gradient string) error {
	// reuse in-memory rules for names and values
	if err := (layer.Presets{}).Save(name, gradient); err != nil {
		return err
	}
	err := sqlitex.Execute(l.conn,
		`INSERT INTO presets (name, gradient, updated) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET gradient = excluded.gradient, updated = excluded.updated`,
		&sqlitex.ExecOptions{Args: []any{name, gradient, l.now().Unix()}})
	if err != nil {
		return fmt.Errorf("unable to store preset %q: %w", name, err)
	}
	return nil
}

// PutAll stores every preset in a single transaction.
func (l *Library) PutAll(p layer.Presets) (err error) {
	defer sqlitex.Save(l.conn)(&err)

	for _, name := range p.Names() {
		if err = l.Put(name, p[name]); err != nil {
			return err
		}
	}
	l.log.Debug("Presets stored", zap.Int("count", len(p)))
	return nil
}

// Get returns preset value.
func (l *Library) Get(name string) (string, error) {
	var (
		gradient string
		found    bool
	)
	err := sqlitex.Execute(l.conn, `SELECT gradient FROM presets WHERE name = ?`,
		&sqlitex.ExecOptions{
			Args: []any{name},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				gradient, found = stmt.ColumnText(0), true
				return nil
			}})
	if err != nil {
		return "", fmt.Errorf("unable to read preset %q: %w", name, err)
	}
	if !found {
		return "", fmt.Errorf("preset %q: %w", name, layer.ErrNotFound)
	}
	return gradient, nil
}

// List returns all entries in natural name order.
func (l *Library) List() ([]Entry, error) {
	var entries []Entry
	err := sqlitex.Execute(l.conn, `SELECT name, gradient, updated FROM presets`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			entries = append(entries, Entry{
				Name:     stmt.ColumnText(0),
				Gradient: stmt.ColumnText(1),
				Updated:  time.Unix(stmt.ColumnInt64(2), 0),
			})
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("unable to list presets: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return natural.Less(entries[i].Name, entries[j].Name) })
	return entries, nil
}

// Presets returns whole library content.
func (l *Library) Presets() (layer.Presets, error) {
	entries, err := l.List()
	if err != nil {
		return nil, err
	}
	p := make(layer.Presets, len(entries))
	for _, e := range entries {
		p[e.Name] = e.Gradient
	}
	return p, nil
}

// Delete removes preset.
func (l *Library) Delete(name string) error {
	if err := sqlitex.Execute(l.conn, `DELETE FROM presets WHERE name = ?`,
		&sqlitex.ExecOptions{Args: []any{name}}); err != nil {
		return fmt.Errorf("unable to delete preset %q: %w", name, err)
	}
	if l.conn.Changes() == 0 {
		return fmt.Errorf("preset %q: %w", name, layer.ErrNotFound)
	}
	return nil
}
