package queries

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed projections/*
var projectionsFS embed.FS

const projectionExt = ".select"

// Loader loads PostgREST column projections from embedded files
type Loader struct {
	cache map[string]string
	mu    sync.RWMutex
}

// NewLoader creates a new projection loader
func NewLoader() *Loader {
	return &Loader{
		cache: make(map[string]string),
	}
}

// Load returns the select list for a table, e.g. "id,name,balance"
func (l *Loader) Load(table string) (string, error) {
	l.mu.RLock()
	if projection, ok := l.cache[table]; ok {
		l.mu.RUnlock()
		return projection, nil
	}
	l.mu.RUnlock()

	fullPath := path.Join("projections", table+projectionExt)
	content, err := projectionsFS.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to load projection %s: %w", table, err)
	}

	projection := strings.TrimSpace(string(content))

	l.mu.Lock()
	l.cache[table] = projection
	l.mu.Unlock()

	return projection, nil
}

// MustLoad loads a projection and panics on error (for initialization)
func (l *Loader) MustLoad(table string) string {
	projection, err := l.Load(table)
	if err != nil {
		panic(fmt.Sprintf("failed to load required projection %s: %v", table, err))
	}
	return projection
}

// List returns the tables that have a projection
func (l *Loader) List() ([]string, error) {
	var tables []string

	err := fs.WalkDir(projectionsFS, "projections", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(d.Name(), projectionExt) {
			tables = append(tables, strings.TrimSuffix(d.Name(), projectionExt))
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list projections: %w", err)
	}

	return tables, nil
}

var defaultLoader = NewLoader()

// Load is a convenience function using the default loader
func Load(table string) (string, error) {
	return defaultLoader.Load(table)
}

// MustLoad is a convenience function using the default loader
func MustLoad(table string) string {
	return defaultLoader.MustLoad(table)
}
