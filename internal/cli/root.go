package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wellandco/wishwell/internal/backup"
	"github.com/wellandco/wishwell/internal/logger"
	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticSnapshot writes a snapshot and silently handles errors
func (c *Context) PerformAutomaticSnapshot() {
	mgr := backup.NewManager(c.Store)
	if _, err := mgr.CreateSnapshot(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic snapshot failed", "error", err)
	}
}

// ResolveDesire finds a desire by id, exact title, or unique title prefix.
func (c *Context) ResolveDesire(ref string) (models.Desire, error) {
	d, err := c.Store.GetDesire(ref)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Desire{}, err
	}

	desires, err := c.Store.GetAllDesires(true)
	if err != nil {
		return models.Desire{}, err
	}

	var matches []models.Desire
	for _, d := range desires {
		if d.Title == ref {
			return d, nil
		}
		if strings.HasPrefix(strings.ToLower(d.Title), strings.ToLower(ref)) {
			matches = append(matches, d)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Desire{}, fmt.Errorf("desire %q not found", ref)
	default:
		var titles []string
		for _, m := range matches {
			titles = append(titles, m.Title)
		}
		return models.Desire{}, fmt.Errorf("desire %q is ambiguous (matches: %s)", ref, strings.Join(titles, ", "))
	}
}
