package rules

import (
	"context"
	"sync/atomic"

	"lending/pkg/logger"
	"lending/pkg/serrors"

	"go.uber.org/zap"
)

// Registry holds the active rule document and allows hot reloads. Readers get
// a consistent snapshot; a reload swaps the whole document atomically, so an
// in-flight evaluation never sees a half-updated rule set.
type Registry struct {
	doc atomic.Pointer[Document]
}

// NewRegistry returns a registry serving the given document.
func NewRegistry(doc *Document) *Registry {
	r := &Registry{}
	r.doc.Store(doc)

	return r
}

// Current returns the active document snapshot.
func (r *Registry) Current() *Document {
	return r.doc.Load()
}

// Reload parses the document at path and swaps it in. The previous document
// stays active when loading fails.
func (r *Registry) Reload(ctx context.Context, path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not reload rule document")
	}

	old := r.doc.Swap(doc)
	logger.Info(ctx, "rule document reloaded",
		zap.Int("version", doc.Version),
		zap.Int("previousVersion", old.Version),
		zap.Int("stages", len(doc.Stages)))

	return nil
}
