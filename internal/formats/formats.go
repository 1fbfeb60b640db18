// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package formats maps file extensions to document readers and writers.
// Handlers plug in behind one interface so the pipeline never switches
// on file type itself.
package formats

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anchortext/anchortext/pkg/types"
)

// Handler reads plain text from a document file and writes a styled
// document back in the same format.
type Handler interface {
	// Extensions returns the file extensions this handler accepts,
	// with leading dots (".txt").
	Extensions() []string

	// Read extracts plain text from the file at path.
	Read(path string) (string, error)

	// Write renders the document to the file at path.
	Write(doc *types.Document, path string) error
}

// Registry resolves handlers by file extension.
type Registry struct {
	byExt map[string]Handler
}

// NewRegistry returns a registry holding the built-in handlers.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Handler)}
	r.Register(&TxtHandler{})
	r.Register(&MarkdownHandler{})
	return r
}

// Register adds a handler for each of its extensions, replacing any
// previous handler for the same extension.
func (r *Registry) Register(h Handler) {
	for _, ext := range h.Extensions() {
		r.byExt[strings.ToLower(ext)] = h
	}
}

// ForPath returns the handler for a file path's extension.
func (r *Registry) ForPath(path string) (Handler, error) {
	ext := strings.ToLower(filepath.Ext(path))
	h, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file format %q", ext)
	}
	return h, nil
}

// Supported returns the registered extensions, sorted.
func (r *Registry) Supported() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
