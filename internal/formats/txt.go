// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package formats

import (
	"fmt"
	"os"

	"github.com/anchortext/anchortext/internal/markdown"
	"github.com/anchortext/anchortext/pkg/types"
)

// TxtHandler reads and writes plain text files. Output keeps the
// markdown-style markers (**bold**, *italic*, syllable dots) so the
// file stays readable in any editor.
type TxtHandler struct{}

func (*TxtHandler) Extensions() []string { return []string{".txt"} }

func (*TxtHandler) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func (*TxtHandler) Write(doc *types.Document, path string) error {
	if err := os.WriteFile(path, []byte(markdown.ToMarkdown(doc)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MarkdownHandler handles .md files. Reading keeps the raw markdown;
// writing is identical to the text handler.
type MarkdownHandler struct {
	TxtHandler
}

func (*MarkdownHandler) Extensions() []string { return []string{".md", ".markdown"} }
