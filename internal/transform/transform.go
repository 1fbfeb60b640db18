// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform orchestrates the full pipeline: read, chunk,
// rewrite through the model, parse the markdown back into the document
// representation, enrich with vocabulary analysis, and write out.
package transform

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anchortext/anchortext/internal/chunker"
	"github.com/anchortext/anchortext/internal/formats"
	"github.com/anchortext/anchortext/internal/lexical"
	"github.com/anchortext/anchortext/internal/llm"
	"github.com/anchortext/anchortext/internal/markdown"
	"github.com/anchortext/anchortext/internal/primer"
	"github.com/anchortext/anchortext/internal/scaffold"
	"github.com/anchortext/anchortext/internal/traps"
	"github.com/anchortext/anchortext/pkg/types"
)

// Transformer drives document transformation under one configuration.
type Transformer struct {
	cfg      types.TransformConfig
	client   *llm.Client
	chunker  *chunker.Chunker
	registry *formats.Registry
	analyzer *lexical.Analyzer

	// Optional stages; nil when disabled.
	trapGen   *traps.Generator
	primerGen *primer.Generator
	scaffold  *scaffold.Context

	// progress receives per-stage status lines.
	progress io.Writer
}

// New builds a transformer from cfg, creating the HTTP-backed model
// client. Progress lines go to w; pass io.Discard to silence them.
func New(cfg types.TransformConfig, w io.Writer) *Transformer {
	cfg.Level = types.ClampLevel(cfg.Level)
	client := llm.NewClient(cfg.AIConfig)
	return newWithClient(cfg, client, w)
}

// NewWithClient is New with an injected model client, for tests and
// callers sharing one backend.
func NewWithClient(cfg types.TransformConfig, client *llm.Client, w io.Writer) *Transformer {
	cfg.Level = types.ClampLevel(cfg.Level)
	return newWithClient(cfg, client, w)
}

func newWithClient(cfg types.TransformConfig, client *llm.Client, w io.Writer) *Transformer {
	if w == nil {
		w = io.Discard
	}

	t := &Transformer{
		cfg:      cfg,
		client:   client,
		chunker:  chunker.New(cfg.Chunking.MaxTokens, cfg.Chunking.OverlapSentences),
		registry: formats.NewRegistry(),
		// Analysis stays local during transformation; the model budget
		// goes to the rewrite itself.
		analyzer: lexical.NewAnalyzer(nil, types.LexicalConfig{}),
		progress: w,
	}

	if cfg.EnhancedTraps {
		t.trapGen = traps.NewGenerator(client.Backend())
	}
	if cfg.Primer {
		t.primerGen = primer.NewGenerator(nil, types.PrimerConfig{})
	}
	if cfg.Adaptive {
		t.scaffold = scaffold.NewContext(types.ProfileAdaptive, cfg.FadeThreshold)
	}

	return t
}

// ScaffoldStats returns the adaptive-tracking snapshot from the last
// run, or a zero value when adaptive mode is off.
func (t *Transformer) ScaffoldStats() scaffold.Stats {
	if t.scaffold == nil {
		return scaffold.Stats{}
	}
	return t.scaffold.Stats()
}

// TransformFile reads inputPath, transforms it, and writes the result
// to outputPath in the format its extension selects.
func (t *Transformer) TransformFile(ctx context.Context, inputPath, outputPath string) (*types.Document, error) {
	inHandler, err := t.registry.ForPath(inputPath)
	if err != nil {
		return nil, err
	}
	outHandler, err := t.registry.ForPath(outputPath)
	if err != nil {
		return nil, err
	}

	text, err := inHandler.Read(inputPath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("input file %s contains no text", inputPath)
	}

	doc, err := t.TransformToDocument(ctx, text)
	if err != nil {
		return nil, err
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}
	doc.Metadata["source"] = inputPath

	if err := outHandler.Write(doc, outputPath); err != nil {
		return nil, err
	}
	return doc, nil
}

// TransformText rewrites plain text under the protocol and returns the
// transformed markdown.
func (t *Transformer) TransformText(ctx context.Context, text string) (string, error) {
	if t.scaffold != nil {
		t.scaffold.Reset()
	}

	if !t.chunker.NeedsChunking(text) {
		exclusion := ""
		if t.scaffold != nil {
			exclusion = t.scaffold.ExclusionPrompt()
			t.scaffold.UpdateExposure(text)
		}
		return t.client.TransformValidated(ctx, text, llm.TransformOptions{
			Level:     t.cfg.Level,
			Final:     true,
			Exclusion: exclusion,
		})
	}

	chunks := t.chunker.Split(text)
	parts := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		fmt.Fprintf(t.progress, "transforming chunk %d/%d\n", i+1, len(chunks))

		exclusion := ""
		if t.scaffold != nil {
			exclusion = t.scaffold.ExclusionPrompt()
		}

		transformed, err := t.client.TransformValidated(ctx, chunk.Text, llm.TransformOptions{
			Level:        t.cfg.Level,
			Continuation: !chunk.First,
			Final:        chunk.Last,
			Exclusion:    exclusion,
		})
		if err != nil {
			return "", fmt.Errorf("transforming chunk %d: %w", i+1, err)
		}
		parts = append(parts, transformed)

		if t.scaffold != nil {
			t.scaffold.UpdateExposure(chunk.Text)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

// TransformToDocument transforms text and returns the parsed document
// with vocabulary metadata, the optional primer prepended, and the
// optional enhanced traps attached.
func (t *Transformer) TransformToDocument(ctx context.Context, text string) (*types.Document, error) {
	transformed, err := t.TransformText(ctx, text)
	if err != nil {
		return nil, err
	}

	doc := markdown.Parse(transformed, map[string]string{
		"scaffold_level": strconv.Itoa(t.cfg.Level),
	})
	doc.Vocabulary = &types.Vocabulary{ScaffoldLevel: t.cfg.Level}

	// Vocabulary analysis always runs, over the original text so the
	// protocol markers never skew it.
	fmt.Fprintf(t.progress, "analyzing vocabulary\n")
	doc.Vocabulary.LexicalMap = t.analyzer.AnalyzeText(ctx, text)

	if t.primerGen != nil {
		fmt.Fprintf(t.progress, "generating pre-reading primer\n")
		t.primerGen.EnhanceDocument(ctx, doc)
	}

	if t.trapGen != nil && t.cfg.Level <= types.LevelLow {
		fmt.Fprintf(t.progress, "generating enhanced decoder traps\n")
		t.trapGen.EnhanceDocument(ctx, doc)
	}

	return doc, nil
}
