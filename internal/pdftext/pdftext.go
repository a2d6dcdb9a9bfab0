package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aperrin/gardetonor/internal/common"
)

// Config for the poppler-based extractor.
type Config struct {
	Pdftotext string // path to pdftotext binary
	Pdfinfo   string // path to pdfinfo binary
}

// Extractor pulls the text layer out of contract PDFs with poppler.
// Contracts are born-digital documents, so the text layer is the
// authoritative source; there is no raster fallback.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner, for tests.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// ExtractText runs pdftotext -layout over the document and returns the
// text layer. Returns common.ErrNoText when the output is empty or
// whitespace-only.
func (e *Extractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	start := time.Now()

	tmp, err := writeTemp(pdf)
	if err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp); err != nil {
			e.logger.Warn("pdftext.tmp_remove_error", "path", tmp, "error", err)
		}
	}()

	stdout, stderr, err := e.runner.Run(ctx, e.cfg.Pdftotext,
		"-layout", "-enc", "UTF-8", "-eol", "unix", tmp, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w (stderr: %s)", err, truncate(string(stderr), 512))
	}

	text := string(stdout)
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("pdftext.empty",
			"pdf_bytes", len(pdf),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.ErrNoText
	}

	e.logger.Info("pdftext.ok",
		"pdf_bytes", len(pdf),
		"text_len", len(text),
		"pages", strings.Count(text, "\f")+1,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// IsValidPDF checks that pdfinfo can open the document and reports at
// least one page.
func (e *Extractor) IsValidPDF(ctx context.Context, pdf []byte) bool {
	tmp, err := writeTemp(pdf)
	if err != nil {
		return false
	}
	defer os.Remove(tmp)

	stdout, _, err := e.runner.Run(ctx, e.cfg.Pdfinfo, tmp)
	if err != nil {
		return false
	}
	return pageCount(string(stdout)) >= 1
}

func pageCount(info string) int {
	for _, line := range strings.Split(info, "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func writeTemp(pdf []byte) (string, error) {
	f, err := os.CreateTemp("", "gardetonor-*.pdf")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if _, err := f.Write(pdf); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	return filepath.Clean(name), nil
}
