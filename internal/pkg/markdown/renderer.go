package markdown

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"html/template"
	"io"
	"regexp"
	"time"

	"github.com/futig/contract-workbench/internal/pkg/metrics"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/microcosm-cc/bluemonday"
	"github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

const previewRunes = 100

// Converter is the subset of goldmark.Markdown used by the renderer
type Converter interface {
	Convert(source []byte, w io.Writer, opts ...parser.ParseOption) error
}

type Config struct {
	CacheTTL time.Duration
}

// Renderer turns AI generated markdown into HTML that is safe to embed
type Renderer struct {
	converter Converter
	policy    *bluemonday.Policy
	cache     *cache.Cache
}

type Option func(*Renderer)

// WithConverter replaces the goldmark converter
func WithConverter(c Converter) Option {
	return func(r *Renderer) {
		r.converter = c
	}
}

func NewRenderer(cfg Config, opts ...Option) *Renderer {
	r := &Renderer{
		converter: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: newPolicy(),
	}

	if cfg.CacheTTL > 0 {
		r.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w-]+$`)).OnElements("code")
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")
	return p
}

// Transform renders text as sanitized HTML. Conversion failures fall back to
// the escaped source text and are never returned to the caller.
func (r *Renderer) Transform(ctx context.Context, text string) template.HTML {
	if text == "" {
		return ""
	}

	key := cacheKey(text)
	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			metrics.MarkdownRenders.WithLabelValues("cached").Inc()
			return cached.(template.HTML)
		}
	}

	ctxzap.Debug(ctx, "rendering markdown", zap.String("input_preview", truncate(text)))

	var buf bytes.Buffer
	if err := r.converter.Convert([]byte(text), &buf); err != nil {
		ctxzap.Error(ctx, "failed to render markdown, falling back to raw text", zap.Error(err))
		metrics.MarkdownRenders.WithLabelValues("fallback").Inc()
		return template.HTML(template.HTMLEscapeString(text))
	}

	out := template.HTML(r.policy.SanitizeBytes(buf.Bytes()))

	ctxzap.Debug(ctx, "markdown rendered", zap.String("output_preview", truncate(string(out))))
	metrics.MarkdownRenders.WithLabelValues("rendered").Inc()

	if r.cache != nil {
		r.cache.Set(key, out, cache.DefaultExpiration)
	}

	return out
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}
	return string(runes[:previewRunes]) + "..."
}
