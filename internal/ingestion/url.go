package ingestion

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/fetch"
)

// URLOptions configures job posting ingestion from the web.
type URLOptions struct {
	// UseBrowser re-renders pages whose HTTP text is shorter than fetch.MinContentLength.
	UseBrowser bool
	// Renderer defaults to headless Chrome when UseBrowser is set.
	Renderer fetch.Renderer
	Fetch    *fetch.Options
	Logger   *zap.Logger
}

// IsURL reports whether source looks like an http(s) URL rather than a path.
func IsURL(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load reads a document from a URL or a local file.
func Load(ctx context.Context, source string, opts URLOptions) (*Document, error) {
	if IsURL(source) {
		return IngestFromURL(ctx, source, opts)
	}
	return LoadFile(source)
}

// IngestFromURL fetches a job posting, extracts its main text with platform
// selectors and cleans it. A failed browser render keeps the HTTP text.
func IngestFromURL(ctx context.Context, urlStr string, opts URLOptions) (*Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("fetching job posting", zap.String("url", urlStr), zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	logger.Debug("extracted posting text", zap.Int("html_bytes", len(result.HTML)), zap.Int("text_chars", len(text)))

	rendered := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		renderer := opts.Renderer
		if renderer == nil {
			renderer = fetch.NewChromeRenderer(logger)
		}
		logger.Info("posting text too short, rendering in browser",
			zap.Int("text_chars", len(text)), zap.Int("min_chars", fetch.MinContentLength))

		if html, renderErr := renderer.Render(ctx, urlStr); renderErr != nil {
			logger.Warn("browser rendering failed, using HTTP content", zap.Error(renderErr))
		} else if browserText, extractErr := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...); extractErr != nil {
			logger.Warn("browser content extraction failed", zap.Error(extractErr))
		} else {
			text = browserText
			rendered = true
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no text found at %s", ErrContentExtractionFailed, urlStr)
	}

	meta := NewMetadata(cleaned, urlStr)
	meta.Format = string(FormatHTML)
	meta.Platform = string(platform)
	meta.Rendered = rendered
	meta.Truncated = result.Truncated

	return &Document{
		Name:     urlStr,
		Text:     cleaned,
		Metadata: meta,
	}, nil
}
