// Package wiktionary infers the gender of French words missing from the
// lexicon by scraping fr.wiktionary.org pages. Every failure is soft: the
// provider logs it and reports an empty gender set.
package wiktionary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/legenre/internal/config"
	"github.com/heartmarshall/legenre/internal/domain"
	"golang.org/x/time/rate"
)

const retryDelay = 500 * time.Millisecond

// Provider fetches French Wiktionary pages and extracts gender evidence.
// Safe for concurrent use.
type Provider struct {
	baseURL      string
	userAgent    string
	timeout      time.Duration
	maxBodyBytes int64
	markers      Markers
	httpClient   *http.Client
	limiter      *rate.Limiter
	log          *slog.Logger
}

// NewProvider creates a Provider from the fallback configuration.
func NewProvider(cfg config.FallbackConfig, logger *slog.Logger) *Provider {
	markers := DefaultMarkers
	if cfg.MasculineMarker != "" {
		markers.Masculine = cfg.MasculineMarker
	}
	if cfg.FeminineMarker != "" {
		markers.Feminine = cfg.FeminineMarker
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Provider{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		timeout:      cfg.Timeout,
		maxBodyBytes: cfg.MaxBodyBytes,
		markers:      markers,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		limiter:      rate.NewLimiter(limit, burst),
		log:          logger.With("adapter", "wiktionary"),
	}
}

// ExtractGenders returns the genders the Wiktionary page for word suggests.
// Transport errors, timeouts, non-200 responses, empty bodies and
// unparsable markup all yield an empty set.
func (p *Provider) ExtractGenders(ctx context.Context, word string) domain.GenderSet {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	body, err := p.fetch(ctx, word)
	if err != nil {
		p.log.WarnContext(ctx, "wiktionary lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return domain.GenderSet{}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		p.log.DebugContext(ctx, "wiktionary empty body", slog.String("word", word))
		return domain.GenderSet{}
	}

	genders, err := ExtractGenders(bytes.NewReader(body), p.markers)
	if err != nil {
		p.log.WarnContext(ctx, "wiktionary markup rejected",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return domain.GenderSet{}
	}

	p.log.DebugContext(ctx, "wiktionary response",
		slog.String("word", word),
		slog.Int("genders", genders.Len()),
	)
	return genders
}

// fetch returns the page body, or nil with no error on 404.
func (p *Provider) fetch(ctx context.Context, word string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wiktionary: throttle: %w", err)
	}

	reqURL := p.baseURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: create request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	req.Header.Set("Accept", "text/html")

	p.log.DebugContext(ctx, "wiktionary request", slog.String("word", word))

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode)
	}

	var r io.Reader = resp.Body
	if p.maxBodyBytes > 0 {
		r = io.LimitReader(resp.Body, p.maxBodyBytes)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: read body: %w", err)
	}
	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "wiktionary retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle retry: %w", err)
	}

	return p.httpClient.Do(req)
}
