// Package http provides an HTTP implementation of docsplit.ArticleService
// backed by the help-center REST API.
package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/docsplit"
	"github.com/fwojciec/docsplit/retry"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout bounds each request attempt.
const DefaultFetchTimeout = 30 * time.Second

// DefaultLocale is the help-center locale articles are requested in.
const DefaultLocale = "en-us"

// Ensure ArticleService implements docsplit.ArticleService at compile time.
var _ docsplit.ArticleService = (*ArticleService)(nil)

// Config identifies the help-center API and the credentials used for it.
type Config struct {
	// BaseURL is the help-center API root,
	// e.g. https://example.zendesk.com/api/v2/help_center.
	BaseURL  string
	Locale   string
	Email    string
	Password string
}

// ArticleService retrieves help-center articles by ID with basic
// authentication, a per-attempt timeout and bounded retries.
type ArticleService struct {
	client  *http.Client
	config  Config
	timeout time.Duration
	delays  []time.Duration
	logger  retry.LogFunc
	limiter *rate.Limiter
}

// Option configures an ArticleService.
type Option func(*ArticleService)

// WithTimeout sets the timeout for each request attempt.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *ArticleService) {
		s.timeout = d
	}
}

// WithRetryDelays sets the waits between attempts. The number of attempts
// is len(delays)+1. Defaults to retry.DefaultDelays().
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *ArticleService) {
		s.delays = delays
	}
}

// WithRetryLogger sets a function called before each retry.
func WithRetryLogger(fn retry.LogFunc) Option {
	return func(s *ArticleService) {
		s.logger = fn
	}
}

// WithRateLimit caps outgoing requests, retries included, at rps requests
// per second. Zero or negative disables the cap.
func WithRateLimit(rps float64) Option {
	return func(s *ArticleService) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewArticleService creates a new ArticleService.
func NewArticleService(config Config, opts ...Option) *ArticleService {
	if config.Locale == "" {
		config.Locale = DefaultLocale
	}
	s := &ArticleService{
		config:  config,
		timeout: DefaultFetchTimeout,
		delays:  retry.DefaultDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

var articleIDRe = regexp.MustCompile(`^\d+$`)

// FindArticleByID implements docsplit.ArticleService.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*docsplit.Article, error) {
	if !articleIDRe.MatchString(id) {
		return nil, docsplit.Errorf(docsplit.EINVALID, "invalid article ID %q", id)
	}

	url := s.articleURL(id)
	policy := retry.Policy{
		Delays:    s.delays,
		Retryable: isRetryable,
		Logger:    s.logger,
	}

	return retry.Do(ctx, policy, func(ctx context.Context) (*docsplit.Article, error) {
		return s.fetch(ctx, url)
	})
}

func (s *ArticleService) articleURL(id string) string {
	return strings.TrimRight(s.config.BaseURL, "/") + "/" + s.config.Locale + "/articles/" + id + ".json"
}

// isRetryable reports whether another attempt could succeed. Only
// transport failures, timeouts, 429 and 5xx responses qualify.
func isRetryable(err error) bool {
	return docsplit.ErrorCode(err) == docsplit.EUNAVAILABLE
}

func (s *ArticleService) fetch(ctx context.Context, url string) (*docsplit.Article, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docsplit.Errorf(docsplit.EINVALID, "invalid request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.config.Email != "" {
		req.SetBasicAuth(s.config.Email, s.config.Password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, docsplit.Errorf(docsplit.EUNAVAILABLE, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, url); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, docsplit.Errorf(docsplit.EUNAVAILABLE, "failed to read response: %v", err)
	}

	var payload articleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, docsplit.Errorf(docsplit.EINTERNAL, "invalid article response: %v", err)
	}
	if payload.Article == nil {
		return nil, docsplit.Errorf(docsplit.EINTERNAL, "response for %s has no article", url)
	}

	return payload.Article.toArticle(), nil
}

func checkStatus(code int, url string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return docsplit.Errorf(docsplit.EUNAVAILABLE, "HTTP %d for %s", code, url)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return docsplit.Errorf(docsplit.EUNAUTHORIZED, "HTTP %d for %s", code, url)
	case code == http.StatusNotFound:
		return docsplit.Errorf(docsplit.ENOTFOUND, "HTTP %d for %s", code, url)
	default:
		return docsplit.Errorf(docsplit.EINVALID, "HTTP %d for %s", code, url)
	}
}

type articleResponse struct {
	Article *articleJSON `json:"article"`
}

type articleJSON struct {
	ID        json.Number `json:"id"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
	AuthorID  json.Number `json:"author_id"`
	SectionID json.Number `json:"section_id"`
	HTMLURL   string      `json:"html_url"`
}

func (a *articleJSON) toArticle() *docsplit.Article {
	return &docsplit.Article{
		ID:        a.ID.String(),
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		AuthorID:  a.AuthorID.String(),
		SectionID: a.SectionID.String(),
		HTMLURL:   a.HTMLURL,
	}
}
