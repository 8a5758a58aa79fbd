package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chronicle-dev/chronicle/pkg/config"
	"github.com/chronicle-dev/chronicle/pkg/retry"
)

// Client fetches page text and search results from Wikipedia/Wikinews via
// the MediaWiki action API. All requests pass through the adaptive
// semaphore, the retry policy table, and the metrics collector.
type Client struct {
	cfg     *config.WikiConfig
	http    *http.Client
	sem     *AdaptiveSemaphore
	metrics *MetricsCollector

	pageCache   *resultCache[PageResult]
	targetCache *resultCache[TargetLangResult]
	newsCache   *resultCache[NewsResult]
}

// NewClient creates a wiki client from configuration.
func NewClient(cfg *config.WikiConfig) *Client {
	metrics := NewMetricsCollector()
	return &Client{
		cfg:         cfg,
		http:        &http.Client{Timeout: cfg.RequestTimeout},
		sem:         NewAdaptiveSemaphore(cfg.Semaphore.Initial, cfg.Semaphore.Min, cfg.Semaphore.Max),
		metrics:     metrics,
		pageCache:   newResultCache[PageResult](cfg.CacheSize, cfg.SuccessTTL, cfg.ErrorTTL, metrics),
		targetCache: newResultCache[TargetLangResult](cfg.CacheSize, cfg.SuccessTTL, cfg.ErrorTTL, metrics),
		newsCache:   newResultCache[NewsResult](cfg.CacheSize, cfg.SuccessTTL, cfg.ErrorTTL, metrics),
	}
}

// Metrics returns the request metrics collector.
func (c *Client) Metrics() *MetricsCollector { return c.metrics }

// GetWikiPageText fetches the plain text of a Wikipedia page, following
// redirects. Errors are reported in-band via PageResult.Error so callers
// can continue with other pages.
func (c *Client) GetWikiPageText(ctx context.Context, title, lang string) PageResult {
	key := cacheKey("page_text", title, lang)
	if cached, ok := c.pageCache.get(key); ok {
		return cached
	}

	result := c.fetchPageText(ctx, title, lang)
	c.pageCache.put(key, result, result.Error == "")
	return result
}

func (c *Client) fetchPageText(ctx context.Context, title, lang string) PageResult {
	info, err := c.resolvePage(ctx, title, lang)
	if err != nil {
		return PageResult{Title: title, Error: err.Error()}
	}
	if info.Missing {
		return PageResult{Title: title, Error: fmt.Sprintf("page %q not found on %s.wikipedia.org", title, lang)}
	}

	html, err := c.fetchParsedHTML(ctx, wikipediaHost(lang), info.PageID)
	if err != nil {
		return PageResult{Title: info.Title, PageID: info.PageID, Redirect: info.Redirect, Error: err.Error()}
	}

	text, err := ExtractArticleText(html)
	if err != nil {
		return PageResult{Title: info.Title, PageID: info.PageID, Redirect: info.Redirect, Error: fmt.Sprintf("extracting article text: %v", err)}
	}

	return PageResult{
		Title:    info.Title,
		URL:      CanonicalPageURL(lang, info.PageID),
		PageID:   info.PageID,
		Text:     text,
		Redirect: info.Redirect,
	}
}

// GetWikiPageTextForTargetLang resolves a page in the source language,
// follows its cross-lingual link to the target language, and fetches that
// page's text.
func (c *Client) GetWikiPageTextForTargetLang(ctx context.Context, sourceTitle, sourceLang, targetLang string) TargetLangResult {
	key := cacheKey("target_lang", sourceTitle, sourceLang, targetLang)
	if cached, ok := c.targetCache.get(key); ok {
		return cached
	}

	result := c.fetchTargetLang(ctx, sourceTitle, sourceLang, targetLang)
	c.targetCache.put(key, result, result.OverallStatus == TargetLangStatusSuccess)
	return result
}

func (c *Client) fetchTargetLang(ctx context.Context, sourceTitle, sourceLang, targetLang string) TargetLangResult {
	targetTitle, outcome, err := c.lookupLangLink(ctx, sourceTitle, sourceLang, targetLang)
	if err != nil {
		return TargetLangResult{OverallStatus: TargetLangStatusError, LinkSearchOutcome: outcome, Error: err.Error()}
	}
	if outcome != "found" {
		status := TargetLangStatusNoLink
		if outcome == "source_missing" {
			status = TargetLangStatusSourceMissing
		}
		return TargetLangResult{OverallStatus: status, LinkSearchOutcome: outcome}
	}

	page := c.GetWikiPageText(ctx, targetTitle, targetLang)
	if page.Error != "" {
		return TargetLangResult{OverallStatus: TargetLangStatusError, LinkSearchOutcome: outcome, Error: page.Error}
	}
	return TargetLangResult{
		OverallStatus:     TargetLangStatusSuccess,
		Text:              page.Text,
		Title:             page.Title,
		URL:               page.URL,
		PageID:            page.PageID,
		LinkSearchOutcome: outcome,
	}
}

// pageInfo is the resolved identity of a page after redirects.
type pageInfo struct {
	Title    string
	PageID   int
	Missing  bool
	Redirect *RedirectInfo
}

// queryResponse covers the action=query shapes used here.
type queryResponse struct {
	Query struct {
		Redirects []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"redirects"`
		Pages map[string]struct {
			PageID    int    `json:"pageid"`
			Title     string `json:"title"`
			Missing   *any   `json:"missing,omitempty"`
			LangLinks []struct {
				Lang  string `json:"lang"`
				Title string `json:"*"`
			} `json:"langlinks"`
		} `json:"pages"`
		Search []struct {
			Title  string `json:"title"`
			PageID int    `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

// resolvePage resolves title to its canonical form and page id, following
// redirects.
func (c *Client) resolvePage(ctx context.Context, title, lang string) (*pageInfo, error) {
	params := url.Values{
		"action":    {"query"},
		"titles":    {title},
		"redirects": {"1"},
		"prop":      {"info"},
		"format":    {"json"},
	}
	var resp queryResponse
	if err := c.doJSON(ctx, "resolve_page", wikipediaHost(lang), params, &resp); err != nil {
		return nil, err
	}

	info := &pageInfo{}
	for _, r := range resp.Query.Redirects {
		if r.From == title || info.Redirect != nil {
			info.Redirect = &RedirectInfo{From: r.From, To: r.To}
			break
		}
	}
	for _, p := range resp.Query.Pages {
		info.Title = p.Title
		info.PageID = p.PageID
		info.Missing = p.Missing != nil || p.PageID == 0
		break
	}
	if info.Title == "" && info.PageID == 0 {
		info.Title = title
		info.Missing = true
	}
	return info, nil
}

// lookupLangLink returns the target-language title for a source page.
// outcome is one of "found", "not_found", "source_missing".
func (c *Client) lookupLangLink(ctx context.Context, title, sourceLang, targetLang string) (string, string, error) {
	params := url.Values{
		"action":    {"query"},
		"titles":    {title},
		"redirects": {"1"},
		"prop":      {"langlinks"},
		"lllimit":   {"500"},
		"format":    {"json"},
	}
	var resp queryResponse
	if err := c.doJSON(ctx, "langlinks", wikipediaHost(sourceLang), params, &resp); err != nil {
		return "", "error", err
	}

	for _, p := range resp.Query.Pages {
		if p.Missing != nil {
			return "", "source_missing", nil
		}
		for _, ll := range p.LangLinks {
			if ll.Lang == targetLang {
				return ll.Title, "found", nil
			}
		}
	}
	return "", "not_found", nil
}

// parseResponse is the action=parse shape.
type parseResponse struct {
	Parse struct {
		Title  string `json:"title"`
		PageID int    `json:"pageid"`
		Text   struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// fetchParsedHTML fetches the rendered HTML for a page id.
func (c *Client) fetchParsedHTML(ctx context.Context, host string, pageID int) (string, error) {
	params := url.Values{
		"action": {"parse"},
		"pageid": {strconv.Itoa(pageID)},
		"prop":   {"text"},
		"format": {"json"},
	}
	var resp parseResponse
	if err := c.doJSON(ctx, "parse_page", host, params, &resp); err != nil {
		return "", err
	}
	if resp.Parse.Text.Content == "" {
		return "", fmt.Errorf("empty parse result for page %d", pageID)
	}
	return resp.Parse.Text.Content, nil
}

// doJSON performs one API GET through the semaphore, retry policy, and
// metrics, decoding the JSON body into out.
func (c *Client) doJSON(ctx context.Context, op, host string, params url.Values, out any) error {
	body, err := retry.Do(ctx, "wiki."+op, retry.Options{
		BaseDelay: c.cfg.RetryBaseDelay,
		Observer:  c.metrics,
	}, func(ctx context.Context) ([]byte, error) {
		if err := c.sem.Acquire(ctx); err != nil {
			return nil, err
		}
		data, err := c.get(ctx, host, params)
		c.sem.Release(err == nil)
		return data, err
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", op, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, host string, params url.Values) ([]byte, error) {
	u := fmt.Sprintf("https://%s/w/api.php?%s", host, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &retry.StatusError{StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// wikipediaHost returns the API host for a language edition.
func wikipediaHost(lang string) string {
	if lang == "" {
		lang = "en"
	}
	return lang + ".wikipedia.org"
}

// wikinewsHost returns the Wikinews API host for a language edition.
func wikinewsHost(lang string) string {
	if lang == "" {
		lang = "en"
	}
	return lang + ".wikinews.org"
}

// CanonicalPageURL standardizes page URLs to the ?curid form so articles
// deduplicate across titles and redirects.
func CanonicalPageURL(lang string, pageID int) string {
	return fmt.Sprintf("https://%s/?curid=%d", wikipediaHost(lang), pageID)
}
