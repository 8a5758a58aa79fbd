package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetWikinews searches the language's Wikinews edition and collects the full
// text of up to SearchResultLimit articles.
func (c *Client) GetWikinews(ctx context.Context, searchQuery, lang string) NewsResult {
	key := cacheKey("wikinews", searchQuery, lang)
	if cached, ok := c.newsCache.get(key); ok {
		return cached
	}

	result := c.fetchWikinews(ctx, searchQuery, lang)
	c.newsCache.put(key, result, result.Status == "success")
	return result
}

func (c *Client) fetchWikinews(ctx context.Context, searchQuery, lang string) NewsResult {
	host := wikinewsHost(lang)
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {searchQuery},
		"srlimit":  {strconv.Itoa(c.cfg.SearchResultLimit)},
		"format":   {"json"},
	}

	var resp queryResponse
	if err := c.doJSON(ctx, "wikinews_search", host, params, &resp); err != nil {
		return NewsResult{Status: "error", Error: err.Error()}
	}
	if len(resp.Query.Search) == 0 {
		return NewsResult{Status: "success"}
	}

	articles := make([]NewsArticle, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		article := NewsArticle{Title: hit.Title}

		html, err := c.fetchParsedHTML(ctx, host, hit.PageID)
		if err != nil {
			article.Status = "error"
			article.Error = err.Error()
			articles = append(articles, article)
			continue
		}
		text, err := ExtractArticleText(html)
		if err != nil {
			article.Status = "error"
			article.Error = fmt.Sprintf("extracting article text: %v", err)
			articles = append(articles, article)
			continue
		}

		article.Text = text
		article.URL = fmt.Sprintf("https://%s/?curid=%d", host, hit.PageID)
		article.Status = "success"
		articles = append(articles, article)
	}

	return NewsResult{Articles: articles, Status: "success"}
}
