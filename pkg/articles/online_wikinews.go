package articles

import (
	"context"
	"log/slog"

	"github.com/chronicle-dev/chronicle/pkg/wiki"
)

// OnlineWikinews searches the user's Wikinews edition per keyword and
// collects full article texts.
type OnlineWikinews struct {
	client *wiki.Client
}

// NewOnlineWikinews creates the Wikinews strategy.
func NewOnlineWikinews(client *wiki.Client) *OnlineWikinews {
	return &OnlineWikinews{client: client}
}

// Name implements Strategy.
func (s *OnlineWikinews) Name() string { return SourceOnlineWikinews }

// GetArticles implements Strategy.
func (s *OnlineWikinews) GetArticles(ctx context.Context, query QueryData) ([]SourceArticle, error) {
	lang := query.UserLanguage
	if lang == "" {
		lang = "en"
	}

	var articles []SourceArticle
	for _, kw := range query.Keywords {
		result := s.client.GetWikinews(ctx, kw, lang)
		if result.Status != "success" {
			slog.Warn("Wikinews search failed", "keyword", kw, "lang", lang, "error", result.Error)
			continue
		}
		for _, a := range result.Articles {
			if a.Status != "success" || a.Text == "" {
				continue
			}
			articles = append(articles, SourceArticle{
				SourceName:       SourceOnlineWikinews,
				SourceIdentifier: a.URL,
				Title:            a.Title,
				SourceURL:        a.URL,
				Language:         lang,
				SourceType:       "wikinews",
				Text:             a.Text,
			})
		}
	}
	return articles, nil
}
