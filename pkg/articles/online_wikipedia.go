package articles

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/chronicle-dev/chronicle/pkg/wiki"
)

// OnlineWikipedia fetches articles from live Wikipedia editions. For each
// keyword it fetches the user's native-language page (when the user is not
// English) and always the English page; cross-lingual navigation bridges
// keywords that only resolve in one edition.
type OnlineWikipedia struct {
	client *wiki.Client
}

// NewOnlineWikipedia creates the online Wikipedia strategy.
func NewOnlineWikipedia(client *wiki.Client) *OnlineWikipedia {
	return &OnlineWikipedia{client: client}
}

// Name implements Strategy.
func (s *OnlineWikipedia) Name() string { return SourceOnlineWikipedia }

// fetchSpec is one planned page fetch.
type fetchSpec struct {
	title      string
	lang       string
	crossFrom  string // when set, navigate from this source-language title
	sourceLang string
}

// GetArticles implements Strategy. All fetches run concurrently; the wiki
// client's adaptive semaphore bounds actual parallelism.
func (s *OnlineWikipedia) GetArticles(ctx context.Context, query QueryData) ([]SourceArticle, error) {
	specs := s.planFetches(query)
	if len(specs) == 0 {
		return nil, nil
	}

	var (
		mu       sync.Mutex
		articles []SourceArticle
		wg       sync.WaitGroup
	)
	for _, spec := range specs {
		wg.Add(1)
		go func(spec fetchSpec) {
			defer wg.Done()
			if article, ok := s.fetchOne(ctx, spec); ok {
				mu.Lock()
				articles = append(articles, article)
				mu.Unlock()
			}
		}(spec)
	}
	wg.Wait()

	return articles, nil
}

// planFetches builds the per-keyword fetch plan. english_keywords pair
// position by position with the original keywords; English users search
// with their original keywords directly.
func (s *OnlineWikipedia) planFetches(query QueryData) []fetchSpec {
	english := query.UserLanguage == "" || query.UserLanguage == "en"
	var specs []fetchSpec

	for i, kw := range query.Keywords {
		if !english {
			// Native-language page first.
			specs = append(specs, fetchSpec{title: kw, lang: query.UserLanguage})
		}

		englishKeyword := kw
		if !english {
			if i < len(query.EnglishKeywords) {
				englishKeyword = query.EnglishKeywords[i]
			} else {
				// No aligned translation: navigate cross-lingually from the
				// native page instead of guessing a title.
				specs = append(specs, fetchSpec{title: kw, lang: "en", crossFrom: kw, sourceLang: query.UserLanguage})
				continue
			}
		}
		specs = append(specs, fetchSpec{title: englishKeyword, lang: "en"})
	}
	return specs
}

func (s *OnlineWikipedia) fetchOne(ctx context.Context, spec fetchSpec) (SourceArticle, bool) {
	if spec.crossFrom != "" {
		result := s.client.GetWikiPageTextForTargetLang(ctx, spec.crossFrom, spec.sourceLang, spec.lang)
		if result.OverallStatus != wiki.TargetLangStatusSuccess {
			slog.Debug("Cross-lingual fetch yielded no article",
				"title", spec.crossFrom, "source_lang", spec.sourceLang,
				"target_lang", spec.lang, "status", result.OverallStatus)
			return SourceArticle{}, false
		}
		return SourceArticle{
			SourceName:       SourceOnlineWikipedia,
			SourceIdentifier: strconv.Itoa(result.PageID),
			Title:            result.Title,
			SourceURL:        result.URL,
			Language:         spec.lang,
			SourceType:       "wikipedia",
			Text:             result.Text,
		}, true
	}

	page := s.client.GetWikiPageText(ctx, spec.title, spec.lang)
	if page.Error != "" || page.Text == "" {
		slog.Debug("Wikipedia fetch yielded no article",
			"title", spec.title, "lang", spec.lang, "error", page.Error)
		return SourceArticle{}, false
	}
	return SourceArticle{
		SourceName:       SourceOnlineWikipedia,
		SourceIdentifier: strconv.Itoa(page.PageID),
		Title:            page.Title,
		SourceURL:        page.URL,
		Language:         spec.lang,
		SourceType:       "wikipedia",
		Text:             page.Text,
	}, true
}
