// Package news generates the mock market news feed. Articles are templated
// per symbol — there is no real news integration — but the filtering and
// ordering behavior matches what a real feed would need.
package news

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

type template struct {
	headline string // %s is the symbol
	summary  string
	source   string
	ageHours int // hours before "now" the article was published
	tags     []string
}

var templates = []template{
	{
		headline: "%s Reports Strong Q4 Earnings, Beats Analyst Expectations",
		summary:  "%s delivered exceptional quarterly results with revenue growth exceeding forecasts. The company's strategic initiatives continue to drive market share expansion.",
		source:   "Financial Times",
		ageHours: 3,
		tags:     []string{"earnings", "financial"},
	},
	{
		headline: "Analyst Upgrades %s to Buy Rating on Innovation Pipeline",
		summary:  "Leading investment firm raises price target following recent product announcements and strong competitive positioning in key markets.",
		source:   "Bloomberg",
		ageHours: 21,
		tags:     []string{"analyst", "rating"},
	},
	{
		headline: "%s Announces Strategic Partnership in AI Technology",
		summary:  "The company enters into a significant collaboration agreement that is expected to accelerate growth in artificial intelligence applications.",
		source:   "Reuters",
		ageHours: 45,
		tags:     []string{"partnership", "product announcement"},
	},
	{
		headline: "%s CEO Discusses Future Growth Strategy in Interview",
		summary:  "Company leadership outlines ambitious expansion plans and discusses market opportunities during recent investor call.",
		source:   "CNBC",
		ageHours: 69,
		tags:     []string{"management", "strategy"},
	},
	{
		headline: "%s Stock Volatility Increases Following Market News",
		summary:  "Trading volumes spike as investors react to broader market developments and sector-specific announcements.",
		source:   "MarketWatch",
		ageHours: 93,
		tags:     []string{"market", "volatility"},
	},
}

// Service implements NewsService.
type Service struct {
	now func() time.Time
}

// NewService creates a news service.
func NewService() *Service {
	return &Service{now: time.Now}
}

// Feed generates articles for the given portfolio symbols, applies the
// symbol and tag filters, and returns the result sorted newest first. Empty
// filters mean "no filtering". Symbol publication times are staggered so the
// merged feed interleaves deterministically.
func (s *Service) Feed(symbols []string, filterSymbols []string, filterTags []string) []models.NewsArticle {
	wantSymbol := make(map[string]bool, len(filterSymbols))
	for _, v := range filterSymbols {
		if symbol := models.NormalizeSymbol(v); symbol != "" {
			wantSymbol[symbol] = true
		}
	}
	wantTag := make(map[string]bool, len(filterTags))
	for _, v := range filterTags {
		if tag := strings.ToLower(strings.TrimSpace(v)); tag != "" {
			wantTag[tag] = true
		}
	}

	now := s.now()
	articles := make([]models.NewsArticle, 0, len(symbols)*len(templates))

	for symbolIdx, raw := range symbols {
		symbol := models.NormalizeSymbol(raw)
		if symbol == "" {
			continue
		}
		if len(wantSymbol) > 0 && !wantSymbol[symbol] {
			continue
		}

		for i, tpl := range templates {
			article := s.generate(symbol, symbolIdx, i, tpl, now)
			if len(wantTag) > 0 && !matchesAnyTag(&article, wantTag) {
				continue
			}
			articles = append(articles, article)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}

// Tags returns the distinct sorted tag list across the generated feed for
// the given symbols.
func (s *Service) Tags(symbols []string) []string {
	seen := make(map[string]bool)
	for _, raw := range symbols {
		if models.NormalizeSymbol(raw) == "" {
			continue
		}
		for _, tpl := range templates {
			for _, tag := range tpl.tags {
				seen[tag] = true
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s *Service) generate(symbol string, symbolIdx, templateIdx int, tpl template, now time.Time) models.NewsArticle {
	summary := tpl.summary
	if strings.Contains(summary, "%s") {
		summary = fmt.Sprintf(summary, symbol)
	}

	// Stagger per symbol so merged feeds interleave rather than tie.
	published := now.Add(-time.Duration(tpl.ageHours)*time.Hour - time.Duration(symbolIdx)*17*time.Minute)

	tags := make([]string, len(tpl.tags))
	copy(tags, tpl.tags)

	return models.NewsArticle{
		ID:          fmt.Sprintf("%s-%d", strings.ToLower(symbol), templateIdx),
		Symbol:      symbol,
		Headline:    fmt.Sprintf(tpl.headline, symbol),
		Summary:     summary,
		Source:      tpl.source,
		PublishedAt: published,
		URL:         fmt.Sprintf("https://example.com/news/%s-%d", strings.ToLower(symbol), templateIdx),
		Tags:        tags,
	}
}

func matchesAnyTag(article *models.NewsArticle, want map[string]bool) bool {
	for tag := range want {
		if article.HasTag(tag) {
			return true
		}
	}
	return false
}

// Ensure Service implements NewsService
var _ interfaces.NewsService = (*Service)(nil)
