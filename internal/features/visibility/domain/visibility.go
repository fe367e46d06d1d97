package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	StatusOK       = "ok"
	StatusNoAPIKey = "no_api_key"

	// VisibilityResultsPerQuery is how many organic results each visibility query asks for.
	VisibilityResultsPerQuery = 10
	// TopResultsShown is how many organic results a query report lists.
	TopResultsShown = 5
	// MaxPageContentRunes caps extracted competitor page text.
	MaxPageContentRunes = 3000
	// PageReadFailed replaces the content of a page that could not be read.
	PageReadFailed = "Failed to extract page content"

	DefaultCompetitorResults = 3
	MaxCompetitorResults     = 5
	MaxQueries               = 5
)

var ErrProviderUnavailable = errors.New("search provider unavailable")

// ProviderError is returned when the search provider answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("serper API error: %d", e.StatusCode)
}

// Brand identifies whose results count as "ours".
type Brand struct {
	Name   string
	Domain string
}

// Matches reports whether an organic result belongs to the brand.
func (b Brand) Matches(r OrganicResult) bool {
	if b.Name != "" && strings.Contains(strings.ToLower(r.Title), strings.ToLower(b.Name)) {
		return true
	}
	return b.OwnsLink(r.Link)
}

// OwnsLink reports whether the link points at the brand's domain.
func (b Brand) OwnsLink(link string) bool {
	return b.Domain != "" && strings.Contains(link, b.Domain)
}

// OrganicResult is one organic hit from the search provider.
type OrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// SearchResult is the part of a provider response the service reads.
type SearchResult struct {
	Organic        []OrganicResult `json:"organic"`
	AnswerBox      json.RawMessage `json:"answerBox,omitempty"`
	KnowledgeGraph json.RawMessage `json:"knowledgeGraph,omitempty"`
}

// Overview returns the answer box, else the knowledge graph, else nil.
func (r SearchResult) Overview() json.RawMessage {
	if len(r.AnswerBox) > 0 && string(r.AnswerBox) != "null" {
		return r.AnswerBox
	}
	if len(r.KnowledgeGraph) > 0 && string(r.KnowledgeGraph) != "null" {
		return r.KnowledgeGraph
	}
	return nil
}

// TopResult is one entry of a query report's leaderboard.
type TopResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	IsBrand  bool   `json:"is_brand"`
}

// QueryReport is the visibility outcome of a single query. Pointer fields are
// null when the query could not be evaluated.
type QueryReport struct {
	Query            string          `json:"query"`
	Error            string          `json:"error,omitempty"`
	BrandMentioned   *bool           `json:"brand_mentioned"`
	BrandPosition    *int            `json:"brand_position"`
	ProductNameFound *bool           `json:"product_name_found"`
	TopResults       []TopResult     `json:"top_results"`
	AIOverview       json.RawMessage `json:"ai_overview"`
}

// Unevaluated returns a report with no findings, optionally carrying an error.
func Unevaluated(query, errMsg string) QueryReport {
	return QueryReport{Query: query, Error: errMsg, TopResults: []TopResult{}}
}

// Analyze scores one provider response for the brand and product name.
func Analyze(query, productName string, res SearchResult, brand Brand) QueryReport {
	mentioned := false
	var position *int
	for i, r := range res.Organic {
		if brand.Matches(r) {
			mentioned = true
			p := i + 1
			position = &p
			break
		}
	}

	needle := strings.ToLower(productName)
	found := false
	for _, r := range res.Organic {
		if strings.Contains(strings.ToLower(r.Title), needle) || strings.Contains(strings.ToLower(r.Snippet), needle) {
			found = true
			break
		}
	}

	top := make([]TopResult, 0, TopResultsShown)
	for i, r := range res.Organic {
		if i == TopResultsShown {
			break
		}
		top = append(top, TopResult{
			Position: i + 1,
			Title:    r.Title,
			URL:      r.Link,
			IsBrand:  brand.OwnsLink(r.Link),
		})
	}

	return QueryReport{
		Query:            query,
		BrandMentioned:   &mentioned,
		BrandPosition:    position,
		ProductNameFound: &found,
		TopResults:       top,
		AIOverview:       res.Overview(),
	}
}

// VisibilityReport covers every query of one check.
type VisibilityReport struct {
	Status      string        `json:"status"`
	Message     string        `json:"message,omitempty"`
	ProductName string        `json:"product_name"`
	Results     []QueryReport `json:"results"`
}

// CompetitorPage is one competitor result with its extracted text.
type CompetitorPage struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Content string `json:"content"`
}

// CompetitorReport is the outcome of a competitor content search.
type CompetitorReport struct {
	Status       string           `json:"status"`
	Brand        string           `json:"brand"`
	Query        string           `json:"query"`
	Message      string           `json:"message,omitempty"`
	ManualAction string           `json:"manual_action,omitempty"`
	Pages        []CompetitorPage `json:"pages"`
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
