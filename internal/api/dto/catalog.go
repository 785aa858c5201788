package dto

import (
	"net/url"
	"strconv"
	"strings"

	"vismify/internal/api/services"
	"vismify/internal/domain"
)

type Tool struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	Users       string   `json:"users"`
	IsNew       bool     `json:"isNew"`
	IsPremium   bool     `json:"isPremium"`
	Icon        string   `json:"icon"`
	Gradient    string   `json:"gradient"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CatalogResponse struct {
	Tools      []Tool     `json:"tools"`
	Total      int        `json:"total"`
	Category   string     `json:"category"`
	Query      string     `json:"q"`
	Sort       string     `json:"sort"`
	MinRating  float64    `json:"minRating"`
	Tier       string     `json:"tier"`
	Categories []Category `json:"categories"`
}

// SearchParams is the wire form of a catalog query, shared by the JSON
// API, the websocket channel and the server-rendered page.
type SearchParams struct {
	Category  string  `json:"category"`
	Query     string  `json:"q"`
	Sort      string  `json:"sort"`
	MinRating float64 `json:"min_rating"`
	Tier      string  `json:"tier"`
}

func SearchParamsFromValues(values url.Values) SearchParams {
	params := SearchParams{
		Category: values.Get("category"),
		Query:    values.Get("q"),
		Sort:     values.Get("sort"),
		Tier:     values.Get("tier"),
	}
	if v := strings.TrimSpace(values.Get("min_rating")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinRating = f
		}
	}
	return params
}

// ToQuery fills defaults for empty fields. Unknown values are passed
// through so the catalog rules decide what they match.
func (p SearchParams) ToQuery() domain.CatalogQuery {
	q := domain.DefaultCatalogQuery()
	if p.Category != "" {
		q.Category = domain.Category(p.Category)
	}
	if p.Sort != "" {
		q.Sort = domain.SortKey(p.Sort)
	}
	if p.Tier != "" {
		q.Tier = domain.Tier(p.Tier)
	}
	q.Search = p.Query
	if p.MinRating > 0 && p.MinRating <= 5 {
		q.MinRating = p.MinRating
	}
	return q
}

func ToolFromDomain(tool domain.Tool) Tool {
	features := tool.Features
	if features == nil {
		features = []string{}
	}
	return Tool{
		ID:          tool.ID,
		Title:       tool.Title,
		Description: tool.Description,
		Category:    string(tool.Category),
		Features:    features,
		Rating:      tool.Rating,
		Users:       tool.Users,
		IsNew:       tool.IsNew,
		IsPremium:   tool.IsPremium,
		Icon:        tool.Icon,
		Gradient:    tool.Gradient,
	}
}

func CategoriesFromDomain(counts []services.CategoryCount) []Category {
	out := make([]Category, 0, len(counts))
	for _, c := range counts {
		out = append(out, Category{ID: string(c.Category.ID), Name: c.Category.Name, Count: c.Count})
	}
	return out
}

func CatalogFromDomain(result *services.CatalogResult) *CatalogResponse {
	if result == nil {
		return nil
	}

	tools := make([]Tool, 0, len(result.Tools))
	for _, tool := range result.Tools {
		tools = append(tools, ToolFromDomain(tool))
	}

	return &CatalogResponse{
		Tools:      tools,
		Total:      result.Total,
		Category:   string(result.Query.Category),
		Query:      result.Query.Search,
		Sort:       string(result.Query.Sort),
		MinRating:  result.Query.MinRating,
		Tier:       string(result.Query.Tier),
		Categories: CategoriesFromDomain(result.Categories),
	}
}
