package domain

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortPopular SortKey = "popular"
	SortRating  SortKey = "rating"
	SortUsers   SortKey = "users"
	SortNewest  SortKey = "newest"
)

var SortKeys = []SortKey{SortPopular, SortRating, SortUsers, SortNewest}

func (k SortKey) Label() string {
	switch k {
	case SortRating:
		return "Highest Rated"
	case SortUsers:
		return "Most Users"
	case SortNewest:
		return "Newest"
	default:
		return "Most Popular"
	}
}

// Tier narrows the catalog by the premium badge. The zero value keeps
// every record.
type Tier string

const (
	TierAll     Tier = "all"
	TierPremium Tier = "premium"
	TierFree    Tier = "free"
)

func (t Tier) matches(tool Tool) bool {
	switch t {
	case TierPremium:
		return tool.IsPremium
	case TierFree:
		return !tool.IsPremium
	default:
		return true
	}
}

// CatalogQuery is the full set of inputs the tools section exposes.
// Category, Search and Sort are independent; MinRating and Tier are
// no-ops at their zero values.
type CatalogQuery struct {
	Category  Category
	Search    string
	Sort      SortKey
	MinRating float64
	Tier      Tier
}

func DefaultCatalogQuery() CatalogQuery {
	return CatalogQuery{
		Category: CategoryAll,
		Sort:     SortPopular,
		Tier:     TierAll,
	}
}

// Apply filters tools by q and returns them in q.Sort order. The input
// slice is left untouched.
func (q CatalogQuery) Apply(tools []Tool) []Tool {
	category := q.Category
	if category == "" {
		category = CategoryAll
	}

	filtered := FilterTools(tools, category, q.Search)
	if q.MinRating > 0 || (q.Tier != "" && q.Tier != TierAll) {
		narrowed := filtered[:0]
		for _, tool := range filtered {
			if tool.Rating >= q.MinRating && q.Tier.matches(tool) {
				narrowed = append(narrowed, tool)
			}
		}
		filtered = narrowed
	}

	return SortTools(filtered, q.Sort)
}

// FilterTools keeps the records whose category matches (any record when
// category is "all") and whose title or description contains query,
// compared case-insensitively. Catalog order is preserved.
func FilterTools(tools []Tool, category Category, query string) []Tool {
	needle := strings.ToLower(query)
	out := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		if category != CategoryAll && tool.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(tool.Title), needle) &&
			!strings.Contains(strings.ToLower(tool.Description), needle) {
			continue
		}
		out = append(out, tool)
	}
	return out
}

// SortTools returns a stably sorted copy of tools. Unknown keys, like
// SortPopular, keep catalog order.
func SortTools(tools []Tool, key SortKey) []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)

	switch key {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortUsers:
		sort.SliceStable(out, func(i, j int) bool {
			return UsersCount(out[i].Users) > UsersCount(out[j].Users)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	}
	return out
}

// UsersCount reads a display count such as "500K+" by dropping every
// non-digit, so "500K+" is 500 and "1M+" is 1. The magnitude suffix is
// deliberately ignored; strings without digits count as 0 and digit runs
// too long for an int saturate at math.MaxInt.
func UsersCount(display string) int {
	var b strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

// CategoryCounts reports how many tools fall into each category, with
// CategoryAll holding the total.
func CategoryCounts(tools []Tool) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, info := range Categories {
		counts[info.ID] = 0
	}
	counts[CategoryAll] = len(tools)
	for _, tool := range tools {
		if tool.Category == CategoryAll {
			continue
		}
		counts[tool.Category]++
	}
	return counts
}
