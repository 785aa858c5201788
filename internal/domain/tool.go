package domain

type Category string

const (
	CategoryAll       Category = "all"
	CategoryPrayer    Category = "prayer"
	CategoryLearning  Category = "learning"
	CategoryFinance   Category = "finance"
	CategoryCommunity Category = "community"
)

type CategoryInfo struct {
	ID   Category `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
}

// Categories is the fixed category set in display order. The category
// filter control and every catalog record must draw from it.
var Categories = []CategoryInfo{
	{ID: CategoryAll, Name: "All Tools"},
	{ID: CategoryPrayer, Name: "Prayer & Worship"},
	{ID: CategoryLearning, Name: "Learning"},
	{ID: CategoryFinance, Name: "Finance"},
	{ID: CategoryCommunity, Name: "Community"},
}

func (c Category) IsValid() bool {
	for _, info := range Categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// Tool is one record of the advertised tools catalog. Records are loaded
// once at startup and never mutated.
type Tool struct {
	ID          int      `json:"id" yaml:"id" db:"id"`
	Title       string   `json:"title" yaml:"title" db:"title"`
	Description string   `json:"description" yaml:"description" db:"description"`
	Category    Category `json:"category" yaml:"category" db:"category"`
	Features    []string `json:"features" yaml:"features" db:"-"`
	Rating      float64  `json:"rating" yaml:"rating" db:"rating"`
	Users       string   `json:"users" yaml:"users" db:"users"`
	IsNew       bool     `json:"isNew" yaml:"isNew" db:"is_new"`
	IsPremium   bool     `json:"isPremium" yaml:"isPremium" db:"is_premium"`
	Icon        string   `json:"icon" yaml:"icon" db:"icon"`
	Gradient    string   `json:"gradient" yaml:"gradient" db:"gradient"`
}
