package domain

type Link struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type LinkGroup struct {
	Title string `json:"title" yaml:"title"`
	Links []Link `json:"links" yaml:"links"`
}

type Language struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Flag string `json:"flag" yaml:"flag"`
	RTL  bool   `json:"rtl,omitempty" yaml:"rtl,omitempty"`
}

type Stat struct {
	Number      string `json:"number" yaml:"number"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Stats       string `json:"stats" yaml:"stats"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

type Testimonial struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Avatar   string `json:"avatar" yaml:"avatar"`
	Rating   int    `json:"rating" yaml:"rating"`
	Text     string `json:"text" yaml:"text"`
}

type Award struct {
	Name string `json:"name" yaml:"name"`
	Org  string `json:"org" yaml:"org"`
}

type SEO struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	OGTitle     string   `yaml:"ogTitle"`
	OGImage     string   `yaml:"ogImage"`
	TwitterSite string   `yaml:"twitterSite"`
	ThemeColor  string   `yaml:"themeColor"`
	SameAs      []string `yaml:"sameAs"`
	Email       string   `yaml:"email"`
	RatingValue string   `yaml:"ratingValue"`
	ReviewCount string   `yaml:"reviewCount"`
}

type Hero struct {
	Badge    string   `yaml:"badge"`
	Headline string   `yaml:"headline"`
	Tagline  string   `yaml:"tagline"`
	Stats    []Stat   `yaml:"stats"`
	Floating []string `yaml:"floating"`
}

type About struct {
	Headline     string        `yaml:"headline"`
	Intro        string        `yaml:"intro"`
	Features     []Feature     `yaml:"features"`
	Stats        []Stat        `yaml:"stats"`
	Testimonials []Testimonial `yaml:"testimonials"`
}

type FooterContent struct {
	Tagline    string      `yaml:"tagline"`
	LinkGroups []LinkGroup `yaml:"linkGroups"`
	Social     []Link      `yaml:"social"`
	Awards     []Award     `yaml:"awards"`
	Copyright  string      `yaml:"copyright"`
}

// SiteContent is every static array the landing page renders.
type SiteContent struct {
	Name      string        `yaml:"name"`
	SEO       SEO           `yaml:"seo"`
	Nav       []Link        `yaml:"nav"`
	Languages []Language    `yaml:"languages"`
	Hero      Hero          `yaml:"hero"`
	About     About         `yaml:"about"`
	Tools     []Tool        `yaml:"tools"`
	Footer    FooterContent `yaml:"footer"`
}

// Language returns the language with the given code, or the first
// configured language when the code is unknown.
func (s *SiteContent) Language(code string) Language {
	for _, lang := range s.Languages {
		if lang.Code == code {
			return lang
		}
	}
	if len(s.Languages) > 0 {
		return s.Languages[0]
	}
	return Language{Code: "en", Name: "English"}
}
