// Package launchpad holds the launch project model and the pure rules the web
// views apply to it: identity resolution, sentiment voting, swap form
// defaults, status presentation and the static tokenomics tables.
package launchpad

import (
	"math"

	"github.com/tidwall/gjson"
)

// Status values reported by the backend for a launch project.
const (
	StatusApproved      = "approved"
	StatusLive          = "live"
	StatusCompleted     = "completed"
	StatusPendingReview = "pending_review"
	StatusRejected      = "rejected"
	StatusUnknown       = "unknown"
)

// Project is an immutable snapshot of one backend launch record.
//
// Fields the backend publishes under several names are collapsed here so
// templates never repeat the fallback order.
type Project struct {
	ID          string
	Slug        string
	ShortSymbol string
	Name        string
	Description string
	ProjectType string

	HeroImageURL string
	LogoURL      string

	Status string

	RaiseCurrency   string
	HardCap         string
	SoftCap         string
	MinContribution string
	MaxContribution string
	PricePerToken   string
	TokenSymbol     string
	ProgressPercent float64

	ProjectTokenAddress string
	SuiRaiseAddress     string

	XURL string

	MarketTAM         string
	PerPatientRevenue string
	PatientReach      string

	// SentimentUpvotes and SentimentDownvotes are nil when the backend omitted
	// the seed entirely.
	SentimentUpvotes   *int
	SentimentDownvotes *int

	Raw string
}

// DecodeProjects reads the backend collection payload. Anything other than a
// JSON array yields an empty collection.
func DecodeProjects(payload []byte) []Project {
	root := gjson.ParseBytes(payload)
	if !root.IsArray() {
		return []Project{}
	}
	items := root.Array()
	projects := make([]Project, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		projects = append(projects, DecodeProject(item))
	}
	return projects
}

// DecodeProject maps one backend record onto Project.
func DecodeProject(record gjson.Result) Project {
	return Project{
		ID:          identity(record.Get("id")),
		Slug:        stringField(record, "slug"),
		ShortSymbol: stringField(record, "short_symbol"),
		Name:        stringField(record, "name"),
		Description: stringField(record, "description"),
		ProjectType: stringField(record, "project_type"),

		HeroImageURL: firstTruthy(record, "card_image_url", "image_url", "hero_image_url"),
		LogoURL:      stringField(record, "logo_url"),

		Status: stringField(record, "status"),

		RaiseCurrency:   stringField(record, "raise_currency"),
		HardCap:         stringField(record, "hard_cap"),
		SoftCap:         stringField(record, "soft_cap"),
		MinContribution: stringField(record, "min_contribution"),
		MaxContribution: stringField(record, "max_contribution"),
		PricePerToken:   stringField(record, "price_per_token"),
		TokenSymbol:     stringField(record, "token_symbol"),
		ProgressPercent: numberField(record, "progress_percent"),

		ProjectTokenAddress: stringField(record, "project_token_address"),
		SuiRaiseAddress:     stringField(record, "sui_raise_address"),

		XURL: firstTruthy(record, "x_url", "twitter_url", "social_x_url"),

		MarketTAM:         firstTruthy(record, "market_tam", "market_tam_usd", "tam"),
		PerPatientRevenue: firstTruthy(record, "per_patient_revenue", "per_patient_revenue_usd", "arpu"),
		PatientReach:      firstTruthy(record, "patient_reach", "reach"),

		SentimentUpvotes:   seedField(record, "sentiment_upvotes"),
		SentimentDownvotes: seedField(record, "sentiment_downvotes"),

		Raw: record.Raw,
	}
}

// Sentiment returns the initial sentiment state seeded from the snapshot.
func (p Project) Sentiment() Sentiment {
	s := Sentiment{Upvotes: DefaultUpvotes, Downvotes: DefaultDownvotes}
	if p.SentimentUpvotes != nil {
		s.Upvotes = *p.SentimentUpvotes
	}
	if p.SentimentDownvotes != nil {
		s.Downvotes = *p.SentimentDownvotes
	}
	return s
}

// DisplaySymbol is the ticker shown beside the project name.
func (p Project) DisplaySymbol() string {
	if p.TokenSymbol != "" {
		return p.TokenSymbol
	}
	return p.ShortSymbol
}

func identity(value gjson.Result) string {
	switch value.Type {
	case gjson.String, gjson.Number:
		return value.String()
	case gjson.True, gjson.False:
		return value.Raw
	default:
		return ""
	}
}

func stringField(record gjson.Result, path string) string {
	value := record.Get(path)
	switch value.Type {
	case gjson.Null, gjson.JSON:
		return ""
	default:
		return value.String()
	}
}

func numberField(record gjson.Result, path string) float64 {
	number := record.Get(path).Float()
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}

func seedField(record gjson.Result, path string) *int {
	value := record.Get(path)
	if !value.Exists() {
		return nil
	}
	seed := max(int(value.Int()), 0)
	return &seed
}

// firstTruthy returns the first field that is present and neither empty,
// zero, false nor null.
func firstTruthy(record gjson.Result, paths ...string) string {
	for _, path := range paths {
		value := record.Get(path)
		if truthy(value) {
			return value.String()
		}
	}
	return ""
}

func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return value.Str != ""
	case gjson.Number:
		return value.Num != 0 && !math.IsNaN(value.Num)
	default:
		return value.Exists()
	}
}
