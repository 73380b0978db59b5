package dto

import "support-kb/internal/models"

// LookupRequest carries the parameters accepted by the lookup endpoints, from
// either the query string or a JSON body.
type LookupRequest struct {
	SKU      string `json:"sku" query:"sku"`
	Model    string `json:"model" query:"model"`
	Query    string `json:"query" query:"query"`
	Question string `json:"question" query:"question"`
	Q        string `json:"q" query:"q"`
	Issue    string `json:"issue" query:"issue"`
	Problem  string `json:"problem" query:"problem"`
	Topic    string `json:"topic" query:"topic"`
}

// ProductQuery is the product identifier: sku, falling back to model.
func (r *LookupRequest) ProductQuery() string {
	return firstNonEmpty(r.SKU, r.Model)
}

// SearchTerm is the product search term: sku, model or free-text query.
func (r *LookupRequest) SearchTerm() string {
	return firstNonEmpty(r.SKU, r.Model, r.Query)
}

func (r *LookupRequest) QuestionQuery() string {
	return firstNonEmpty(r.Question, r.Q)
}

func (r *LookupRequest) IssueQuery() string {
	return firstNonEmpty(r.Issue, r.Problem)
}

type ProductSummary struct {
	SKU      string `json:"sku"`
	Model    string `json:"model"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

type ProductListResponse struct {
	Products []ProductSummary `json:"products"`
	Count    int              `json:"count"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score,omitempty"`
}

type FAQListResponse struct {
	Product string    `json:"product"`
	FAQ     []FAQItem `json:"faq"`
}

type FAQSearchResponse struct {
	Product  string    `json:"product"`
	Question string    `json:"question"`
	Answers  []FAQItem `json:"answers"`
	Matched  bool      `json:"matched"`
}

type TroubleshootingItem struct {
	Issue           string                 `json:"issue"`
	Symptoms        string                 `json:"symptoms,omitempty"`
	CausesSolutions []models.CauseSolution `json:"causes_solutions,omitempty"`
	Score           int                    `json:"score,omitempty"`
}

type TroubleshootingListResponse struct {
	Product         string                `json:"product"`
	Troubleshooting []TroubleshootingItem `json:"troubleshooting"`
}

type TroubleshootingSearchResponse struct {
	Product         string                `json:"product"`
	Issue           string                `json:"issue"`
	Message         string                `json:"message,omitempty"`
	Troubleshooting []TroubleshootingItem `json:"troubleshooting"`
	Matched         bool                  `json:"matched"`
	Support         any                   `json:"support,omitempty"`
}

type InstallationItem struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Score   int    `json:"score,omitempty"`
}

type InstallationListResponse struct {
	Product            string             `json:"product"`
	InstallationTopics []InstallationItem `json:"installation_topics"`
	Documents          any                `json:"documents,omitempty"`
}

type InstallationSearchResponse struct {
	Product   string             `json:"product"`
	Topic     string             `json:"topic"`
	Guides    []InstallationItem `json:"guides"`
	Matched   bool               `json:"matched"`
	Documents any                `json:"documents,omitempty"`
}

type HealthResponse struct {
	Name           string            `json:"name"`
	Version        string            `json:"version"`
	Status         string            `json:"status"`
	ProductsLoaded int               `json:"products_loaded"`
	Endpoints      map[string]string `json:"endpoints"`
	Support        SupportContact    `json:"support"`
}

type SupportContact struct {
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

type ReloadResponse struct {
	Status         string `json:"status"`
	ProductsLoaded int    `json:"products_loaded"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Query string `json:"query,omitempty"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
