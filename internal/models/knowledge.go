package models

// ProductInfo is the descriptive block of a knowledge record.
type ProductInfo struct {
	Model    string `json:"model" yaml:"model"`
	FullName string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// KnowledgeRecord holds the support content for one product. Records are
// read-only once loaded.
type KnowledgeRecord struct {
	Identifier         string                 `json:"-" yaml:"-"` // SKU
	Product            ProductInfo            `json:"product" yaml:"product"`
	FAQ                []FAQEntry             `json:"faq,omitempty" yaml:"faq,omitempty"`
	Troubleshooting    []TroubleshootingEntry `json:"troubleshooting,omitempty" yaml:"troubleshooting,omitempty"`
	InstallationTopics []InstallationEntry    `json:"installation_topics,omitempty" yaml:"installation_topics,omitempty"`
	DocumentURLs       any                    `json:"document_urls,omitempty" yaml:"document_urls,omitempty"`
	Support            any                    `json:"support,omitempty" yaml:"support,omitempty"`
}

func (r *KnowledgeRecord) ModelName() string {
	return r.Product.Model
}

func (r *KnowledgeRecord) DisplayName() string {
	return r.Product.FullName
}

// Catalog is an immutable, ordered snapshot of knowledge records.
type Catalog struct {
	records []*KnowledgeRecord
}

// NewCatalog copies records into a new snapshot, preserving their order.
func NewCatalog(records []*KnowledgeRecord) *Catalog {
	c := &Catalog{
		records: make([]*KnowledgeRecord, 0, len(records)),
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		c.records = append(c.records, r)
	}
	return c
}

// Records returns the records in snapshot order. The slice must not be modified.
func (c *Catalog) Records() []*KnowledgeRecord {
	if c == nil {
		return nil
	}
	return c.records
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}
