package models

import (
	"time"

	"github.com/google/uuid"
)

type IssueSeverity string

const (
	SeverityLow      IssueSeverity = "low"
	SeverityMedium   IssueSeverity = "medium"
	SeverityHigh     IssueSeverity = "high"
	SeverityCritical IssueSeverity = "critical"
)

type IssueStatus string

const (
	IssueStatusNew IssueStatus = "new"
)

const IssueSourceVapiCall = "vapi_call"

type SupportIssue struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	ProductID  *uuid.UUID    `db:"product_id" json:"product_id"`
	SKU        string        `db:"sku" json:"sku"`
	Issue      string        `db:"issue" json:"issue"`
	CallerInfo string        `db:"caller_info" json:"caller_info"`
	Severity   IssueSeverity `db:"severity" json:"severity"`
	Notes      string        `db:"notes" json:"notes"`
	Source     string        `db:"source" json:"source"`
	Status     IssueStatus   `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}
