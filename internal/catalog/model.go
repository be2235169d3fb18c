package catalog

import (
	"time"

	"advisor-backend/advisor/model"
)

// Entry is one vendor/product catalog row: a candidate option filed under a
// finding category.
type Entry struct {
	ID        string                `json:"id"`
	Category  string                `json:"category"`
	Option    model.CandidateOption `json:"option"`
	Source    string                `json:"source,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}
