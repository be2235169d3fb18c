package evaluations

import (
	"time"

	"advisor-backend/advisor/model"
)

// Request is one evaluation request: a finding plus the requester profile.
// Candidates are optional; when absent they are loaded from the catalog by
// the finding's category.
type Request struct {
	Finding    model.Finding           `json:"finding"`
	Requester  model.RequesterProfile  `json:"requester"`
	Candidates []model.CandidateOption `json:"candidates,omitempty"`
}

// Evaluation is a stored evaluation: the request snapshot and the engine's
// recommendation. Evaluations run synchronously, so a stored record is
// always completed.
type Evaluation struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	Request   Request              `json:"request"`
	Result    model.Recommendation `json:"result"`
	CreatedAt time.Time            `json:"createdAt"`
}
