package drafts

import (
	"time"

	"github.com/icislabs/contract-workbench/internal/domain/analysis"
)

// Draft is a saved addendum document. Drafts are immutable once created;
// the store assigns ID and CreatedAt.
type Draft struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Issues    []analysis.Issue `json:"issues"`
	CreatedAt time.Time        `json:"created_at"`
}
