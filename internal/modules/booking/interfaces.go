package booking

import (
	"context"

	"bookhub/internal/domain"
)

// IdentityClient resolves subject ids to summaries for admin enrichment.
// Failures must not fail the listing; the service degrades to null creators.
type IdentityClient interface {
	FetchUsers(ctx context.Context, bearerToken string) (map[string]domain.SubjectSummary, error)
}
