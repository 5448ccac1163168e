package tour

import "context"

// UseCase filters the externally sourced catalog against search criteria.
// Search never fails: a broken catalog source yields an empty, degraded
// output so the caller can always reply to the user.
type UseCase interface {
	Search(ctx context.Context, input SearchInput) SearchOutput
}
