package extraction

import "context"

// UseCase runs the offline extraction pipeline: fetch a conference page,
// ask the local model for deadline data, and parse its answer into
// candidate records.
type UseCase interface {
	Extract(ctx context.Context, url string) (Result, error)
}
