// Package enrich performs best-effort secondary lookups that add detail to a
// single-entity report. A failed lookup is recorded in the Result and logged
// at debug level; it never fails the primary report.
package enrich

import (
	"context"
	"errors"

	"github.com/steveyegge/digest/internal/aha"
	"github.com/steveyegge/digest/internal/debug"
	"github.com/steveyegge/digest/internal/normalize"
	"github.com/steveyegge/digest/internal/rest"
)

// ErrEmpty is recorded when the secondary response carried no entity.
var ErrEmpty = errors.New("empty response")

// Result is the outcome of one enrichment attempt. Value is nil when the
// enrichment was skipped or failed; Err says which.
type Result[T any] struct {
	Value *T
	Err   error
}

// Present reports whether the enrichment produced a value.
func (r Result[T]) Present() bool {
	return r.Value != nil
}

// Skipped reports whether no lookup was attempted.
func (r Result[T]) Skipped() bool {
	return r.Value == nil && r.Err == nil
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: &v}
}

// Failed records a swallowed error.
func Failed[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// InitiativeFetcher loads a full initiative by id.
type InitiativeFetcher interface {
	Initiative(ctx context.Context, id string) (*aha.Initiative, error)
}

// Initiative fetches the full initiative a feature links to. At most one
// request is made; a nil link skips the lookup entirely.
func Initiative(ctx context.Context, fetcher InitiativeFetcher, link *normalize.LinkedInitiative) Result[normalize.Initiative] {
	if link == nil {
		return Result[normalize.Initiative]{}
	}
	id := link.ID
	if id == "" {
		id = link.Reference
	}
	if id == "" {
		return Result[normalize.Initiative]{}
	}

	in, err := fetcher.Initiative(ctx, id)
	if err != nil {
		if rest.IsNotFound(err) {
			debug.Logf("[enrich] initiative %s not found\n", id)
		} else {
			debug.Logf("[enrich] initiative %s unavailable: %v\n", id, err)
		}
		return Failed[normalize.Initiative](err)
	}
	if in == nil {
		debug.Logf("[enrich] initiative %s: %v\n", id, ErrEmpty)
		return Failed[normalize.Initiative](ErrEmpty)
	}
	return Ok(normalize.NewInitiative(*in))
}
