package godata

import "fmt"

// Limit caps the number of results a query returns, optionally starting at a
// position other than the first. Positions are 1-based.
type Limit struct {
	maxResults int
	startAt    int64
}

// LimitOf returns a limit on the first maxResults results. It panics when
// maxResults is less than one.
func LimitOf(maxResults int) Limit {
	if maxResults < 1 {
		panic(fmt.Sprintf("godata: max results must be at least 1, got %d", maxResults))
	}
	return Limit{maxResults: maxResults, startAt: 1}
}

// LimitRange returns a limit on the results at positions startAt through
// endAt, inclusive. It panics unless 1 <= startAt <= endAt.
func LimitRange(startAt, endAt int64) Limit {
	if startAt < 1 {
		panic(fmt.Sprintf("godata: start position must be at least 1, got %d", startAt))
	}
	if endAt < startAt {
		panic(fmt.Sprintf(
			"godata: end position %d must not precede start position %d",
			endAt, startAt,
		))
	}
	return Limit{maxResults: int(endAt - startAt + 1), startAt: startAt}
}

// MaxResults returns the maximum number of results to return.
func (l Limit) MaxResults() int { return l.maxResults }

// StartAt returns the 1-based position of the first result to return.
func (l Limit) StartAt() int64 { return l.startAt }
