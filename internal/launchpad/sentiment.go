package launchpad

import (
	"fmt"
	"math"
	"strings"
)

// Seed counts shown when the backend sends no sentiment seed.
const (
	DefaultUpvotes   = 73
	DefaultDownvotes = 10
)

// Vote is one viewer's sentiment choice.
type Vote string

const (
	VoteNone Vote = ""
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// ParseVote accepts "up" or "down".
func ParseVote(raw string) (Vote, error) {
	switch Vote(strings.ToLower(strings.TrimSpace(raw))) {
	case VoteUp:
		return VoteUp, nil
	case VoteDown:
		return VoteDown, nil
	default:
		return VoteNone, fmt.Errorf("unsupported vote %q", raw)
	}
}

// Sentiment is the per-view tally and the viewer's own vote.
type Sentiment struct {
	Upvotes   int
	Downvotes int
	Vote      Vote
}

// Toggle applies a requested vote. Repeating the current vote retracts it;
// switching sides moves the viewer's count across. Counters never drop
// below zero.
func (s Sentiment) Toggle(requested Vote) Sentiment {
	if requested != VoteUp && requested != VoteDown {
		return s
	}
	if s.Vote == requested {
		s.adjust(requested, -1)
		s.Vote = VoteNone
		return s
	}
	if s.Vote != VoteNone {
		s.adjust(s.Vote, -1)
	}
	s.adjust(requested, 1)
	s.Vote = requested
	return s
}

func (s *Sentiment) adjust(vote Vote, delta int) {
	switch vote {
	case VoteUp:
		s.Upvotes = addCount(s.Upvotes, delta)
	case VoteDown:
		s.Downvotes = addCount(s.Downvotes, delta)
	}
}

// addCount adds delta to a counter, saturating at zero and math.MaxInt.
func addCount(count int, delta int) int {
	switch {
	case delta > 0 && count > math.MaxInt-delta:
		return math.MaxInt
	case count+delta < 0:
		return 0
	default:
		return count + delta
	}
}

// Percentage is the positive share of the tally.
func (s Sentiment) Percentage() int {
	return SentimentPercentage(s.Upvotes, s.Downvotes)
}

// SentimentPercentage returns round(100*up/(up+down)) with halves rounded
// up, or 50 when there are no votes.
func SentimentPercentage(up, down int) int {
	u := float64(max(up, 0))
	d := float64(max(down, 0))
	if u+d == 0 {
		return 50
	}
	return int(math.Floor(100*u/(u+d) + 0.5))
}
