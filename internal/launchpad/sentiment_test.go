package launchpad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentToggleTransitions(t *testing.T) {
	t.Parallel()

	start := Sentiment{Upvotes: 3, Downvotes: 2}

	up := start.Toggle(VoteUp)
	assert.Equal(t, Sentiment{Upvotes: 4, Downvotes: 2, Vote: VoteUp}, up)

	switched := up.Toggle(VoteDown)
	assert.Equal(t, Sentiment{Upvotes: 3, Downvotes: 3, Vote: VoteDown}, switched)

	retracted := switched.Toggle(VoteDown)
	assert.Equal(t, start, retracted)
}

func TestSentimentDoubleToggleIsIdentity(t *testing.T) {
	t.Parallel()

	for _, vote := range []Vote{VoteUp, VoteDown} {
		start := Sentiment{Upvotes: 73, Downvotes: 10}
		assert.Equal(t, start, start.Toggle(vote).Toggle(vote), "vote %q", vote)
	}
}

func TestSentimentCountersNeverNegative(t *testing.T) {
	t.Parallel()

	sequence := []Vote{VoteDown, VoteUp, VoteUp, VoteDown, VoteDown, VoteUp, VoteDown, VoteUp, VoteUp}
	state := Sentiment{}
	for idx, vote := range sequence {
		state = state.Toggle(vote)
		require.GreaterOrEqual(t, state.Upvotes, 0, "step %d", idx)
		require.GreaterOrEqual(t, state.Downvotes, 0, "step %d", idx)
		require.Contains(t, []Vote{VoteNone, VoteUp, VoteDown}, state.Vote)
	}

	// A seeded state whose own counter is already zero still clamps.
	clamped := Sentiment{Upvotes: 0, Vote: VoteUp}.Toggle(VoteUp)
	assert.Equal(t, Sentiment{}, clamped)
}

func TestSentimentToggleSaturatesAtMaxInt(t *testing.T) {
	t.Parallel()

	state := Sentiment{Upvotes: math.MaxInt, Downvotes: 1}.Toggle(VoteUp)
	assert.Equal(t, math.MaxInt, state.Upvotes)
	assert.Equal(t, VoteUp, state.Vote)
	assert.Equal(t, 100, state.Percentage())

	state = state.Toggle(VoteDown)
	assert.Equal(t, math.MaxInt-1, state.Upvotes)
	assert.Equal(t, 2, state.Downvotes)
}

func TestSentimentToggleIgnoresUnknownVote(t *testing.T) {
	t.Parallel()

	start := Sentiment{Upvotes: 1, Downvotes: 1, Vote: VoteUp}
	assert.Equal(t, start, start.Toggle(Vote("sideways")))
	assert.Equal(t, start, start.Toggle(VoteNone))
}

func TestSentimentPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		up, down, want int
	}{
		{0, 0, 50},
		{1, 0, 100},
		{0, 5, 0},
		{1, 1, 50},
		{1, 2, 33},
		{2, 1, 67},
		{1, 7, 13},
		{73, 10, 88},
		{math.MaxInt / 4, 1, 100},
		{math.MaxInt, 1, 100},
		{1, math.MaxInt, 0},
		{math.MaxInt, math.MaxInt, 50},
		{-3, 1, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SentimentPercentage(tc.up, tc.down), "up=%d down=%d", tc.up, tc.down)
	}
	assert.Equal(t, 88, Sentiment{Upvotes: 73, Downvotes: 10}.Percentage())
}

func TestParseVote(t *testing.T) {
	t.Parallel()

	vote, err := ParseVote(" UP ")
	require.NoError(t, err)
	assert.Equal(t, VoteUp, vote)

	vote, err = ParseVote("down")
	require.NoError(t, err)
	assert.Equal(t, VoteDown, vote)

	_, err = ParseVote("maybe")
	require.Error(t, err)
}
