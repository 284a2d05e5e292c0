package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/riskibarqy/cricket-feed/external/cricbuzz"
	climock "github.com/riskibarqy/cricket-feed/internal/mocks/interfaces/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func TestRootCommand_ScoreUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("run"), "run-123")
	feed := climock.NewFeed(t)
	feed.On("LiveScore", mock.MatchedBy(func(v context.Context) bool { return v.Value(ctxKey("run")) == "run-123" }), "20307").
		Return(cricbuzz.LiveScore{
			Live:    true,
			Batting: &cricbuzz.BattingSide{Team: "India", Score: []cricbuzz.InningsScore{}, Batsmen: []cricbuzz.LiveBatsman{}},
			Bowling: &cricbuzz.BowlingSide{Team: "England", Score: []cricbuzz.InningsScore{}, Bowlers: []cricbuzz.LiveBowler{}},
		}, nil).
		Once()

	var out bytes.Buffer
	cmd := NewRootCommand(feed, &out)
	cmd.SetArgs([]string{"score", "20307"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Contains(t, out.String(), `"live": true`)
	assert.Contains(t, out.String(), `"team": "India"`)
	assert.Contains(t, out.String(), `"team": "England"`)
}

func TestRootCommand_NoDataUsingMockery(t *testing.T) {
	t.Parallel()

	feed := climock.NewFeed(t)
	feed.On("Commentary", mock.Anything, "20307").
		Return(cricbuzz.Commentary{}, fmt.Errorf("commentary match_id=20307: %w", cricbuzz.ErrNoData)).
		Once()

	var out bytes.Buffer
	cmd := NewRootCommand(feed, &out)
	cmd.SetArgs([]string{"commentary", "20307"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Empty(t, out.String())

	var stderr bytes.Buffer
	assert.Equal(t, ExitNoData, WriteError(&stderr, err))
	assert.Contains(t, stderr.String(), `"reason": "no_data"`)
	assert.Contains(t, stderr.String(), "match_id=20307")
}

func TestRootCommand_ScorecardRawUsingMockery(t *testing.T) {
	t.Parallel()

	feed := climock.NewFeed(t)
	feed.On("Scorecard", mock.Anything, "1").
		Return(cricbuzz.Scorecard{}, []byte(`{"Innings":[],"match_id":12345678901234567890}`), nil).
		Once()

	var out bytes.Buffer
	cmd := NewRootCommand(feed, &out)
	cmd.SetArgs([]string{"scorecard", "1", "--raw"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	// Large ids survive re-indenting unchanged.
	assert.Contains(t, out.String(), `"match_id": 12345678901234567890`)
}
