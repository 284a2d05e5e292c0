package cricbuzz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveMatchesJSON = `{"matches": [
	{
		"match_id": "20307",
		"team1": {"id": "2", "name": "India"},
		"team2": {"id": "9", "name": "England"},
		"bat_team": {"id": "2", "innings": [{"id": "1", "score": "245", "wkts": "3", "overs": "51.4", "decl": "0"}]},
		"bow_team": {"id": "9", "innings": [{"id": "2", "score": 400, "wkts": 10, "overs": "120.1", "decl": "1"}]},
		"batsman": [
			{"id": "11", "name": "Kohli", "r": "102", "b": "150", "4s": "10", "6s": "2"},
			{"id": "12", "name": "Rahane", "r": 40, "b": 88, "4s": 4, "6s": 0}
		],
		"bowler": [{"id": "21", "name": "Anderson", "o": "18.4", "m": "5", "r": "45", "w": "2"}]
	},
	{
		"match_id": "20308",
		"team1": {"id": "3", "name": "Australia"},
		"team2": {"id": "4", "name": "South Africa"},
		"header": {"state": "preview"}
	},
	{
		"match_id": "20309",
		"team1": {"id": "5", "name": "Pakistan"},
		"team2": {"id": "6", "name": "Sri Lanka"},
		"bat_team": {"id": "77"},
		"bow_team": {"id": "6"}
	},
	{
		"match_id": "20310",
		"team1": {"id": "5", "name": "Pakistan"},
		"team2": {"id": "6", "name": "Sri Lanka"},
		"bat_team": {"id": "5"}
	}
]}`

func TestClient_LiveScoreBuildsBothSides(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(map[string]string{"match/livematches": liveMatchesJSON})
	client, _ := newTestClient(t, upstream)

	score, err := client.LiveScore(context.Background(), "20307")
	require.NoError(t, err)
	require.True(t, score.Live)
	require.NotNil(t, score.Batting)
	require.NotNil(t, score.Bowling)

	notDeclared, declared := false, true
	assert.Equal(t, BattingSide{
		Team: "India",
		Score: []InningsScore{
			{InningNum: 1, Runs: 245, Wickets: 3, Overs: "51.4", Declared: &notDeclared},
		},
		Batsmen: []LiveBatsman{
			{Name: "Kohli", Runs: 102, Balls: 150, Fours: 10, Sixes: 2},
			{Name: "Rahane", Runs: 40, Balls: 88, Fours: 4, Sixes: 0},
		},
	}, *score.Batting)
	assert.Equal(t, BowlingSide{
		Team: "England",
		Score: []InningsScore{
			{InningNum: 2, Runs: 400, Wickets: 10, Overs: "120.1", Declared: &declared},
		},
		Bowlers: []LiveBowler{
			{Name: "Anderson", Overs: "18.4", Maidens: 5, Runs: 45, Wickets: 2},
		},
	}, *score.Bowling)
}

func TestClient_LiveScoreNotLive(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(map[string]string{"match/livematches": liveMatchesJSON})
	client, _ := newTestClient(t, upstream)

	tests := []struct {
		name    string
		matchID string
	}{
		{name: "no bat_team", matchID: "20308"},
		{name: "not in live list", matchID: "99999"},
		{name: "no bow_team", matchID: "20310"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			score, err := client.LiveScore(context.Background(), tc.matchID)
			require.NoError(t, err)
			assert.Equal(t, LiveScore{}, score)
			assert.False(t, score.Live)
		})
	}
}

func TestClient_LiveScoreUnknownBattingTeam(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(map[string]string{"match/livematches": liveMatchesJSON})
	client, _ := newTestClient(t, upstream)

	_, err := client.LiveScore(context.Background(), "20309")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookup)
	assert.Contains(t, err.Error(), "bat_team")
}

func TestClient_LiveScoreListUnavailable(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, newFakeUpstream(map[string]string{}))

	score, err := client.LiveScore(context.Background(), "20307")
	assert.ErrorIs(t, err, ErrNoData)
	assert.False(t, score.Live)
}

func TestLiveScore_NotLiveMarshalsWithoutSides(t *testing.T) {
	t.Parallel()

	encoded, err := rawAPI.Marshal(LiveScore{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"live": false}`, string(encoded))
}

const liveMatchesWithOddSibling = `{"matches": [
	{
		"match_id": 1,
		"team1": {"id": 2, "name": "India"},
		"team2": {"id": 9, "name": "England"},
		"bat_team": {"id": 2, "innings": [{"id": 1, "score": 245, "wkts": 3, "overs": "51.4"}]},
		"bow_team": {"id": 9, "innings": []},
		"batsman": [{"name": "Kohli", "r": "45*", "b": 60, "4s": 5, "6s": 0}]
	},
	{
		"match_id": 2,
		"team1": {"id": 3, "name": "Australia"},
		"team2": {"id": 4, "name": "South Africa"},
		"bat_team": {"id": 3, "innings": [{"id": 1, "score": "n/a", "decl": "D"}]},
		"bow_team": {"id": 4},
		"batsman": [{"name": "Smith", "r": "retired hurt"}]
	}
]}`

func TestClient_LiveScoreIgnoresOddSiblingMatch(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(map[string]string{"match/livematches": liveMatchesWithOddSibling})
	client, _ := newTestClient(t, upstream)

	score, err := client.LiveScore(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, score.Live)
	require.NotNil(t, score.Batting)
	assert.Equal(t, "India", score.Batting.Team)
	assert.Equal(t, []LiveBatsman{{Name: "Kohli", Runs: 45, Balls: 60, Fours: 5}}, score.Batting.Batsmen)
	require.Len(t, score.Batting.Score, 1)
	assert.Nil(t, score.Batting.Score[0].Declared)
}

func TestClient_LiveScoreOddRequestedMatchIsMalformed(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream(map[string]string{"match/livematches": liveMatchesWithOddSibling})
	client, _ := newTestClient(t, upstream)

	_, err := client.LiveScore(context.Background(), "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Contains(t, err.Error(), "match_id=2")
}
