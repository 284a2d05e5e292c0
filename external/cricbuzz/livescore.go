package cricbuzz

import (
	"context"
	"fmt"
	"strconv"

	crerr "github.com/cockroachdb/errors"
)

// LiveScore finds the match in the live list and builds both sides of the running score.
// A match that is missing from the list, or has no batting or bowling side yet, is returned
// as LiveScore{Live: false} with a nil error.
func (c *Client) LiveScore(ctx context.Context, matchID string) (LiveScore, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.LiveScore")
	defer span.End()

	matchID, err := c.checkID("match id", matchID)
	if err != nil {
		return LiveScore{}, err
	}
	wanted, err := strconv.ParseInt(matchID, 10, 64)
	if err != nil {
		return LiveScore{}, err
	}

	var envelope liveMatchesEnvelope
	if _, err := c.crawlInto(ctx, c.liveMatchesURL(), &envelope); err != nil {
		return LiveScore{}, fmt.Errorf("live matches: %w", err)
	}

	entry := findLiveMatch(envelope.Matches, ID(wanted))
	if entry == nil {
		c.logger.DebugContext(ctx, "match not in live list", "match_id", matchID)
		return LiveScore{}, nil
	}
	match, err := entry.decode()
	if err != nil {
		return LiveScore{}, fmt.Errorf("live matches: %w", err)
	}
	if match.BatTeam == nil || match.BowTeam == nil {
		c.logger.DebugContext(ctx, "match not live", "match_id", matchID)
		return LiveScore{}, nil
	}

	out, err := buildLiveScore(match)
	if err != nil {
		return LiveScore{}, fmt.Errorf("live score match_id=%s: %w", matchID, err)
	}
	return out, nil
}

func findLiveMatch(entries []liveListEntry, id ID) *liveListEntry {
	for i := range entries {
		if entries[i].MatchID == id {
			return &entries[i]
		}
	}
	return nil
}

func (e *liveListEntry) UnmarshalJSON(data []byte) error {
	var head struct {
		MatchID ID `json:"match_id"`
	}
	if err := rawAPI.Unmarshal(data, &head); err != nil {
		return err
	}
	e.MatchID = head.MatchID
	e.body = append([]byte(nil), data...)
	return nil
}

func (e *liveListEntry) decode() (*liveMatch, error) {
	var match liveMatch
	if err := rawAPI.Unmarshal(e.body, &match); err != nil {
		return nil, withKind(ErrMalformedPayload, crerr.Wrapf(err, "decode live match match_id=%s", e.MatchID))
	}
	return &match, nil
}

func buildLiveScore(match *liveMatch) (LiveScore, error) {
	teams := make(TeamMap, 2)
	for _, team := range []*teamRef{match.Team1, match.Team2} {
		if team != nil {
			teams[team.ID] = team.Name
		}
	}

	battingTeam, err := teams.name(match.BatTeam.ID, "bat_team")
	if err != nil {
		return LiveScore{}, err
	}
	bowlingTeam, err := teams.name(match.BowTeam.ID, "bow_team")
	if err != nil {
		return LiveScore{}, err
	}

	batsmen := make([]LiveBatsman, 0, len(match.Batsmen))
	for _, p := range match.Batsmen {
		batsmen = append(batsmen, LiveBatsman{
			Name:  p.Name,
			Runs:  int(p.Runs),
			Balls: int(p.Balls),
			Fours: int(p.Fours),
			Sixes: int(p.Sixes),
		})
	}

	bowlers := make([]LiveBowler, 0, len(match.Bowlers))
	for _, p := range match.Bowlers {
		bowlers = append(bowlers, LiveBowler{
			Name:    p.Name,
			Overs:   string(p.Overs),
			Maidens: int(p.Maidens),
			Runs:    int(p.Runs),
			Wickets: int(p.Wickets),
		})
	}

	return LiveScore{
		Live: true,
		Batting: &BattingSide{
			Team:    battingTeam,
			Score:   inningsScores(match.BatTeam.Innings),
			Batsmen: batsmen,
		},
		Bowling: &BowlingSide{
			Team:    bowlingTeam,
			Score:   inningsScores(match.BowTeam.Innings),
			Bowlers: bowlers,
		},
	}, nil
}

func inningsScores(innings []liveInnings) []InningsScore {
	out := make([]InningsScore, 0, len(innings))
	for _, inn := range innings {
		var declared *bool
		if inn.Decl != nil {
			v := bool(*inn.Decl)
			declared = &v
		}
		out = append(out, InningsScore{
			InningNum: int(inn.ID),
			Runs:      int(inn.Score),
			Wickets:   int(inn.Wickets),
			Overs:     string(inn.Overs),
			Declared:  declared,
		})
	}
	return out
}
