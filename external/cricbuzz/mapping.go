package cricbuzz

import (
	"context"
	"fmt"
)

// PlayerMap resolves player ids to display names for one match.
type PlayerMap map[ID]string

// TeamMap resolves the two team ids of a match to their names.
type TeamMap map[ID]string

// BuildMappings builds the lookup tables from an already fetched match payload.
// A missing player list gives an empty PlayerMap.
func BuildMappings(match *Match) (PlayerMap, TeamMap) {
	players := make(PlayerMap)
	teams := make(TeamMap, 2)
	if match == nil {
		return players, teams
	}
	for _, p := range match.Players {
		players[p.ID] = p.Name
	}
	for _, team := range []*MatchTeam{match.Team1, match.Team2} {
		if team != nil {
			teams[team.ID] = team.Name
		}
	}
	return players, teams
}

// PlayersMapping fetches the match and builds its lookup tables.
func (c *Client) PlayersMapping(ctx context.Context, matchID string) (PlayerMap, TeamMap, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.PlayersMapping")
	defer span.End()

	matchID, err := c.checkID("match id", matchID)
	if err != nil {
		return nil, nil, err
	}
	match, _, err := c.fetchMatch(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}
	players, teams := BuildMappings(match)
	return players, teams, nil
}

func (c *Client) fetchMatch(ctx context.Context, matchID string) (*Match, []byte, error) {
	var match Match
	raw, err := c.crawlInto(ctx, c.matchURL(matchID), &match)
	if err != nil {
		return nil, nil, fmt.Errorf("match detail match_id=%s: %w", matchID, err)
	}
	return &match, raw, nil
}

func (m PlayerMap) name(id ID, where string) (string, error) {
	name, ok := m[id]
	if !ok {
		return "", &LookupError{Kind: "player", ID: id, Where: where}
	}
	return name, nil
}

// names keeps the order of ids. Nil input gives an empty, non-nil slice.
func (m PlayerMap) names(ids []ID, where string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, err := m.name(id, where)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

func (m TeamMap) name(id ID, where string) (string, error) {
	name, ok := m[id]
	if !ok {
		return "", &LookupError{Kind: "team", ID: id, Where: where}
	}
	return name, nil
}
