package cricbuzz

import (
	"context"
	"fmt"
)

// Scorecard builds per-innings cards and also returns the upstream bytes untouched.
// Player and team names come from a second fetch of the match detail.
func (c *Client) Scorecard(ctx context.Context, matchID string) (Scorecard, []byte, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.Scorecard")
	defer span.End()

	matchID, err := c.checkID("match id", matchID)
	if err != nil {
		return Scorecard{}, nil, err
	}

	var envelope scorecardEnvelope
	raw, err := c.crawlInto(ctx, c.matchURL(matchID, "scorecard.json"), &envelope)
	if err != nil {
		return Scorecard{}, nil, fmt.Errorf("scorecard match_id=%s: %w", matchID, err)
	}

	players, teams, err := c.PlayersMapping(ctx, matchID)
	if err != nil {
		return Scorecard{}, nil, err
	}

	card, err := buildScorecard(envelope.Innings, players, teams)
	if err != nil {
		return Scorecard{}, nil, fmt.Errorf("scorecard match_id=%s: %w", matchID, err)
	}
	return card, raw, nil
}

func buildScorecard(innings []scorecardInnings, players PlayerMap, teams TeamMap) (Scorecard, error) {
	out := Scorecard{Innings: make([]InningsCard, 0, len(innings))}
	for i, inn := range innings {
		where := fmt.Sprintf("Innings[%d]", i)

		bowlTeam, err := teams.name(inn.BowlTeamID, where+".bowl_team_id")
		if err != nil {
			return Scorecard{}, err
		}
		// Optional: older payloads only carry the bowling side.
		batTeam := teams[inn.BatTeamID]

		card := InningsCard{
			BatTeam:     batTeam,
			BowlTeam:    bowlTeam,
			Extras:      restructureExtras(inn.Extras),
			BatCard:     make([]BatCardEntry, 0, len(inn.Batsmen)),
			BowlCard:    make([]BowlCardRow, 0, len(inn.Bowlers)),
			FallWickets: make([]FallOfWicket, 0, len(inn.FOW)),
		}

		for _, p := range inn.Batsmen {
			name, err := players.name(p.ID, where+".batsmen")
			if err != nil {
				return Scorecard{}, err
			}
			card.BatCard = append(card.BatCard, BatCardEntry{
				Name:      name,
				Runs:      int(p.Runs),
				Balls:     int(p.Balls),
				Fours:     int(p.Fours),
				Sixes:     int(p.Sixes),
				Dismissal: p.Dismissal,
			})
		}

		for _, p := range inn.Bowlers {
			name, err := players.name(p.ID, where+".bowlers")
			if err != nil {
				return Scorecard{}, err
			}
			card.BowlCard = append(card.BowlCard, BowlCardRow{
				Name:    name,
				Overs:   string(p.Overs),
				Maidens: int(p.Maidens),
				Runs:    int(p.Runs),
				Wickets: int(p.Wickets),
				Wides:   int(p.Wides),
				NoBalls: int(p.NoBalls),
			})
		}

		for _, w := range inn.FOW {
			name, err := players.name(w.ID, where+".fow")
			if err != nil {
				return Scorecard{}, err
			}
			entry := FallOfWicket{
				Name:         name,
				WicketNumber: countPtr(w.Number),
				Score:        countPtr(w.Score),
			}
			if w.Overs != nil {
				overs := string(*w.Overs)
				entry.Overs = &overs
			}
			card.FallWickets = append(card.FallWickets, entry)
		}

		out.Innings = append(out.Innings, card)
	}
	return out, nil
}

func restructureExtras(raw *rawExtras) Extras {
	if raw == nil {
		return Extras{}
	}
	return Extras{
		Total:   countPtr(raw.Total),
		Byes:    countPtr(raw.Byes),
		LegByes: countPtr(raw.LegByes),
		Wides:   countPtr(raw.Wides),
		NoBalls: countPtr(raw.NoBalls),
		Penalty: countPtr(raw.Penalty),
	}
}

func countPtr(c *Count) *int {
	if c == nil {
		return nil
	}
	v := int(*c)
	return &v
}
