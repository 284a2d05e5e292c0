package cricbuzz

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const (
	// Upstream start times are IST wall clock encoded as epoch seconds.
	istOffsetSeconds = 19800
	startTimeLayout  = "2006-01-02 15:04:05"
)

// MatchInfo is the match payload plus the derived start time and resolved squads.
// It marshals back to the upstream object with header.start_time_, team1_ and team2_ added.
type MatchInfo struct {
	MatchID   ID
	StartTime string
	Team1     TeamSquad
	Team2     TeamSquad
	Raw       map[string]any
}

func (m MatchInfo) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Raw)+2)
	for k, v := range m.Raw {
		out[k] = v
	}

	header := map[string]any{}
	if existing, ok := out["header"].(map[string]any); ok {
		for k, v := range existing {
			header[k] = v
		}
	}
	header["start_time_"] = m.StartTime
	out["header"] = header
	out["team1_"] = m.Team1
	out["team2_"] = m.Team2
	return rawAPI.Marshal(out)
}

// MatchInfo fetches one match and assembles its display view.
func (c *Client) MatchInfo(ctx context.Context, matchID string) (*MatchInfo, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.MatchInfo")
	defer span.End()

	matchID, err := c.checkID("match id", matchID)
	if err != nil {
		return nil, err
	}

	match, raw, err := c.fetchMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	info, err := c.assembleMatchInfo(match, raw)
	if err != nil {
		return nil, fmt.Errorf("match info match_id=%s: %w", matchID, err)
	}
	return info, nil
}

func (c *Client) assembleMatchInfo(match *Match, raw []byte) (*MatchInfo, error) {
	if match.Header == nil {
		return nil, crerr.Wrap(ErrMalformedPayload, "match payload has no header")
	}
	if match.Venue == nil {
		return nil, crerr.Wrap(ErrMalformedPayload, "match payload has no venue")
	}

	startTime, err := localStartTime(int64(match.Header.StartTime), match.Venue.Timezone, c.location)
	if err != nil {
		return nil, err
	}

	players, _ := BuildMappings(match)
	team1, err := resolveSquad(match.Team1, players, "team1")
	if err != nil {
		return nil, err
	}
	team2, err := resolveSquad(match.Team2, players, "team2")
	if err != nil {
		return nil, err
	}

	var rawObject map[string]any
	if err := rawAPI.Unmarshal(raw, &rawObject); err != nil {
		return nil, withKind(ErrMalformedPayload, crerr.Wrap(err, "decode match object"))
	}

	return &MatchInfo{
		MatchID:   match.MatchID,
		StartTime: startTime,
		Team1:     team1,
		Team2:     team2,
		Raw:       rawObject,
	}, nil
}

func resolveSquad(team *MatchTeam, players PlayerMap, where string) (TeamSquad, error) {
	if team == nil {
		return TeamSquad{Squad: []string{}, Bench: []string{}}, nil
	}
	squad, err := players.names(team.Squad, where+".squad")
	if err != nil {
		return TeamSquad{}, err
	}
	bench, err := players.names(team.Bench, where+".squad_bench")
	if err != nil {
		return TeamSquad{}, err
	}
	return TeamSquad{Name: team.Name, Squad: squad, Bench: bench}, nil
}

// localStartTime shifts an IST-based start value to the venue offset and renders it in loc.
func localStartTime(start int64, venueTZ string, loc *time.Location) (string, error) {
	offset, err := parseUTCOffset(venueTZ)
	if err != nil {
		return "", withKind(ErrMalformedPayload, crerr.Wrapf(err, "venue timezone %q", venueTZ))
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(start-istOffsetSeconds+offset, 0).In(loc).Format(startTimeLayout), nil
}

// parseUTCOffset reads "H:MM" or "+H:MM"/"-H:MM" into seconds. The sign covers the minutes too.
func parseUTCOffset(value string) (int64, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0, crerr.New("empty offset")
	}
	sign := int64(1)
	switch text[0] {
	case '-':
		sign = -1
		text = text[1:]
	case '+':
		text = text[1:]
	}

	hoursText, minutesText, found := strings.Cut(text, ":")
	if !found {
		minutesText = "0"
	}
	hours, err := strconv.ParseInt(hoursText, 10, 64)
	if err != nil {
		return 0, crerr.Wrap(err, "parse hours")
	}
	minutes, err := strconv.ParseInt(minutesText, 10, 64)
	if err != nil {
		return 0, crerr.Wrap(err, "parse minutes")
	}
	if hours < 0 || minutes < 0 || minutes >= 60 {
		return 0, crerr.Newf("offset %q out of range", value)
	}
	return sign * (hours*3600 + minutes*60), nil
}
