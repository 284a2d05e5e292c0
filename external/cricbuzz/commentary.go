package cricbuzz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Commentary returns the ball-by-ball feed, keeping only lines that carry a comm key.
func (c *Client) Commentary(ctx context.Context, matchID string) (Commentary, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.Commentary")
	defer span.End()

	matchID, err := c.checkID("match id", matchID)
	if err != nil {
		return Commentary{}, err
	}

	var envelope commentaryEnvelope
	if _, err := c.crawlInto(ctx, c.matchURL(matchID, "commentary"), &envelope); err != nil {
		return Commentary{}, fmt.Errorf("commentary match_id=%s: %w", matchID, err)
	}
	return filterCommentary(envelope.Lines), nil
}

func filterCommentary(lines []commentaryLine) Commentary {
	out := Commentary{Lines: make([]CommentaryLine, 0, len(lines))}
	for _, line := range lines {
		if !line.HasComm {
			continue
		}
		entry := CommentaryLine{Text: line.Comm}
		if line.Over != nil {
			over := string(*line.Over)
			entry.Over = &over
		}
		out.Lines = append(out.Lines, entry)
	}
	return out
}

func (l *commentaryLine) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := rawAPI.Unmarshal(data, &fields); err != nil {
		return err
	}

	*l = commentaryLine{}
	if raw, ok := fields["comm"]; ok {
		l.HasComm = true
		if !isJSONNull(raw) {
			var text string
			if err := rawAPI.Unmarshal(raw, &text); err != nil {
				// Non-string comm values are kept as their JSON text.
				text = string(bytes.TrimSpace(raw))
			}
			l.Comm = &text
		}
	}
	if raw, ok := fields["o_no"]; ok && !isJSONNull(raw) {
		var over Overs
		if err := over.UnmarshalJSON(raw); err != nil {
			return err
		}
		l.Over = &over
	}
	return nil
}

func isJSONNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
