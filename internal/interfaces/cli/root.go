package cli

import (
	"context"
	"fmt"
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-feed/external/cricbuzz"
	"github.com/spf13/cobra"
)

var errUsage = crerr.New("usage error")

// Feed is the slice of cricbuzz.Client the commands need.
type Feed interface {
	Series(ctx context.Context, seriesID string) (map[string]any, error)
	MatchInfo(ctx context.Context, matchID string) (*cricbuzz.MatchInfo, error)
	Matches(ctx context.Context) ([]*cricbuzz.MatchInfo, error)
	LiveScore(ctx context.Context, matchID string) (cricbuzz.LiveScore, error)
	Commentary(ctx context.Context, matchID string) (cricbuzz.Commentary, error)
	Scorecard(ctx context.Context, matchID string) (cricbuzz.Scorecard, []byte, error)
	FullMatch(ctx context.Context, matchID string) (map[string]any, error)
}

// NewRootCommand builds the cricbuzz command tree. Results go to out as indented JSON.
func NewRootCommand(feed Feed, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "cricbuzz",
		Short:         "Fetch match data from the Cricbuzz mobile API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	root.AddCommand(
		seriesCommand(feed),
		infoCommand(feed),
		liveCommand(feed),
		scoreCommand(feed),
		commentaryCommand(feed),
		scorecardCommand(feed),
		graphsCommand(feed),
	)
	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}
