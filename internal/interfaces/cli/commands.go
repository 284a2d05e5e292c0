package cli

import (
	"github.com/spf13/cobra"
)

func seriesCommand(feed Feed) *cobra.Command {
	return &cobra.Command{
		Use:   "series <series-id>",
		Short: "List the matches of a series",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := feed.Series(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func infoCommand(feed Feed) *cobra.Command {
	return &cobra.Command{
		Use:   "info <match-id>",
		Short: "Show match details with local start time and squads",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := feed.MatchInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func liveCommand(feed Feed) *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Show match details for every live match",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := feed.Matches(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func scoreCommand(feed Feed) *cobra.Command {
	return &cobra.Command{
		Use:   "score <match-id>",
		Short: "Show the running score of a live match",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := feed.LiveScore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func commentaryCommand(feed Feed) *cobra.Command {
	return &cobra.Command{
		Use:   "commentary <match-id>",
		Short: "Show ball-by-ball commentary",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := feed.Commentary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func scorecardCommand(feed Feed) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "scorecard <match-id>",
		Short: "Show the full scorecard",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, body, err := feed.Scorecard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if raw {
				return writeRawJSON(cmd.OutOrStdout(), body)
			}
			return writeJSON(cmd.OutOrStdout(), card)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the upstream payload instead of the normalized cards")
	return cmd
}

func graphsCommand(feed Feed) *cobra.Command {
	return &cobra.Command{
		Use:   "graphs <match-id>",
		Short: "Show the match graphs payload",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := feed.FullMatch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
