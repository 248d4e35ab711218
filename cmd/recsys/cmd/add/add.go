package add

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/cli"
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add <track-id>",
	Short: "Store a single Spotify track in the local catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := cli.Bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := rt.RequireCatalog(); err != nil {
			return err
		}

		track, created, err := rt.Importer.ImportTrack(cmd.Context(), strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}

		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Added track: %s by %s\n", track.Name, strings.Join(track.ArtistNames(), ", "))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Track already exists: %s\n", track.Name)
		}
		return nil
	},
}
