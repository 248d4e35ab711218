package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/internal/app/importer"
)

var (
	query    string
	limit    int
	parallel int
	progress bool
)

func init() {
	Cmd.Flags().StringVarP(&query, "query", "q", importer.DefaultQuery, "Spotify search query")
	Cmd.Flags().IntVarP(&limit, "limit", "l", importer.DefaultLimit, "number of search results to import (1-50)")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", importer.DefaultParallel, "tracks stored concurrently")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force the progress bar even without a terminal")
}

// Cmd represents the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Search Spotify and store every result in the local catalog",
	Long: `Search Spotify and store every result in the local catalog

- Albums, artists, markets and external ids are stored with each track
- Tracks already in the catalog are reported and left untouched`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := cli.Bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := rt.RequireCatalog(); err != nil {
			return err
		}

		imp := importer.NewImporter(rt.Catalog, rt.Store, rt.Cache, rt.Logger,
			importer.WithParallel(parallel),
			importer.WithProgress(importer.ProgressConfig{
				Enabled: importer.ShouldShowProgress(progress),
				Writer:  cmd.ErrOrStderr(),
			}),
		)

		summary, err := imp.ImportSearch(cmd.Context(), query, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range summary.Results {
			switch {
			case r.Err != nil:
				fmt.Fprintf(out, "Failed to add track: %s (%v)\n", r.Name, r.Err)
			case r.Created:
				fmt.Fprintf(out, "Added track: %s\n", r.Name)
			default:
				fmt.Fprintf(out, "Track already exists: %s\n", r.Name)
			}
		}
		fmt.Fprintf(out, "fetch finished: %d added, %d already stored, %d failed\n",
			summary.Created, summary.Existing, summary.Failed)
		return nil
	},
}
