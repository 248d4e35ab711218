package recommend

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/internal/app/export"
	"track-recommender/internal/app/recommender"
	"track-recommender/internal/config"
)

var (
	trackID    string
	k          int
	outputPath string
)

func init() {
	Cmd.Flags().StringVarP(&trackID, "track", "t", "", "seed track id")
	Cmd.Flags().IntVarP(&k, "k", "k", 0, "number of recommendations (default from config)")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "also write the recommendations to this xlsx file")

	Cmd.MarkFlagRequired("track")
}

// Cmd represents the recommend command
var Cmd = &cobra.Command{
	Use:   "recommend",
	Short: "List the stored tracks most similar to a seed track",
	Long: `List the stored tracks most similar to a seed track

- Similarity is the cosine of min-max normalized duration and popularity
- Normalization is fitted on every stored track except the seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := cli.Bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		size := k
		if !cmd.Flags().Changed("k") {
			size = rt.Config.Recommender.DefaultK
		}
		if err := config.ValidateK(size, rt.Config.Recommender.MaxK); err != nil {
			return err
		}

		seed, err := rt.Store.GetTrack(cmd.Context(), trackID)
		if err != nil {
			return err
		}
		recs, err := rt.Engine.Recommend(cmd.Context(), trackID, size)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tracks similar to %s (%s):\n", seed.Name, strings.Join(seed.ArtistNames(), ", "))
		if len(recs) == 0 {
			fmt.Fprintln(out, "no other tracks in the catalog")
		} else {
			printTable(out, recs)
		}

		if outputPath != "" {
			if err := export.RecommendationsToExcel(*seed, recs, outputPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "export finished, exported file path: %v\n", outputPath)
		}
		return nil
	},
}

func printTable(out io.Writer, recs []recommender.Recommendation) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tSCORE\tID\tNAME\tARTISTS")
	for i, r := range recs {
		fmt.Fprintf(w, "%d\t%.4f\t%s\t%s\t%s\n", i+1, r.Score, r.Track.ID, r.Track.Name, strings.Join(r.Track.ArtistNames(), ", "))
	}
	w.Flush()
}
