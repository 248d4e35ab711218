package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/add"
	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/cmd/recsys/cmd/export"
	"track-recommender/cmd/recsys/cmd/fetch"
	"track-recommender/cmd/recsys/cmd/migrate"
	"track-recommender/cmd/recsys/cmd/recommend"
	"track-recommender/cmd/recsys/cmd/serve"
	"track-recommender/cmd/recsys/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recsys",
	Short: "Content-based track recommendations from a local music catalog",
	Long: `Content-based track recommendations from a local music catalog.
- Import tracks from Spotify with fetch or add
- Ask for tracks similar to a stored track with recommend
- Serve the catalog and recommendations over HTTP with serve`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fetch.Cmd)
	rootCmd.AddCommand(add.Cmd)
	rootCmd.AddCommand(recommend.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "config file (default is $HOME/.recsys/config.yaml)")
}
