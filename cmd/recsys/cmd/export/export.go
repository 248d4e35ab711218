package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/internal/app"
	exporter "track-recommender/internal/app/export"
)

var (
	outputFilePath string
	upload         bool
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().BoolVar(&upload, "upload", false, "upload the file to the configured MinIO bucket")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored catalog to excel",
	Long: `Export the stored catalog to excel

- One row per track, ordered by id
- With --upload the file is also stored in MinIO and its URL printed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := cli.Bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		tracks, err := rt.Store.ListTracks(cmd.Context())
		if err != nil {
			return err
		}

		if err := exporter.TracksToExcel(tracks, outputFilePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, %d tracks, exported file path: %v\n", len(tracks), outputFilePath)

		if !upload {
			return nil
		}
		uploader, err := app.NewUploader(rt.Config)
		if err != nil {
			return err
		}
		result, err := uploader.UploadFile(cmd.Context(), outputFilePath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uploaded to %s\n", result.URL)
		return nil
	},
}
