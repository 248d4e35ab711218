package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/internal/app/repository/migrate"
	"track-recommender/internal/app/repository/pg"
	"track-recommender/internal/app/repository/sqlite"
	"track-recommender/internal/config"
)

var (
	sourcePath string
	targetDSN  string
	batchSize  int
)

func init() {
	Cmd.Flags().StringVar(&sourcePath, "from", "", "SQLite catalog to copy (default from config)")
	Cmd.Flags().StringVar(&targetDSN, "to", "", "PostgreSQL DSN (default DATABASE_URL or DB_* variables)")
	Cmd.Flags().IntVar(&batchSize, "batch-size", migrate.DefaultBatchSize, "tracks read per page")
}

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy a SQLite catalog into PostgreSQL",
	Long: `Copy a SQLite catalog into PostgreSQL

- The PostgreSQL schema is created when missing
- Tracks already present in PostgreSQL are kept; the copy can be re-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		logger := cli.NewLogger()
		defer logger.Sync()

		from := sourcePath
		if from == "" {
			if cfg.Database.Driver != sqlite.DriverName {
				return fmt.Errorf("--from is required when the configured store is %s", cfg.Database.Driver)
			}
			from = cfg.Database.DSN
		}
		to := targetDSN
		if to == "" {
			to = config.GetNetworkConfig().GetPostgresConnectionString()
		}

		src, err := sqlite.NewSQLiteDB(from)
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := pg.NewPostgresDB(to)
		if err != nil {
			return err
		}
		defer dst.Close()

		summary, err := migrate.CopyCatalog(cmd.Context(), src, dst, batchSize, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migration finished: %d copied, %d already present\n", summary.Copied, summary.Existing)
		return nil
	},
}
