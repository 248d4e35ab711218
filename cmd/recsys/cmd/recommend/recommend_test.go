package recommend

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-recommender/cmd/recsys/cmd/cli"
	"track-recommender/internal/app/recommender"
	"track-recommender/internal/app/repository/sqlite"
	"track-recommender/internal/app/testutil"
)

func seedCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := sqlite.NewSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(context.Background()))
	testutil.SeedTracks(t, store, testutil.WorkedExampleTracks())
	require.NoError(t, store.Close())
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs(args)
	t.Cleanup(func() {
		trackID, k, outputPath = "", 0, ""
		Cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})
	err := Cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	t.Setenv("RECSYS_DB_DRIVER", "sqlite3")
	t.Setenv("RECSYS_DB_DSN", seedCatalog(t))
	t.Setenv("SPOTIFY_CLIENT_ID", "")
	cli.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	out, err := run(t, "--track", "seed", "-k", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Track seed")
	assert.Contains(t, lines[2], "0.9848")
	assert.Contains(t, lines[2], "Track A")
	assert.Contains(t, lines[3], "Track C")
}

func TestRecommendCommandExportsWorkbook(t *testing.T) {
	t.Setenv("RECSYS_DB_DRIVER", "sqlite3")
	t.Setenv("RECSYS_DB_DSN", seedCatalog(t))
	t.Setenv("SPOTIFY_CLIENT_ID", "")
	cli.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	output := filepath.Join(t.TempDir(), "recs.xlsx")

	out, err := run(t, "--track", "seed", "--output", output)
	require.NoError(t, err)

	assert.Contains(t, out, output)
	_, statErr := os.Stat(output)
	assert.NoError(t, statErr)
}

func TestRecommendCommandUnknownSeed(t *testing.T) {
	t.Setenv("RECSYS_DB_DRIVER", "sqlite3")
	t.Setenv("RECSYS_DB_DSN", seedCatalog(t))
	t.Setenv("SPOTIFY_CLIENT_ID", "")
	cli.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := run(t, "--track", "nope")
	assert.ErrorContains(t, err, "track not found")
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	printTable(&out, []recommender.Recommendation{
		{Track: testutil.Track("A", 1, 1), Score: 0.5},
	})

	assert.Contains(t, out.String(), "RANK")
	assert.Contains(t, out.String(), "0.5000")
	assert.Contains(t, out.String(), "Track A")
}
