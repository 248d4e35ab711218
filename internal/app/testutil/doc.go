// Package testutil provides shared helpers for catalog tests.
//
// It contains:
//   - SetupTestSQLite / SetupTestPostgres: throwaway catalog stores with the schema applied
//   - FixtureTracks and WorkedExampleTracks: deterministic track fixtures
//   - MemoryCatalog: an in-memory repository.CatalogDAO
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//		store := testutil.SetupTestSQLite(t)
//		testutil.SeedTracks(t, store, testutil.FixtureTracks())
//		// ...
//	}
package testutil
