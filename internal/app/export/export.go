// Package export writes catalog tracks and recommendation lists to Excel workbooks.
package export

import (
	"fmt"
	"strings"

	"github.com/tealeg/xlsx"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/model"
	"track-recommender/internal/app/recommender"
)

var trackHeader = []string{"ID", "Name", "Artists", "Album", "Duration (ms)", "Popularity", "Explicit", "URI"}

// TracksToExcel writes one row per track to a "Tracks" sheet
func TracksToExcel(tracks []model.Track, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Tracks")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	addHeader(sheet, trackHeader...)
	for _, t := range tracks {
		addTrackRow(sheet.AddRow(), t)
	}

	if err := file.Save(outputFilePath); err != nil {
		return apperrors.WrapAs(err, apperrors.ErrFileWriteFailed, "save %s", outputFilePath)
	}
	return nil
}

// RecommendationsToExcel writes the seed and its ranked recommendations
func RecommendationsToExcel(seed model.Track, recs []recommender.Recommendation, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Recommendations")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	seedRow := sheet.AddRow()
	seedRow.AddCell().Value = "Seed"
	seedRow.AddCell().Value = seed.ID
	seedRow.AddCell().Value = seed.Name

	addHeader(sheet, append([]string{"Rank", "Score"}, trackHeader...)...)
	for i, r := range recs {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetFloatWithFormat(r.Score, "0.0000")
		addTrackRow(row, r.Track)
	}

	if err := file.Save(outputFilePath); err != nil {
		return apperrors.WrapAs(err, apperrors.ErrFileWriteFailed, "save %s", outputFilePath)
	}
	return nil
}

func addHeader(sheet *xlsx.Sheet, titles ...string) {
	row := sheet.AddRow()
	for _, title := range titles {
		cell := row.AddCell()
		cell.Value = title
		cell.GetStyle().Font.Bold = true
	}
}

func addTrackRow(row *xlsx.Row, t model.Track) {
	row.AddCell().Value = t.ID
	row.AddCell().Value = t.Name
	row.AddCell().Value = strings.Join(t.ArtistNames(), ", ")
	album := ""
	if t.Album != nil {
		album = t.Album.Name
	}
	row.AddCell().Value = album
	addOptionalInt(row, t.DurationMs)
	addOptionalInt(row, t.Popularity)
	row.AddCell().SetBool(t.Explicit)
	row.AddCell().Value = t.URI
}

func addOptionalInt(row *xlsx.Row, v *int) {
	cell := row.AddCell()
	if v != nil {
		cell.SetInt(*v)
	}
}
