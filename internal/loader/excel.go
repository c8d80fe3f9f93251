// internal/loader/excel.go
package loader

import (
	"fmt"
	"io"
	"sync"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

// ReadWorkbook reads every sheet of an xlsx workbook into raw rows. Sheets
// are parsed concurrently but rows keep workbook order: all of sheet 1, then
// all of sheet 2, and so on. Sheets without a header row are skipped.
func ReadWorkbook(path string) ([]RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	return readWorkbook(f)
}

// ReadWorkbookReader is ReadWorkbook for an in-memory upload.
func ReadWorkbookReader(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) ([]RawRow, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	log := logger.Component("loader")

	var (
		g       errgroup.Group
		mu      sync.Mutex
		bySheet = make([][]RawRow, len(sheets))
	)

	for i, sheet := range sheets {
		g.Go(func() error {
			rows, err := f.GetRows(sheet)
			if err != nil {
				return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
			}
			parsed := sheetRows(rows)
			if parsed == nil {
				log.Debug().Str("sheet", sheet).Msg("sheet has no header row, skipping")
				return nil
			}
			mu.Lock()
			bySheet[i] = parsed
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []RawRow
	for _, rows := range bySheet {
		all = append(all, rows...)
	}
	return all, nil
}

// sheetRows converts one sheet's cell matrix into raw rows. The first row
// with at least one non-empty cell is the header; everything above it is
// ignored.
func sheetRows(rows [][]string) []RawRow {
	headerIdx := -1
	var header []string
	for i, row := range rows {
		if hasContent(row) {
			headerIdx = i
			header = row
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	out := make([]RawRow, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		if !hasContent(row) {
			continue
		}
		raw := make(RawRow, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			if col < len(row) {
				raw[name] = row[col]
			}
		}
		out = append(out, raw)
	}
	return out
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}
