package loader

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/eldseed/eldseed/pkg/config"
	"github.com/eldseed/eldseed/pkg/util"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const headRows = 5
const typeSampleRows = 20

// Run opens the driver records workbook and inspects it. A workbook with
// exactly one sheet is fully loaded and exported as the JSON and CSV sidecar
// files; a workbook with multiple sheets only gets a per-sheet summary and no
// sidecar files.
//
// Failure to open the file is reported with remediation guidance and does not
// return an error - the operator is expected to fix the input and re-run.
func Run(conf *config.Config, filePath string) error {
	log.Info().Str("file", filePath).Msg("Reading spreadsheet")

	file, err := excelize.OpenFile(filePath)
	if err != nil {
		remediate(filePath, err)
		return nil
	}
	defer file.Close()

	sheets := file.GetSheetList()
	log.Info().Strs("sheets", sheets).Msg("Available sheets")

	if len(sheets) == 1 {
		return exportSheet(file, sheets[0], conf)
	}

	for _, sheet := range sheets {
		summariseSheet(file, sheet)
	}

	return nil
}

func remediate(filePath string, err error) {
	log.Error().Err(err).Str("file", filePath).Msg("Failed to read spreadsheet")
	log.Warn().Msg("Check the export exists and is a readable xlsx workbook, then run again")
}

func exportSheet(file *excelize.File, sheet string, conf *config.Config) error {
	rows, err := file.GetRows(sheet)
	if err != nil {
		remediate(file.Path, err)
		return nil
	}

	if len(rows) == 0 {
		log.Warn().Str("sheet", sheet).Msg("Sheet is empty")
		return nil
	}

	header := rows[0]
	data := padRows(rows[1:], len(header))

	log.Info().Int("rows", len(data)).Int("columns", len(header)).Msg("Data shape")
	for i, columnName := range header {
		log.Info().Int("position", i+1).Str("column", columnName).Str("dtype", inferColumnType(data, i)).Msg("Column")
	}

	head := data
	if len(head) > headRows {
		head = head[:headRows]
	}
	log.Debug().Msgf("First few rows: %s", pretty.Sprint(head))

	if err := writeRecordsJSON(header, data, conf.Files.RecordsJSON); err != nil {
		return err
	}
	if err := writeRecordsCSV(header, data, conf.Files.RecordsCSV); err != nil {
		return err
	}

	log.Info().
		Str("json", conf.Files.RecordsJSON).
		Str("csv", conf.Files.RecordsCSV).
		Msg("Files created")

	return nil
}

func summariseSheet(file *excelize.File, sheet string) {
	rows, err := file.GetRows(sheet)
	if err != nil {
		log.Error().Err(err).Str("sheet", sheet).Msg("Failed to read sheet")
		return
	}

	if len(rows) == 0 {
		log.Info().Str("sheet", sheet).Int("rows", 0).Msg("Sheet summary")
		return
	}

	head := rows[1:]
	if len(head) > 3 {
		head = head[:3]
	}

	log.Info().
		Str("sheet", sheet).
		Int("rows", len(rows)-1).
		Int("columns", len(rows[0])).
		Strs("header", rows[0]).
		Msg("Sheet summary")
	log.Debug().Msgf("First few rows: %s", pretty.Sprint(head))
}

// writeRecordsJSON mirrors the raw sheet as an array of row objects keyed by
// the sheet header, with numbers kept numeric and dates normalised to ISO
// form.
func writeRecordsJSON(header []string, data [][]string, path string) error {
	records := make([]map[string]interface{}, 0, len(data))

	for _, row := range data {
		record := map[string]interface{}{}
		for i, columnName := range header {
			record[columnName] = normaliseValue(row[i])
		}
		records = append(records, record)
	}

	recordsJSON, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, recordsJSON, 0644)
}

func writeRecordsCSV(header []string, data [][]string, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range data {
		normalised := make([]string, len(row))
		for i, value := range row {
			normalised[i] = csvValue(value)
		}
		if err := writer.Write(normalised); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}

// csvValue rewrites date cells from their workbook display format into ISO
// form, like the JSON sidecar. The seed fold sorts on these strings, so date
// cells must not leave here as m/d/yy display text.
func csvValue(value string) string {
	if value == "" {
		return value
	}

	if timestamp, err := util.ParseTimestamp(value); err == nil {
		return timestamp.Format("2006-01-02 15:04:05")
	}

	return value
}

// normaliseValue maps a cell string to the JSON value the sidecar file
// carries. Dates become ISO strings, numbers stay numeric, everything else
// is passed through and empty cells become null.
func normaliseValue(value string) interface{} {
	if value == "" {
		return nil
	}

	if timestamp, err := util.ParseTimestamp(value); err == nil {
		return timestamp.Format("2006-01-02T15:04:05")
	}

	if number, err := strconv.ParseFloat(value, 64); err == nil {
		return number
	}

	return value
}

func inferColumnType(data [][]string, column int) string {
	sampled := 0
	numbers := 0
	timestamps := 0

	for _, row := range data {
		if sampled == typeSampleRows {
			break
		}
		value := row[column]
		if value == "" {
			continue
		}
		sampled += 1

		if _, err := strconv.ParseFloat(value, 64); err == nil {
			numbers += 1
		} else if _, err := util.ParseTimestamp(value); err == nil {
			timestamps += 1
		}
	}

	switch {
	case sampled == 0:
		return "empty"
	case numbers == sampled:
		return "number"
	case timestamps == sampled:
		return "datetime"
	default:
		return "string"
	}
}

// excelize trims trailing empty cells from GetRows results, so rows are
// padded back out to the header width.
func padRows(rows [][]string, width int) [][]string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) > width {
			log.Debug().Int("row", i+2).Int("columns", len(row)).Int("width", width).Msg("Truncating row to header width")
		}
		if len(row) < width {
			row = append(row, make([]string, width-len(row))...)
		}
		padded[i] = row[:width]
	}

	return padded
}
