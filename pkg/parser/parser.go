package parser

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/gocarina/gocsv"
)

// ReadRecords reads the driver records CSV, discards skipRows leading rows
// (export headers and carrier info) and maps every remaining row onto the
// fixed 17 column layout by position. There is deliberately no header-name
// matching - the export carries no reliable header row, so a column-count
// change in the source silently shifts values. Rows with missing trailing
// columns are tolerated.
func ReadRecords(path string, skipRows int) ([]eldrecord.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseRecords(file, skipRows)
}

func parseRecords(reader io.Reader, skipRows int) ([]eldrecord.RawRecord, error) {
	csvReader := csv.NewReader(reader)
	// Allow us to ignore those naughty records that have missing columns
	csvReader.FieldsPerRecord = -1

	for i := 0; i < skipRows; i++ {
		if _, err := csvReader.Read(); err == io.EOF {
			return []eldrecord.RawRecord{}, nil
		} else if err != nil {
			return nil, err
		}
	}

	records := []eldrecord.RawRecord{}
	if err := gocsv.UnmarshalCSVWithoutHeaders(csvReader, &records); err != nil && err != gocsv.ErrEmptyCSVFile {
		return nil, err
	}

	return records, nil
}
