package parser

import (
	"sort"

	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

const maxSampleValues = 10

type ColumnStats struct {
	Name          string
	DistinctCount int
	SampleValues  []string
}

type Stats struct {
	TotalRecords     int
	Columns          []ColumnStats
	StatusCounts     map[string]int
	DistinctDevices  int
	DistinctTractors int

	// Raw string min/max of the timestamp column, as observed.
	MinTimestamp string
	MaxTimestamp string
}

// Analyse produces the descriptive statistics report for a set of parsed
// records - per-column distinct counts with samples for low-cardinality
// columns, the duty status frequency table and the device/tractor summary.
func Analyse(records []eldrecord.RawRecord) *Stats {
	stats := &Stats{
		TotalRecords: len(records),
		StatusCounts: map[string]int{},
	}

	distinctValues := make([]map[string]bool, len(eldrecord.RawRecordColumns))
	sampleValues := make([][]string, len(eldrecord.RawRecordColumns))
	for i := range distinctValues {
		distinctValues[i] = map[string]bool{}
	}

	devices := map[string]bool{}
	tractors := map[string]bool{}

	for _, record := range records {
		for i, value := range record.Values() {
			if value == "" {
				continue
			}

			if !distinctValues[i][value] && len(sampleValues[i]) < maxSampleValues {
				sampleValues[i] = append(sampleValues[i], value)
			}
			distinctValues[i][value] = true
		}

		if record.NewStatus != "" {
			stats.StatusCounts[record.NewStatus] += 1
		}
		if record.ELDID != "" {
			devices[record.ELDID] = true
		}
		if record.TractorNumber != "" {
			tractors[record.TractorNumber] = true
		}

		if record.TimestampEDT != "" {
			if stats.MinTimestamp == "" || record.TimestampEDT < stats.MinTimestamp {
				stats.MinTimestamp = record.TimestampEDT
			}
			if record.TimestampEDT > stats.MaxTimestamp {
				stats.MaxTimestamp = record.TimestampEDT
			}
		}
	}

	for i, columnName := range eldrecord.RawRecordColumns {
		columnStats := ColumnStats{
			Name:          columnName,
			DistinctCount: len(distinctValues[i]),
		}
		if columnStats.DistinctCount <= maxSampleValues {
			columnStats.SampleValues = sampleValues[i]
		}

		stats.Columns = append(stats.Columns, columnStats)
	}

	stats.DistinctDevices = len(devices)
	stats.DistinctTractors = len(tractors)

	return stats
}

// LogReport writes the human inspection report.
func (s *Stats) LogReport() {
	log.Info().Int("records", s.TotalRecords).Msg("Driver records analysis")

	for _, columnStats := range s.Columns {
		event := log.Info().Str("column", columnStats.Name).Int("distinct", columnStats.DistinctCount)
		if columnStats.SampleValues != nil {
			event = event.Strs("samples", columnStats.SampleValues)
		}
		event.Msg("Column analysis")
	}

	statuses := maps.Keys(s.StatusCounts)
	sort.Slice(statuses, func(i, j int) bool {
		return s.StatusCounts[statuses[i]] > s.StatusCounts[statuses[j]]
	})
	for _, status := range statuses {
		log.Info().Str("status", status).Int("count", s.StatusCounts[status]).Msg("Duty status distribution")
	}

	log.Info().
		Int("devices", s.DistinctDevices).
		Int("tractors", s.DistinctTractors).
		Str("from", s.MinTimestamp).
		Str("to", s.MaxTimestamp).
		Msg("Summary")
}
