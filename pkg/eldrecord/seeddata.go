package eldrecord

import (
	"encoding/json"
	"os"
)

// SeedData is the complete document emitted by the seed builder and consumed
// by both the generated mongo shell script and the direct importer.
type SeedData struct {
	Carrier  Carrier   `json:"carrier" bson:"carrier"`
	Drivers  []Driver  `json:"drivers" bson:"drivers"`
	Assets   []Asset   `json:"assets" bson:"assets"`
	LogBooks []LogBook `json:"logBooks" bson:"logBooks"`
	Metadata Metadata  `json:"metadata" bson:"metadata"`
}

type Metadata struct {
	Source       string    `json:"source" bson:"source"`
	OriginalFile string    `json:"originalFile" bson:"originalFile"`
	ImportDate   string    `json:"importDate" bson:"importDate"`
	TotalRecords int       `json:"totalRecords" bson:"totalRecords"`
	DateRange    DateRange `json:"dateRange" bson:"dateRange"`
}

// DateRange carries the raw min/max timestamp strings as observed in the
// input rather than parsed times.
type DateRange struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

func (s *SeedData) DutyEventCount() int {
	count := 0
	for _, logBook := range s.LogBooks {
		count += len(logBook.DutyEvents)
	}

	return count
}

func (s *SeedData) WriteFile(path string) error {
	seedJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, seedJSON, 0644)
}

func LoadSeedFile(path string) (*SeedData, error) {
	seedJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seedData SeedData
	if err := json.Unmarshal(seedJSON, &seedData); err != nil {
		return nil, err
	}

	return &seedData, nil
}
