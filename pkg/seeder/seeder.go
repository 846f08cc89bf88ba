package seeder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eldseed/eldseed/pkg/config"
	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/eldseed/eldseed/pkg/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Builder struct {
	Config *config.Config

	// Now is swappable so the generation timestamp is deterministic in tests.
	Now func() time.Time
}

func NewBuilder(conf *config.Config) *Builder {
	return &Builder{
		Config: conf,
		Now:    time.Now,
	}
}

// foldRow is a raw record with its timestamp parsed once, up front, so the
// sort and the fold agree on it.
type foldRow struct {
	record    eldrecord.RawRecord
	timestamp time.Time
	err       error
}

// RowResult records the outcome of folding a single input row. A skipped row
// never aborts the run - it is logged and the fold continues.
type RowResult struct {
	Index   int
	Skipped bool
	Reason  string
}

type BuildResult struct {
	SeedData    *eldrecord.SeedData
	RowResults  []RowResult
	SkippedRows int
}

// Build folds the raw records into the seed document: one carrier, one
// synthetic driver, an asset per distinct tractor and a log book per calendar
// date with its duty status change events.
func (b *Builder) Build(records []eldrecord.RawRecord) *BuildResult {
	carrier := b.buildCarrier()
	driver := b.buildDriver(carrier.ID)
	assets := b.buildAssets(carrier.ID, records)

	assetsByTractor := map[string]*eldrecord.Asset{}
	for i := range assets {
		assetsByTractor[assets[i].VehicleNumber] = &assets[i]
	}

	// Chronological sort on the parsed timestamp. Rows whose timestamp does
	// not parse sort after the parseable ones in raw-string order and are
	// skipped with a reason during the fold.
	sorted := make([]foldRow, len(records))
	for i, record := range records {
		timestamp, err := util.ParseTimestamp(record.TimestampEDT)
		sorted[i] = foldRow{record: record, timestamp: timestamp, err: err}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i], sorted[j]
		if left.err == nil && right.err == nil {
			return left.timestamp.Before(right.timestamp)
		}
		if (left.err == nil) != (right.err == nil) {
			return left.err == nil
		}
		return left.record.TimestampEDT < right.record.TimestampEDT
	})

	result := &BuildResult{}

	var logBooks []eldrecord.LogBook
	var currentLog *eldrecord.LogBook
	currentDate := ""

	for index, row := range sorted {
		if row.err != nil {
			result.addSkip(index, row.err.Error())
			continue
		}
		record := row.record
		timestamp := row.timestamp

		logDate := timestamp.Format("2006-01-02")
		if logDate != currentDate {
			if currentLog != nil {
				logBooks = append(logBooks, *currentLog)
			}

			currentDate = logDate
			currentLog = &eldrecord.LogBook{
				ID:         uuid.New().String(),
				CarrierID:  carrier.ID,
				DriverID:   driver.ID,
				VehicleID:  assetRef(assetsByTractor, record.TractorNumber),
				LogDate:    logDate,
				DutyEvents: []eldrecord.DutyEvent{},
				Status:     "ACTIVE",
			}
		}

		status, known := eldrecord.DutyStatusMapping[strings.TrimSpace(record.NewStatus)]
		if !known {
			result.RowResults = append(result.RowResults, RowResult{Index: index})
			continue
		}

		event, err := buildDutyEvent(record, timestamp, status)
		if err != nil {
			result.addSkip(index, err.Error())
			continue
		}

		currentLog.DutyEvents = append(currentLog.DutyEvents, *event)
		result.RowResults = append(result.RowResults, RowResult{Index: index})
	}

	if currentLog != nil {
		logBooks = append(logBooks, *currentLog)
	}
	if logBooks == nil {
		logBooks = []eldrecord.LogBook{}
	}

	result.SeedData = &eldrecord.SeedData{
		Carrier:  carrier,
		Drivers:  []eldrecord.Driver{driver},
		Assets:   assets,
		LogBooks: logBooks,
		Metadata: b.buildMetadata(records),
	}

	return result
}

func (r *BuildResult) addSkip(index int, reason string) {
	log.Warn().Int("row", index).Str("reason", reason).Msg("Skipping row")
	r.RowResults = append(r.RowResults, RowResult{Index: index, Skipped: true, Reason: reason})
	r.SkippedRows += 1
}

func (b *Builder) buildCarrier() eldrecord.Carrier {
	carrierConfig := b.Config.Carrier

	return eldrecord.Carrier{
		ID:           uuid.New().String(),
		Name:         carrierConfig.Name,
		DOTNumber:    carrierConfig.DOTNumber,
		MCNumber:     carrierConfig.MCNumber,
		BusinessType: carrierConfig.BusinessType,
		Address: eldrecord.Address{
			State:   carrierConfig.State,
			Country: carrierConfig.Country,
		},
		ContactInfo:  eldrecord.ContactInfo{},
		IsActive:     true,
		SafetyRating: carrierConfig.SafetyRating,
	}
}

func (b *Builder) buildDriver(carrierID string) eldrecord.Driver {
	driverConfig := b.Config.Driver

	return eldrecord.Driver{
		ID:                uuid.New().String(),
		CarrierID:         carrierID,
		FirstName:         driverConfig.FirstName,
		LastName:          driverConfig.LastName,
		LicenseNumber:     driverConfig.LicenseNumber,
		LicenseState:      driverConfig.LicenseState,
		LicenseExpiration: driverConfig.LicenseExpiration,
		ELDUsername:       driverConfig.ELDUsername,
		Status:            "ACTIVE",
		MedicalCertification: eldrecord.MedicalCertification{
			CertificationType: driverConfig.MedicalCertType,
			ExpirationDate:    driverConfig.MedicalCertExpiration,
		},
	}
}

// buildAssets creates one vehicle per distinct tractor number, in first-seen
// order. The VIN is synthesised from the configured prefix and the raw
// tractor number - it is a placeholder, not a valid VIN.
func (b *Builder) buildAssets(carrierID string, records []eldrecord.RawRecord) []eldrecord.Asset {
	vehicleConfig := b.Config.Vehicle

	assets := []eldrecord.Asset{}
	seen := map[string]bool{}

	for _, record := range records {
		tractorNumber := record.TractorNumber
		if tractorNumber == "" || seen[tractorNumber] {
			continue
		}
		seen[tractorNumber] = true

		assets = append(assets, eldrecord.Asset{
			ID:            uuid.New().String(),
			CarrierID:     carrierID,
			Type:          "VEHICLE",
			VehicleNumber: tractorNumber,
			VIN:           fmt.Sprintf("%s%s%s", vehicleConfig.VINPrefix, tractorNumber, vehicleConfig.VINSuffix),
			Year:          vehicleConfig.Year,
			Make:          vehicleConfig.Make,
			Model:         vehicleConfig.Model,
			ELDDeviceID:   firstDeviceID(records, tractorNumber),
			Status:        "ACTIVE",
			Specifications: eldrecord.AssetSpecifications{
				GrossVehicleWeight: vehicleConfig.GrossVehicleWeight,
				EngineType:         vehicleConfig.EngineType,
				FuelCapacity:       vehicleConfig.FuelCapacity,
			},
		})
	}

	return assets
}

func (b *Builder) buildMetadata(records []eldrecord.RawRecord) eldrecord.Metadata {
	dateRange := eldrecord.DateRange{}
	for _, record := range records {
		if record.TimestampEDT == "" {
			continue
		}
		if dateRange.Start == "" || record.TimestampEDT < dateRange.Start {
			dateRange.Start = record.TimestampEDT
		}
		if record.TimestampEDT > dateRange.End {
			dateRange.End = record.TimestampEDT
		}
	}

	return eldrecord.Metadata{
		Source:       "ELD_IMPORT",
		OriginalFile: b.Config.Files.Spreadsheet,
		ImportDate:   b.Now().Format("2006-01-02T15:04:05"),
		TotalRecords: len(records),
		DateRange:    dateRange,
	}
}

func buildDutyEvent(record eldrecord.RawRecord, timestamp time.Time, status eldrecord.DutyStatus) (*eldrecord.DutyEvent, error) {
	latitude, err := optionalFloat(record.Latitude)
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	longitude, err := optionalFloat(record.Longitude)
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}
	engineHours, err := optionalFloat(record.EngineHours)
	if err != nil {
		return nil, fmt.Errorf("engine hours: %w", err)
	}
	odometer, err := optionalOdometer(record.OdometerMiles)
	if err != nil {
		return nil, fmt.Errorf("odometer: %w", err)
	}

	var address *string
	if record.Location != "" {
		address = &record.Location
	}

	return &eldrecord.DutyEvent{
		ID:        uuid.New().String(),
		Timestamp: timestamp.Format("2006-01-02T15:04:05"),
		Status:    status,
		Location: eldrecord.EventLocation{
			Latitude:  latitude,
			Longitude: longitude,
			Address:   address,
		},
		Odometer:    odometer,
		EngineHours: engineHours,
		Source:      "ELD",
		ELDRecordID: record.ELDID,
	}, nil
}

func optionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// Odometer readings arrive as decimal miles but are stored as whole miles.
func optionalOdometer(value string) (*int, error) {
	parsed, err := optionalFloat(value)
	if err != nil || parsed == nil {
		return nil, err
	}

	miles := int(*parsed)

	return &miles, nil
}

func firstDeviceID(records []eldrecord.RawRecord, tractorNumber string) string {
	for _, record := range records {
		if record.TractorNumber == tractorNumber {
			return record.ELDID
		}
	}

	return ""
}

func assetRef(assetsByTractor map[string]*eldrecord.Asset, tractorNumber string) *string {
	if asset, exists := assetsByTractor[tractorNumber]; exists {
		id := asset.ID
		return &id
	}

	return nil
}
