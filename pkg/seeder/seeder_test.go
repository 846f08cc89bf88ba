package seeder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/eldseed/eldseed/pkg/config"
	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder() *Builder {
	builder := NewBuilder(config.Defaults())
	builder.Now = func() time.Time {
		return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	}

	return builder
}

func record(eldID string, timestamp string, tractor string, status string) eldrecord.RawRecord {
	return eldrecord.RawRecord{
		ELDID:         eldID,
		TimestampEDT:  timestamp,
		TractorNumber: tractor,
		EngineHours:   "1200.5",
		OdometerMiles: "45000.8",
		NewStatus:     status,
		Location:      "Dallas, TX",
		Latitude:      "32.77",
		Longitude:     "-96.79",
	}
}

func TestBuildTwoTractorsTwoDates(t *testing.T) {
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-15 06:00:00", "101", "ON"),
		record("ELD001", "2025-08-15 06:30:00", "101", "D"),
		record("ELD001", "2025-08-15 12:00:00", "101", "OFF"),
		record("ELD001", "2025-08-15 13:00:00", "101", "SB"),
		record("ELD002", "2025-08-16 06:00:00", "102", "ON"),
		record("ELD002", "2025-08-16 07:00:00", "102", "D"),
		record("ELD002", "2025-08-16 12:00:00", "102", "OFF"),
		record("ELD002", "2025-08-16 13:00:00", "102", "SB"),
		// Non-status rows produce no events
		record("ELD001", "2025-08-15 06:15:00", "101", "PC"),
		record("ELD002", "2025-08-16 06:15:00", "102", ""),
	}

	result := testBuilder().Build(records)
	seedData := result.SeedData

	require.Len(t, seedData.Drivers, 1)
	require.Len(t, seedData.Assets, 2)
	require.Len(t, seedData.LogBooks, 2)
	assert.Equal(t, 8, seedData.DutyEventCount())
	assert.Equal(t, 0, result.SkippedRows)

	assert.Equal(t, "2025-08-15", seedData.LogBooks[0].LogDate)
	assert.Equal(t, "2025-08-16", seedData.LogBooks[1].LogDate)
	assert.Len(t, seedData.LogBooks[0].DutyEvents, 4)
	assert.Len(t, seedData.LogBooks[1].DutyEvents, 4)

	// Every record references the carrier, directly or through it
	carrierID := seedData.Carrier.ID
	assert.NotEmpty(t, carrierID)
	assert.Equal(t, carrierID, seedData.Drivers[0].CarrierID)
	for _, asset := range seedData.Assets {
		assert.Equal(t, carrierID, asset.CarrierID)
	}
	for _, logBook := range seedData.LogBooks {
		assert.Equal(t, carrierID, logBook.CarrierID)
		assert.Equal(t, seedData.Drivers[0].ID, logBook.DriverID)
	}

	// Events are chronological within each log book
	events := seedData.LogBooks[0].DutyEvents
	statuses := []eldrecord.DutyStatus{}
	for _, event := range events {
		statuses = append(statuses, event.Status)
	}
	assert.Equal(t, []eldrecord.DutyStatus{"ON_DUTY", "DRIVING", "OFF_DUTY", "SLEEPER_BERTH"}, statuses)
}

func TestBuildAssets(t *testing.T) {
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-15 06:00:00", "101", "ON"),
		record("ELD002", "2025-08-15 07:00:00", "102", "D"),
		record("ELD003", "2025-08-15 08:00:00", "101", "OFF"),
		record("ELD004", "2025-08-15 09:00:00", "", "ON"),
	}

	seedData := testBuilder().Build(records).SeedData

	require.Len(t, seedData.Assets, 2)

	first := seedData.Assets[0]
	assert.Equal(t, "101", first.VehicleNumber)
	assert.Equal(t, "1FUJA6CV101000000", first.VIN)
	assert.Equal(t, "ELD001", first.ELDDeviceID, "device id is the first one observed for the tractor")
	assert.Equal(t, "FREIGHTLINER", first.Make)
	assert.Equal(t, 2020, first.Year)

	second := seedData.Assets[1]
	assert.Equal(t, "102", second.VehicleNumber)
	assert.Equal(t, "1FUJA6CV102000000", second.VIN)
	assert.NotEqual(t, first.ID, second.ID)

	// Log book vehicle resolves to the asset of its opening row's tractor
	require.Len(t, seedData.LogBooks, 1)
	require.NotNil(t, seedData.LogBooks[0].VehicleID)
	assert.Equal(t, first.ID, *seedData.LogBooks[0].VehicleID)
}

func TestBuildUnknownTractorYieldsNilVehicle(t *testing.T) {
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-15 06:00:00", "", "ON"),
	}

	seedData := testBuilder().Build(records).SeedData

	require.Len(t, seedData.Assets, 0)
	require.Len(t, seedData.LogBooks, 1)
	assert.Nil(t, seedData.LogBooks[0].VehicleID)
	assert.Len(t, seedData.LogBooks[0].DutyEvents, 1)
}

func TestBuildMissingLocationStillYieldsEvent(t *testing.T) {
	row := record("ELD001", "2025-08-15 06:00:00", "101", "ON")
	row.Latitude = ""
	row.Longitude = ""
	row.Location = ""
	row.OdometerMiles = ""
	row.EngineHours = ""

	seedData := testBuilder().Build([]eldrecord.RawRecord{row}).SeedData

	require.Equal(t, 1, seedData.DutyEventCount())
	event := seedData.LogBooks[0].DutyEvents[0]
	assert.Nil(t, event.Location.Latitude)
	assert.Nil(t, event.Location.Longitude)
	assert.Nil(t, event.Location.Address)
	assert.Nil(t, event.Odometer)
	assert.Nil(t, event.EngineHours)
	assert.Equal(t, eldrecord.DutyStatusOnDuty, event.Status)
	assert.Equal(t, "ELD001", event.ELDRecordID)
	assert.Equal(t, "ELD", event.Source)
}

func TestBuildEventFields(t *testing.T) {
	seedData := testBuilder().Build([]eldrecord.RawRecord{
		record("ELD001", "2025-08-15 06:00:00", "101", "D"),
	}).SeedData

	event := seedData.LogBooks[0].DutyEvents[0]
	assert.Equal(t, "2025-08-15T06:00:00", event.Timestamp)
	require.NotNil(t, event.Location.Latitude)
	assert.InDelta(t, 32.77, *event.Location.Latitude, 0.001)
	require.NotNil(t, event.Odometer)
	assert.Equal(t, 45000, *event.Odometer, "odometer is truncated to whole miles")
	require.NotNil(t, event.EngineHours)
	assert.InDelta(t, 1200.5, *event.EngineHours, 0.001)
}

func TestBuildSkipsBrokenRowsAndContinues(t *testing.T) {
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-15 06:00:00", "101", "ON"),
		record("ELD001", "not a timestamp", "101", "D"),
		record("ELD001", "2025-08-15 07:00:00", "101", "OFF"),
	}
	badLatitude := record("ELD001", "2025-08-15 08:00:00", "101", "D")
	badLatitude.Latitude = "garbage"
	records = append(records, badLatitude)

	result := testBuilder().Build(records)

	assert.Equal(t, 2, result.SkippedRows)
	assert.Equal(t, 2, result.SeedData.DutyEventCount())
	assert.Len(t, result.RowResults, 4)

	skippedReasons := []string{}
	for _, rowResult := range result.RowResults {
		if rowResult.Skipped {
			skippedReasons = append(skippedReasons, rowResult.Reason)
		}
	}
	require.Len(t, skippedReasons, 2)
	assert.Contains(t, skippedReasons[0], "latitude")
	assert.Contains(t, skippedReasons[1], "timestamp")
}

func TestBuildUnsortedInput(t *testing.T) {
	// Rows arrive out of order; log books come out one per calendar date
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-16 06:00:00", "101", "ON"),
		record("ELD001", "2025-08-15 06:00:00", "101", "ON"),
		record("ELD001", "2025-08-16 08:00:00", "101", "OFF"),
		record("ELD001", "2025-08-15 08:00:00", "101", "OFF"),
	}

	seedData := testBuilder().Build(records).SeedData

	require.Len(t, seedData.LogBooks, 2)
	assert.Equal(t, "2025-08-15", seedData.LogBooks[0].LogDate)
	assert.Equal(t, "2025-08-16", seedData.LogBooks[1].LogDate)
	assert.Len(t, seedData.LogBooks[0].DutyEvents, 2)
	assert.Len(t, seedData.LogBooks[1].DutyEvents, 2)
}

func TestBuildUSStyleTimestampsChronological(t *testing.T) {
	// US-style timestamps do not sort lexicographically - 10:00 AM would come
	// before 9:00 AM as strings. The fold must still order events by time.
	records := []eldrecord.RawRecord{
		record("ELD001", "8/15/2025 10:00:00", "101", "D"),
		record("ELD001", "8/15/2025 9:00:00", "101", "ON"),
		record("ELD001", "8/16/2025 7:00:00", "101", "OFF"),
	}

	result := testBuilder().Build(records)
	seedData := result.SeedData

	assert.Equal(t, 0, result.SkippedRows)
	require.Len(t, seedData.LogBooks, 2)
	assert.Equal(t, "2025-08-15", seedData.LogBooks[0].LogDate)

	events := seedData.LogBooks[0].DutyEvents
	require.Len(t, events, 2)
	assert.Equal(t, eldrecord.DutyStatusOnDuty, events[0].Status)
	assert.Equal(t, "2025-08-15T09:00:00", events[0].Timestamp)
	assert.Equal(t, eldrecord.DutyStatusDriving, events[1].Status)
	assert.Equal(t, "2025-08-15T10:00:00", events[1].Timestamp)
}

func TestBuildMetadata(t *testing.T) {
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-16 06:00:00", "101", "ON"),
		record("ELD001", "2025-08-15 06:00:00", "101", "OFF"),
	}

	metadata := testBuilder().Build(records).SeedData.Metadata

	assert.Equal(t, "ELD_IMPORT", metadata.Source)
	assert.Equal(t, "FNE TRANSPORT LLC_DriverRecords_2025094153348.xlsx", metadata.OriginalFile)
	assert.Equal(t, "2025-08-20T12:00:00", metadata.ImportDate)
	assert.Equal(t, 2, metadata.TotalRecords)
	assert.Equal(t, "2025-08-15 06:00:00", metadata.DateRange.Start)
	assert.Equal(t, "2025-08-16 06:00:00", metadata.DateRange.End)
}

func TestBuildEmptyInput(t *testing.T) {
	seedData := testBuilder().Build([]eldrecord.RawRecord{}).SeedData

	assert.Len(t, seedData.Assets, 0)
	assert.Len(t, seedData.LogBooks, 0)
	require.Len(t, seedData.Drivers, 1)
	assert.Equal(t, "John", seedData.Drivers[0].FirstName)
}

func TestSeedFileRoundTrip(t *testing.T) {
	records := []eldrecord.RawRecord{
		record("ELD001", "2025-08-15 06:00:00", "101", "ON"),
		record("ELD001", "2025-08-15 07:00:00", "101", "D"),
		record("ELD002", "2025-08-16 06:00:00", "102", "OFF"),
	}

	seedData := testBuilder().Build(records).SeedData

	path := filepath.Join(t.TempDir(), "eld_seed_data.json")
	require.NoError(t, seedData.WriteFile(path))

	loaded, err := eldrecord.LoadSeedFile(path)
	require.NoError(t, err)

	assert.Equal(t, len(seedData.Assets), len(loaded.Assets))
	assert.Equal(t, len(seedData.LogBooks), len(loaded.LogBooks))
	assert.Equal(t, seedData.DutyEventCount(), loaded.DutyEventCount())
	assert.Equal(t, seedData.Carrier.ID, loaded.Carrier.ID)
	assert.Equal(t, seedData.Metadata, loaded.Metadata)
}
