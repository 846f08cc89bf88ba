package importscript

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeedData() *eldrecord.SeedData {
	vehicleID := "asset-1"

	return &eldrecord.SeedData{
		Carrier: eldrecord.Carrier{
			ID:        "carrier-1",
			Name:      "FNE TRANSPORT LLC",
			DOTNumber: "4345433",
		},
		Drivers: []eldrecord.Driver{
			{ID: "driver-1", CarrierID: "carrier-1", FirstName: "John", LastName: "Driver"},
		},
		Assets: []eldrecord.Asset{
			{ID: "asset-1", CarrierID: "carrier-1", VehicleNumber: "101", VIN: "1FUJA6CV101000000"},
		},
		LogBooks: []eldrecord.LogBook{
			{
				ID:        "logbook-1",
				CarrierID: "carrier-1",
				DriverID:  "driver-1",
				VehicleID: &vehicleID,
				LogDate:   "2025-08-15",
				DutyEvents: []eldrecord.DutyEvent{
					{ID: "event-1", Timestamp: "2025-08-15T06:00:00", Status: eldrecord.DutyStatusOnDuty},
					{ID: "event-2", Timestamp: "2025-08-15T07:00:00", Status: eldrecord.DutyStatusDriving},
				},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	script, err := Generate(testSeedData(), "eld_database")
	require.NoError(t, err)

	assert.Contains(t, script, "use eld_database")
	assert.Contains(t, script, "db.carriers.insertOne({")
	assert.Contains(t, script, "db.drivers.insertMany([")
	assert.Contains(t, script, "db.assets.insertMany([")
	assert.Contains(t, script, "db.logbooks.insertMany([")
	assert.Contains(t, script, `"dotNumber": "4345433"`)
	assert.Contains(t, script, `print("Carrier: FNE TRANSPORT LLC");`)
	assert.Contains(t, script, `print("Assets: 1");`)
	assert.Contains(t, script, `print("Log Books: 1");`)
	assert.Contains(t, script, `print("Total Duty Events: 2");`)
}

func TestGenerateCustomDatabase(t *testing.T) {
	script, err := Generate(testSeedData(), "eld_staging")
	require.NoError(t, err)

	assert.Contains(t, script, "use eld_staging")
	assert.NotContains(t, script, "use eld_database")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import_eld_data.js")
	require.NoError(t, WriteFile(testSeedData(), "eld_database", path))

	script, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(script), "db.carriers.insertOne({")
}

func TestGenerateEmbedsJSONVerbatim(t *testing.T) {
	seedData := testSeedData()
	seedData.Carrier.Name = `Quote"Haulage`

	script, err := Generate(seedData, "eld_database")
	require.NoError(t, err)

	// Only the JSON serialiser's escaping applies
	assert.Contains(t, script, `"name": "Quote\"Haulage"`)
	assert.Contains(t, script, fmt.Sprintf("print(\"Carrier: %s\");", `Quote"Haulage`))
}
