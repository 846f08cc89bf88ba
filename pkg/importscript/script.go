package importscript

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eldseed/eldseed/pkg/eldrecord"
)

const scriptTemplate = `
// MongoDB Import Script for ELD Data
// Generated from %s driver records

// Connect to your MongoDB database
use %s

// Insert Carrier
db.carriers.insertOne(%s);

// Insert Drivers
db.drivers.insertMany(%s);

// Insert Assets
db.assets.insertMany(%s);

// Insert Log Books
db.logbooks.insertMany(%s);

print("✅ ELD data imported successfully!");
print("Carrier: %s");
print("Assets: %d");
print("Log Books: %d");
print("Total Duty Events: %d");
`

// Generate renders the mongo shell import script for a seed document. The
// JSON sub-documents are interpolated verbatim - only the JSON serialiser's
// own string escaping stands between the data and the shell syntax.
func Generate(seedData *eldrecord.SeedData, databaseName string) (string, error) {
	carrierJSON, err := json.MarshalIndent(seedData.Carrier, "", "  ")
	if err != nil {
		return "", err
	}
	driversJSON, err := json.MarshalIndent(seedData.Drivers, "", "  ")
	if err != nil {
		return "", err
	}
	assetsJSON, err := json.MarshalIndent(seedData.Assets, "", "  ")
	if err != nil {
		return "", err
	}
	logBooksJSON, err := json.MarshalIndent(seedData.LogBooks, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(scriptTemplate,
		seedData.Carrier.Name,
		databaseName,
		carrierJSON,
		driversJSON,
		assetsJSON,
		logBooksJSON,
		seedData.Carrier.Name,
		len(seedData.Assets),
		len(seedData.LogBooks),
		seedData.DutyEventCount(),
	), nil
}

func WriteFile(seedData *eldrecord.SeedData, databaseName string, path string) error {
	script, err := Generate(seedData, databaseName)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(script), 0644)
}
