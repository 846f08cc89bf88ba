package config

import (
	"os"

	"github.com/eldseed/eldseed/pkg/util"
	"gopkg.in/yaml.v3"
)

// Config carries the carrier identity, the synthetic driver, the vehicle
// placeholders and the file names of every artefact in the pipeline. Defaults
// match the FNE TRANSPORT export, so running with no config file needs no
// setup at all.
type Config struct {
	Carrier  CarrierConfig  `yaml:"carrier"`
	Driver   DriverConfig   `yaml:"driver"`
	Vehicle  VehicleConfig  `yaml:"vehicle"`
	Files    FilesConfig    `yaml:"files"`
	Parser   ParserConfig   `yaml:"parser"`
	Database DatabaseConfig `yaml:"database"`
}

type CarrierConfig struct {
	Name         string `yaml:"name"`
	DOTNumber    string `yaml:"dotNumber"`
	MCNumber     string `yaml:"mcNumber"`
	BusinessType string `yaml:"businessType"`
	State        string `yaml:"state"`
	Country      string `yaml:"country"`
	SafetyRating string `yaml:"safetyRating"`
}

type DriverConfig struct {
	FirstName             string `yaml:"firstName"`
	LastName              string `yaml:"lastName"`
	LicenseNumber         string `yaml:"licenseNumber"`
	LicenseState          string `yaml:"licenseState"`
	LicenseExpiration     string `yaml:"licenseExpiration"`
	ELDUsername           string `yaml:"eldUsername"`
	MedicalCertType       string `yaml:"medicalCertType"`
	MedicalCertExpiration string `yaml:"medicalCertExpiration"`
}

type VehicleConfig struct {
	VINPrefix          string `yaml:"vinPrefix"`
	VINSuffix          string `yaml:"vinSuffix"`
	Year               int    `yaml:"year"`
	Make               string `yaml:"make"`
	Model              string `yaml:"model"`
	GrossVehicleWeight int    `yaml:"grossVehicleWeight"`
	EngineType         string `yaml:"engineType"`
	FuelCapacity       int    `yaml:"fuelCapacity"`
}

type FilesConfig struct {
	Spreadsheet  string `yaml:"spreadsheet"`
	RecordsCSV   string `yaml:"recordsCsv"`
	RecordsJSON  string `yaml:"recordsJson"`
	SeedData     string `yaml:"seedData"`
	ImportScript string `yaml:"importScript"`
}

type ParserConfig struct {
	// SkipRows is the number of leading non-data rows (export headers and
	// carrier info) discarded before positional column assignment starts.
	SkipRows int `yaml:"skipRows"`
}

type DatabaseConfig struct {
	Name string `yaml:"name"`
}

const DefaultConfigFile = "eldseed.yaml"

func Defaults() *Config {
	return &Config{
		Carrier: CarrierConfig{
			Name:         "FNE TRANSPORT LLC",
			DOTNumber:    "4345433",
			MCNumber:     "",
			BusinessType: "FOR_HIRE_CARRIER",
			State:        "TX",
			Country:      "US",
			SafetyRating: "SATISFACTORY",
		},
		Driver: DriverConfig{
			FirstName:             "John",
			LastName:              "Driver",
			LicenseNumber:         "TX123456789",
			LicenseState:          "TX",
			LicenseExpiration:     "2026-12-31",
			ELDUsername:           "jdriver",
			MedicalCertType:       "DOT_PHYSICAL",
			MedicalCertExpiration: "2026-06-30",
		},
		Vehicle: VehicleConfig{
			VINPrefix:          "1FUJA6CV",
			VINSuffix:          "000000",
			Year:               2020,
			Make:               "FREIGHTLINER",
			Model:              "CASCADIA",
			GrossVehicleWeight: 80000,
			EngineType:         "DIESEL",
			FuelCapacity:       200,
		},
		Files: FilesConfig{
			Spreadsheet:  "FNE TRANSPORT LLC_DriverRecords_2025094153348.xlsx",
			RecordsCSV:   "driver_records.csv",
			RecordsJSON:  "driver_records.json",
			SeedData:     "eld_seed_data.json",
			ImportScript: "import_eld_data.js",
		},
		Parser: ParserConfig{
			SkipRows: 5,
		},
		Database: DatabaseConfig{
			Name: "eld_database",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// ELDSEED_* environment variable overrides, in that order.
func Load(path string) (*Config, error) {
	conf := Defaults()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		configYaml, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(configYaml, conf); err != nil {
			return nil, err
		}
	}

	env := util.GetEnvironmentVariables()

	if env["ELDSEED_SPREADSHEET"] != "" {
		conf.Files.Spreadsheet = env["ELDSEED_SPREADSHEET"]
	}
	if env["ELDSEED_RECORDS_CSV"] != "" {
		conf.Files.RecordsCSV = env["ELDSEED_RECORDS_CSV"]
	}
	if env["ELDSEED_DATABASE_NAME"] != "" {
		conf.Database.Name = env["ELDSEED_DATABASE_NAME"]
	}

	return conf, nil
}
