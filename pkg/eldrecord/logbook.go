package eldrecord

type LogBook struct {
	ID         string      `json:"_id" bson:"_id"`
	CarrierID  string      `json:"carrierId" bson:"carrierId"`
	DriverID   string      `json:"driverId" bson:"driverId"`
	VehicleID  *string     `json:"vehicleId" bson:"vehicleId"`
	LogDate    string      `json:"logDate" bson:"logDate"`
	DutyEvents []DutyEvent `json:"dutyEvents" bson:"dutyEvents"`
	Status     string      `json:"status" bson:"status"`
}

type DutyEvent struct {
	ID          string        `json:"_id" bson:"_id"`
	Timestamp   string        `json:"timestamp" bson:"timestamp"`
	Status      DutyStatus    `json:"status" bson:"status"`
	Location    EventLocation `json:"location" bson:"location"`
	Odometer    *int          `json:"odometer" bson:"odometer"`
	EngineHours *float64      `json:"engineHours" bson:"engineHours"`
	Source      string        `json:"source" bson:"source"`
	ELDRecordID string        `json:"eldRecordId" bson:"eldRecordId"`
}

// EventLocation is the geolocation captured by the device at the time of a
// status change. Any of the fields may be missing in the source data.
type EventLocation struct {
	Latitude  *float64 `json:"latitude" bson:"latitude"`
	Longitude *float64 `json:"longitude" bson:"longitude"`
	Address   *string  `json:"address" bson:"address"`
}
