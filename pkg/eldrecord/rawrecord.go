package eldrecord

// RawRecord is one data row of the driver records CSV. The export carries no
// usable header so fields are assigned by column position, in this exact
// order.
type RawRecord struct {
	ELDID                string `csv:"ELD_ID"`
	AppVersion           string `csv:"App_Version"`
	TimestampEDT         string `csv:"Timestamp_EDT"`
	CoDriver             string `csv:"CoDriver"`
	TractorNumber        string `csv:"Tractor_Number"`
	EngineHours          string `csv:"Engine_Hours"`
	OdometerMiles        string `csv:"Odometer_Miles"`
	NewStatus            string `csv:"New_Status"`
	Location             string `csv:"Location"`
	Latitude             string `csv:"Latitude"`
	Longitude            string `csv:"Longitude"`
	EventStatus          string `csv:"Event_Status"`
	EventOrigin          string `csv:"Event_Origin"`
	EventType            string `csv:"Event_Type"`
	EventCode            string `csv:"Event_Code"`
	VerifiedTimestampEDT string `csv:"Verified_Timestamp_EDT"`
	DMCode               string `csv:"DM_Code"`
}

// RawRecordColumns lists the positional column names, aligned with the field
// order of RawRecord.
var RawRecordColumns = []string{
	"ELD_ID",
	"App_Version",
	"Timestamp_EDT",
	"CoDriver",
	"Tractor_Number",
	"Engine_Hours",
	"Odometer_Miles",
	"New_Status",
	"Location",
	"Latitude",
	"Longitude",
	"Event_Status",
	"Event_Origin",
	"Event_Type",
	"Event_Code",
	"Verified_Timestamp_EDT",
	"DM_Code",
}

// Values returns the field values in column order, aligned with
// RawRecordColumns.
func (r *RawRecord) Values() []string {
	return []string{
		r.ELDID,
		r.AppVersion,
		r.TimestampEDT,
		r.CoDriver,
		r.TractorNumber,
		r.EngineHours,
		r.OdometerMiles,
		r.NewStatus,
		r.Location,
		r.Latitude,
		r.Longitude,
		r.EventStatus,
		r.EventOrigin,
		r.EventType,
		r.EventCode,
		r.VerifiedTimestampEDT,
		r.DMCode,
	}
}
