package eldrecord

type DutyStatus string

const (
	DutyStatusOnDuty       DutyStatus = "ON_DUTY"
	DutyStatusOffDuty      DutyStatus = "OFF_DUTY"
	DutyStatusDriving      DutyStatus = "DRIVING"
	DutyStatusSleeperBerth DutyStatus = "SLEEPER_BERTH"
)

// DutyStatusMapping maps the raw ELD status codes onto the duty status enum.
// Codes outside this table never produce a duty event.
var DutyStatusMapping = map[string]DutyStatus{
	"ON":  DutyStatusOnDuty,
	"OFF": DutyStatusOffDuty,
	"D":   DutyStatusDriving,
	"SB":  DutyStatusSleeperBerth,
}
