package app

type WarningCode string

const (
	WarnBusyCalendarUnreadable WarningCode = "BUSY_CALENDAR_UNREADABLE"
	WarnSchedulingSaturated    WarningCode = "SCHEDULING_SATURATED"
)

// Warning reports a recoverable problem; the run still produced a result.
type Warning struct {
	Code    WarningCode
	Message string
}
