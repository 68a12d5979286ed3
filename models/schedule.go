package models

import "time"

// DayHours is one weekday's open interval, in minutes from midnight
// (e.g. 540 for 9:00 AM). A weekday has at most one open interval; the
// half-day Saturday is just an earlier Close.
type DayHours struct {
	Open  int `bson:"open" json:"open"`
	Close int `bson:"close" json:"close"`
}

// WeeklySchedule maps weekdays to opening hours. A missing weekday is a
// closed day. The schedule is fixed for the lifetime of the process;
// changing it is a deploy, not a runtime update.
type WeeklySchedule map[time.Weekday]DayHours
