package message

import "time"

const TimeFormatString = "2006-01-02 15:04:05.000"

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.ParseInLocation(TimeFormatString, string(ts), time.Local)
}
