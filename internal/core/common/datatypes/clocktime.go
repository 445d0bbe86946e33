package datatypes

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

var clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// ClockTime is a wall-clock time of day in "HH:MM" form, mapped to a SQL
// time column. Seconds returned by the database are accepted and dropped.
type ClockTime string

func ParseClockTime(s string) (ClockTime, error) {
	if !clockTimePattern.MatchString(s) {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return ClockTime(s[:5]), nil
}

func (c ClockTime) String() string {
	return string(c)
}

func (c ClockTime) Value() (driver.Value, error) {
	return string(c) + ":00", nil
}

func (c *ClockTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseClockTime(v[:min(len(v), 8)])
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.Scan(string(v))
	case time.Time:
		*c = ClockTime(v.Format("15:04"))
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", value)
	}
}

// GormDataType tells gorm to use a time column for ClockTime fields.
func (ClockTime) GormDataType() string {
	return "time"
}
