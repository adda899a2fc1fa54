package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is how calendar dates are stored and exchanged.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. It is persisted as a
// YYYY-MM-DD string so that lexical and chronological order agree.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// NextMonthStart returns the first day of the month after d's.
func (d Date) NextMonthStart() Date {
	return Date{Time: d.MonthStart().AddDate(0, 1, 0)}
}

// MonthKey formats the month as YYYY-MM.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.parseStored(v)
	case []byte:
		return d.parseStored(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// parseStored accepts plain dates and the timestamp forms some drivers return.
func (d *Date) parseStored(s string) error {
	if len(s) >= len(DateLayout) {
		if t, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			*d = Date{Time: t}
			return nil
		}
	}
	return fmt.Errorf("cannot parse stored date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
