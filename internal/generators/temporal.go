package generators

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/seeder/internal/domain"
	"github.com/mmrzaf/seeder/internal/timeutil"
)

const (
	defaultStartDate = "-30y"
	defaultEndDate   = "now"
)

// DateRangeOptions bounds the date, datetime and timestamp variants. Bounds
// take any form timeutil.ParseRelativeTime accepts and are resolved once, at
// construction.
type DateRangeOptions struct {
	Nullable `mapstructure:",squash"`
	Start    string `mapstructure:"start_date"`
	End      string `mapstructure:"end_date"`
}

type dateRange struct {
	from time.Time
	span int64
}

func newDateRange(opts DateRangeOptions) (dateRange, error) {
	from, to, err := timeutil.ParseRange(opts.Start, opts.End, defaultStartDate, defaultEndDate, time.Now().UTC())
	if err != nil {
		return dateRange{}, err
	}
	return dateRange{from: from.UTC(), span: to.Unix() - from.Unix()}, nil
}

func (r dateRange) draw(rng *rand.Rand) time.Time {
	return time.Unix(r.from.Unix()+rng.Int63n(r.span+1), 0).UTC()
}

// Date emits YYYY-MM-DD strings.
type Date struct {
	field
	dateRange
}

func NewDate(name string, opts DateRangeOptions) (*Date, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	r, err := newDateRange(opts)
	if err != nil {
		return nil, err
	}
	return &Date{field: f, dateRange: r}, nil
}

func (g *Date) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, g.draw(rng).Format(timeutil.DateLayout))
}

// DateTime emits YYYY-MM-DD HH:MM:SS strings in UTC.
type DateTime struct {
	field
	dateRange
}

func NewDateTime(name string, opts DateRangeOptions) (*DateTime, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	r, err := newDateRange(opts)
	if err != nil {
		return nil, err
	}
	return &DateTime{field: f, dateRange: r}, nil
}

func (g *DateTime) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, g.draw(rng).Format(timeutil.DateTimeLayout))
}

// Timestamp emits unix seconds as int64.
type Timestamp struct {
	field
	dateRange
}

func NewTimestamp(name string, opts DateRangeOptions) (*Timestamp, error) {
	f, err := newField(name, opts.Nullable)
	if err != nil {
		return nil, err
	}
	r, err := newDateRange(opts)
	if err != nil {
		return nil, err
	}
	return &Timestamp{field: f, dateRange: r}, nil
}

func (g *Timestamp) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, g.draw(rng).Unix())
}

type Time struct {
	field
}

func NewTime(name string, opts Nullable) (*Time, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &Time{field: f}, nil
}

func (g *Time) Generate(rng *rand.Rand) (domain.Field, error) {
	s := rng.Intn(24 * 60 * 60)
	return g.emit(rng, fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60))
}

type DayOfWeek struct {
	field
}

func NewDayOfWeek(name string, opts Nullable) (*DayOfWeek, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &DayOfWeek{field: f}, nil
}

func (g *DayOfWeek) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, pickString(rng, weekdays))
}

type TimeZone struct {
	field
}

func NewTimeZone(name string, opts Nullable) (*TimeZone, error) {
	f, err := newField(name, opts)
	if err != nil {
		return nil, err
	}
	return &TimeZone{field: f}, nil
}

func (g *TimeZone) Generate(rng *rand.Rand) (domain.Field, error) {
	return g.emit(rng, fake(rng, faker.Timezone))
}
