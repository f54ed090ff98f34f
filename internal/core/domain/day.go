package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// Day identifies one challenge day and its solution/input pair.
type Day uint32

// ParseDay parses a base-10 day identifier as given on the command line.
func ParseDay(s string) (Day, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, ErrInvalidDay.Error()), "arg", s)
	}
	return Day(n), nil
}

// String returns the decimal form of the day.
func (d Day) String() string {
	return strconv.FormatUint(uint64(d), 10)
}

// DirName returns the name of the solution directory for the day (day_<N>).
func (d Day) DirName() string {
	return DayPrefix + d.String()
}

// InputFileName returns the name of the cached input file for the day (day_<N>.txt).
func (d Day) InputFileName() string {
	return d.DirName() + InputFileExt
}
