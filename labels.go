/*
 * labels.go, part of gocesmd.
 *
 * Copyright 2026 The gocesmd authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cesmd

import (
	"strings"
)

// Metadata keys. Every Record carries all of them, Null when the file doesn't provide the field.
const (
	KeyFilename             = "filename"
	KeyFilepath             = "filepath"
	KeyChannel              = "channel_number"
	KeyStationChannel       = "station_channel_number"
	KeyObservationTime      = "observation_time"
	KeyObsMonth             = "obs_month"
	KeyObsDay               = "obs_day"
	KeyObsYear              = "obs_year"
	KeyObsHour              = "obs_hour"
	KeyObsMinute            = "obs_minute"
	KeyObsSecond            = "obs_second"
	KeyObsTimezone          = "obs_timezone"
	KeyUTCTime              = "utc_time"
	KeyUTCMonth             = "utc_month"
	KeyUTCDay               = "utc_day"
	KeyUTCYear              = "utc_year"
	KeyUTCHour              = "utc_hour"
	KeyUTCMinute            = "utc_minute"
	KeyUTCSecond            = "utc_second"
	KeyStationID            = "station_id"
	KeyLatitude             = "latitude"
	KeyLongitude            = "longitude"
	KeyHypocenter           = "hypocenter_info"
	KeyMagnitude            = "magnitude_info"
	KeyInstrumentPeriod     = "instrument_period"
	KeySamplingRate         = "sampling_rate"
	KeyInterval             = "time_interval"
	KeyPeakAcceleration     = "peak_acceleration"
	KeyPeakVelocity         = "peak_velocity"
	KeyPeakDisplacement     = "peak_displacement"
	KeyNpts                 = "npts"
	KeyAccelerationUnits    = "acceleration_units"
	KeyVelocityUnits        = "velocity_units"
	KeyDisplacementUnits    = "displacement_units"
	ExtraPrefix             = "header_line_"
	headerRegionLines       = 30
	twoDigitYearCenturyTurn = 90
)

// headerKeys is the order of the header fields in every Metadata.
var headerKeys = []string{
	KeyFilename, KeyFilepath, KeyChannel, KeyStationChannel,
	KeyObservationTime, KeyObsMonth, KeyObsDay, KeyObsYear, KeyObsHour, KeyObsMinute, KeyObsSecond, KeyObsTimezone,
	KeyUTCTime, KeyUTCMonth, KeyUTCDay, KeyUTCYear, KeyUTCHour, KeyUTCMinute, KeyUTCSecond,
	KeyStationID, KeyLatitude, KeyLongitude, KeyHypocenter, KeyMagnitude, KeyInstrumentPeriod,
	KeySamplingRate, KeyInterval, KeyPeakAcceleration, KeyPeakVelocity, KeyPeakDisplacement,
}

// label describes one recognized header label. keys are the folded, whitespace-collapsed
// spellings of the label. parse gets a scanner positioned right after the key and returns
// the fields it recovers. nil fields and a nil error mean the text only looked like the label.
type label struct {
	name     string
	keys     []string
	marker   bool   //searched only on the header-start line
	fallback string //name of the label this one replaces when that one never matched
	required bool
	field    string //reported in errors
	parse    func(sc *scanner, raw string) ([]Field, error)
}

// labels is the header table. The order of the table is irrelevant for matching, each label keeps
// its first match in the header region.
var labels = []label{
	{name: "chan", keys: []string{"chan"}, marker: true, field: KeyChannel, parse: parseChan},
	{name: "stachn", keys: []string{"sta chn", "stachn"}, field: KeyStationChannel, parse: parseStaChn},
	{name: "record", keys: []string{"rcrd of", "record of"}, field: KeyObservationTime, parse: parseRecordOf},
	{name: "earthquake", keys: []string{"earthquake of"}, fallback: "record", field: KeyObservationTime, parse: parseEarthquakeOf},
	{name: "start", keys: []string{"start time:"}, field: KeyUTCTime, parse: parseStartTime},
	{name: "origin", keys: []string{"(origin"}, fallback: "start", field: KeyUTCTime, parse: parseOrigin},
	{name: "station", keys: []string{"station no."}, field: KeyStationID, parse: parseStation},
	{name: "hypocenter", keys: []string{"hypocenter:"}, field: KeyHypocenter, parse: parseHypocenter},
	{name: "magnitude", keys: []string{"ml:"}, field: KeyMagnitude, parse: parseMagnitude},
	{name: "period", keys: []string{"instr period", "instrument period"}, field: KeyInstrumentPeriod, parse: eqNumber(KeyInstrumentPeriod)},
	{name: "interval", keys: []string{"at equally-spaced intervals of"}, required: true, field: KeyInterval, parse: parseInterval},
	{name: "peakacc", keys: []string{"peak acceleration"}, field: KeyPeakAcceleration, parse: eqNumber(KeyPeakAcceleration)},
	{name: "peakvel", keys: []string{"peak velocity"}, field: KeyPeakVelocity, parse: eqNumber(KeyPeakVelocity)},
	{name: "peakdis", keys: []string{"peak displacement"}, field: KeyPeakDisplacement, parse: eqNumber(KeyPeakDisplacement)},
}

func badValue(field string) error {
	return newFormatError(Malformed, BadValue, field, "ExtractHeader")
}

// scanner walks a whitespace-collapsed line.
type scanner struct {
	s     string
	pos   int
	start int //where the label began
}

func (sc *scanner) space() {
	for sc.pos < len(sc.s) && sc.s[sc.pos] == ' ' {
		sc.pos++
	}
}

// lit consumes c, compared without regard to ASCII case, after optional blanks.
func (sc *scanner) lit(c string) bool {
	sc.space()
	if strings.HasPrefix(fold(sc.s[sc.pos:]), c) {
		sc.pos += len(c)
		return true
	}
	return false
}

// oneOf consumes one of the bytes in set.
func (sc *scanner) oneOf(set string) (byte, bool) {
	sc.space()
	if sc.pos < len(sc.s) && strings.IndexByte(set, sc.s[sc.pos]) >= 0 {
		sc.pos++
		return sc.s[sc.pos-1], true
	}
	return 0, false
}

func (sc *scanner) word() (string, bool) {
	sc.space()
	i := sc.pos
	for i < len(sc.s) && isLetter(sc.s[i]) {
		i++
	}
	if i == sc.pos {
		return "", false
	}
	w := sc.s[sc.pos:i]
	sc.pos = i
	return w, true
}

// integer returns the next unsigned integer and its number of digits.
func (sc *scanner) integer() (int, int, bool) {
	sc.space()
	rest := sc.s[sc.pos:]
	n, after, ok := leadingInt(rest)
	if !ok {
		return 0, 0, false
	}
	digits := len(rest) - len(after)
	sc.pos += digits
	return n, digits, true
}

func (sc *scanner) number() (float64, bool) {
	sc.space()
	rest := sc.s[sc.pos:]
	f, after, ok := leadingNumber(rest)
	if !ok {
		return 0, false
	}
	sc.pos += len(rest) - len(after)
	return f, true
}

func (sc *scanner) rest() string {
	return strings.TrimSpace(sc.s[sc.pos:])
}

// matched returns the text from the start of the label to the current position.
func (sc *scanner) matched() string {
	return strings.TrimSpace(sc.s[sc.start:sc.pos])
}

func parseChan(sc *scanner, raw string) ([]Field, error) {
	n, _, ok := sc.integer()
	if !ok {
		return nil, nil
	}
	return []Field{{KeyChannel, IntValue(int64(n))}}, nil
}

func parseStaChn(sc *scanner, raw string) ([]Field, error) {
	if !sc.lit(":") {
		return nil, nil
	}
	n, _, ok := sc.integer()
	if !ok {
		return nil, badValue(KeyStationChannel)
	}
	return []Field{{KeyStationChannel, IntValue(int64(n))}}, nil
}

// clock reads hh:mm, followed by :ss if withSeconds is 1, or optionally by :ss if it is 0.
// A missing optional second is 0.
func (sc *scanner) clock(withSeconds int) (h, m int, s float64, ok bool) {
	if h, _, ok = sc.integer(); !ok {
		return
	}
	if !sc.lit(":") {
		return h, m, s, false
	}
	if m, _, ok = sc.integer(); !ok {
		return
	}
	pos := sc.pos
	if !sc.lit(":") {
		sc.pos = pos
		return h, m, 0, withSeconds == 0
	}
	s, ok = sc.number()
	return
}

// date reads the "Mon Jan 17," start of a date. false means the text after the
// label is not a date at all, as in prose that happens to contain "record of".
func (sc *scanner) date() (month string, day int, ok bool) {
	if _, ok = sc.word(); !ok {
		return
	}
	if month, ok = sc.word(); !ok {
		return
	}
	if day, _, ok = sc.integer(); !ok {
		return
	}
	ok = sc.lit(",")
	return
}

// Rcrd of Mon Jan 17, 1994 04:31: 0.0
func parseRecordOf(sc *scanner, raw string) ([]Field, error) {
	bad := badValue(KeyObservationTime)
	month, day, ok := sc.date()
	if !ok {
		return nil, nil
	}
	year, _, ok := sc.integer()
	if !ok {
		return nil, bad
	}
	h, m, s, ok := sc.clock(1)
	if !ok {
		return nil, bad
	}
	return []Field{
		{KeyObservationTime, StringValue(sc.matched())},
		{KeyObsMonth, StringValue(month)},
		{KeyObsDay, IntValue(int64(day))},
		{KeyObsYear, IntValue(int64(year))},
		{KeyObsHour, IntValue(int64(h))},
		{KeyObsMinute, IntValue(int64(m))},
		{KeyObsSecond, FloatValue(s)},
	}, nil
}

// Earthquake of Mon Jan 17, 1994 04:31 PST
func parseEarthquakeOf(sc *scanner, raw string) ([]Field, error) {
	bad := badValue(KeyObservationTime)
	month, day, ok := sc.date()
	if !ok {
		return nil, nil
	}
	if len(month) < 3 {
		return nil, bad
	}
	year, digits, ok := sc.integer()
	if !ok || digits != 4 {
		return nil, bad
	}
	h, m, s, ok := sc.clock(0)
	if !ok {
		return nil, bad
	}
	tz, ok := sc.word()
	if !ok || len(tz) < 2 || len(tz) > 4 {
		return nil, bad
	}
	return []Field{
		{KeyObservationTime, StringValue(sc.matched())},
		{KeyObsMonth, StringValue(month)},
		{KeyObsDay, IntValue(int64(day))},
		{KeyObsYear, IntValue(int64(year))},
		{KeyObsHour, IntValue(int64(h))},
		{KeyObsMinute, IntValue(int64(m))},
		{KeyObsSecond, FloatValue(s)},
		{KeyObsTimezone, StringValue(strings.ToUpper(tz))},
	}, nil
}

// fullYear expands 2-digit years: 90-99 are 1990s, the rest 2000s.
func fullYear(y, digits int) int {
	if digits != 2 {
		return y
	}
	if y >= twoDigitYearCenturyTurn {
		return 1900 + y
	}
	return 2000 + y
}

// utcStamp reads m/d/yy, hh:mm[:ss] UTC. The separator in the date can be / or -.
func (sc *scanner) utcStamp() ([]Field, bool) {
	month, _, ok := sc.integer()
	if !ok {
		return nil, false
	}
	if _, ok = sc.oneOf("/-"); !ok {
		return nil, false
	}
	day, _, ok := sc.integer()
	if !ok {
		return nil, false
	}
	if _, ok = sc.oneOf("/-"); !ok {
		return nil, false
	}
	year, digits, ok := sc.integer()
	if !ok || (digits != 2 && digits != 4) || !sc.lit(",") {
		return nil, false
	}
	h, m, s, ok := sc.clock(0)
	if !ok {
		return nil, false
	}
	if !sc.lit("utc") && !sc.lit("gmt") {
		return nil, false
	}
	return []Field{
		{KeyUTCMonth, IntValue(int64(month))},
		{KeyUTCDay, IntValue(int64(day))},
		{KeyUTCYear, IntValue(int64(fullYear(year, digits)))},
		{KeyUTCHour, IntValue(int64(h))},
		{KeyUTCMinute, IntValue(int64(m))},
		{KeyUTCSecond, FloatValue(s)},
	}, true
}

// Start time: 1/17/94, 12:30:55.0 UTC (Q=5)
func parseStartTime(sc *scanner, raw string) ([]Field, error) {
	fields, ok := sc.utcStamp()
	if !ok {
		return nil, badValue(KeyUTCTime)
	}
	//An optional parenthesized note belongs to the stamp.
	pos := sc.pos
	if sc.lit("(") {
		if end := strings.IndexByte(sc.s[sc.pos:], ')'); end >= 0 {
			sc.pos += end + 1
		} else {
			sc.pos = pos
		}
	}
	return append([]Field{{KeyUTCTime, StringValue(sc.matched())}}, fields...), nil
}

// (ORIGIN: 1/17/94, 12:30:55.0 UTC) or (ORIGIN(NEIC): ...)
func parseOrigin(sc *scanner, raw string) ([]Field, error) {
	bad := badValue(KeyUTCTime)
	pos := sc.pos
	if sc.lit("(") {
		if _, ok := sc.word(); !ok || !sc.lit(")") {
			sc.pos = pos
		}
	}
	if !sc.lit(":") {
		return nil, bad
	}
	fields, ok := sc.utcStamp()
	if !ok || !sc.lit(")") {
		return nil, bad
	}
	return append([]Field{{KeyUTCTime, StringValue(sc.matched())}}, fields...), nil
}

// Station No. 24389 34.011N, 118.222W
func parseStation(sc *scanner, raw string) ([]Field, error) {
	bad := badValue(KeyStationID)
	sc.space()
	idstart := sc.pos
	if _, _, ok := sc.integer(); !ok {
		return nil, bad
	}
	id := sc.s[idstart:sc.pos]
	lat, ok := sc.number()
	if !ok {
		return nil, bad
	}
	ns, ok := sc.oneOf("NSns")
	if !ok || !sc.lit(",") {
		return nil, bad
	}
	lon, ok := sc.number()
	if !ok {
		return nil, bad
	}
	ew, ok := sc.oneOf("EWew")
	if !ok {
		return nil, bad
	}
	if ns == 'S' || ns == 's' {
		lat = -lat
	}
	if ew == 'W' || ew == 'w' {
		lon = -lon
	}
	return []Field{
		{KeyStationID, StringValue(id)},
		{KeyLatitude, FloatValue(lat)},
		{KeyLongitude, FloatValue(lon)},
	}, nil
}

func parseHypocenter(sc *scanner, raw string) ([]Field, error) {
	return []Field{{KeyHypocenter, StringValue(strings.TrimSpace(raw))}}, nil
}

func parseMagnitude(sc *scanner, raw string) ([]Field, error) {
	r := sc.rest()
	if r == "" {
		return nil, nil
	}
	return []Field{{KeyMagnitude, StringValue(r)}}, nil
}

// eqNumber parses "= <number>" into the given key. A label without the "=" is not a match.
func eqNumber(key string) func(*scanner, string) ([]Field, error) {
	return func(sc *scanner, raw string) ([]Field, error) {
		if !sc.lit("=") {
			return nil, nil
		}
		f, ok := sc.number()
		if !ok {
			return nil, badValue(key)
		}
		return []Field{{key, FloatValue(f)}}, nil
	}
}

// At equally-spaced intervals of .020 sec
func parseInterval(sc *scanner, raw string) ([]Field, error) {
	dt, ok := sc.number()
	if !ok {
		return nil, badValue(KeyInterval)
	}
	if dt <= 0 {
		return nil, newFormatError(Malformed, BadInterval, KeyInterval, "ExtractHeader")
	}
	return []Field{
		{KeySamplingRate, FloatValue(1 / dt)},
		{KeyInterval, FloatValue(dt)},
	}, nil
}
