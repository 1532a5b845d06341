/*
 * record.go, part of gocesmd.
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

// Record is one channel of a V2 file: its metadata, the acceleration series,
// the optional velocity and displacement series, and the time of each sample.
// A Record is read-only. All its methods are safe for concurrent use.
type Record struct {
	md      Metadata
	time    Series
	accel   Series
	vel     Optional
	disp    Optional
	dt      float64
	channel int
	source  string
}

// Metadata returns the record's metadata.
func (r *Record) Metadata() Metadata { return r.md }

// Time returns the time of each sample, i*SampleInterval().
func (r *Record) Time() Series { return r.time }

func (r *Record) Acceleration() Series { return r.accel }

func (r *Record) Velocity() Optional { return r.vel }

func (r *Record) Displacement() Optional { return r.disp }

// SampleInterval returns the time between samples, in seconds.
func (r *Record) SampleInterval() float64 { return r.dt }

// Channel returns the channel number in the header, or 0 if the header has none.
func (r *Record) Channel() int { return r.channel }

// Len returns the number of samples.
func (r *Record) Len() int { return r.accel.Len() }

// Source returns the path the record was read from, as given to the parser.
func (r *Record) Source() string { return r.source }

// Equal returns true if both records hold the same data and metadata.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.dt == o.dt && r.channel == o.channel && r.source == o.source &&
		r.md.Equal(o.md) && r.time.Equal(o.time) && r.accel.Equal(o.accel) &&
		r.vel.Equal(o.vel) && r.disp.Equal(o.disp)
}
