/*
 * summary.go, part of gocesmd.
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
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Peak is the sample of largest absolute value in a series.
type Peak struct {
	Value float64 //signed
	Time  float64
	Index int
}

// Summary holds a few derived quantities of a Record.
type Summary struct {
	Channel      int
	Npts         int
	Interval     float64
	Duration     float64
	Acceleration Peak
	Velocity     *Peak //nil if the record has no velocity
	Displacement *Peak //nil if the record has no displacement
	MeanAccel    float64
	StdAccel     float64
	RMSAccel     float64
}

func peakOf(s Series, dt float64) Peak {
	if s.Len() == 0 {
		return Peak{Index: -1}
	}
	abs := make([]float64, s.Len())
	for i, v := range s.v {
		abs[i] = math.Abs(v)
	}
	i := floats.MaxIdx(abs)
	return Peak{Value: s.v[i], Time: float64(i) * dt, Index: i}
}

// Summarize computes the Summary of r.
func Summarize(r *Record) Summary {
	n := r.Len()
	ret := Summary{
		Channel:      r.Channel(),
		Npts:         n,
		Interval:     r.dt,
		Acceleration: peakOf(r.accel, r.dt),
	}
	if n > 0 {
		ret.Duration = float64(n-1) * r.dt
		ret.MeanAccel, ret.StdAccel = stat.MeanStdDev(r.accel.v, nil)
		ret.RMSAccel = floats.Norm(r.accel.v, 2) / math.Sqrt(float64(n))
	}
	if n == 1 {
		ret.StdAccel = 0
	}
	if s, ok := r.vel.Get(); ok {
		p := peakOf(s, r.dt)
		ret.Velocity = &p
	}
	if s, ok := r.disp.Get(); ok {
		p := peakOf(s, r.dt)
		ret.Displacement = &p
	}
	return ret
}

func (S Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "channel %d: %d points, dt %g s, %g s\n", S.Channel, S.Npts, S.Interval, S.Duration)
	fmt.Fprintf(&b, "  peak acceleration %g at %g s (mean %g, std %g, rms %g)\n", S.Acceleration.Value, S.Acceleration.Time, S.MeanAccel, S.StdAccel, S.RMSAccel)
	if S.Velocity != nil {
		fmt.Fprintf(&b, "  peak velocity %g at %g s\n", S.Velocity.Value, S.Velocity.Time)
	}
	if S.Displacement != nil {
		fmt.Fprintf(&b, "  peak displacement %g at %g s\n", S.Displacement.Value, S.Displacement.Time)
	}
	return b.String()
}
