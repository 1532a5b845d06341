/*
 * quicklook.go, part of gocesmd.
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

//Package quicklook draws a PNG preview of a Record: one panel per series
//(acceleration, then velocity and displacement when present), stacked against time,
//with the absolute peak of each series marked.
package quicklook

import (
	"fmt"
	"image/color"
	"io"
	"os"

	cesmd "github.com/rmera/gocesmd"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options for the preview.
type Options struct {
	Width       vg.Length //the whole image
	PanelHeight vg.Length //each panel
	DPI         int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Width: 10 * vg.Inch, PanelHeight: 2.5 * vg.Inch, DPI: 96}
}

type panel struct {
	name  string
	units string
	y     cesmd.Series
	peak  *cesmd.Peak
}

var lineColors = []color.RGBA{
	{R: 178, G: 34, B: 34, A: 255},
	{R: 30, G: 90, B: 160, A: 255},
	{R: 34, G: 120, B: 60, A: 255},
}

func panels(r *cesmd.Record, s cesmd.Summary) []panel {
	units := func(key string) string {
		if u, ok := r.Metadata().Get(key); ok {
			if str, ok := u.Str(); ok {
				return str
			}
		}
		return ""
	}
	acc := s.Acceleration
	ret := []panel{{"Acceleration", units(cesmd.KeyAccelerationUnits), r.Acceleration(), &acc}}
	if v, ok := r.Velocity().Get(); ok {
		ret = append(ret, panel{"Velocity", units(cesmd.KeyVelocityUnits), v, s.Velocity})
	}
	if d, ok := r.Displacement().Get(); ok {
		ret = append(ret, panel{"Displacement", units(cesmd.KeyDisplacementUnits), d, s.Displacement})
	}
	return ret
}

func xys(t, y cesmd.Series) plotter.XYs {
	ret := make(plotter.XYs, y.Len())
	for i := range ret {
		ret[i].X = t.At(i)
		ret[i].Y = y.At(i)
	}
	return ret
}

func title(r *cesmd.Record) string {
	ret := fmt.Sprintf("Channel %d", r.Channel())
	if v, ok := r.Metadata().Get(cesmd.KeyStationID); ok && !v.IsNull() {
		ret = fmt.Sprintf("Station %s, %s", v.String(), ret)
	}
	if v, ok := r.Metadata().Get(cesmd.KeyFilename); ok && !v.IsNull() {
		ret = v.String() + ": " + ret
	}
	return ret
}

// Plots returns one plot per panel, top to bottom. Only the top plot has a title
// and only the bottom one labels the time axis.
func Plots(r *cesmd.Record) ([]*plot.Plot, error) {
	if r.Len() == 0 {
		return nil, fmt.Errorf("quicklook: record has no samples")
	}
	pans := panels(r, cesmd.Summarize(r))
	ret := make([]*plot.Plot, len(pans))
	for i, pa := range pans {
		p := plot.New()
		if i == 0 {
			p.Title.Text = title(r)
			p.Title.Padding = 3 * vg.Millimeter
		}
		if i == len(pans)-1 {
			p.X.Label.Text = "Time (s)"
		}
		p.Y.Label.Text = pa.name
		if pa.units != "" {
			p.Y.Label.Text += " (" + pa.units + ")"
		}
		p.Add(plotter.NewGrid())
		l, err := plotter.NewLine(xys(r.Time(), pa.y))
		if err != nil {
			return nil, fmt.Errorf("quicklook: %s: %w", pa.name, err)
		}
		l.Width = vg.Points(1)
		l.Color = lineColors[i%len(lineColors)]
		p.Add(l)
		if pa.peak != nil {
			s, err := plotter.NewScatter(plotter.XYs{{X: pa.peak.Time, Y: pa.peak.Value}})
			if err != nil {
				return nil, err
			}
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			s.GlyphStyle.Radius = vg.Points(3)
			s.GlyphStyle.Color = color.Black
			p.Add(s)
		}
		ret[i] = p
	}
	return ret, nil
}

// Write draws the preview of r and writes it to w as PNG.
func Write(w io.Writer, r *cesmd.Record, opts ...Options) error {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	plots, err := Plots(r)
	if err != nil {
		return err
	}
	img := vgimg.NewWith(
		vgimg.UseWH(o.Width, o.PanelHeight*vg.Length(len(plots))),
		vgimg.UseDPI(o.DPI),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      2 * vg.Millimeter,
		PadY:      2 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(grid, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("quicklook: %w", err)
	}
	return nil
}

// WriteFile writes the preview of r to the named PNG file.
func WriteFile(name string, r *cesmd.Record, opts ...Options) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, r, opts...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}
