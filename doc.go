/*
 * doc.go, part of gocesmd.
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

/*Package cesmd reads the "V2" corrected strong-motion files distributed by the
Center for Engineering Strong Motion Data. It provides the Record structure,
which holds one channel of a V2 file, and the functions to obtain Records
from V2 text.



	**Capabilities**


    Splits files with several concatenated channels into one block per channel.

    Reads the text header of each channel (station, channel, event and
	recording times, sample interval, peak values) into an ordered Metadata.
	Header lines that are not recognized are kept, not dropped.

    Reads the acceleration, velocity and displacement data sections, either
	blank-separated or packed in fixed-width columns. Velocity and displacement
	are optional, and their absence is explicit.

    Checks every declared point count, and that all the series of a channel
	have the same length.

    Computes a few summary quantities (peaks, mean, rms) of a Record.

The sub-packages under encode write Records as delimited text tables, MATLAB
MAT files, HDF5 files, JSON or MessagePack documents, and PNG previews. The
batch package converts whole directories, and cmd/v2conv is the command line
interface to all of it.

Parsing is pure: Parse only looks at the text it is given, and keeps no state
between calls, so different files can be parsed concurrently.*/
package cesmd
