/*
 * codec.go, part of gocesmd.
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

package interchange

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	cesmd "github.com/rmera/gocesmd"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec names.
const (
	JSON    = "json"
	MsgPack = "msgpack"
)

// Send writes the document to out as one line of JSON.
func (D *Document) Send(out io.Writer) error {
	return json.NewEncoder(out).Encode(D)
}

// SendMsgPack writes the document to out as MessagePack. The keys are the same as in JSON.
func (D *Document) SendMsgPack(out io.Writer) error {
	enc := msgpack.NewEncoder(out)
	enc.SetCustomStructTag("json")
	return enc.Encode(D)
}

// Decode reads one document in the given codec from in.
func Decode(in io.Reader, codec string) (*Document, error) {
	D := new(Document)
	switch codec {
	case JSON:
		if err := json.NewDecoder(in).Decode(D); err != nil {
			return nil, fmt.Errorf("interchange: %w", err)
		}
	case MsgPack:
		dec := msgpack.NewDecoder(in)
		dec.SetCustomStructTag("json")
		if err := dec.Decode(D); err != nil {
			return nil, fmt.Errorf("interchange: %w", err)
		}
	default:
		return nil, fmt.Errorf("interchange: unknown codec %q", codec)
	}
	return D, nil
}

// Write writes r to w in the given codec.
func Write(w io.Writer, r *cesmd.Record, codec string) error {
	D := FromRecord(r)
	switch codec {
	case JSON:
		return D.Send(w)
	case MsgPack:
		return D.SendMsgPack(w)
	}
	return fmt.Errorf("interchange: unknown codec %q", codec)
}

// Read reads a Record in the given codec from r.
func Read(r io.Reader, codec string) (*cesmd.Record, error) {
	D, err := Decode(r, codec)
	if err != nil {
		return nil, err
	}
	return D.Record()
}

// WriteFile writes r to the named file in the given codec.
func WriteFile(name string, r *cesmd.Record, codec string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, r, codec); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}

// ReadFile reads a Record in the given codec from the named file.
func ReadFile(name, codec string) (*cesmd.Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, codec)
}
