// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"time"
)

// DateFormat is the layout plotly.js accepts for date coordinates.
const DateFormat = "2006-01-02 15:04:05.999999"

// Values is a sequence of coordinates. Elements are typically
// numbers, strings (for categorical axes) or time.Time values.
//
// Values encode like a JSON array except that NaN and infinite
// floats become null (which plotly.js draws as a gap) and times are
// formatted with DateFormat.
type Values []interface{}

// Floats returns xs as Values.
func Floats(xs []float64) Values {
	vs := make(Values, len(xs))
	for i, x := range xs {
		vs[i] = x
	}
	return vs
}

// Ints returns xs as Values.
func Ints(xs []int) Values {
	vs := make(Values, len(xs))
	for i, x := range xs {
		vs[i] = x
	}
	return vs
}

// Strings returns xs as Values.
func Strings(xs []string) Values {
	vs := make(Values, len(xs))
	for i, x := range xs {
		vs[i] = x
	}
	return vs
}

// Times returns ts as Values.
func Times(ts []time.Time) Values {
	vs := make(Values, len(ts))
	for i, t := range ts {
		vs[i] = t
	}
	return vs
}

func (vs Values) MarshalJSON() ([]byte, error) {
	if vs == nil {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := marshalValue(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalValue(v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return []byte("null"), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []byte("null"), nil
		}
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return []byte("null"), nil
		}
	case time.Time:
		return json.Marshal(v.Format(DateFormat))
	}
	return json.Marshal(v)
}

// Marshal returns the JSON encoding of v, which is usually a *Figure.
// It fails if v contains values that cannot be represented in JSON,
// such as channels or NaN attribute values outside of Values.
func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Encode writes the JSON encoding of v to w, followed by a newline.
func Encode(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
