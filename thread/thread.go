// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thread applies a sequence of method calls to a value,
// threading each call's result into the next.
//
// Nothing here is specific to charts. Apply works with any type whose
// methods return the receiver, so calls chain.
package thread

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
)

// A Call describes one method call.
type Call struct {
	Method string
	Args   []interface{}

	// Kwargs, if non-empty, is passed as one additional final
	// argument of type map[string]interface{}.
	Kwargs map[string]interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Method, c.Args)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Apply calls each of calls in order, starting with obj and using
// each call's result as the receiver of the next. It returns the
// final result.
//
// Arguments are converted to the method's parameter types where a
// conversion is natural: between numeric types, and from strings to
// numbers and booleans. If a method's last result is an error and is
// non-nil, Apply stops and returns it. A method with no other result
// yields nil, which ends the chain.
func Apply(obj interface{}, calls []Call) (interface{}, error) {
	cur := obj
	for i, c := range calls {
		next, err := apply(cur, c)
		if err != nil {
			return nil, fmt.Errorf("call %d (%s): %w", i, c.Method, err)
		}
		cur = next
	}
	return cur, nil
}

func apply(obj interface{}, c Call) (interface{}, error) {
	if obj == nil {
		return nil, fmt.Errorf("no method %s on nil", c.Method)
	}
	m := reflect.ValueOf(obj).MethodByName(c.Method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%T has no method %s", obj, c.Method)
	}
	mt := m.Type()

	args := c.Args
	if len(c.Kwargs) > 0 {
		args = append(append([]interface{}(nil), args...), c.Kwargs)
	}
	nin := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < nin-1 {
			return nil, fmt.Errorf("want at least %d arguments, got %d", nin-1, len(args))
		}
	} else if len(args) != nin {
		return nil, fmt.Errorf("want %d arguments, got %d", nin, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= nin-1 {
			pt = mt.In(nin - 1).Elem()
		} else {
			pt = mt.In(i)
		}
		v, err := convert(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}

	out := m.Call(in)
	if n := len(out); n > 0 && mt.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func convert(arg interface{}, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %v", t)
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumber(v.Kind()) && isNumber(t.Kind()) {
		return v.Convert(t), nil
	}
	if s, ok := arg.(string); ok {
		return parse(s, t)
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %v", arg, t)
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func parse(s string, t reflect.Type) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := strconv.ParseInt(s, 0, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetInt(x)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x, err := strconv.ParseUint(s, 0, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetUint(x)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetFloat(x)
	default:
		return v, fmt.Errorf("cannot use string as %v", t)
	}
	return v, nil
}

// Parse parses a call written as a shell-quoted command line, such
// as
//
//	Title "Heap size over time"
//
// The first word is the method name. Later words are positional
// arguments, except that words of the form key=value are collected
// into Kwargs. Quoting does not change this: "a=b" is still a keyword.
// Words after a lone "--" are always positional, so
//
//	Title -- "a=b"
//
// passes the string "a=b". All arguments are strings; Apply converts
// them.
func Parse(s string) (Call, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return Call{}, err
	}
	if len(words) == 0 {
		return Call{}, fmt.Errorf("empty call")
	}
	c := Call{Method: words[0]}
	positional := false
	for _, w := range words[1:] {
		if w == "--" && !positional {
			positional = true
			continue
		}
		if k, v, ok := cutKeyword(w); ok && !positional {
			if c.Kwargs == nil {
				c.Kwargs = make(map[string]interface{})
			}
			c.Kwargs[k] = v
			continue
		}
		c.Args = append(c.Args, w)
	}
	return c, nil
}

func cutKeyword(w string) (key, value string, ok bool) {
	i := strings.IndexByte(w, '=')
	if i <= 0 {
		return "", "", false
	}
	for j, r := range w[:i] {
		if !(r == '_' || unicode.IsLetter(r) || j > 0 && unicode.IsDigit(r)) {
			return "", "", false
		}
	}
	return w[:i], w[i+1:], true
}
