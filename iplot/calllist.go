// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/aclements/go-iplot/thread"

// callList is a repeatable flag of chart method calls.
type callList []thread.Call

func (x *callList) String() string {
	s := ""
	for i, c := range *x {
		if i != 0 {
			s += ","
		}
		s += c.String()
	}
	return s
}

func (x *callList) Set(s string) error {
	c, err := thread.Parse(s)
	if err != nil {
		return err
	}
	*x = append(*x, c)
	return nil
}
