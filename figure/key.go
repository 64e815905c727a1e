// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"strconv"
)

// UniqueKey returns a key for a new trace of type typ given the
// requested name and the keys already in use.
//
// If name is nil, the key is typ followed by "_" and the number of
// existing keys. If name is not in keys, it is returned unchanged.
// Otherwise an int name is incremented and a string name has the
// number of existing keys appended. The adjusted key is not checked
// against keys again.
//
// name must be nil, an int or a string.
func UniqueKey(typ string, name interface{}, keys []interface{}) (interface{}, error) {
	switch n := name.(type) {
	case nil:
		return typ + "_" + strconv.Itoa(len(keys)), nil
	case int:
		if contains(keys, n) {
			return n + 1, nil
		}
		return n, nil
	case string:
		if contains(keys, n) {
			return n + strconv.Itoa(len(keys)), nil
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: key '%v' not recognized; must be an integer or string", ErrValue, name)
}

func contains(keys []interface{}, key interface{}) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
