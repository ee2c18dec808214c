// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a totally ordered value stored in a Tree.
//
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equal and a positive number otherwise. All keys stored
// in one tree must share the same concrete type. A nil Key is never valid.
type Key interface {
	Compare(other Key) int
}

// Int implements Key for integers.
type Int int64

// Compare orders two Int keys numerically.
func (a Int) Compare(other Key) int {
	b := other.(Int)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Int) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// String implements Key for text, ordered bytewise.
type String string

// Compare orders two String keys lexicographically.
func (a String) Compare(other Key) int {
	return strings.Compare(string(a), string(other.(String)))
}

func (a String) String() string {
	return string(a)
}

// Key kinds understood by ParseKey.
const (
	KindInt    = "int"
	KindString = "string"
)

// ParseKey converts text into a Key of the given kind.
func ParseKey(kind, text string) (Key, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q as int: %w", text, ErrInvalidArgument)
		}
		return Int(n), nil
	case KindString:
		return String(text), nil
	default:
		return nil, fmt.Errorf("unknown key kind %q: %w", kind, ErrInvalidArgument)
	}
}
