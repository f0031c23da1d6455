// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matchmaker

import "errors"

var (
	ErrUnknownSlotReference = errors.New("unknown slot reference")
	ErrDuplicateIdentifier  = errors.New("duplicate identifier")
	ErrInvalidCapacity      = errors.New("invalid capacity")
	ErrEmptyIdentifier      = errors.New("empty identifier")
	ErrNilRand              = errors.New("nil random source")
)
