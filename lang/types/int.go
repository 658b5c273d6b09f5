package types

import "strconv"

// Int is a signed integer value, at least 64 bits wide.
type Int int64

var _ Value = Int(0)

func (Int) Tag() Tag         { return TagInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
