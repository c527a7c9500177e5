package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID turns a path parameter into a positive numeric id.
func ParseID(str string) (uint64, error) {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil || val == 0 {
		return 0, ErrInvalidID
	}
	return val, nil
}
