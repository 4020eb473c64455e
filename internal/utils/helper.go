package utils

import "strconv"

func ToInt(id string) (int, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	return int(n), err
}

func StrPtr(s string) *string {
	return &s
}
