package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

func ToString(v any) string {
	return fmt.Sprint(v)
}

func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func ToNumberWithDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
