package gpt

import (
	"github.com/google/uuid"
)

const (
	priorityShift   = 48
	triesShift      = 52
	successfulShift = 56

	fieldMask = 0xf
)

func clamp(value, max uint) uint {
	if value > max {
		return max
	}
	return value
}

func normaliseGUID(guid string) (string, error) {
	parsed, err := uuid.Parse(guid)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

func (a Attributes) priority() uint {
	return uint(a>>priorityShift) & fieldMask
}

func (a Attributes) successful() bool {
	return a>>successfulShift&1 == 1
}

func (a Attributes) tries() uint {
	return uint(a>>triesShift) & fieldMask
}

func (a Attributes) withPriority(priority uint) Attributes {
	a &^= fieldMask << priorityShift
	return a | Attributes(clamp(priority, MaxPriority))<<priorityShift
}

func (a Attributes) withSuccessful(successful bool) Attributes {
	a &^= 1 << successfulShift
	if successful {
		a |= 1 << successfulShift
	}
	return a
}

func (a Attributes) withTries(tries uint) Attributes {
	a &^= fieldMask << triesShift
	return a | Attributes(clamp(tries, MaxTries))<<triesShift
}
