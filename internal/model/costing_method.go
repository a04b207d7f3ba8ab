package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned when a costing method name cannot be parsed
var ErrUnknownMethod = errors.New("inventory: unknown costing method")

// CostingMethod selects how remaining stock is valued
type CostingMethod string

const (
	// FIFO consumes the oldest cost layers first
	FIFO CostingMethod = "FIFO"
	// LIFO consumes the most recent cost layers first
	LIFO CostingMethod = "LIFO"
	// Weighted pools every entry into one blended unit cost
	Weighted CostingMethod = "weighted"
)

func (m CostingMethod) String() string { return string(m) }

// ParseCostingMethod parses a method name, case insensitive.
// "average" is accepted as an alias of weighted.
func ParseCostingMethod(s string) (CostingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "weighted", "average":
		return Weighted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}
