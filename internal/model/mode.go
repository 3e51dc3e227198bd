package model

import "fmt"

// SyncMode selects which columns a sync writes.
type SyncMode string

const (
	// SyncModeBase stores the raw catalog fields only.
	SyncModeBase SyncMode = "base"
	// SyncModeValue also stores inventory_value.
	SyncModeValue SyncMode = "value"
)

func ParseSyncMode(s string) (SyncMode, error) {
	switch SyncMode(s) {
	case SyncModeBase, SyncModeValue:
		return SyncMode(s), nil
	default:
		return "", fmt.Errorf("unknown sync mode %q", s)
	}
}

func (m SyncMode) TracksValue() bool {
	return m == SyncModeValue
}

func (m SyncMode) String() string {
	return string(m)
}
