// Package twitter decodes Twitter snowflake IDs.
//
// A Twitter snowflake packs 41 bits of milliseconds since the Twitter epoch,
// a 10 bit machine ID and a 12 bit sequence number. This is also the default
// layout of github.com/bwmarrin/snowflake, which is used to read the fields.
package twitter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Epoch is 2010-11-04T01:42:54.657Z in Unix milliseconds.
const Epoch int64 = 1288834974657

const (
	machineIDBits = 10
	sequenceBits  = 12

	timestampShift = machineIDBits + sequenceBits
	machineIDMask  = 1<<machineIDBits - 1
	sequenceMask   = 1<<sequenceBits - 1
)

// ID is a decoded Twitter snowflake.
type ID struct {
	Value     uint64
	Time      time.Time
	MachineID uint16
	Sequence  uint16
}

// Decode splits a snowflake into its timestamp and internal fields.
func Decode(v uint64) ID {
	// The timestamp is shifted unsigned so that IDs with the top bit set
	// stay after the epoch.
	millis := int64(v>>timestampShift) + Epoch
	sf := snowflake.ParseInt64(int64(v))

	return ID{
		Value:     v,
		Time:      time.UnixMilli(millis).UTC(),
		MachineID: uint16(sf.Node()),
		Sequence:  uint16(sf.Step()),
	}
}

// ParseID decodes a snowflake given in decimal.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("invalid twitter snowflake %q: %w", s, err)
	}

	return Decode(v), nil
}

// Encode builds a snowflake from its parts. Fields wider than their slot are
// truncated, as are timestamps before the Twitter epoch.
func Encode(t time.Time, machineID, sequence uint16) uint64 {
	millis := t.UnixMilli() - Epoch
	if millis < 0 {
		millis = 0
	}

	return uint64(millis)<<timestampShift |
		uint64(machineID&machineIDMask)<<sequenceBits |
		uint64(sequence&sequenceMask)
}
