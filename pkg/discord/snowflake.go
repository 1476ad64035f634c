package discord

import (
	"fmt"
	"strconv"
	"time"
)

// Discord Snowflakes are based on Unix epoch time starting at 2015-01-01
const Epoch int64 = 1420070400000 // Discord epoch in milliseconds

const (
	timestampShift = 22
	workerIDShift  = 17
	processIDShift = 12

	workerIDMask  = 0x1F
	processIDMask = 0x1F
	sequenceMask  = 0xFFF
)

// ID is a decoded Discord snowflake.
type ID struct {
	Value     uint64
	Time      time.Time
	WorkerID  uint8
	ProcessID uint8
	Sequence  uint16
}

// Decode splits a snowflake into its timestamp and internal fields.
func Decode(snowflake uint64) ID {
	// Extract the timestamp by shifting and adding the Discord epoch
	timestampMillis := int64(snowflake>>timestampShift) + Epoch

	return ID{
		Value:     snowflake,
		Time:      time.UnixMilli(timestampMillis).UTC(),
		WorkerID:  uint8((snowflake >> workerIDShift) & workerIDMask),
		ProcessID: uint8((snowflake >> processIDShift) & processIDMask),
		Sequence:  uint16(snowflake & sequenceMask),
	}
}

// ParseID decodes a snowflake given in decimal.
func ParseID(snowflake string) (ID, error) {
	id, err := strconv.ParseUint(snowflake, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("invalid discord snowflake %q: %w", snowflake, err)
	}

	return Decode(id), nil
}

// Encode builds a snowflake from its parts. Fields wider than their slot are
// truncated, as are timestamps before the Discord epoch.
func Encode(t time.Time, workerID, processID uint8, sequence uint16) uint64 {
	millis := t.UnixMilli() - Epoch
	if millis < 0 {
		millis = 0
	}

	return uint64(millis)<<timestampShift |
		uint64(workerID&workerIDMask)<<workerIDShift |
		uint64(processID&processIDMask)<<processIDShift |
		uint64(sequence&sequenceMask)
}
