// Package devicetime converts between absolute instants and the 32-bit
// timestamps EM charging stations put on the wire.
//
// A device timestamp is the instant shifted back by how far the device
// wall clock runs ahead of the caller's wall clock:
//
//	ts = instant - (deviceOffset - localOffset)
//
// With the caller in UTC and the station in Asia/Shanghai (UTC+8),
// 2024-01-01T00:00Z is sent as the timestamp of 2023-12-31T16:00Z. Both
// offsets are taken at the instant being converted, so either zone may
// observe daylight saving.
//
// When the caller's zone falls back an hour, two instants an hour apart map
// to the same device timestamp; FromDevice returns the earlier one.
package devicetime

import (
	"fmt"
	"math"
	"sync"
	"time"
	_ "time/tzdata"
)

// DefaultDeviceZone is the timezone the station firmware ships with.
const DefaultDeviceZone = "Asia/Shanghai"

// Converter translates instants to and from device timestamps for one
// caller zone and one device zone. A nil zone, including in the zero
// value, behaves like the default New picks for it.
type Converter struct {
	Local  *time.Location
	Device *time.Location
}

// defaultDevice is the DefaultDeviceZone location. The zone database is
// embedded, so the UTC fallback is never expected to be taken.
var defaultDevice = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation(DefaultDeviceZone)
	if err != nil {
		return time.UTC
	}
	return loc
})

// New returns a Converter for the given zones. A nil zone falls back to
// time.Local for the caller and DefaultDeviceZone for the device.
func New(local, device *time.Location) (*Converter, error) {
	if local == nil {
		local = time.Local
	}
	if device == nil {
		loc, err := time.LoadLocation(DefaultDeviceZone)
		if err != nil {
			return nil, fmt.Errorf("failed to load device timezone %q: %w", DefaultDeviceZone, err)
		}
		device = loc
	}
	return &Converter{Local: local, Device: device}, nil
}

// NewFromNames resolves IANA zone names. Empty names select the defaults
// described on New.
func NewFromNames(localName, deviceName string) (*Converter, error) {
	var local, device *time.Location
	if localName != "" {
		loc, err := time.LoadLocation(localName)
		if err != nil {
			return nil, fmt.Errorf("invalid local timezone %q: %w", localName, err)
		}
		local = loc
	}
	if deviceName != "" {
		loc, err := time.LoadLocation(deviceName)
		if err != nil {
			return nil, fmt.Errorf("invalid device timezone %q: %w", deviceName, err)
		}
		device = loc
	}
	return New(local, device)
}

// Offset returns how far the device wall clock runs ahead of the caller's
// wall clock at instant t, in seconds.
func (c *Converter) Offset(t time.Time) int64 {
	_, deviceOff := t.In(c.device()).Zone()
	_, localOff := t.In(c.local()).Zone()
	return int64(deviceOff - localOff)
}

// ToDevice converts t into a device timestamp. Sub-second precision is
// dropped.
func (c *Converter) ToDevice(t time.Time) (uint32, error) {
	secs := t.Unix() - c.Offset(t)
	if secs < 0 || secs > math.MaxUint32 {
		return 0, fmt.Errorf("time %s is outside the device timestamp range", t.Format(time.RFC3339))
	}
	return uint32(secs), nil
}

// FromDevice converts a device timestamp into an instant.
func (c *Converter) FromDevice(ts uint32) time.Time {
	raw := time.Unix(int64(ts), 0)
	off := c.Offset(raw)
	t := raw.Add(time.Duration(off) * time.Second)

	// The offset is first taken at the raw instant. Across a DST change the
	// instant we land on can sit on the other side, so settle on the offset
	// that holds at the result.
	if settled := c.Offset(t); settled != off {
		t = raw.Add(time.Duration(settled) * time.Second)
	}
	return t.In(c.local())
}

func (c *Converter) local() *time.Location {
	if c.Local == nil {
		return time.Local
	}
	return c.Local
}

func (c *Converter) device() *time.Location {
	if c.Device == nil {
		return defaultDevice()
	}
	return c.Device
}
