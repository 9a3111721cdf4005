package devicetime

import (
	"testing"
	"time"
)

func mustConverter(t *testing.T, local, device string) *Converter {
	t.Helper()
	c, err := NewFromNames(local, device)
	if err != nil {
		t.Fatalf("NewFromNames(%q, %q) error = %v", local, device, err)
	}
	return c
}

func TestNewFromNames(t *testing.T) {
	tests := []struct {
		name    string
		local   string
		device  string
		wantErr bool
	}{
		{name: "defaults", local: "", device: ""},
		{name: "explicit zones", local: "Europe/Amsterdam", device: "Asia/Shanghai"},
		{name: "bad local zone", local: "Mars/Olympus", wantErr: true},
		{name: "bad device zone", local: "UTC", device: "Nowhere/Land", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewFromNames(tt.local, tt.device)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFromNames() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if c.Local == nil || c.Device == nil {
				t.Fatalf("zones not resolved: %+v", c)
			}
			if tt.device == "" && c.Device.String() != DefaultDeviceZone {
				t.Errorf("device zone = %s, want %s", c.Device, DefaultDeviceZone)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	c := mustConverter(t, "America/New_York", "Asia/Shanghai")

	winter := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	if got := c.Offset(winter); got != 13*3600 {
		t.Errorf("winter offset = %d, want %d", got, 13*3600)
	}
	if got := c.Offset(summer); got != 12*3600 {
		t.Errorf("summer offset = %d, want %d", got, 12*3600)
	}
}

func TestToDevice(t *testing.T) {
	c := mustConverter(t, "UTC", "Asia/Shanghai")

	instant := time.Date(2024, 5, 1, 10, 0, 0, 999_000_000, time.UTC)
	got, err := c.ToDevice(instant)
	if err != nil {
		t.Fatalf("ToDevice() error = %v", err)
	}

	want := uint32(instant.Unix() - 8*3600)
	if got != want {
		t.Errorf("ToDevice() = %d, want %d", got, want)
	}
}

func TestToDevice_OutOfRange(t *testing.T) {
	c := mustConverter(t, "UTC", "UTC")

	if _, err := c.ToDevice(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("expected error for instant before the epoch")
	}
	if _, err := c.ToDevice(time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("expected error for instant past uint32 range")
	}
}

func TestRoundTrip_SpringForward(t *testing.T) {
	c := mustConverter(t, "America/New_York", "Asia/Shanghai")

	// DST starts 2024-03-10 07:00 UTC in New York.
	transition := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)

	for d := -24 * time.Hour; d <= 24*time.Hour; d += 15 * time.Minute {
		instant := transition.Add(d).Add(250 * time.Millisecond)
		ts, err := c.ToDevice(instant)
		if err != nil {
			t.Fatalf("ToDevice(%s) error = %v", instant, err)
		}
		back := c.FromDevice(ts)
		if diff := instant.Sub(back); diff < 0 || diff >= time.Second {
			t.Errorf("round trip %s -> %d -> %s (diff %s)", instant, ts, back, diff)
		}
	}
}

func TestRoundTrip_FallBack(t *testing.T) {
	c := mustConverter(t, "Europe/Amsterdam", "Asia/Shanghai")

	// DST ends 2024-10-27 01:00 UTC in Amsterdam. The hour after the change
	// shares its device timestamps with the hour before it.
	transition := time.Date(2024, 10, 27, 1, 0, 0, 0, time.UTC)

	for d := -24 * time.Hour; d <= 24*time.Hour; d += 20 * time.Minute {
		if d >= 0 && d < time.Hour {
			continue
		}
		instant := transition.Add(d)
		ts, err := c.ToDevice(instant)
		if err != nil {
			t.Fatalf("ToDevice(%s) error = %v", instant, err)
		}
		if back := c.FromDevice(ts); !back.Equal(instant) {
			t.Errorf("round trip %s -> %d -> %s", instant, ts, back)
		}
	}
}

func TestFromDevice_ReturnsLocalZone(t *testing.T) {
	c := mustConverter(t, "Europe/Amsterdam", "Asia/Shanghai")

	got := c.FromDevice(1_700_000_000)
	if got.Location().String() != "Europe/Amsterdam" {
		t.Errorf("location = %s, want Europe/Amsterdam", got.Location())
	}
}

func TestToDevice_ShiftsByZoneDifference(t *testing.T) {
	c := mustConverter(t, "UTC", "Asia/Shanghai")

	// 08:00 in Shanghai is sent as the timestamp of 16:00 UTC the day before.
	ts, err := c.ToDevice(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ToDevice() error = %v", err)
	}
	want := time.Date(2023, 12, 31, 16, 0, 0, 0, time.UTC).Unix()
	if int64(ts) != want {
		t.Errorf("ToDevice() = %d, want %d", ts, want)
	}
}

func TestZeroConverter_UsesDefaults(t *testing.T) {
	defaults, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		conv *Converter
	}{
		{name: "zero value", conv: &Converter{}},
		{name: "nil local", conv: &Converter{Device: defaults.Device}},
		{name: "nil device", conv: &Converter{Local: defaults.Local}},
	}

	instant := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.conv.Offset(instant), defaults.Offset(instant); got != want {
				t.Errorf("Offset() = %d, want %d", got, want)
			}
			got := tt.conv.FromDevice(1_700_000_000)
			if want := defaults.FromDevice(1_700_000_000); !got.Equal(want) {
				t.Errorf("FromDevice() = %v, want %v", got, want)
			}
		})
	}
}
