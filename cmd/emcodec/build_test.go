package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/emcodec/internal/protocol"
	"github.com/muurk/emcodec/internal/ui"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    []byte
		wantErr bool
	}{
		{in: "810f0102", want: []byte{0x81, 0x0f, 0x01, 0x02}},
		{in: "0x810f", want: []byte{0x81, 0x0f}},
		{in: "81 0f:01-02", want: []byte{0x81, 0x0f, 0x01, 0x02}},
		{in: "81f", wantErr: true},
		{in: "zz", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("parseHex(%q) = % x, want % x", tt.in, got, tt.want)
		}
	}
}

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		opts    encodeOptions
		want    protocol.Message
		wantErr bool
	}{
		{
			name: "language set",
			kind: "language",
			opts: encodeOptions{Action: "set", Value: "german"},
			want: &protocol.SetAndGetLanguage{Action: protocol.ActionSet, Language: protocol.LanguageGerman},
		},
		{
			name: "get ignores value",
			kind: "temperature-unit",
			opts: encodeOptions{Action: "get", Value: "kelvin"},
			want: &protocol.SetAndGetTemperatureUnit{Action: protocol.ActionGet},
		},
		{
			name: "response variant",
			kind: "offline-charge",
			opts: encodeOptions{Action: "set", Value: "enabled", Response: true},
			want: &protocol.SetAndGetOffLineChargeResponse{Action: protocol.ActionSet, Status: protocol.OffLineChargeEnabled},
		},
		{
			name: "output electricity",
			kind: "output-electricity",
			opts: encodeOptions{Action: "set", Value: "16", DeviceMax: 20},
			want: &protocol.SetAndGetOutputElectricity{Action: protocol.ActionSet, Amps: 16},
		},
		{
			name:    "output electricity above station max",
			kind:    "output-electricity",
			opts:    encodeOptions{Action: "set", Value: "25", DeviceMax: 20},
			wantErr: true,
		},
		{
			name: "system time",
			kind: "system-time",
			opts: encodeOptions{Action: "set", Value: "2024-05-01T12:30:45Z"},
			want: &protocol.SetAndGetSystemTime{
				Action: protocol.ActionSet,
				Time:   time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC),
			},
		},
		{
			name: "charge start",
			kind: "charge-start",
			opts: encodeOptions{Line: 1, User: "emuser", ChargeID: "c1", MaxEnergy: 12.5, MaxAmps: 16},
			want: &protocol.ChargeStart{LineID: 1, UserID: "emuser", ChargeID: "c1", MaxEnergy: 1250, MaxAmps: 16},
		},
		{name: "unknown kind", kind: "volume", opts: encodeOptions{Action: "get"}, wantErr: true},
		{name: "bad action", kind: "language", opts: encodeOptions{Action: "toggle"}, wantErr: true},
		{name: "bad language", kind: "language", opts: encodeOptions{Action: "set", Value: "klingon"}, wantErr: true},
		{name: "bad time", kind: "system-time", opts: encodeOptions{Action: "set", Value: "yesterday"}, wantErr: true},
		{name: "charge start response", kind: "charge-start", opts: encodeOptions{Response: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildMessage(tt.kind, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("buildMessage() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMessage_DeviceMaxError(t *testing.T) {
	_, err := buildMessage("output-electricity", encodeOptions{Action: "set", Value: "25", DeviceMax: 20})
	if !errors.Is(err, protocol.ErrOutOfRange) {
		t.Errorf("error = %v, want ErrOutOfRange", err)
	}
}

func TestDescribe(t *testing.T) {
	m := &protocol.ChargeStartResponse{
		LineID:            1,
		ChargeID:          "c1",
		ReservationResult: protocol.ReservationNotSupported,
		ErrorReason:       protocol.ChargeStartErrorStartFailed,
	}

	fields := describe(m)
	if fields[0].Key != "Command" || !strings.HasPrefix(fields[0].Value, "ChargeStartResponse (7") {
		t.Errorf("first field = %+v", fields[0])
	}

	var outcome ui.Field
	for _, f := range fields {
		if f.Key == "Outcome" {
			outcome = f
		}
	}
	if !strings.Contains(outcome.Value, "charge start failed") {
		t.Errorf("Outcome = %q, want classified failure", outcome.Value)
	}
}
