package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/muurk/emcodec/internal/protocol"
	"github.com/muurk/emcodec/internal/ui"
)

// parseHex accepts hex with optional spaces, colons, dashes or a 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.NewReplacer(" ", "", ":", "", "-", "", "\n", "", "\t", "").Replace(s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

// describe lists the fields of a datagram for display.
func describe(m protocol.Message) []ui.Field {
	cmd := m.Command()
	fields := []ui.Field{
		{Key: "Command", Value: fmt.Sprintf("%s (%d, 0x%04x)", cmd, uint16(cmd), uint16(cmd))},
	}
	if cmd.IsRequest() {
		fields = append(fields, ui.Field{Key: "Direction", Value: "request"})
	} else {
		fields = append(fields, ui.Field{Key: "Direction", Value: "response"})
	}

	add := func(key string, format string, args ...any) {
		fields = append(fields, ui.Field{Key: key, Value: fmt.Sprintf(format, args...)})
	}

	switch v := m.(type) {
	case *protocol.SetAndGetLanguage:
		add("Action", "%s", v.Action)
		add("Language", "%s", v.Language)
	case *protocol.SetAndGetLanguageResponse:
		add("Action", "%s", v.Action)
		add("Language", "%s", v.Language)
	case *protocol.SetAndGetNickName:
		add("Action", "%s", v.Action)
		add("Nickname", "%q", v.NickName)
	case *protocol.SetAndGetNickNameResponse:
		add("Action", "%s", v.Action)
		add("Nickname", "%q", v.NickName)
	case *protocol.SetAndGetOffLineCharge:
		add("Action", "%s", v.Action)
		add("Offline charge", "%s", v.Status)
	case *protocol.SetAndGetOffLineChargeResponse:
		add("Action", "%s", v.Action)
		add("Offline charge", "%s", v.Status)
	case *protocol.SetAndGetOutputElectricity:
		add("Action", "%s", v.Action)
		add("Max current", "%d A", v.Amps)
	case *protocol.SetAndGetOutputElectricityResponse:
		add("Action", "%s", v.Action)
		add("Max current", "%d A", v.Amps)
	case *protocol.SetAndGetTemperatureUnit:
		add("Action", "%s", v.Action)
		add("Unit", "%s", v.Unit)
	case *protocol.SetAndGetTemperatureUnitResponse:
		add("Action", "%s", v.Action)
		add("Unit", "%s", v.Unit)
	case *protocol.SetAndGetSystemTime:
		add("Action", "%s", v.Action)
		add("Time", "%s", formatTime(v.Time))
	case *protocol.SetAndGetSystemTimeResponse:
		add("Action", "%s", v.Action)
		add("Time", "%s", formatTime(v.Time))
	case *protocol.ChargeStart:
		add("Line", "%d", v.LineID)
		add("User", "%q", v.UserID)
		add("Charge ID", "%q", v.ChargeID)
		add("Reservation", "%s", formatTime(v.ReservationTime))
		add("Start type", "%d", v.StartType)
		add("Charge type", "%d", v.ChargeType)
		add("Max duration", "%d min", v.MaxDurationMinutes)
		add("Max energy", "%.2f kWh", float64(v.MaxEnergy)/100)
		add("Max current", "%d A", v.MaxAmps)
		add("Single phase", "%t", v.SinglePhase)
	case *protocol.ChargeStartResponse:
		add("Line", "%d", v.LineID)
		add("Charge ID", "%q", v.ChargeID)
		add("Reservation", "%s", v.ReservationResult)
		add("Start result", "%d", v.StartResult)
		add("Error reason", "%s", v.ErrorReason)
		add("Max current", "%d A", v.MaxAmps)
		if err := v.Err(); err != nil {
			add("Outcome", "%v", err)
		} else {
			add("Outcome", "ok")
		}
	}
	return fields
}
