package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/muurk/emcodec/internal/protocol"
)

// encodeOptions holds the encode command flags.
type encodeOptions struct {
	Action   string
	Value    string
	Response bool

	// charge-start
	Line        uint8
	User        string
	ChargeID    string
	At          string
	StartType   uint8
	ChargeType  uint8
	MaxMinutes  uint16
	MaxEnergy   float64
	MaxAmps     uint8
	SinglePhase bool
	DeviceMax   uint8
}

// encodeKinds are the datagram kinds the encode command builds.
var encodeKinds = []string{
	"charge-start",
	"language",
	"nickname",
	"offline-charge",
	"output-electricity",
	"system-time",
	"temperature-unit",
}

// buildMessage turns a kind name and flags into a datagram.
func buildMessage(kind string, opts encodeOptions) (protocol.Message, error) {
	if kind == "charge-start" {
		return buildChargeStart(opts)
	}
	if !slices.Contains(encodeKinds, kind) {
		return nil, fmt.Errorf("unknown kind %q (want one of: %s)", kind, strings.Join(encodeKinds, ", "))
	}

	action, err := protocol.ParseAction(opts.Action)
	if err != nil {
		return nil, err
	}
	// GET carries no value
	value := opts.Value
	if action == protocol.ActionGet {
		value = ""
	}

	switch kind {
	case "language":
		m := &protocol.SetAndGetLanguage{Action: action}
		if value != "" {
			if m.Language, err = protocol.ParseLanguage(value); err != nil {
				return nil, err
			}
		}
		if opts.Response {
			r := protocol.SetAndGetLanguageResponse(*m)
			return &r, nil
		}
		return m, nil

	case "nickname":
		m := &protocol.SetAndGetNickName{Action: action, NickName: value}
		if opts.Response {
			r := protocol.SetAndGetNickNameResponse(*m)
			return &r, nil
		}
		return m, nil

	case "offline-charge":
		m := &protocol.SetAndGetOffLineCharge{Action: action}
		if value != "" {
			if m.Status, err = protocol.ParseOffLineChargeStatus(value); err != nil {
				return nil, err
			}
		}
		if opts.Response {
			r := protocol.SetAndGetOffLineChargeResponse(*m)
			return &r, nil
		}
		return m, nil

	case "output-electricity":
		m := &protocol.SetAndGetOutputElectricity{Action: action}
		if value != "" {
			amps, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid current %q: %w", value, err)
			}
			m.Amps = uint8(amps)
		}
		if opts.DeviceMax != 0 {
			if err := m.CheckDeviceMax(opts.DeviceMax); err != nil {
				return nil, err
			}
		}
		if opts.Response {
			r := protocol.SetAndGetOutputElectricityResponse(*m)
			return &r, nil
		}
		return m, nil

	case "system-time":
		m := &protocol.SetAndGetSystemTime{Action: action}
		if value != "" && value != "now" {
			if m.Time, err = time.Parse(time.RFC3339, value); err != nil {
				return nil, fmt.Errorf("invalid time %q (want RFC 3339): %w", value, err)
			}
		}
		if opts.Response {
			r := protocol.SetAndGetSystemTimeResponse(*m)
			return &r, nil
		}
		return m, nil

	default: // temperature-unit
		m := &protocol.SetAndGetTemperatureUnit{Action: action}
		if value != "" {
			if m.Unit, err = protocol.ParseTemperatureUnit(value); err != nil {
				return nil, err
			}
		}
		if opts.Response {
			r := protocol.SetAndGetTemperatureUnitResponse(*m)
			return &r, nil
		}
		return m, nil
	}
}

func buildChargeStart(opts encodeOptions) (protocol.Message, error) {
	if opts.Response {
		return nil, fmt.Errorf("charge-start responses cannot be built from flags; decode a captured frame instead")
	}

	if opts.MaxEnergy < 0 || opts.MaxEnergy*100 > 65535 {
		return nil, fmt.Errorf("max energy %.2f kWh out of range", opts.MaxEnergy)
	}

	m := &protocol.ChargeStart{
		LineID:             opts.Line,
		UserID:             opts.User,
		ChargeID:           opts.ChargeID,
		StartType:          opts.StartType,
		ChargeType:         opts.ChargeType,
		MaxDurationMinutes: opts.MaxMinutes,
		MaxEnergy:          uint16(math.Round(opts.MaxEnergy * 100)),
		MaxAmps:            opts.MaxAmps,
		SinglePhase:        opts.SinglePhase,
	}
	if opts.At != "" {
		t, err := time.Parse(time.RFC3339, opts.At)
		if err != nil {
			return nil, fmt.Errorf("invalid reservation time %q (want RFC 3339): %w", opts.At, err)
		}
		m.ReservationTime = t
	}
	return m, nil
}
