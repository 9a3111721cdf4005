package protocol

import "fmt"

// Action selects whether a SetAndGet datagram reads or writes a setting.
type Action uint8

const (
	ActionSet Action = 1
	ActionGet Action = 2
)

// Valid reports whether a is GET or SET. The zero value is not valid.
func (a Action) Valid() bool {
	return a == ActionSet || a == ActionGet
}

func (a Action) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionGet:
		return "get"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ParseAction accepts "get" or "set".
func ParseAction(s string) (Action, error) {
	switch s {
	case "set", "SET":
		return ActionSet, nil
	case "get", "GET":
		return ActionGet, nil
	default:
		return 0, fmt.Errorf("unknown action %q (want get or set)", s)
	}
}

// Language is the display language of the station.
type Language uint8

const (
	LanguageEnglish Language = 1
	LanguageItalian Language = 2
	LanguageGerman  Language = 3
	LanguageFrench  Language = 4
	LanguageSpanish Language = 5
	LanguageHebrew  Language = 6

	// LanguageUnknown is reported for codes this package does not know,
	// e.g. languages added by newer firmware.
	LanguageUnknown Language = 0xFF
)

var languageNames = map[Language]string{
	LanguageEnglish: "english",
	LanguageItalian: "italian",
	LanguageGerman:  "german",
	LanguageFrench:  "french",
	LanguageSpanish: "spanish",
	LanguageHebrew:  "hebrew",
	LanguageUnknown: "unknown",
}

// Known reports whether l is a real language code.
func (l Language) Known() bool {
	_, ok := languageNames[l]
	return ok && l != LanguageUnknown
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language(%d)", uint8(l))
}

// ParseLanguage looks a language up by name.
func ParseLanguage(s string) (Language, error) {
	for l, name := range languageNames {
		if name == s && l != LanguageUnknown {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}

// TemperatureUnit is the unit the station displays temperatures in.
type TemperatureUnit uint8

const (
	TemperatureUnitCelsius    TemperatureUnit = 1
	TemperatureUnitFahrenheit TemperatureUnit = 2
)

// Known reports whether u is a real unit code.
func (u TemperatureUnit) Known() bool {
	return u == TemperatureUnitCelsius || u == TemperatureUnitFahrenheit
}

func (u TemperatureUnit) String() string {
	switch u {
	case TemperatureUnitCelsius:
		return "celsius"
	case TemperatureUnitFahrenheit:
		return "fahrenheit"
	default:
		return fmt.Sprintf("unit(%d)", uint8(u))
	}
}

// ParseTemperatureUnit accepts "celsius" or "fahrenheit".
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch s {
	case "celsius", "c":
		return TemperatureUnitCelsius, nil
	case "fahrenheit", "f":
		return TemperatureUnitFahrenheit, nil
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", s)
	}
}

// OffLineChargeStatus controls whether the station may charge while it has
// no connection to its controlling app.
type OffLineChargeStatus uint8

const (
	OffLineChargeDisabled OffLineChargeStatus = 0
	OffLineChargeEnabled  OffLineChargeStatus = 1
)

func (s OffLineChargeStatus) String() string {
	switch s {
	case OffLineChargeDisabled:
		return "disabled"
	case OffLineChargeEnabled:
		return "enabled"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// ParseOffLineChargeStatus accepts "enabled" or "disabled".
func ParseOffLineChargeStatus(s string) (OffLineChargeStatus, error) {
	switch s {
	case "enabled", "on":
		return OffLineChargeEnabled, nil
	case "disabled", "off":
		return OffLineChargeDisabled, nil
	default:
		return 0, fmt.Errorf("unknown offline charge status %q", s)
	}
}

// ReservationResult describes how the station handled the reservation
// part of a charge start request.
type ReservationResult uint8

const (
	ReservationImmediateStart ReservationResult = 0
	ReservationOK             ReservationResult = 1
	ReservationNotSupported   ReservationResult = 2
	ReservationInvalidTime    ReservationResult = 3
	ReservationInPast         ReservationResult = 4
)

func (r ReservationResult) String() string {
	switch r {
	case ReservationImmediateStart:
		return "immediate_start"
	case ReservationOK:
		return "reservation_ok"
	case ReservationNotSupported:
		return "reservation_not_supported"
	case ReservationInvalidTime:
		return "reservation_invalid_time"
	case ReservationInPast:
		return "reservation_in_past"
	default:
		return fmt.Sprintf("reservation_result(%d)", uint8(r))
	}
}

// ChargeStartErrorReason is the reason a station gives for refusing to
// start charging.
type ChargeStartErrorReason uint8

const (
	ChargeStartErrorNone              ChargeStartErrorReason = 0
	ChargeStartErrorNotPluggedIn      ChargeStartErrorReason = 1
	ChargeStartErrorSystemError       ChargeStartErrorReason = 2
	ChargeStartErrorAlreadyCharging   ChargeStartErrorReason = 3
	ChargeStartErrorSystemMaintenance ChargeStartErrorReason = 4
	ChargeStartErrorIncorrectSetFee   ChargeStartErrorReason = 5
	ChargeStartErrorStartFailed       ChargeStartErrorReason = 6
)

func (r ChargeStartErrorReason) String() string {
	switch r {
	case ChargeStartErrorNone:
		return "none"
	case ChargeStartErrorNotPluggedIn:
		return "not_plugged_in"
	case ChargeStartErrorSystemError:
		return "system_error"
	case ChargeStartErrorAlreadyCharging:
		return "already_charging"
	case ChargeStartErrorSystemMaintenance:
		return "system_maintenance"
	case ChargeStartErrorIncorrectSetFee:
		return "incorrect_set_fee"
	case ChargeStartErrorStartFailed:
		return "start_failed"
	default:
		return fmt.Sprintf("error_reason(%d)", uint8(r))
	}
}
