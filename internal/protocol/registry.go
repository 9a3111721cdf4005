package protocol

import (
	"fmt"
	"maps"
	"slices"
)

type registryEntry struct {
	name string
	new  func() Message
}

// registry maps every known command code to its datagram type.
var registry = map[Command]registryEntry{
	CmdChargeStart:                        {"ChargeStart", func() Message { return &ChargeStart{} }},
	CmdChargeStartResponse:                {"ChargeStartResponse", func() Message { return &ChargeStartResponse{} }},
	CmdSetAndGetSystemTime:                {"SetAndGetSystemTime", func() Message { return &SetAndGetSystemTime{} }},
	CmdSetAndGetSystemTimeResponse:        {"SetAndGetSystemTimeResponse", func() Message { return &SetAndGetSystemTimeResponse{} }},
	CmdSetAndGetOutputElectricity:         {"SetAndGetOutputElectricity", func() Message { return &SetAndGetOutputElectricity{} }},
	CmdSetAndGetOutputElectricityResponse: {"SetAndGetOutputElectricityResponse", func() Message { return &SetAndGetOutputElectricityResponse{} }},
	CmdSetAndGetNickName:                  {"SetAndGetNickName", func() Message { return &SetAndGetNickName{} }},
	CmdSetAndGetNickNameResponse:          {"SetAndGetNickNameResponse", func() Message { return &SetAndGetNickNameResponse{} }},
	CmdSetAndGetOffLineCharge:             {"SetAndGetOffLineCharge", func() Message { return &SetAndGetOffLineCharge{} }},
	CmdSetAndGetOffLineChargeResponse:     {"SetAndGetOffLineChargeResponse", func() Message { return &SetAndGetOffLineChargeResponse{} }},
	CmdSetAndGetLanguage:                  {"SetAndGetLanguage", func() Message { return &SetAndGetLanguage{} }},
	CmdSetAndGetLanguageResponse:          {"SetAndGetLanguageResponse", func() Message { return &SetAndGetLanguageResponse{} }},
	CmdSetAndGetTemperatureUnit:           {"SetAndGetTemperatureUnit", func() Message { return &SetAndGetTemperatureUnit{} }},
	CmdSetAndGetTemperatureUnitResponse:   {"SetAndGetTemperatureUnitResponse", func() Message { return &SetAndGetTemperatureUnitResponse{} }},
}

// New returns an empty datagram for cmd.
func New(cmd Command) (Message, error) {
	entry, ok := registry[cmd]
	if !ok {
		return nil, &CodecError{
			Type:    ErrTypeUnknownCommand,
			Command: cmd,
			Message: fmt.Sprintf("no datagram registered for command %d", uint16(cmd)),
			Err:     ErrUnknownCommand,
		}
	}
	return entry.new(), nil
}

// Commands lists every registered command code in ascending order.
func Commands() []Command {
	return slices.Sorted(maps.Keys(registry))
}

// LookupCommand finds a command by its datagram name, e.g. "SetAndGetLanguage".
func LookupCommand(name string) (Command, bool) {
	for cmd, entry := range registry {
		if entry.name == name {
			return cmd, true
		}
	}
	return 0, false
}
