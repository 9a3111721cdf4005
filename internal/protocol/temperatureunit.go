package protocol

const temperatureUnitPayloadSize = 2

// SetAndGetTemperatureUnit reads or changes the temperature display unit.
//
// Payload:
//
//	[0] action
//	[1] unit (0 on GET)
type SetAndGetTemperatureUnit struct {
	Action Action
	Unit   TemperatureUnit
}

// SetAndGetTemperatureUnitResponse reports the temperature display unit.
type SetAndGetTemperatureUnitResponse SetAndGetTemperatureUnit

func (*SetAndGetTemperatureUnit) Command() Command      { return CmdSetAndGetTemperatureUnit }
func (*SetAndGetTemperatureUnit) MinPayloadLength() int { return temperatureUnitPayloadSize }

func (m *SetAndGetTemperatureUnit) pack(*Codec) ([]byte, error) {
	return m.packAs(CmdSetAndGetTemperatureUnit)
}

func (m *SetAndGetTemperatureUnit) unpack(_ *Codec, payload []byte) error {
	m.unpackFrom(payload)
	return nil
}

func (*SetAndGetTemperatureUnitResponse) Command() Command {
	return CmdSetAndGetTemperatureUnitResponse
}
func (*SetAndGetTemperatureUnitResponse) MinPayloadLength() int { return temperatureUnitPayloadSize }

func (m *SetAndGetTemperatureUnitResponse) pack(*Codec) ([]byte, error) {
	return (*SetAndGetTemperatureUnit)(m).packAs(CmdSetAndGetTemperatureUnitResponse)
}

func (m *SetAndGetTemperatureUnitResponse) unpack(_ *Codec, payload []byte) error {
	(*SetAndGetTemperatureUnit)(m).unpackFrom(payload)
	return nil
}

func (m *SetAndGetTemperatureUnit) packAs(cmd Command) ([]byte, error) {
	if err := checkAction(cmd, m.Action); err != nil {
		return nil, err
	}
	if m.Action == ActionGet {
		return []byte{byte(m.Action), 0}, nil
	}
	if !m.Unit.Known() {
		if m.Unit == 0 {
			return nil, missingField(cmd, "unit")
		}
		return nil, outOfRange(cmd, "unit", "unknown temperature unit %d", uint8(m.Unit))
	}
	return []byte{byte(m.Action), byte(m.Unit)}, nil
}

func (m *SetAndGetTemperatureUnit) unpackFrom(payload []byte) {
	m.Action = Action(payload[0])
	m.Unit = TemperatureUnit(payload[1])
}
