package protocol

const offLineChargePayloadSize = 2

// SetAndGetOffLineCharge reads or changes whether the station may charge
// without a connection to its app.
//
// Payload:
//
//	[0] action
//	[1] status (0 on GET)
type SetAndGetOffLineCharge struct {
	Action Action
	Status OffLineChargeStatus
}

// SetAndGetOffLineChargeResponse reports the offline charge setting.
type SetAndGetOffLineChargeResponse SetAndGetOffLineCharge

func (*SetAndGetOffLineCharge) Command() Command      { return CmdSetAndGetOffLineCharge }
func (*SetAndGetOffLineCharge) MinPayloadLength() int { return offLineChargePayloadSize }

func (m *SetAndGetOffLineCharge) pack(*Codec) ([]byte, error) {
	return m.packAs(CmdSetAndGetOffLineCharge)
}

func (m *SetAndGetOffLineCharge) unpack(_ *Codec, payload []byte) error {
	m.unpackFrom(payload)
	return nil
}

func (*SetAndGetOffLineChargeResponse) Command() Command      { return CmdSetAndGetOffLineChargeResponse }
func (*SetAndGetOffLineChargeResponse) MinPayloadLength() int { return offLineChargePayloadSize }

func (m *SetAndGetOffLineChargeResponse) pack(*Codec) ([]byte, error) {
	return (*SetAndGetOffLineCharge)(m).packAs(CmdSetAndGetOffLineChargeResponse)
}

func (m *SetAndGetOffLineChargeResponse) unpack(_ *Codec, payload []byte) error {
	(*SetAndGetOffLineCharge)(m).unpackFrom(payload)
	return nil
}

func (m *SetAndGetOffLineCharge) packAs(cmd Command) ([]byte, error) {
	if err := checkAction(cmd, m.Action); err != nil {
		return nil, err
	}
	status := m.Status
	if m.Action == ActionGet {
		status = 0
	}
	return []byte{byte(m.Action), byte(status)}, nil
}

func (m *SetAndGetOffLineCharge) unpackFrom(payload []byte) {
	m.Action = Action(payload[0])
	m.Status = OffLineChargeStatus(payload[1])
}
