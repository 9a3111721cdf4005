package protocol

import (
	"encoding/binary"
	"time"
)

const systemTimePayloadSize = 5

// SetAndGetSystemTime reads or sets the station clock.
//
// Payload:
//
//	[0]   action
//	[1-4] device timestamp (big-endian uint32, 0 on GET)
type SetAndGetSystemTime struct {
	Action Action
	// Time to set. A zero Time (or the Unix epoch) on SET is replaced
	// with the codec's current time during Encode.
	Time time.Time
}

// SetAndGetSystemTimeResponse reports the station clock.
type SetAndGetSystemTimeResponse SetAndGetSystemTime

func (*SetAndGetSystemTime) Command() Command      { return CmdSetAndGetSystemTime }
func (*SetAndGetSystemTime) MinPayloadLength() int { return systemTimePayloadSize }

func (m *SetAndGetSystemTime) pack(c *Codec) ([]byte, error) {
	return m.packAs(c, CmdSetAndGetSystemTime)
}

func (m *SetAndGetSystemTime) unpack(c *Codec, payload []byte) error {
	m.unpackFrom(c, payload)
	return nil
}

func (*SetAndGetSystemTimeResponse) Command() Command      { return CmdSetAndGetSystemTimeResponse }
func (*SetAndGetSystemTimeResponse) MinPayloadLength() int { return systemTimePayloadSize }

func (m *SetAndGetSystemTimeResponse) pack(c *Codec) ([]byte, error) {
	return (*SetAndGetSystemTime)(m).packAs(c, CmdSetAndGetSystemTimeResponse)
}

func (m *SetAndGetSystemTimeResponse) unpack(c *Codec, payload []byte) error {
	(*SetAndGetSystemTime)(m).unpackFrom(c, payload)
	return nil
}

func (m *SetAndGetSystemTime) packAs(c *Codec, cmd Command) ([]byte, error) {
	if err := checkAction(cmd, m.Action); err != nil {
		return nil, err
	}

	payload := make([]byte, systemTimePayloadSize)
	payload[0] = byte(m.Action)

	if m.Action == ActionSet {
		t := m.Time
		if t.IsZero() || t.Unix() == 0 {
			t = c.now()
		}
		ts, err := c.converter().ToDevice(t)
		if err != nil {
			return nil, outOfRange(cmd, "time", "%v", err)
		}
		binary.BigEndian.PutUint32(payload[1:5], ts)
		m.Time = t
	}
	return payload, nil
}

func (m *SetAndGetSystemTime) unpackFrom(c *Codec, payload []byte) {
	ts := binary.BigEndian.Uint32(payload[1:5])
	m.Action = Action(payload[0])
	m.Time = c.converter().FromDevice(ts)
}
