package protocol

// NickNameSize is the width of the nickname field.
const NickNameSize = 32

// Older firmware sends a 16 byte nickname field.
const legacyNickNameSize = 16

// NickNamePayloadSizes are the payload lengths stations are known to send.
var NickNamePayloadSizes = []int{1 + legacyNickNameSize, 1 + NickNameSize}

// SetAndGetNickName reads or changes the station's nickname.
//
// Payload:
//
//	[0]    action
//	[1-32] nickname, NUL padded
type SetAndGetNickName struct {
	Action   Action
	NickName string
}

// SetAndGetNickNameResponse reports the current nickname.
type SetAndGetNickNameResponse SetAndGetNickName

func (*SetAndGetNickName) Command() Command      { return CmdSetAndGetNickName }
func (*SetAndGetNickName) MinPayloadLength() int { return NickNamePayloadSizes[0] }

func (m *SetAndGetNickName) pack(*Codec) ([]byte, error) {
	return m.packAs(CmdSetAndGetNickName)
}

func (m *SetAndGetNickName) unpack(_ *Codec, payload []byte) error {
	m.unpackFrom(payload)
	return nil
}

func (*SetAndGetNickNameResponse) Command() Command      { return CmdSetAndGetNickNameResponse }
func (*SetAndGetNickNameResponse) MinPayloadLength() int { return NickNamePayloadSizes[0] }

func (m *SetAndGetNickNameResponse) pack(*Codec) ([]byte, error) {
	return (*SetAndGetNickName)(m).packAs(CmdSetAndGetNickNameResponse)
}

func (m *SetAndGetNickNameResponse) unpack(_ *Codec, payload []byte) error {
	(*SetAndGetNickName)(m).unpackFrom(payload)
	return nil
}

func (m *SetAndGetNickName) packAs(cmd Command) ([]byte, error) {
	if err := checkAction(cmd, m.Action); err != nil {
		return nil, err
	}

	payload := make([]byte, 1+NickNameSize)
	payload[0] = byte(m.Action)

	if m.Action == ActionSet {
		if m.NickName == "" {
			return nil, missingField(cmd, "nickname")
		}
		if err := putString(payload[1:], m.NickName); err != nil {
			return nil, outOfRange(cmd, "nickname", "%v", err)
		}
	}
	return payload, nil
}

func (m *SetAndGetNickName) unpackFrom(payload []byte) {
	end := NickNamePayloadSizes[0]
	if len(payload) >= NickNamePayloadSizes[1] {
		end = NickNamePayloadSizes[1]
	}
	m.Action = Action(payload[0])
	m.NickName = ReadString(payload, 1, end)
}
