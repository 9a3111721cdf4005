package protocol

const languagePayloadSize = 2

// SetAndGetLanguage reads or changes the display language.
//
// Payload:
//
//	[0] action
//	[1] language code
type SetAndGetLanguage struct {
	Action   Action
	Language Language
}

// SetAndGetLanguageResponse reports the current display language.
type SetAndGetLanguageResponse SetAndGetLanguage

func (*SetAndGetLanguage) Command() Command      { return CmdSetAndGetLanguage }
func (*SetAndGetLanguage) MinPayloadLength() int { return languagePayloadSize }

func (m *SetAndGetLanguage) pack(*Codec) ([]byte, error) {
	return m.packAs(CmdSetAndGetLanguage)
}

func (m *SetAndGetLanguage) unpack(_ *Codec, payload []byte) error {
	m.unpackFrom(payload)
	return nil
}

func (*SetAndGetLanguageResponse) Command() Command      { return CmdSetAndGetLanguageResponse }
func (*SetAndGetLanguageResponse) MinPayloadLength() int { return languagePayloadSize }

func (m *SetAndGetLanguageResponse) pack(*Codec) ([]byte, error) {
	return (*SetAndGetLanguage)(m).packAs(CmdSetAndGetLanguageResponse)
}

func (m *SetAndGetLanguageResponse) unpack(_ *Codec, payload []byte) error {
	(*SetAndGetLanguage)(m).unpackFrom(payload)
	return nil
}

func (m *SetAndGetLanguage) packAs(cmd Command) ([]byte, error) {
	if err := checkAction(cmd, m.Action); err != nil {
		return nil, err
	}
	if m.Action == ActionSet && !m.Language.Known() {
		if m.Language == 0 {
			return nil, missingField(cmd, "language")
		}
		return nil, outOfRange(cmd, "language", "unknown language code %d", uint8(m.Language))
	}
	return []byte{byte(m.Action), byte(m.Language)}, nil
}

func (m *SetAndGetLanguage) unpackFrom(payload []byte) {
	lang := Language(payload[1])
	if !lang.Known() {
		lang = LanguageUnknown
	}
	m.Action = Action(payload[0])
	m.Language = lang
}
