package protocol

import "fmt"

// Command identifies a datagram type and its direction. Requests sent to
// the station have the high bit set; the matching response uses the same
// low bits with the high bit clear.
type Command uint16

const requestBit Command = 0x8000

// Command codes
const (
	CmdChargeStartResponse                Command = 7
	CmdSetAndGetSystemTimeResponse        Command = 257
	CmdSetAndGetOutputElectricityResponse Command = 263
	CmdSetAndGetNickNameResponse          Command = 264
	CmdSetAndGetOffLineChargeResponse     Command = 269
	CmdSetAndGetLanguageResponse          Command = 271
	CmdSetAndGetTemperatureUnitResponse   Command = 274

	CmdChargeStart                Command = 32775
	CmdSetAndGetSystemTime        Command = 33025
	CmdSetAndGetOutputElectricity Command = 33031
	CmdSetAndGetNickName          Command = 33032
	CmdSetAndGetOffLineCharge     Command = 33037
	CmdSetAndGetLanguage          Command = 33039
	CmdSetAndGetTemperatureUnit   Command = 33042
)

// IsRequest reports whether c is sent from the client to the station.
func (c Command) IsRequest() bool {
	return c&requestBit != 0
}

// Response returns the response code paired with request c.
func (c Command) Response() Command {
	return c &^ requestBit
}

// Request returns the request code paired with response c.
func (c Command) Request() Command {
	return c | requestBit
}

func (c Command) String() string {
	if entry, ok := registry[c]; ok {
		return entry.name
	}
	return fmt.Sprintf("Command(%d)", uint16(c))
}
