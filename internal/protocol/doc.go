// Package protocol implements the datagram codec for EM smart EV charging
// stations.
//
// Every exchange with a station is a datagram identified by a command code.
// Requests sent to the station have the high bit of the code set (0x8000);
// the response to a request uses the same code without that bit.
//
// # Frame Layout
//
//   - Command code: 2 bytes (big-endian)
//   - Payload: fixed layout per command (see each datagram type)
//
// All multi-byte integers are big-endian. Fixed-width string fields are NUL
// padded on write; on read the text ends at the first NUL and trailing
// whitespace is removed.
//
// # Datagram Types
//
// The SetAndGet datagrams share one shape: an action byte (GET or SET)
// followed by the setting. The response to each has the same layout as the
// request.
//
//   - SetAndGetSystemTime: station clock as a device timestamp
//   - SetAndGetOutputElectricity: maximum charging current (6-32 A)
//   - SetAndGetNickName: 32 byte station name (16 bytes on old firmware)
//   - SetAndGetOffLineCharge: charging allowed without app connection
//   - SetAndGetLanguage: display language
//   - SetAndGetTemperatureUnit: Celsius or Fahrenheit
//   - ChargeStart / ChargeStartResponse: start charging now or at a time
//
// # Usage Example - Encoding
//
//	msg := &protocol.SetAndGetOutputElectricity{
//	    Action: protocol.ActionSet,
//	    Amps:   16,
//	}
//	frame, err := protocol.Encode(msg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// hand frame to the transport
//
// # Usage Example - Decoding
//
//	msg, err := protocol.DecodeFrame(frame)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch m := msg.(type) {
//	case *protocol.SetAndGetOutputElectricityResponse:
//	    fmt.Printf("max current: %d A\n", m.Amps)
//	case *protocol.ChargeStartResponse:
//	    if err := m.Err(); err != nil {
//	        fmt.Println(err)
//	    }
//	}
//
// # Device Timestamps
//
// The station clock is not UTC. A Codec carries a devicetime.Converter that
// describes the caller's zone and the station's zone; the package-level
// Encode and Decode use the caller's local zone and Asia/Shanghai.
//
//	conv, _ := devicetime.NewFromNames("Europe/Amsterdam", "Asia/Shanghai")
//	codec := protocol.NewCodec(conv)
//	frame, err := codec.Encode(&protocol.SetAndGetSystemTime{Action: protocol.ActionSet})
//
// # Error Handling
//
// The package distinguishes between:
//   - Validation errors: Encode was given a missing or out-of-range field
//   - Length errors: Decode was given a payload shorter than the layout
//   - Unknown commands: DecodeFrame found an unregistered command code
//
// All are *CodecError values wrapping a sentinel (ErrMissingField,
// ErrOutOfRange, ErrInvalidAction, ErrPayloadTooShort, ErrUnknownCommand).
// Decoding never fails on an unknown enumeration value; an unknown language
// decodes to LanguageUnknown.
//
// # Thread Safety
//
// Codecs hold no mutable state and are safe for concurrent use. A single
// datagram value must not be encoded or decoded from two goroutines at once.
package protocol
