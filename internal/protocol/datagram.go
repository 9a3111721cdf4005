package protocol

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/muurk/emcodec/internal/devicetime"
	"github.com/muurk/emcodec/internal/logging"
	"go.uber.org/zap"
)

// HeaderSize is the size of the command code that precedes every payload.
const HeaderSize = 2

// Message is a datagram that can be packed into and unpacked from its
// fixed payload layout. Implementations only describe their payload; the
// command code framing and length guard live in Codec.
type Message interface {
	// Command returns the command code the datagram is sent under.
	Command() Command
	// MinPayloadLength is the shortest payload Decode accepts.
	MinPayloadLength() int

	pack(c *Codec) ([]byte, error)
	unpack(c *Codec, payload []byte) error
}

// Codec encodes and decodes datagrams. The zero value is usable and
// converts device timestamps with the default zones.
type Codec struct {
	// Time converts device timestamps. Nil selects the caller's local
	// zone and the default device zone.
	Time *devicetime.Converter
	// Now supplies the instant sent when a SET carries no time. Nil
	// selects time.Now.
	Now func() time.Time
}

var defaultConverter = sync.OnceValues(func() (*devicetime.Converter, error) {
	return devicetime.New(nil, nil)
})

var defaultCodec = &Codec{}

// DefaultCodec returns the codec used by the package-level functions.
func DefaultCodec() *Codec {
	return defaultCodec
}

// NewCodec returns a codec converting timestamps with conv.
func NewCodec(conv *devicetime.Converter) *Codec {
	return &Codec{Time: conv}
}

func (c *Codec) converter() *devicetime.Converter {
	if c.Time != nil {
		return c.Time
	}
	conv, err := defaultConverter()
	if err != nil {
		// The zone database is embedded, so this only fires if it is
		// missing the default device zone.
		logging.Warn("Falling back to UTC device timezone", zap.Error(err))
		return &devicetime.Converter{Local: time.Local, Device: time.UTC}
	}
	return conv
}

func (c *Codec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Encode returns the command code followed by the payload of m. Nothing
// is returned if any field fails validation.
func (c *Codec) Encode(m Message) ([]byte, error) {
	payload, err := m.pack(c)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, HeaderSize+len(payload))
	binary.BigEndian.PutUint16(frame[0:HeaderSize], uint16(m.Command()))
	copy(frame[HeaderSize:], payload)

	logging.LogDatagram("encode", uint16(m.Command()), m.Command().String(), frame)
	return frame, nil
}

// Decode fills m from payload, which must not include the command code.
// m is left untouched when the payload is too short or malformed.
func (c *Codec) Decode(m Message, payload []byte) error {
	if len(payload) < m.MinPayloadLength() {
		return tooShort(m.Command(), len(payload), m.MinPayloadLength())
	}
	if err := m.unpack(c, payload); err != nil {
		return err
	}

	logging.LogDatagram("decode", uint16(m.Command()), m.Command().String(), payload)
	return nil
}

// DecodeFrame reads the command code at the start of frame and decodes the
// rest into a new datagram of the registered type.
func (c *Codec) DecodeFrame(frame []byte) (Message, error) {
	if len(frame) < HeaderSize {
		logging.LogRawBytes("Rejected frame shorter than header", frame)
		return nil, tooShort(0, len(frame), HeaderSize)
	}

	cmd := Command(binary.BigEndian.Uint16(frame[0:HeaderSize]))
	m, err := New(cmd)
	if err != nil {
		logging.Warn("Unknown command in frame",
			zap.Uint16("command", uint16(cmd)),
			zap.Int("length", len(frame)),
		)
		logging.LogRawBytes("Rejected frame", frame)
		return nil, err
	}

	if err := c.Decode(m, frame[HeaderSize:]); err != nil {
		logging.LogRawBytes("Rejected frame", frame)
		return nil, err
	}
	return m, nil
}

// Encode encodes m with the default codec.
func Encode(m Message) ([]byte, error) {
	return defaultCodec.Encode(m)
}

// Decode decodes payload into m with the default codec.
func Decode(m Message, payload []byte) error {
	return defaultCodec.Decode(m, payload)
}

// DecodeFrame decodes a framed datagram with the default codec.
func DecodeFrame(frame []byte) (Message, error) {
	return defaultCodec.DecodeFrame(frame)
}

func checkAction(cmd Command, a Action) error {
	if !a.Valid() {
		return invalidAction(cmd, a)
	}
	return nil
}
