package protocol

import (
	"encoding/binary"
	"fmt"
	"slices"
	"time"
)

const (
	chargeIDSize = 16

	chargeStartPayloadSize         = 47
	chargeStartResponseMinSize     = 20
	chargeStartResponsePayloadSize = 21
)

// SuccessReservationResults are the reservation results that count as a
// successful reservation. A reservation time in the past is accepted
// because the station simply starts charging straight away.
var SuccessReservationResults = []ReservationResult{
	ReservationImmediateStart,
	ReservationOK,
	ReservationInPast,
}

// ChargeStartError is returned when a station refuses to start charging.
type ChargeStartError struct {
	ErrorReason       ChargeStartErrorReason
	ReservationResult ReservationResult
}

func (e *ChargeStartError) Error() string {
	msg := fmt.Sprintf("charge start failed with error: %s", e.ErrorReason)
	if e.ReservationResult != ReservationImmediateStart {
		msg += fmt.Sprintf("; reservation result: %s", e.ReservationResult)
	}
	return msg
}

// ClassifyChargeStart turns the codes from a charge start response into
// an error. The start succeeded only when the station reported no error
// reason and the reservation result is one of SuccessReservationResults;
// anything else yields a *ChargeStartError carrying both codes.
func ClassifyChargeStart(reason ChargeStartErrorReason, result ReservationResult) error {
	if reason == ChargeStartErrorNone && slices.Contains(SuccessReservationResults, result) {
		return nil
	}
	return &ChargeStartError{ErrorReason: reason, ReservationResult: result}
}

// ChargeStart asks the station to start charging, now or at a reserved
// time.
//
// Payload:
//
//	[0]     line id (1-based)
//	[1-16]  user id, NUL padded
//	[17-32] charge id, NUL padded
//	[33-36] reservation device timestamp (0 = start now)
//	[37]    start type
//	[38]    charge type
//	[39-40] max duration in minutes (0 = unlimited)
//	[41-42] max energy in 0.01 kWh (0 = unlimited)
//	[43-44] param3
//	[45]    max amps (0 = station setting)
//	[46]    single phase flag
type ChargeStart struct {
	LineID             uint8
	UserID             string
	ChargeID           string
	ReservationTime    time.Time
	StartType          uint8
	ChargeType         uint8
	MaxDurationMinutes uint16
	MaxEnergy          uint16
	Param3             uint16
	MaxAmps            uint8
	SinglePhase        bool
}

func (*ChargeStart) Command() Command      { return CmdChargeStart }
func (*ChargeStart) MinPayloadLength() int { return chargeStartPayloadSize }

func (m *ChargeStart) pack(c *Codec) ([]byte, error) {
	cmd := CmdChargeStart
	if m.LineID == 0 {
		return nil, missingField(cmd, "line_id")
	}
	if m.UserID == "" {
		return nil, missingField(cmd, "user_id")
	}
	if m.ChargeID == "" {
		return nil, missingField(cmd, "charge_id")
	}
	if m.MaxAmps != 0 {
		if err := checkAmps(cmd, "max_amps", m.MaxAmps); err != nil {
			return nil, err
		}
	}

	payload := make([]byte, chargeStartPayloadSize)
	payload[0] = m.LineID
	if err := putString(payload[1:17], m.UserID); err != nil {
		return nil, outOfRange(cmd, "user_id", "%v", err)
	}
	if err := putString(payload[17:33], m.ChargeID); err != nil {
		return nil, outOfRange(cmd, "charge_id", "%v", err)
	}

	if !m.ReservationTime.IsZero() {
		ts, err := c.converter().ToDevice(m.ReservationTime)
		if err != nil {
			return nil, outOfRange(cmd, "reservation_time", "%v", err)
		}
		binary.BigEndian.PutUint32(payload[33:37], ts)
	}

	payload[37] = m.StartType
	payload[38] = m.ChargeType
	binary.BigEndian.PutUint16(payload[39:41], m.MaxDurationMinutes)
	binary.BigEndian.PutUint16(payload[41:43], m.MaxEnergy)
	binary.BigEndian.PutUint16(payload[43:45], m.Param3)
	payload[45] = m.MaxAmps
	if m.SinglePhase {
		payload[46] = 1
	}
	return payload, nil
}

func (m *ChargeStart) unpack(c *Codec, payload []byte) error {
	var reservation time.Time
	if ts := binary.BigEndian.Uint32(payload[33:37]); ts != 0 {
		reservation = c.converter().FromDevice(ts)
	}

	*m = ChargeStart{
		LineID:             payload[0],
		UserID:             ReadString(payload, 1, 17),
		ChargeID:           ReadString(payload, 17, 33),
		ReservationTime:    reservation,
		StartType:          payload[37],
		ChargeType:         payload[38],
		MaxDurationMinutes: binary.BigEndian.Uint16(payload[39:41]),
		MaxEnergy:          binary.BigEndian.Uint16(payload[41:43]),
		Param3:             binary.BigEndian.Uint16(payload[43:45]),
		MaxAmps:            payload[45],
		SinglePhase:        payload[46] != 0,
	}
	return nil
}

// ChargeStartResponse is the station's answer to ChargeStart.
//
// Payload:
//
//	[0]     line id
//	[1-16]  charge id, NUL padded
//	[17]    reservation result
//	[18]    start result
//	[19]    error reason
//	[20]    max amps (absent on older firmware)
type ChargeStartResponse struct {
	LineID            uint8
	ChargeID          string
	ReservationResult ReservationResult
	StartResult       uint8
	ErrorReason       ChargeStartErrorReason
	MaxAmps           uint8
}

func (*ChargeStartResponse) Command() Command      { return CmdChargeStartResponse }
func (*ChargeStartResponse) MinPayloadLength() int { return chargeStartResponseMinSize }

// Err classifies the response; see ClassifyChargeStart.
func (m *ChargeStartResponse) Err() error {
	return ClassifyChargeStart(m.ErrorReason, m.ReservationResult)
}

func (m *ChargeStartResponse) pack(*Codec) ([]byte, error) {
	payload := make([]byte, chargeStartResponsePayloadSize)
	payload[0] = m.LineID
	if err := putString(payload[1:1+chargeIDSize], m.ChargeID); err != nil {
		return nil, outOfRange(CmdChargeStartResponse, "charge_id", "%v", err)
	}
	payload[17] = byte(m.ReservationResult)
	payload[18] = m.StartResult
	payload[19] = byte(m.ErrorReason)
	payload[20] = m.MaxAmps
	return payload, nil
}

func (m *ChargeStartResponse) unpack(_ *Codec, payload []byte) error {
	var maxAmps uint8
	if len(payload) > 20 {
		maxAmps = payload[20]
	}
	*m = ChargeStartResponse{
		LineID:            payload[0],
		ChargeID:          ReadString(payload, 1, 1+chargeIDSize),
		ReservationResult: ReservationResult(payload[17]),
		StartResult:       payload[18],
		ErrorReason:       ChargeStartErrorReason(payload[19]),
		MaxAmps:           maxAmps,
	}
	return nil
}
