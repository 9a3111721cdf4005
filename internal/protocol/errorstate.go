package protocol

import "fmt"

// EvseError is one bit of the station's 32-bit error state word. The value
// is the bit position, 0 through 31.
type EvseError uint8

// Known error bits. Positions without a name are still reported by
// ParseErrorState.
const (
	EvseErrorRelayStuck          EvseError = 0
	EvseErrorRelayOpen           EvseError = 1
	EvseErrorLeakage             EvseError = 2
	EvseErrorOverTemperature     EvseError = 3
	EvseErrorUnderVoltage        EvseError = 4
	EvseErrorOverVoltage         EvseError = 5
	EvseErrorOverCurrent         EvseError = 6
	EvseErrorGroundFault         EvseError = 7
	EvseErrorCPFault             EvseError = 8
	EvseErrorPPFault             EvseError = 9
	EvseErrorLockFault           EvseError = 10
	EvseErrorMeterFault          EvseError = 11
	EvseErrorEmergencyStop       EvseError = 12
	EvseErrorTemperatureSensor   EvseError = 13
	EvseErrorCommunication       EvseError = 14
	EvseErrorPhaseLoss           EvseError = 15
	EvseErrorDiodeFault          EvseError = 16
	EvseErrorLeakageSelfTestFail EvseError = 17
)

var evseErrorNames = map[EvseError]string{
	EvseErrorRelayStuck:          "relay_stuck",
	EvseErrorRelayOpen:           "relay_open",
	EvseErrorLeakage:             "leakage",
	EvseErrorOverTemperature:     "over_temperature",
	EvseErrorUnderVoltage:        "under_voltage",
	EvseErrorOverVoltage:         "over_voltage",
	EvseErrorOverCurrent:         "over_current",
	EvseErrorGroundFault:         "ground_fault",
	EvseErrorCPFault:             "cp_fault",
	EvseErrorPPFault:             "pp_fault",
	EvseErrorLockFault:           "lock_fault",
	EvseErrorMeterFault:          "meter_fault",
	EvseErrorEmergencyStop:       "emergency_stop",
	EvseErrorTemperatureSensor:   "temperature_sensor",
	EvseErrorCommunication:       "communication",
	EvseErrorPhaseLoss:           "phase_loss",
	EvseErrorDiodeFault:          "diode_fault",
	EvseErrorLeakageSelfTestFail: "leakage_self_test_fail",
}

func (e EvseError) String() string {
	if name, ok := evseErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("error_bit(%d)", uint8(e))
}

// ParseErrorState splits an error state word into the set bits, lowest
// position first. A zero word yields an empty slice.
func ParseErrorState(state uint32) []EvseError {
	errs := []EvseError{}
	for i := 0; i < 32; i++ {
		if state&(1<<i) != 0 {
			errs = append(errs, EvseError(i))
		}
	}
	return errs
}

// ErrorStateMask is the inverse of ParseErrorState.
func ErrorStateMask(errs []EvseError) uint32 {
	var state uint32
	for _, e := range errs {
		if e < 32 {
			state |= 1 << e
		}
	}
	return state
}
