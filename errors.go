package rtu

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when no complete response arrives before
	// the controller's deadline.
	ErrTimeout = errors.New("rx timeout")

	// ErrShortFrame is returned for responses too short to carry the
	// mandatory address, function code, byte count and checksum.
	ErrShortFrame = errors.New("short frame")
)

// ModbusErr is the exception code a slave reports when it cannot
// service a request.
type ModbusErr byte

const (
	UnknownErr      ModbusErr = 0
	IllegalFunc     ModbusErr = 1
	IllegalDataAddr ModbusErr = 2
	IllegalDataVal  ModbusErr = 3
	SlaveDeviceFail ModbusErr = 4
	Acknowledge     ModbusErr = 5
	SlaveDeviceBusy ModbusErr = 6
	MemoryParityErr ModbusErr = 7
)

var modbusErrMsgs = [...]string{
	"Unknown error",
	"Illegal function",
	"Illegal data address",
	"Illegal data value",
	"Slave device failure",
	"Acknowledge",
	"Slave device busy",
	"Memory Parity Error",
}

func (e ModbusErr) Error() string {
	if int(e) < len(modbusErrMsgs) {
		return modbusErrMsgs[e]
	}
	return modbusErrMsgs[UnknownErr]
}

// CrcErr reports a response whose trailing checksum does not match the
// checksum computed over the rest of the frame.
type CrcErr struct {
	Want, Got uint16
}

func (e CrcErr) Error() string {
	return fmt.Sprintf("crc mismatch: %04X<->%04X", e.Want, e.Got)
}

// DevAddrErr reports a response sent by a device other than the one
// the codec is bound to.
type DevAddrErr struct {
	Want, Got byte
}

func (e DevAddrErr) Error() string {
	return fmt.Sprintf("dev addr mismatch: %d<->%d", e.Want, e.Got)
}

// FuncCodeErr reports a response carrying a function code other than
// the requested one.
type FuncCodeErr struct {
	Want, Got byte
}

func (e FuncCodeErr) Error() string {
	return fmt.Sprintf("function code mismatch: %d<->%d", e.Want, e.Got)
}

// BadRxErr holds response bytes that filled the rx buffer without ever
// forming a complete frame.
type BadRxErr []byte

func (e BadRxErr) Error() string {
	return fmt.Sprintf("invalid response: [% X]", []byte(e))
}
