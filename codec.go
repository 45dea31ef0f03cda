package rtu

import "fmt"

const (
	fnReadHRegs = 3

	// A single function 3 read is capped at 125 registers by the
	// Modbus spec.
	MaxHRegs = 125
)

// Codec builds read-holding-registers request frames for one slave and
// decodes the matching response frames. It performs no I/O; a
// transport such as Controller moves the bytes.
type Codec struct {
	devAddr byte
}

func NewCodec(devAddr byte) *Codec {
	return &Codec{devAddr: devAddr}
}

func (c *Codec) DevAddr() byte {
	return c.devAddr
}

// RequestHoldingRegisters returns the 8-byte request frame reading
// registers first through last inclusive: device address, function
// code 3, start and count big-endian, checksum little-endian.
func (c *Codec) RequestHoldingRegisters(first, last uint16) []byte {
	if last < first {
		panic(fmt.Sprintf("reversed range: %d, %d", first, last))
	}
	count := last - first + 1
	if count > MaxHRegs {
		panic(fmt.Sprintf("count too many: %d", count))
	}

	tx := make([]byte, 8)
	tx[0] = c.devAddr
	tx[1] = fnReadHRegs
	tx[2] = byte(first >> 8)
	tx[3] = byte(first)
	// tx[4] always 0, count is at most 125
	tx[5] = byte(count)
	SetChecksum(tx)
	return tx
}

// FetchHoldingRegisters validates rx and returns the register values
// it carries, in wire order. Checks run in a fixed order and the first
// failure wins: checksum, device address, exception flag, function
// code. An exception frame with a bad checksum is a CrcErr, not a
// ModbusErr.
func (c *Codec) FetchHoldingRegisters(rx []byte) ([]uint16, error) {
	if len(rx) < 5 {
		return nil, ErrShortFrame
	}
	want := Checksum(rx[:len(rx)-2])
	got := uint16(rx[len(rx)-2]) | uint16(rx[len(rx)-1])<<8
	if want != got {
		return nil, CrcErr{Want: want, Got: got}
	}
	if rx[0] != c.devAddr {
		return nil, DevAddrErr{Want: c.devAddr, Got: rx[0]}
	}
	if rx[1] == fnReadHRegs|0x80 {
		return nil, ModbusErr(rx[2])
	}
	if rx[1] != fnReadHRegs {
		return nil, FuncCodeErr{Want: fnReadHRegs, Got: rx[1]}
	}

	n := int(rx[2])
	if n > len(rx)-5 {
		// never read the checksum as register data
		n = len(rx) - 5
	}
	regs := make([]uint16, 0, n/2)
	for i := 3; i+1 < 3+n; i += 2 {
		regs = append(regs, uint16(rx[i])<<8|uint16(rx[i+1]))
	}
	return regs, nil
}

// Complete reports whether rx already forms a whole response frame,
// either a normal read reply or an exception. The controller's read
// loop uses it to stop early; FetchHoldingRegisters has the final say.
func (c *Codec) Complete(rx []byte) bool {
	if len(rx) == 5 && checksum(rx) &&
		rx[0] == c.devAddr && rx[1] == fnReadHRegs|0x80 {
		return true
	}
	return len(rx) >= 7 && checksum(rx) &&
		rx[0] == c.devAddr &&
		rx[1] == fnReadHRegs &&
		len(rx) == int(rx[2])+5
}
