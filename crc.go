package rtu

import "github.com/sigurn/crc16"

var crcTable = crc16.MakeTable(crc16.CRC16_MODBUS)

// Checksum returns the CRC-16/MODBUS value of b: reflected polynomial
// 0xA001, initial value 0xFFFF.
func Checksum(b []byte) uint16 {
	return crc16.Checksum(b, crcTable)
}

// SetChecksum computes the checksum of b[:len(b)-2] and stores it in
// the last two bytes, low byte first.
func SetChecksum(b []byte) {
	cs := Checksum(b[:len(b)-2])
	b[len(b)-2] = byte(cs)
	b[len(b)-1] = byte(cs >> 8)
}

func checksum(b []byte) bool {
	cs := Checksum(b[:len(b)-2])
	return b[len(b)-2] == byte(cs) && b[len(b)-1] == byte(cs>>8)
}
