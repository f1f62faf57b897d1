package romsig

import "github.com/sigurn/crc16"

const (
	Polynomial   = 0x1021 /* X^16 + X^12 + X^5 + 1 */
	InitialState = 0xFFFF
)

/* CCITT-FALSE is exactly the bit serial register the ROM uses: MSB first,
 * no reflection and no final xor. */
var signatureTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

type SignatureStep struct {
	Index    int
	Value    byte
	Register uint16
}

func Signature(data []byte) uint16 {
	return crc16.Checksum(data, signatureTable)
}

// SignatureUpdate clocks one byte through the register, eight shifts.
func SignatureUpdate(reg uint16, b byte) uint16 {
	reg ^= uint16(b) << 8
	for i := 0; i < 8; i++ {
		if reg&0x8000 != 0 {
			reg = reg<<1 ^ Polynomial
		} else {
			reg <<= 1
		}
	}
	return reg
}

func SignatureSteps(data []byte) []SignatureStep {
	steps := make([]SignatureStep, 0, len(data))

	reg := uint16(InitialState)
	for i, m := range data {
		reg = SignatureUpdate(reg, m)
		steps = append(steps, SignatureStep{
			Index:    i + 1,
			Value:    m,
			Register: reg,
		})
	}
	return steps
}

func SplitSignature(sig uint16) (lo byte, hi byte) {
	return byte(sig), byte(sig >> 8)
}
