package romsig

/* The ROM self test adds the image together with ADC, so the checksum is
 * built the same way: an 8-bit accumulator with the carry fed into the next
 * addition, walking the payload from the last byte to the first. */

type ChecksumState struct {
	Acc   byte
	Carry byte
}

type ChecksumStep struct {
	Index int
	Value byte
	ChecksumState
}

func AddWithCarry(st ChecksumState, b byte) ChecksumState {
	result := uint16(st.Acc) + uint16(b) + uint16(st.Carry)
	return ChecksumState{
		Acc:   byte(result),
		Carry: byte(result >> 8),
	}
}

func ChecksumFold(payload []byte) ChecksumState {
	var st ChecksumState
	for i := len(payload) - 1; i >= 0; i-- {
		st = AddWithCarry(st, payload[i])
	}
	return st
}

// Checksum returns the byte to store at OffsetChecksum for the given payload.
func Checksum(payload []byte) byte {
	return byte(256 - int(ChecksumFold(payload).Acc))
}

func ChecksumSteps(payload []byte) []ChecksumStep {
	steps := make([]ChecksumStep, 0, len(payload))

	var st ChecksumState
	for i := len(payload) - 1; i >= 0; i-- {
		st = AddWithCarry(st, payload[i])
		steps = append(steps, ChecksumStep{
			Index:         len(steps) + 1,
			Value:         payload[i],
			ChecksumState: st,
		})
	}
	return steps
}
