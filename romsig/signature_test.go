package romsig

import (
	"testing"

	"github.com/snksoft/crc"
)

func serialSignature(data []byte) uint16 {
	reg := uint16(InitialState)
	for _, m := range data {
		reg = SignatureUpdate(reg, m)
	}
	return reg
}

func TestSignatureVectors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0xFFFF},
		{"check", []byte("123456789"), 0x29B1},
		{"header only", []byte{0x00}, 0xE1F0},
		{"scenario", []byte{0xFD, 0x01, 0x02}, 0x7EEC},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Signature(tc.data); got != tc.want {
				t.Errorf("Signature = %04X, want %04X", got, tc.want)
			}
			if got := serialSignature(tc.data); got != tc.want {
				t.Errorf("bit serial = %04X, want %04X", got, tc.want)
			}
		})
	}
}

func TestSignatureMatchesReferenceCRC(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i*31 + i>>3)
	}

	for _, l := range []int{1, 2, 17, 255, 256, 4096} {
		ref := uint16(crc.CalculateCRC(crc.CCITT, data[:l]))
		if got := Signature(data[:l]); got != ref {
			t.Errorf("len %d: Signature = %04X, reference %04X", l, got, ref)
		}
		if got := serialSignature(data[:l]); got != ref {
			t.Errorf("len %d: bit serial = %04X, reference %04X", l, got, ref)
		}
	}
}

func TestSignatureDeterministic(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if Signature(data) != Signature(append([]byte(nil), data...)) {
		t.Error("same input gave different signatures")
	}
}

func TestSignatureSteps(t *testing.T) {
	data := []byte{0xFD, 0x01, 0x02}
	steps := SignatureSteps(data)
	if len(steps) != len(data) {
		t.Fatalf("got %d steps, want %d", len(steps), len(data))
	}

	reg := uint16(InitialState)
	for i, s := range steps {
		reg = SignatureUpdate(reg, data[i])
		if s.Index != i+1 || s.Value != data[i] || s.Register != reg {
			t.Errorf("step %d = %+v, want register %04X", i, s, reg)
		}
	}
	if steps[2].Register != 0x7EEC {
		t.Errorf("final register %04X, want 7EEC", steps[2].Register)
	}
}

func TestSplitSignature(t *testing.T) {
	lo, hi := SplitSignature(0x7EEC)
	if lo != 0xEC || hi != 0x7E {
		t.Errorf("SplitSignature(7EEC) = %02X %02X", lo, hi)
	}
}
