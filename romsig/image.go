package romsig

const (
	OffsetSignatureLo = 0
	OffsetSignatureHi = 1
	OffsetChecksum    = 2
	OffsetPayload     = 3

	HeaderLength = OffsetPayload
)

// Image holds the bytes as loaded plus the working copy that gets patched.
// The original is never written to.
type Image struct {
	original []byte
	working  []byte
}

func NewImage(data []byte) (*Image, error) {
	if len(data) < HeaderLength {
		return nil, ErrorImageTooShort
	}

	orig := make([]byte, len(data))
	copy(orig, data)
	work := make([]byte, len(data))
	copy(work, data)

	return &Image{
		original: orig,
		working:  work,
	}, nil
}

func (m *Image) Len() int {
	return len(m.original)
}

func (m *Image) StoredSignature() (lo byte, hi byte) {
	return m.original[OffsetSignatureLo], m.original[OffsetSignatureHi]
}

func (m *Image) StoredChecksum() byte {
	return m.original[OffsetChecksum]
}

/* Regions of the working copy the engines run over */
func (m *Image) checksumRange() []byte {
	return m.working[OffsetPayload:]
}

func (m *Image) signatureRange() []byte {
	return m.working[OffsetChecksum:]
}

func (m *Image) setChecksum(c byte) {
	m.working[OffsetChecksum] = c
}

func (m *Image) setSignature(lo byte, hi byte) {
	m.working[OffsetSignatureLo] = lo
	m.working[OffsetSignatureHi] = hi
}

// Original returns a copy of the bytes as loaded.
func (m *Image) Original() []byte {
	out := make([]byte, len(m.original))
	copy(out, m.original)
	return out
}

// Working returns the patched buffer. Callers must not modify it.
func (m *Image) Working() []byte {
	return m.working
}

// ChangedMask marks every byte that differs between the original and the
// working copy.
func (m *Image) ChangedMask() []bool {
	mark := make([]bool, len(m.working))
	for i := range m.working {
		mark[i] = m.working[i] != m.original[i]
	}
	return mark
}
