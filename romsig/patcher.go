package romsig

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	/* Collect per byte snapshots of both folds in the result */
	Trace bool

	LogFunc LogFunc
}

type Field struct {
	Name string
	Old  uint16
	New  uint16
}

func (f Field) NeedsUpdate() bool {
	return f.Old != f.New
}

type Result struct {
	Image *Image

	Checksum     Field
	SignatureLo  Field
	SignatureHi  Field
	Signature    uint16
	ChecksumFold ChecksumState

	ChecksumTrace  []ChecksumStep
	SignatureTrace []SignatureStep
}

func (r *Result) SignatureNeedsUpdate() bool {
	return r.SignatureLo.NeedsUpdate() || r.SignatureHi.NeedsUpdate()
}

// Changed reports whether any of the three header bytes differ.
func (r *Result) Changed() bool {
	return r.Checksum.NeedsUpdate() || r.SignatureNeedsUpdate()
}

func (c *Config) log(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}

// Patch computes the checksum and the signature of data and fixes up the
// header of a private working copy. The checksum is patched first: the
// signature covers the checksum byte and must see its new value.
func Patch(data []byte, config Config) (*Result, error) {
	img, err := NewImage(data)
	if err != nil {
		return nil, err
	}

	storedLo, storedHi := img.StoredSignature()
	storedSum := img.StoredChecksum()
	config.log(1, "Image is %d bytes, stored signature %02X%02X, stored checksum %02X",
		img.Len(), storedHi, storedLo, storedSum)

	r := &Result{Image: img}

	payload := img.checksumRange()
	r.ChecksumFold = ChecksumFold(payload)
	sum := Checksum(payload)
	if config.Trace {
		r.ChecksumTrace = ChecksumSteps(payload)
	}
	r.Checksum = Field{Name: "checksum", Old: uint16(storedSum), New: uint16(sum)}

	if sum != storedSum {
		config.log(2, "Patching checksum %02X -> %02X", storedSum, sum)
		img.setChecksum(sum)
	}

	covered := img.signatureRange()
	r.Signature = Signature(covered)
	if config.Trace {
		r.SignatureTrace = SignatureSteps(covered)
	}
	lo, hi := SplitSignature(r.Signature)
	r.SignatureLo = Field{Name: "signature lo", Old: uint16(storedLo), New: uint16(lo)}
	r.SignatureHi = Field{Name: "signature hi", Old: uint16(storedHi), New: uint16(hi)}

	if r.SignatureNeedsUpdate() {
		config.log(2, "Patching signature %02X%02X -> %04X", storedHi, storedLo, r.Signature)
		img.setSignature(lo, hi)
	}

	return r, nil
}
