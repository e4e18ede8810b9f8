package codec

// groupWriter packs RLE payload bytes into 8-byte-classified groups: a
// leading classifier byte (bit i set when slot i holds a counter-fragment
// rather than a literal value) followed by up to 8 payload bytes. A run's
// counter fragments and trailing value all pass through the same slot
// stream, so a fragment byte and its value can straddle a group boundary.
type groupWriter struct {
	out  []byte
	g    byte
	slot int
}

func newGroupWriter(capacityHint int) *groupWriter {
	return &groupWriter{out: make([]byte, 0, capacityHint)}
}

func (gw *groupWriter) pushLiteral(v byte) {
	gw.out = append(gw.out, v)
	gw.slot++
	if gw.slot == 8 {
		gw.flush()
	}
}

func (gw *groupWriter) pushCounterByte(v byte) {
	gw.g |= 1 << uint(gw.slot)
	gw.out = append(gw.out, v)
	gw.slot++
	if gw.slot == 8 {
		gw.flush()
	}
}

// flush prepends the classifier byte for the slots accumulated so far by
// splicing it in just before them, then resets group state.
func (gw *groupWriter) flush() {
	start := len(gw.out) - gw.slot
	gw.out = append(gw.out, 0)
	copy(gw.out[start+1:], gw.out[start:])
	gw.out[start] = gw.g
	gw.g = 0
	gw.slot = 0
}

// writeRun encodes one run of count copies of value using the base-256
// variable-length counter scheme (spec §3): n=1 is a bare value, n=2 is a
// literal zero fragment followed by the value, n>=3 is the big-endian
// digits of n-2 followed by the value.
func (gw *groupWriter) writeRun(count uint64, value byte) {
	switch {
	case count == 1:
		gw.pushLiteral(value)
	case count == 2:
		gw.pushCounterByte(0x00)
		gw.pushLiteral(value)
	default:
		for _, d := range bigEndianDigits(count - 2) {
			gw.pushCounterByte(d)
		}
		gw.pushLiteral(value)
	}
}

// finalizeGroup pads a partial trailing group up to a full 8 payload bytes
// with literal zero values, per the worked example in spec §8. A group that
// already divided evenly is left alone: no empty trailing group is ever
// appended.
func (gw *groupWriter) finalizeGroup() {
	for gw.slot != 0 {
		gw.pushLiteral(0x00)
	}
}

func (gw *groupWriter) finish() []byte { return gw.out }

// bigEndianDigits returns the minimal big-endian base-256 digits of m. The
// caller only ever passes m >= 1.
func bigEndianDigits(m uint64) []byte {
	var tmp []byte
	for m > 0 {
		tmp = append(tmp, byte(m))
		m >>= 8
	}
	out := make([]byte, len(tmp))
	for i, b := range tmp {
		out[len(tmp)-1-i] = b
	}
	return out
}

// groupReader is the inverse of groupWriter: it exposes a flat stream of
// (isCounterFragment, byte) slots reconstructed from the group-byte-prefixed
// payload.
type groupReader struct {
	buf    []byte
	pos    int
	g      byte
	slot   int
	loaded bool
}

func newGroupReader(buf []byte) *groupReader { return &groupReader{buf: buf} }

// next returns the next payload byte and whether it is a counter fragment.
// ok is false once the stream is exhausted.
func (gr *groupReader) next() (b byte, isFragment bool, ok bool) {
	if !gr.loaded || gr.slot == 8 {
		if gr.pos >= len(gr.buf) {
			return 0, false, false
		}
		gr.g = gr.buf[gr.pos]
		gr.pos++
		gr.slot = 0
		gr.loaded = true
	}
	if gr.pos >= len(gr.buf) {
		return 0, false, false
	}
	b = gr.buf[gr.pos]
	isFragment = gr.g&(1<<uint(gr.slot)) != 0
	gr.pos++
	gr.slot++
	return b, isFragment, true
}
