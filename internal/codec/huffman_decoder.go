package codec

import "errors"

// ErrMalformedBitstream is returned when the decoder descends into an
// absent child of an internal node — the stream cannot be a valid encode of
// any input under this tree.
var ErrMalformedBitstream = errors.New("imgcodec: malformed Huffman bitstream")

// ErrTruncatedLiteral is returned when fewer than 8 bits remain while
// reading an NYT's 8-bit literal symbol.
var ErrTruncatedLiteral = errors.New("imgcodec: truncated literal at NYT")

// HuffmanDecoder mirrors HuffmanCoder: same tree, same update procedure,
// walking a BitReader instead of writing a BitWriter.
type HuffmanDecoder struct {
	tree   *huffTree
	reader *BitReader
	// padding is the number of unused low bits in the final payload byte,
	// taken from the outer settings byte.
	padding int
}

// NewHuffmanDecoder constructs a decoder over the Huffman payload (the
// bytes following the outer settings byte), using padding to drive the
// idiosyncratic end-of-stream rule (spec §4.8).
func NewHuffmanDecoder(payload []byte, padding int) *HuffmanDecoder {
	return &HuffmanDecoder{tree: newHuffTree(), reader: NewBitReader(payload), padding: padding}
}

// Decode runs the full decode loop and returns the reconstructed bytes.
func (d *HuffmanDecoder) Decode() ([]byte, error) {
	var out []byte
	cur := d.tree.root
	for {
		if d.isEnd() {
			return out, nil
		}

		if !cur.isLeaf {
			bit, ok := d.reader.ReadBit()
			if !ok {
				return out, nil
			}
			next := cur.left
			if bit == 1 {
				next = cur.right
			}
			if next == nil {
				return nil, ErrMalformedBitstream
			}
			cur = next
			continue
		}

		if cur.isNYT {
			b, ok := d.reader.ReadByteMSB()
			if !ok {
				return nil, ErrTruncatedLiteral
			}
			oldNYT := d.tree.insert(b)
			d.tree.update(oldNYT)
			out = append(out, b)
			cur = d.tree.root
			continue
		}

		out = append(out, cur.value)
		d.tree.update(cur)
		cur = d.tree.root
	}
}

// isEnd implements the spec's explicit, idiosyncratic stop rule: the
// remaining meaningful bits are exhausted exactly when the reader's bit
// index plus the outer frame's padding equals 9 and only the final byte of
// the stream remains.
func (d *HuffmanDecoder) isEnd() bool {
	return d.reader.BitIndex()+d.padding == 9 && d.reader.Len() == d.reader.ByteIndex()+1
}
