package codec

// HuffmanCoder is the adaptive (FGK/Vitter-style) entropy coder. It
// consumes an arbitrary byte buffer and produces a bit-packed buffer
// prefixed with a 1-byte outer settings frame, falling back to a verbatim
// copy of the input when Huffman coding would have grown it.
type HuffmanCoder struct {
	tree   *huffTree
	writer *BitWriter
}

// NewHuffmanCoder constructs a coder with a fresh tree and output buffer.
func NewHuffmanCoder() *HuffmanCoder {
	return &HuffmanCoder{tree: newHuffTree(), writer: NewBitWriter()}
}

// Encode runs the full encode loop over input and returns the finished
// outer frame: [outer settings byte][payload]. See spec §4.4, §4.7.
func (c *HuffmanCoder) Encode(input []byte) []byte {
	for _, b := range input {
		c.encodeOne(b)
	}
	return c.finish(input)
}

func (c *HuffmanCoder) encodeOne(b byte) {
	if leaf := c.tree.leafFor(b); leaf != nil {
		c.writer.WriteBitsReversed(pathToRoot(leaf))
		c.tree.update(leaf)
		return
	}

	c.writer.WriteBitsReversed(pathToRoot(c.tree.nyt))
	oldNYT := c.tree.insert(b)
	c.writer.WriteByteMSB(b)
	c.tree.update(oldNYT)
}

// finish performs the Huffman-vs-passthrough arbitration (spec §4.7) and
// returns the outer frame.
func (c *HuffmanCoder) finish(input []byte) []byte {
	encSize := c.writer.Size()
	if encSize > len(input) {
		out := make([]byte, 0, len(input)+1)
		out = append(out, 0x00)
		out = append(out, input...)
		return out
	}

	padding := uint8((8 - c.writer.BitIndex()) % 8)
	outer := byte(0x08 | padding)
	out := make([]byte, 0, len(c.writer.Bytes())+1)
	out = append(out, outer)
	out = append(out, c.writer.Bytes()...)
	return out
}
