package codec

// numSymbols is the number of distinct byte values the adaptive Huffman
// tree can represent (N in the sibling-property literature).
const numSymbols = 256

// rootNYTIndex is the index assigned to the tree's initial, sole node: a
// NYT leaf at the root. Every split introduces indices below this one.
const rootNYTIndex = int32(2*numSymbols + 1)

const (
	// huffGrowChunk is how many bytes the bit writer's buffer grows by
	// whenever less than huffSlackBytes of headroom remains.
	huffGrowChunk = 512
	// huffSlackBytes is the growth trigger threshold.
	huffSlackBytes = 20
)

// maxHeaderDim is the largest byte count (K_w or K_h) the RLE settings
// byte can express in its 3-bit fields.
const maxHeaderDim = 8
