package bptree

// Builder appends opening and closing bits one at a time, in the order a
// depth-first parse discovers them, and freezes them into a Sequence.
// Mirrors the append-then-freeze lifecycle every build-time structure in
// this repository shares (kind.Registry, usage.Builder, text.Builder).
type Builder struct {
	words []uint64
	n     int

	blocks []blockAgg

	curExcess int64
	blockMin  int64
	blockMax  int64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of bits appended so far.
func (b *Builder) Len() int { return b.n }

func (b *Builder) appendBit(open bool) Node {
	pos := b.n
	firstOfBlock := pos%blockSize == 0

	wordIdx := pos / 64
	for wordIdx >= len(b.words) {
		b.words = append(b.words, 0)
	}
	if open {
		b.words[wordIdx] |= 1 << (uint(pos) % 64)
		b.curExcess++
	} else {
		b.curExcess--
	}

	if firstOfBlock {
		b.blockMin, b.blockMax = b.curExcess, b.curExcess
	} else {
		if b.curExcess < b.blockMin {
			b.blockMin = b.curExcess
		}
		if b.curExcess > b.blockMax {
			b.blockMax = b.curExcess
		}
	}

	b.n++
	if b.n%blockSize == 0 {
		b.flushBlock()
	}
	return Node(pos)
}

func (b *Builder) flushBlock() {
	b.blocks = append(b.blocks, blockAgg{min: b.blockMin, max: b.blockMax, end: b.curExcess})
}

// Open appends an opening bit and returns its position.
func (b *Builder) Open() Node { return b.appendBit(true) }

// Close appends a closing bit and returns its position.
func (b *Builder) Close() Node { return b.appendBit(false) }

// Build finalizes any partial trailing block and returns the frozen
// Sequence. The Builder must not be reused afterward.
func (b *Builder) Build() *Sequence {
	if b.n%blockSize != 0 {
		b.flushBlock()
	}
	return &Sequence{words: b.words, n: b.n, blocks: b.blocks}
}
