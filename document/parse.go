package document

import (
	"fmt"
	"io"

	"github.com/tendrilcode/sjson/bptree"
	"github.com/tendrilcode/sjson/kind"
	"github.com/tendrilcode/sjson/text"
	"github.com/tendrilcode/sjson/token"
	"github.com/tendrilcode/sjson/usage"
	"github.com/tendrilcode/sjson/values"
)

// builder bundles the in-progress, build-once state every component
// contributes to during a single depth-first parse pass.
type builder struct {
	dec    *token.Decoder
	kinds  *kind.Registry
	tree   *bptree.Builder
	usageB usage.Builder
	texts  *text.Builder
	nums   *values.NumbersBuilder
	bools  *values.BooleansBuilder
}

// Parse drives a token.Decoder over r's byte stream, building with cfg's
// knobs, and returns the frozen Document it describes, or a *ParseError. Parse accepts a bare value at
// the top level, not only objects and arrays.
func Parse(r io.Reader, cfg Config) (*Document, error) {
	b := &builder{
		dec:   token.NewDecoder(r),
		kinds: kind.NewRegistry(),
		tree:  bptree.NewBuilder(),
		texts: text.NewBuilder(cfg.TextBlockSize, cfg.TextCacheBlocks),
		nums:  values.NewNumbersBuilder(),
		bools: values.NewBooleansBuilder(),
	}
	switch cfg.UsageBuilder {
	case UsageBuilderBitpacked:
		b.usageB = usage.NewBitpackedBuilder()
	default:
		b.usageB = usage.NewRoaringBuilder()
	}

	if err := b.parseValue(); err != nil {
		return nil, wrapParseErr(err)
	}
	if k, err := b.dec.PeekKind(); err != nil {
		return nil, wrapParseErr(err)
	} else if k != token.KindEOF {
		return nil, wrapParseErr(&token.SyntaxError{Err: fmt.Errorf("trailing data after top-level value")})
	}

	b.kinds.Freeze()
	tree := b.tree.Build()
	texts := b.texts.Build()           // finalize text store first...
	usageIdx := b.usageB.Build(tree.Len()) // ...then materialize the usage index
	nums := b.nums.Build()
	bools := b.bools.Build()

	return &Document{
		kinds:    b.kinds,
		tree:     tree,
		usageIdx: usageIdx,
		texts:    texts,
		nums:     nums,
		bools:    bools,
	}, nil
}

func (b *builder) parseValue() error {
	k, err := b.dec.PeekKind()
	if err != nil {
		return err
	}
	switch k {
	case token.KindObjectBegin:
		return b.parseObject()
	case token.KindArrayBegin:
		return b.parseArray()
	case token.KindString:
		return b.parseString()
	case token.KindNumber:
		return b.parseNumber()
	case token.KindBool:
		return b.parseBool()
	case token.KindNull:
		return b.parseNull()
	default:
		return &token.SyntaxError{Err: fmt.Errorf("unexpected token kind %d", k)}
	}
}

func (b *builder) parseObject() error {
	if err := b.dec.BeginObject(); err != nil {
		return err
	}
	open := b.tree.Open()
	b.usageB.Append(kind.ObjectOpen, uint32(open))

	for {
		has, err := b.dec.HasNext()
		if err != nil {
			return err
		}
		if !has {
			break
		}
		name, err := b.dec.NextName()
		if err != nil {
			return err
		}
		fOpen, fClose := b.kinds.OpenField(name)

		fieldOpen := b.tree.Open()
		b.usageB.Append(fOpen, uint32(fieldOpen))

		if err := b.parseValue(); err != nil {
			return err
		}

		fieldClose := b.tree.Close()
		b.usageB.Append(fClose, uint32(fieldClose))
	}

	if err := b.dec.EndObject(); err != nil {
		return err
	}
	closePos := b.tree.Close()
	b.usageB.Append(kind.ObjectClose, uint32(closePos))
	return nil
}

func (b *builder) parseArray() error {
	if err := b.dec.BeginArray(); err != nil {
		return err
	}
	open := b.tree.Open()
	b.usageB.Append(kind.ArrayOpen, uint32(open))

	for {
		has, err := b.dec.HasNext()
		if err != nil {
			return err
		}
		if !has {
			break
		}
		if err := b.parseValue(); err != nil {
			return err
		}
	}

	if err := b.dec.EndArray(); err != nil {
		return err
	}
	closePos := b.tree.Close()
	b.usageB.Append(kind.ArrayClose, uint32(closePos))
	return nil
}

func (b *builder) parseString() error {
	s, err := b.dec.NextString()
	if err != nil {
		return err
	}
	open := b.tree.Open()
	b.usageB.Append(kind.StringOpen, uint32(open))
	b.texts.AddString(s)
	closePos := b.tree.Close()
	b.usageB.Append(kind.StringClose, uint32(closePos))
	return nil
}

func (b *builder) parseNumber() error {
	v, err := b.dec.NextNumber()
	if err != nil {
		return err
	}
	open := b.tree.Open()
	b.usageB.Append(kind.NumberOpen, uint32(open))
	b.nums.Append(v)
	closePos := b.tree.Close()
	b.usageB.Append(kind.NumberClose, uint32(closePos))
	return nil
}

func (b *builder) parseBool() error {
	v, err := b.dec.NextBool()
	if err != nil {
		return err
	}
	open := b.tree.Open()
	b.usageB.Append(kind.BooleanOpen, uint32(open))
	b.bools.Append(v)
	closePos := b.tree.Close()
	b.usageB.Append(kind.BooleanClose, uint32(closePos))
	return nil
}

func (b *builder) parseNull() error {
	if err := b.dec.NextNull(); err != nil {
		return err
	}
	open := b.tree.Open()
	b.usageB.Append(kind.NullOpen, uint32(open))
	closePos := b.tree.Close()
	b.usageB.Append(kind.NullClose, uint32(closePos))
	return nil
}
