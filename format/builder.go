package format

import (
	"github.com/lakeside-rf/vrtcodec/internal/options"
)

// Builder incrementally assembles a PayloadFormat using functional options,
// deferring validation to Build so misconfigured fields surface as a single
// InvalidPayloadFormat error rather than a panic mid-construction.
type Builder struct {
	pf   PayloadFormat
	opts []options.Option[*PayloadFormat]
}

// NewBuilder starts a Builder for the given data item format. Field sizes
// default to zero and must be set with WithFSize/WithDSize before Build.
func NewBuilder(f DataFormat) *Builder {
	return &Builder{pf: PayloadFormat{format: f}}
}

// WithFSize sets the item packing field size in bits.
func (b *Builder) WithFSize(fSize int) *Builder {
	b.opts = append(b.opts, options.NoError(func(p *PayloadFormat) { p.fSize = fSize }))
	return b
}

// WithDSize sets the data item size in bits.
func (b *Builder) WithDSize(dSize int) *Builder {
	b.opts = append(b.opts, options.NoError(func(p *PayloadFormat) { p.dSize = dSize }))
	return b
}

// WithEventTag sets the event tag size in bits.
func (b *Builder) WithEventTag(eSize int) *Builder {
	b.opts = append(b.opts, options.NoError(func(p *PayloadFormat) { p.eSize = eSize }))
	return b
}

// WithChannelTag sets the channel tag size in bits.
func (b *Builder) WithChannelTag(cSize int) *Builder {
	b.opts = append(b.opts, options.NoError(func(p *PayloadFormat) { p.cSize = cSize }))
	return b
}

// WithProcessingEfficient selects processing-efficient (item stride rounded
// to 32 or 64 bits) rather than link-efficient packing.
func (b *Builder) WithProcessingEfficient(proc bool) *Builder {
	b.opts = append(b.opts, options.NoError(func(p *PayloadFormat) { p.proc = proc }))
	return b
}

// WithSign selects two's complement sign extension rather than zero
// extension. Ignored for Double64, which is always signed.
func (b *Builder) WithSign(sign bool) *Builder {
	b.opts = append(b.opts, options.NoError(func(p *PayloadFormat) { p.sign = sign }))
	return b
}

// Build applies every option in call order and validates the result.
func (b *Builder) Build() (PayloadFormat, error) {
	pf := b.pf
	if err := options.Apply(&pf, b.opts...); err != nil {
		return PayloadFormat{}, err
	}

	if err := pf.Validate(); err != nil {
		return PayloadFormat{}, err
	}

	return pf, nil
}
