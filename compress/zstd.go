package compress

// ZstdCompressor provides Zstandard compression for the golden-fixture corpus.
//
// Favor this compressor when minimizing the checked-in size of the fixture
// corpus matters more than compression speed:
//   - Archival of large fixture sets
//   - Fixtures checked into version control where repo size matters
//   - Fixtures transferred over bandwidth-limited links
//
// Performance characteristics:
//   - Compression: ~5-20 ns/byte (depending on compression level)
//   - Decompression: ~2-5 ns/byte
//   - Memory usage: Moderate (the default build reuses pooled encoders/decoders)
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
