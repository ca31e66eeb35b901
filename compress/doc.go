// Package compress provides compression and decompression codecs for the
// golden-fixture corpus this module's tests and benchmarks replay against.
//
// Packed VRT sample buffers are the unit stored as test fixtures.
// This package offers multiple compression algorithms so the corpus can
// trade storage size against replay speed, independent of the wire codec
// itself (which stays allocation-free and I/O-free per the codec's own
// rules).
//
// # Overview
//
// The compress package supports multiple algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (AlgorithmNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The fixture is already small or incompressible (random sample data)
//   - CPU during test runs matters more than checked-in fixture size
//
// **Zstandard (Zstd)** (AlgorithmZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent, best ratio of the supported algorithms
//   - Speed: Moderate
//   - Memory: A few MB for compression, a fraction of that for decompression
//
// Use when:
//   - Minimizing the checked-in size of the fixture corpus is the priority
//
// **S2 (Snappy Alternative)** (AlgorithmS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good
//   - Speed: Fast in both directions
//   - Memory: A few hundred KB for compression, tens of KB for decompression
//
// Use when:
//   - Fixtures are regenerated or replayed often and decode latency matters
//
// **LZ4** (AlgorithmLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate
//   - Speed: Very fast decompression, moderate compression
//   - Memory: Tens of KB for compression, a few KB for decompression
//
// Use when:
//   - Test suites decompress the same fixtures repeatedly and decode speed
//     dominates
//
// # Memory Management
//
// All codec implementations avoid unnecessary allocation where practical:
//   - Zstd, S2 and LZ4 return newly allocated slices owned by the caller
//   - NoOp returns its input slice itself, sharing its memory
//   - Input slices are never modified
//
// # Thread Safety
//
// All codec implementations are safe to share across goroutines.
//
// # Error Handling
//
// Compression errors are rare but can occur on allocation failure.
// Decompression errors are more common and typically mean the stored
// fixture is corrupted or was compressed with a different algorithm than
// the one requested. Zstd wraps its decompression errors with context; S2
// and LZ4 return the underlying library's error as is.
package compress
