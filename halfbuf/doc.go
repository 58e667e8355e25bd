// Package halfbuf stores float buffers as binary16 blocks with optional
// LZ4 or ZSTD compression.
//
// A stream is a sequence of self-describing blocks. Each block carries a
// 12-byte header naming its compression and sizes; a block that does not
// shrink below 90% of its raw size is stored uncompressed. Streams can be
// concatenated.
//
//	data, err := halfbuf.EncodeFloat32(samples, halfbuf.ZSTD)
//	...
//	values, err := halfbuf.DecodeFloat32(data)
//
// For large inputs use Writer and Reader, which work one block at a time.
package halfbuf
