// Package compression provides the raw DEFLATE stage of the p8z pipeline.
//
// The target runtime ships its own inflater, which only understands bare
// DEFLATE blocks. The zlib format wraps those blocks in a 2-byte header and a
// 4-byte Adler-32 trailer, neither of which is any use to us, so we compress
// with zlib at the highest level it offers and cut both off:
//
//	78 DA | deflate blocks ... | A1 A2 A3 A4
//	      ^------ kept ------^
//
// Every byte we save here is roughly 1.36 characters saved in the final
// literal, since the packer turns 47 bits into 8 characters.
//
// DEFLATE can't shrink every input. Incompressible data grows by a few bytes
// per stored block, so the output buffer is allocated with headroom and grown
// if the compressor ever runs out of it.
package compression
