// Package huffman implements a lossless byte-stream compressor based on
// classic (greedy) Huffman trees.  The tree itself is transmitted ahead of
// the data as a pre-order bit header, so the decoder needs no side channel.
//
// Stream layout, most significant bit of every field first:
//
//     32 bits   HeaderMagic
//     variable  tree header: internal node = 0, leaf = 1 + 9-bit symbol
//     variable  one code per input byte, terminated by the PseudoEOF code
//
// The final partial byte is zero-padded; the padding is never interpreted
// because decoding stops at the PseudoEOF leaf.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
