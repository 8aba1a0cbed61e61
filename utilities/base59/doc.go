// Package base59 packs arbitrary bytes into text drawn from a 59-character
// alphabet that needs no escaping inside a PICO-8 long string.
//
// The input is treated as one long bit string, read from the least significant
// bit of each byte to the most significant, bytes in order. It's cut into
// groups of 47 bits, and each group is written as 8 base-59 digits, least
// significant digit first. Since 59^8 is a little over 2^47, every group fits
// in exactly 8 digits and the mapping is fixed-width:
//
//	bits:    |<----- 47 ----->|<----- 47 ----->|<-- rest, zero-extended -->|
//	digits:  d0 d1 d2 ... d7   d0 d1 d2 ... d7   d0 d1 ...
//
// This gets 5.875 bits per character, versus 6 for base64, but base64's
// alphabet contains characters that would need escaping on the host side.
//
// The runtime-side reader is not part of this package; the alphabet and the
// grouping rules are therefore a bit-exact contract with code we don't control.
// [Unpack] exists to check that contract from Go.
package base59
