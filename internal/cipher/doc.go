// Package cipher implements a letter-preserving Caesar shift over byte streams.
// Only ASCII letters are rotated, each within its own case; every other byte
// passes through unchanged, so output length always equals input length.
// Streams are processed in fixed 64 KiB chunks and never loaded whole.
package cipher
