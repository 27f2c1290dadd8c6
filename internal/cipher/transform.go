package cipher

import (
	"errors"
	"fmt"
	"io"
)

// Apply rotates every letter in data in place.
func Apply(data []byte, shift Shift) {
	for i, b := range data {
		data[i] = shift.Rotate(b)
	}
}

// Transform streams reader to writer, rotating letters by shift.
// Each chunk is transformed in place and fully written before the next read.
// It stops at io.EOF and returns the number of bytes written.
// Read and write failures are returned wrapped and are not user errors.
func Transform(reader io.Reader, writer io.Writer, shift Shift) (int64, error) {
	bufPtr, _ := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(bufPtr)

	buf := *bufPtr

	var written int64

	for {
		n, readErr := reader.Read(buf)
		if n > 0 {
			Apply(buf[:n], shift)

			if _, err := writer.Write(buf[:n]); err != nil {
				return written, fmt.Errorf("writing output: %w", err)
			}

			written += int64(n)
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return written, fmt.Errorf("reading input: %w", readErr)
		}
	}

	return written, nil
}

// Encrypt streams reader to writer, shifting letters forward by shift.
func Encrypt(reader io.Reader, writer io.Writer, shift Shift) (int64, error) {
	return Transform(reader, writer, shift)
}

// Decrypt streams reader to writer, undoing a previous Encrypt with the same shift.
func Decrypt(reader io.Reader, writer io.Writer, shift Shift) (int64, error) {
	return Transform(reader, writer, shift.Inverse())
}
