package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/idelchi/gocaesar/internal/failure"
)

// StdioPath is the reserved path naming standard input or standard output.
const StdioPath = "-"

// Opener resolves paths into streams.
type Opener struct {
	// Fs is the filesystem for named paths.
	Fs afero.Fs

	// Stdin is returned for the input path "-".
	Stdin io.Reader

	// Stdout is returned for the output path "-".
	Stdout io.Writer
}

// NewOpener returns an Opener on the OS filesystem and the given standard streams.
func NewOpener(stdin io.Reader, stdout io.Writer) *Opener {
	return &Opener{
		Fs:     afero.NewOsFs(),
		Stdin:  stdin,
		Stdout: stdout,
	}
}

// Stream is an open input or output. It is closed at most once.
type Stream struct {
	// Path is the path the stream was opened from.
	Path string

	// Direction is Input or Output.
	Direction Direction

	reader io.Reader
	writer io.Writer
	closer io.Closer
	closed bool
}

// Open returns the stream for path in the given direction.
// Standard streams are returned for "-" without touching the filesystem.
// All filesystem failures are returned as failure.IOError.
func (o *Opener) Open(path string, direction Direction) (*Stream, error) {
	stream := &Stream{Path: path, Direction: direction}

	if path == StdioPath {
		if direction == Output {
			stream.writer = o.Stdout
		} else {
			stream.reader = o.Stdin
		}

		return stream, nil
	}

	file, err := o.openFile(path, direction)
	if err != nil {
		return nil, failure.Wrap(err, failure.IOError, "problems opening provided %s file %q", direction, path)
	}

	stream.closer = file

	if direction == Output {
		stream.writer = file
	} else {
		stream.reader = file
	}

	return stream, nil
}

func (o *Opener) openFile(path string, direction Direction) (afero.File, error) {
	flag := os.O_RDONLY

	if direction == Output {
		// Truncation waits until the lock is held.
		flag = os.O_WRONLY | os.O_CREATE
	}

	const perm = 0o644

	file, err := o.Fs.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	if err := prepare(file, direction); err != nil {
		file.Close() //nolint:errcheck,gosec // already failing

		return nil, err
	}

	return file, nil
}

func prepare(file afero.File, direction Direction) error {
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	if info.IsDir() {
		return ErrIsDirectory
	}

	if fd, ok := file.(interface{ Fd() uintptr }); ok {
		if err := lock(fd.Fd(), direction == Output); err != nil {
			return err
		}
	}

	if direction == Output {
		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("truncating: %w", err)
		}
	}

	return nil
}

// Read reads from an input stream.
func (s *Stream) Read(p []byte) (int, error) {
	if s.reader == nil {
		return 0, fmt.Errorf("%s %q: %w", s.Direction, s.Path, ErrNotReadable)
	}

	return s.reader.Read(p)
}

// Write writes to an output stream.
func (s *Stream) Write(p []byte) (int, error) {
	if s.writer == nil {
		return 0, fmt.Errorf("%s %q: %w", s.Direction, s.Path, ErrNotWritable)
	}

	return s.writer.Write(p)
}

// Close releases the underlying file. Standard streams are left open.
// Calls after the first return nil.
func (s *Stream) Close() error {
	if s.closed || s.closer == nil {
		s.closed = true

		return nil
	}

	s.closed = true

	if err := s.closer.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("closing %s %q: %w", s.Direction, s.Path, err)
	}

	return nil
}

// IsStdio reports whether the stream is a standard stream.
func (s *Stream) IsStdio() bool {
	return s.Path == StdioPath
}
