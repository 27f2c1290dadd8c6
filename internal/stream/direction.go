package stream

// Direction tells Open whether a path is read from or written to.
// Only Input and Output exist; the zero value is Input.
type Direction struct {
	output bool
}

//nolint:gochecknoglobals
var (
	// Input selects a readable stream.
	Input = Direction{}
	// Output selects a writable stream.
	Output = Direction{output: true}
)

// String returns "input" or "output".
func (d Direction) String() string {
	if d.output {
		return "output"
	}

	return "input"
}
