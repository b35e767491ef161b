package relay

import (
	"bufio"
	"bytes"
	"io"
)

const maxFrameBytes = 1 << 20

// Reader decodes a live update stream on the consumer side. Comment-only
// frames such as keep-alives are skipped; only data payloads are returned.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxFrameBytes)
	return &Reader{sc: sc}
}

// Next returns the data of the next frame that carries any. Multiple data
// lines in one frame are joined with a newline. It returns io.EOF when the
// stream ends.
func (r *Reader) Next() ([]byte, error) {
	var data [][]byte
	for r.sc.Scan() {
		line := r.sc.Bytes()
		switch {
		case len(line) == 0:
			if len(data) > 0 {
				return bytes.Join(data, []byte("\n")), nil
			}
		case line[0] == ':':
		case bytes.HasPrefix(line, []byte("data:")):
			value := bytes.TrimPrefix(line[len("data:"):], []byte(" "))
			data = append(data, append([]byte(nil), value...))
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		return bytes.Join(data, []byte("\n")), nil
	}
	return nil, io.EOF
}
