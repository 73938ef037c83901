package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"vfsh/pkg/logging"
)

// MaxLineLength is the longest command line a script or terminal accepts.
const MaxLineLength = 1 << 20

// NewLineScanner returns a line scanner that accepts lines up to
// MaxLineLength bytes.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	return scanner
}

// Printer receives what a script run produces.
type Printer interface {
	// Echo is called with each script line before it runs.
	Echo(line string)
	// Print is called with the result of each script line.
	Print(res Result)
}

// RunScript executes lines from r. Blank lines and lines starting with '#'
// are skipped without echo. Execution stops right after exit.
func (s *Session) RunScript(r io.Reader, p Printer) error {
	scanner := NewLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p.Echo(line)
		res := s.Execute(line)
		p.Print(res)

		if res.Exit {
			logging.Debug("script stopped by exit")
			return nil
		}
	}
	return scanner.Err()
}

// OpenScript opens the script at path. A missing file is reported as
// ErrScriptNotFound.
func OpenScript(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return nil, err
	}
	logging.Info("running script", logging.String("path", path))
	return f, nil
}
