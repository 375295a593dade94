package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// errInterrupt is returned when Ctrl+C is read in raw mode.
var errInterrupt = errors.New("interrupted")

// GetInput reads a line of input from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// A lone ESC followed by something else is the escape key
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// GetInputWithArrows reads input with support for arrow keys.
// Arrow keys return immediately without needing Enter; a bare Enter returns
// "". For text input, user types and presses Enter as normal. When stdin is
// not a terminal it falls back to plain line reading.
func GetInputWithArrows() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetInput()
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("setting terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return "", err
	}

	if arrowKey := tryReadArrowKey(b1); arrowKey != "" {
		fmt.Print("\r\n")
		return arrowKey, nil
	}

	var input []rune
	b := b1
	for {
		switch {
		case b == 3:
			fmt.Print("\r\n")
			return "", errInterrupt
		case b == '\n' || b == '\r':
			fmt.Print("\r\n")
			return string(input), nil
		case b == 127 || b == 8:
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
		case b == 0x1b:
			// Arrow keys pressed during text entry are discarded
			tryReadArrowKey(b)
		case b >= 32 && b < 127:
			input = append(input, rune(b))
			fmt.Print(string(b))
		}

		b, err = readByte()
		if err != nil {
			return string(input), err
		}
	}
}

// ReadIntent reads one command from the terminal and maps it to an intent.
// End of input and Ctrl+C become ActionQuit.
func ReadIntent() Intent {
	line, err := GetInputWithArrows()
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, errInterrupt) {
			log.Printf("Cannot read stdin: %v", err)
		}
		return Intent{Action: ActionQuit}
	}
	return ParseLine(DeviceTerminal, line)
}
