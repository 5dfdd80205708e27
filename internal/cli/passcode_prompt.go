package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PasscodePrompt asks for a passcode without echoing it.
type PasscodePrompt func(label string) (string, error)

func TerminalPasscodePrompt(stdin *os.File, out io.Writer) PasscodePrompt {
	return func(label string) (string, error) {
		fmt.Fprint(out, label)
		value, err := readSecretNoEcho(stdin)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read passcode: %w", err)
		}
		return value, nil
	}
}

func readSecretLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
