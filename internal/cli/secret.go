package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptSecret reads a value with terminal echo disabled. Returns false
// when there is no TTY or the user entered nothing.
func promptSecret(label string) (string, bool) {
	if !hasTTY() {
		return "", false
	}
	fmt.Fprint(os.Stderr, label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", false
	}
	secret := strings.TrimSpace(string(data))
	return secret, secret != ""
}
