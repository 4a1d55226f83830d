package ipc

import (
	"bufio"
	"fmt"
	"net"
	"strings"
)

// Send connects to the control endpoint at the given path, sends one command
// and returns the daemon's single line answer.
func Send(path string, cmd Command) (string, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return "", fmt.Errorf("cannot connect to daemon at %q: %w", path, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	if _, err := fmt.Fprintln(conn, cmd); err != nil {
		return "", fmt.Errorf("cannot send command %v: %w", cmd, err)
	}

	response, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && response == "" {
		return "", fmt.Errorf("cannot read answer for command %v: %w", cmd, err)
	}

	return strings.TrimSpace(response), nil
}
