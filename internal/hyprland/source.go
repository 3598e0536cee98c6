// Package hyprland fetches the compositor's bind report by running an
// external command, normally "hyprctl binds".
package hyprland

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// DefaultCommand is the command line that prints the bind report.
const DefaultCommand = "hyprctl binds"

// ErrEmptyCommand is returned when a command line has no program.
var ErrEmptyCommand = errors.New("hyprland: empty command")

// Source runs a command and returns its standard output.
type Source struct {
	Program string   // executable name or path
	Args    []string // arguments passed to Program
}

// NewSource splits a shell-style command line into a Source.
func NewSource(command string) (*Source, error) {
	words, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("hyprland: parse command %q: %w", command, err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	return &Source{Program: words[0], Args: words[1:]}, nil
}

// String returns the command line the Source runs.
func (s *Source) String() string {
	return strings.Join(append([]string{s.Program}, s.Args...), " ")
}

// Fetch runs the command and returns its output as text. Invalid UTF-8
// sequences are replaced so the result is always a valid string.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, s.Program, s.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s not found: %w", s.Program, err)
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = s.String()
		}
		return "", fmt.Errorf("%s: %w", errMsg, err)
	}
	return strings.ToValidUTF8(stdout.String(), "�"), nil
}
