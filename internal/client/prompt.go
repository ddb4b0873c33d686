// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// terminalPrompter reads secrets with echo disabled when in is a terminal
// and falls back to reading plain lines otherwise (pipes, tests).
type terminalPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

func newTerminalPrompter(in *os.File, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *terminalPrompter) ReadSecret(prompt string) ([]byte, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out) // newline after hidden input
		if err != nil {
			return nil, fmt.Errorf("read secret: %w", err)
		}
		return secret, nil
	}

	line, err := p.reader.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, fmt.Errorf("read secret: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
