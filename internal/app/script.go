package app

import (
	"bufio"
	"fmt"
	"os"
)

// ReadScript reads the presentation script, one presentation line per text
// line. Line terminators, including trailing carriage returns, are stripped
// by the scanner.
func ReadScript(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return lines, nil
}
