// Package ucd builds the codepoint catalog from the Unicode Character
// Database text files UnicodeData.txt and Blocks.txt.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/louisbranch/charmap/internal/charset"
)

const (
	unicodeDataFile = "UnicodeData.txt"
	blocksFile      = "Blocks.txt"

	// NoBlock is the block assigned to codepoints outside every range.
	NoBlock = "No_Block"
)

// Block is one named codepoint range from Blocks.txt.
type Block struct {
	From int
	To   int
	Name string
}

// LoadDir reads UnicodeData.txt and Blocks.txt from dir.
func LoadDir(dir string) ([]*charset.CodepointEntry, error) {
	blocks, err := readFile(filepath.Join(dir, blocksFile), ParseBlocks)
	if err != nil {
		return nil, err
	}
	return readFile(filepath.Join(dir, unicodeDataFile), func(r io.Reader) ([]*charset.CodepointEntry, error) {
		return ParseUnicodeData(r, blocks)
	})
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	file, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	value, err := parse(file)
	if err != nil {
		return zero, fmt.Errorf("parse %s: %w", path, err)
	}
	return value, nil
}

// ParseBlocks parses lines of the form `0000..007F; Basic Latin`. The
// result is sorted by range start.
func ParseBlocks(r io.Reader) ([]Block, error) {
	var blocks []Block
	err := scanFields(r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected 2 fields, got %d", line, len(fields))
		}
		from, to, ok := strings.Cut(fields[0], "..")
		if !ok {
			return fmt.Errorf("line %d: invalid range %q", line, fields[0])
		}
		start, err := parseCodePoint(from)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		end, err := parseCodePoint(to)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		blocks = append(blocks, Block{From: start, To: end, Name: fields[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].From < blocks[j].From })
	return blocks, nil
}

// ParseUnicodeData parses UnicodeData.txt into catalog entries. Range
// markers such as `<CJK Ideograph, First>` are kept as their own rows.
func ParseUnicodeData(r io.Reader, blocks []Block) ([]*charset.CodepointEntry, error) {
	var entries []*charset.CodepointEntry
	err := scanFields(r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected at least 2 fields, got %d", line, len(fields))
		}
		code, err := parseCodePoint(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, &charset.CodepointEntry{
			Code:  code,
			Name:  fields[1],
			Block: BlockOf(blocks, code),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// BlockOf returns the name of the block containing code.
func BlockOf(blocks []Block, code int) string {
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].To >= code })
	if i < len(blocks) && blocks[i].From <= code {
		return blocks[i].Name
	}
	return NoBlock
}

func scanFields(r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fields := strings.Split(text, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCodePoint(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q", raw)
	}
	return int(value), nil
}
