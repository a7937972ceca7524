// Package quest loads .qst quest descriptors: small line-oriented files
// naming a quest and the ordered list of levels it spans. A bare level
// path is accepted as an implicit single-level quest.
package quest

import (
	"bufio"
	"fmt"
	"io/fs"
	"log"
	"strings"
)

// Quest is an ordered sequence of levels with some metadata.
type Quest struct {
	File        string
	Name        string
	Author      string
	Version     string
	Description string
	Levels      []string
}

// LevelCount returns the number of levels in the quest.
func (q *Quest) LevelCount() int { return len(q.Levels) }

// Load reads a quest from a .qst file, or wraps a .lev/.tmx path into a
// single-level quest.
func Load(fsys fs.FS, path string) (*Quest, error) {
	q := &Quest{File: path}

	switch {
	case hasExtension(path, ".qst"):
		f, err := fsys.Open(path)
		if err != nil {
			return nil, fmt.Errorf("load quest %s: %w", path, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		line := 0
		for scanner.Scan() {
			line++
			if err := q.parseStatement(scanner.Text(), line); err != nil {
				return nil, err
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read quest %s: %w", path, err)
		}

	case hasExtension(path, ".lev") || hasExtension(path, ".tmx"):
		// implicitly create a quest with a single level
		q.Name = path
		q.Levels = []string{path}

	default:
		return nil, fmt.Errorf("can't load quest file %q", path)
	}

	return q, nil
}

// parseStatement handles one "key value" line. Unknown keys are skipped so
// newer quest files keep loading on older engines.
func (q *Quest) parseStatement(raw string, line int) error {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "//") || strings.HasPrefix(text, "#") {
		return nil
	}

	key, rest, _ := strings.Cut(text, " ")
	value, err := unquote(strings.TrimSpace(rest))
	if err != nil {
		return fmt.Errorf("%s:%d: %w", q.File, line, err)
	}

	switch key {
	case "name":
		q.Name = value
	case "author":
		q.Author = value
	case "version":
		q.Version = value
	case "description":
		q.Description = value
	case "level":
		if value == "" {
			return fmt.Errorf("%s:%d: level statement without a path", q.File, line)
		}
		q.Levels = append(q.Levels, value)
	default:
		log.Printf("quest %s:%d: skipping unknown statement %q", q.File, line, key)
	}
	return nil
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	if len(s) < 2 || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("unterminated string %s", s)
	}
	return s[1 : len(s)-1], nil
}

func hasExtension(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), ext)
}
