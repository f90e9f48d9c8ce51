// Package playlist lists the records to replay, either a single file or
// every .sgf file of a folder in natural order.
package playlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const (
	DefaultDir = "./sgf"
	Extension  = ".sgf"
)

var (
	ErrNotFound = errors.New("path not found")
	ErrEmpty    = errors.New("no sgf files found")
)

type Playlist struct {
	files []string
	index int
}

// New builds a playlist from path. An empty path reads DefaultDir.
func New(fs afero.Fs, path string) (*Playlist, error) {
	if path == "" {
		path = DefaultDir
	}

	info, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var files []string
	if info.IsDir() {
		files, err = scan(fs, path)
		if err != nil {
			return nil, err
		}
	} else {
		files = []string{path}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmpty, path)
	}

	return &Playlist{files: files}, nil
}

func scan(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.SliceStable(files, func(i, j int) bool {
		return Less(stem(files[i]), stem(files[j]))
	})
	return files, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (p *Playlist) Current() string {
	return p.files[p.index]
}

func (p *Playlist) Index() int {
	return p.index
}

func (p *Playlist) Len() int {
	return len(p.files)
}

func (p *Playlist) Files() []string {
	return p.files
}

func (p *Playlist) HasNext() bool {
	return p.index+1 < len(p.files)
}

func (p *Playlist) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.index++
	return true
}

func (p *Playlist) PeekNext() (string, bool) {
	if !p.HasNext() {
		return "", false
	}
	return p.files[p.index+1], true
}

func (p *Playlist) Reset() {
	p.index = 0
}

func (p *Playlist) Single() bool {
	return len(p.files) == 1
}

// Select makes entry i current. It reports false and changes nothing when
// i is out of range.
func (p *Playlist) Select(i int) bool {
	if i < 0 || i >= len(p.files) {
		return false
	}
	p.index = i
	return true
}
