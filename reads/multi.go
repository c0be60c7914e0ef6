// SPDX-License-Identifier: MIT

package reads

import (
	"errors"
	"io"
)

// FileChain reads several files back to back, opening each one only when
// the previous one is exhausted.
type FileChain struct {
	files []string
	opts  []Option
	cur   *FastxSource
	next  int
}

// OpenChain returns a FileChain over files. Nothing is opened until the
// first call to Next.
func OpenChain(files []string, opts ...Option) *FileChain {
	return &FileChain{files: files, opts: opts}
}

// Next implements Source.
func (c *FileChain) Next() (Read, error) {
	for {
		if c.cur == nil {
			if c.next >= len(c.files) {
				return Read{}, io.EOF
			}
			src, err := Open(c.files[c.next], c.opts...)
			if err != nil {
				return Read{}, err
			}
			c.cur = src
			c.next++
		}
		r, err := c.cur.Next()
		if errors.Is(err, io.EOF) {
			c.cur.Close()
			c.cur = nil
			continue
		}
		return r, err
	}
}

// File returns the file currently being read, or "" between files.
func (c *FileChain) File() string {
	if c.cur == nil {
		return ""
	}
	return c.cur.file
}

// Close releases the open file, if any.
func (c *FileChain) Close() error {
	if c.cur == nil {
		return nil
	}
	err := c.cur.Close()
	c.cur = nil
	return err
}
