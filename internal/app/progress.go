// SPDX-License-Identifier: MIT

package app

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate pb.ProgressBarTemplate = `{{string . "file"}} {{counters . }} reads {{speed . "%s reads/s" "..."}} {{etime . }}`

// progress is a read counter that renders only when enabled.
type progress struct {
	bar *pb.ProgressBar
}

func newProgress(enabled bool, w io.Writer) *progress {
	if !enabled {
		return &progress{}
	}
	bar := progressTemplate.New(0)
	bar.SetWriter(w)
	bar.Start()
	return &progress{bar: bar}
}

func (p *progress) file(name string) {
	if p.bar != nil {
		p.bar.Set("file", name)
	}
}

func (p *progress) increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
