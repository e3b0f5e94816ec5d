// SPDX-License-Identifier: MPL-2.0

package footer

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	// headerRe matches a banner line such as
	// "========   addCols   ====================================".
	// The trailing run of '=' is optional; some banners are truncated.
	headerRe = regexp.MustCompile(`^=+\s+(\w+)(?:\s+=+)?$`)

	// summaryRe matches a summary line such as
	// "addCols - Sum columns in a text file.".
	// The name field is everything before the first " - " separator.
	summaryRe = regexp.MustCompile(`^(\w.*?) - (.*)$`)
)

type (
	// Block is one parsed manifest unit: a header-only block when the
	// program's summary line did not match the expected shape, or a
	// header-plus-summary block otherwise.
	Block struct {
		// Header is the program name captured from the banner line.
		Header string
		// SummaryName is the raw name field from the summary line.
		// Empty for header-only blocks. It may carry trailing text such
		// as a version suffix ("bedGraphToBigWig v 4").
		SummaryName string
		// Description is the summary text after the " - " separator.
		// Empty for header-only blocks.
		Description string
	}

	// Parser yields Blocks from a manifest stream. It is a finite,
	// non-restartable sequence: create one per input.
	Parser struct {
		scanner *bufio.Scanner
		pending *Block
		done    bool
	}
)

// HasSummary reports whether the block carries a summary line.
func (b Block) HasSummary() bool {
	return b.SummaryName != ""
}

// SummaryProgram returns the program name implied by the summary line: its
// first whitespace-delimited token. This strips trailing version suffixes
// like "bedGraphToBigWig v 4". Returns "" for header-only blocks.
func (b Block) SummaryProgram() string {
	fields := strings.Fields(b.SummaryName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// NewParser creates a Parser reading manifest lines from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next returns the next block and true, or the zero Block and false when the
// input is exhausted.
//
// A header line flushes any pending header-only block and starts a new one.
// A summary line completes the pending block; a summary with no pending
// header is dropped. Lines matching neither shape are skipped. A trailing
// unflushed header is emitted at end of input.
func (p *Parser) Next() (Block, bool) {
	if p.done {
		return Block{}, false
	}

	for p.scanner.Scan() {
		line := p.scanner.Text()

		if m := headerRe.FindStringSubmatch(line); m != nil {
			flushed := p.pending
			p.pending = &Block{Header: m[1]}
			if flushed != nil {
				return *flushed, true
			}
			continue
		}

		m := summaryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if p.pending == nil {
			// Summary with no preceding header; drop it.
			continue
		}

		block := *p.pending
		block.SummaryName = m[1]
		block.Description = m[2]
		p.pending = nil
		return block, true
	}

	p.done = true
	if p.pending != nil {
		block := *p.pending
		p.pending = nil
		return block, true
	}
	return Block{}, false
}

// Err returns the first error encountered while reading the input, if any.
// Check it after Next returns false.
func (p *Parser) Err() error {
	return p.scanner.Err()
}

// Parse reads the whole manifest and returns its blocks in order.
func Parse(r io.Reader) ([]Block, error) {
	p := NewParser(r)

	var blocks []Block
	for {
		block, ok := p.Next()
		if !ok {
			break
		}
		blocks = append(blocks, block)
	}
	return blocks, p.Err()
}
