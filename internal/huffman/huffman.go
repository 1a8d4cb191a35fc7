// Package huffman implements prefix-code decoding for the WMA
// bitstream. Decoders are built at init time from the code/length
// arrays in the tables package; symbol lookup walks a binary tree one
// bit at a time.
package huffman

import (
	"errors"

	"github.com/llehouerou/go-wma/internal/bits"
)

// ErrInvalidTable indicates that the code/length arrays do not form a
// prefix code.
var ErrInvalidTable = errors.New("huffman: invalid code table")

// node is one binary tree node. Leaves carry a symbol index; interior
// nodes carry child offsets. A zero child means the branch is absent.
type node struct {
	sym   int32 // symbol index, -1 for interior nodes
	child [2]int32
}

// Decoder decodes symbols of one prefix code.
type Decoder struct {
	nodes []node
}

// New builds a Decoder from parallel code and length arrays.
// codes[i] holds the lens[i]-bit codeword of symbol i, MSB-first.
func New(codes []uint32, lens []uint8) (*Decoder, error) {
	if len(codes) != len(lens) {
		return nil, ErrInvalidTable
	}

	d := &Decoder{nodes: make([]node, 1, 2*len(codes))}
	d.nodes[0].sym = -1

	for i, code := range codes {
		n := uint(lens[i])
		if n == 0 || n > 32 {
			return nil, ErrInvalidTable
		}

		cur := int32(0)
		for b := int(n) - 1; b >= 0; b-- {
			bit := (code >> uint(b)) & 1

			if d.nodes[cur].sym >= 0 {
				// A shorter code already terminates here
				return nil, ErrInvalidTable
			}

			next := d.nodes[cur].child[bit]
			if next == 0 {
				d.nodes = append(d.nodes, node{sym: -1})
				next = int32(len(d.nodes) - 1)
				d.nodes[cur].child[bit] = next
			}
			cur = next
		}

		if d.nodes[cur].sym >= 0 || d.nodes[cur].child[0] != 0 || d.nodes[cur].child[1] != 0 {
			return nil, ErrInvalidTable
		}
		d.nodes[cur].sym = int32(i)
	}

	return d, nil
}

// Symbol reads bits from r until a codeword completes and returns the
// symbol index, or -1 if the bits do not match any codeword or the
// reader ran out of data.
func (d *Decoder) Symbol(r *bits.Reader) int {
	cur := int32(0)
	for d.nodes[cur].sym < 0 {
		if r.Err() {
			return -1
		}
		cur = d.nodes[cur].child[r.GetBit()]
		if cur == 0 {
			return -1
		}
	}
	return int(d.nodes[cur].sym)
}
