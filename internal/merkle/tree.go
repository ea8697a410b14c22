// Package merkle implements fixed-depth, append-only Merkle trees with authentication paths.
package merkle

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

var (
	// ErrTreeFull is returned when appending beyond 2^depth leaves.
	ErrTreeFull = errors.New("merkle tree is full")
	// ErrIndexOutOfRange is returned for a path request on a missing leaf.
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

// LeafHash domain-separates leaf data from interior nodes.
func LeafHash(data []byte) model.Hash {
	b := make([]byte, 0, len(data)+1)
	b = append(b, leafPrefix)
	b = append(b, data...)
	return model.Hash(chainhash.HashH(b))
}

// NodeHash hashes two children into their parent.
func NodeHash(left, right model.Hash) model.Hash {
	var b [1 + 2*model.HashSize]byte
	b[0] = nodePrefix
	copy(b[1:], left[:])
	copy(b[1+model.HashSize:], right[:])
	return model.Hash(chainhash.HashH(b[:]))
}

// Tree is a Merkle tree of fixed depth whose absent leaves take the empty-leaf value.
// Levels are stored densely, so appends and paths cost O(depth).
type Tree struct {
	depth  int
	levels [][]model.Hash
	empty  []model.Hash
}

// New returns an empty tree of the given depth.
func New(depth int) *Tree {
	if depth <= 0 || depth > 32 {
		panic(fmt.Sprintf("merkle: unsupported depth %d", depth))
	}
	return &Tree{
		depth:  depth,
		levels: make([][]model.Hash, depth+1),
		empty:  emptyHashes(depth),
	}
}

// Build returns a tree holding leaves in order. Leaves are already leaf-hashed.
func Build(depth int, leaves []model.Hash) (*Tree, error) {
	t := New(depth)
	for _, leaf := range leaves {
		if _, err := t.Append(leaf); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Root computes the root of leaves without keeping the tree around.
func Root(depth int, leaves []model.Hash) (model.Hash, error) {
	t, err := Build(depth, leaves)
	if err != nil {
		return model.Hash{}, err
	}
	return t.Root(), nil
}

// Depth returns the tree depth.
func (t *Tree) Depth() int { return t.depth }

// Len returns the number of appended leaves.
func (t *Tree) Len() int { return len(t.levels[0]) }

// Append adds a leaf and returns its index.
func (t *Tree) Append(leaf model.Hash) (uint32, error) {
	if uint64(t.Len()) >= uint64(1)<<t.depth {
		return 0, ErrTreeFull
	}
	index := len(t.levels[0])
	t.levels[0] = append(t.levels[0], leaf)

	pos := index
	for level := 0; level < t.depth; level++ {
		parent := pos >> 1
		left := t.node(level, parent<<1)
		right := t.node(level, parent<<1|1)
		hash := NodeHash(left, right)
		if parent < len(t.levels[level+1]) {
			t.levels[level+1][parent] = hash
		} else {
			t.levels[level+1] = append(t.levels[level+1], hash)
		}
		pos = parent
	}
	return uint32(index), nil
}

// Root returns the current root.
func (t *Tree) Root() model.Hash {
	if t.Len() == 0 {
		return t.empty[t.depth]
	}
	return t.levels[t.depth][0]
}

// NextRoot returns the root the tree would have after appending leaf, without appending it.
func (t *Tree) NextRoot(leaf model.Hash) (model.Hash, error) {
	if uint64(t.Len()) >= uint64(1)<<t.depth {
		return model.Hash{}, ErrTreeFull
	}
	hash := leaf
	pos := t.Len()
	for level := 0; level < t.depth; level++ {
		if pos&1 == 0 {
			hash = NodeHash(hash, t.empty[level])
		} else {
			hash = NodeHash(t.node(level, pos-1), hash)
		}
		pos >>= 1
	}
	return hash, nil
}

// Path returns the sibling hashes from the leaf at index up to, excluding, the root.
func (t *Tree) Path(index uint32) ([]model.Hash, error) {
	if int(index) >= t.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, t.Len())
	}
	path := make([]model.Hash, t.depth)
	pos := int(index)
	for level := 0; level < t.depth; level++ {
		path[level] = t.node(level, pos^1)
		pos >>= 1
	}
	return path, nil
}

func (t *Tree) node(level, pos int) model.Hash {
	if pos < len(t.levels[level]) {
		return t.levels[level][pos]
	}
	return t.empty[level]
}

// Verify checks that leaf at index hashes up to root through path.
func Verify(leaf model.Hash, index uint32, path []model.Hash, root model.Hash) bool {
	hash := leaf
	for level, sibling := range path {
		if (index>>uint(level))&1 == 0 {
			hash = NodeHash(hash, sibling)
		} else {
			hash = NodeHash(sibling, hash)
		}
	}
	return hash == root
}

func emptyHashes(depth int) []model.Hash {
	out := make([]model.Hash, depth+1)
	out[0] = LeafHash(nil)
	for i := 1; i <= depth; i++ {
		out[i] = NodeHash(out[i-1], out[i-1])
	}
	return out
}
