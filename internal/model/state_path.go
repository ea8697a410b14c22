package model

// StatePath proves that a commitment is part of the global state tree.
//
// BlockPath holds the siblings from the commitment's leaf up to the block's
// commitments root; GlobalPath holds the siblings from that root, placed at
// index BlockHeight, up to StateRoot.
type StatePath struct {
	Commitment  Field  `json:"commitment"`
	LeafIndex   uint32 `json:"leaf_index"`
	BlockHeight uint32 `json:"block_height"`
	BlockPath   []Hash `json:"block_path"`
	BlockRoot   Hash   `json:"block_root"`
	GlobalPath  []Hash `json:"global_path"`
	StateRoot   Hash   `json:"state_root"`
}
