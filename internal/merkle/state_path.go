package merkle

import "github.com/goodnatureofminers/shieldledger-backend/internal/model"

// CommitmentLeaf is the leaf value of a record commitment in a block tree.
func CommitmentLeaf(c model.Field) model.Hash { return LeafHash(c[:]) }

// BlockLeaf is the leaf value of a block's commitments root in the global tree.
func BlockLeaf(root model.Hash) model.Hash { return LeafHash(root[:]) }

// TransactionLeaf is the leaf value of a transaction id in a block's transactions tree.
func TransactionLeaf(id model.Hash) model.Hash { return LeafHash(id[:]) }

// VerifyStatePath checks both segments of a state path against its state root.
func VerifyStatePath(p model.StatePath) bool {
	if len(p.BlockPath) != model.BlockTreeDepth || len(p.GlobalPath) != model.GlobalTreeDepth {
		return false
	}
	if !Verify(CommitmentLeaf(p.Commitment), p.LeafIndex, p.BlockPath, p.BlockRoot) {
		return false
	}
	return Verify(BlockLeaf(p.BlockRoot), p.BlockHeight, p.GlobalPath, p.StateRoot)
}
