package ledger

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/merkle"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

// StatePath proves that commitment is part of the current state tree. Commitments
// that are unknown or only pooled yield model.ErrNotFound.
func (l *Ledger) StatePath(ctx context.Context, commitment model.Field) (model.StatePath, error) {
	loc, ok := l.commitments[commitment]
	if !ok {
		return model.StatePath{}, fmt.Errorf("commitment %s: %w", commitment, model.ErrNotFound)
	}

	block, err := l.GetBlock(ctx, loc.height)
	if err != nil {
		return model.StatePath{}, err
	}
	commitments := block.Commitments()
	leaves := make([]model.Hash, 0, len(commitments))
	for _, c := range commitments {
		leaves = append(leaves, merkle.CommitmentLeaf(c))
	}
	tree, err := merkle.Build(model.BlockTreeDepth, leaves)
	if err != nil {
		return model.StatePath{}, notFound(fmt.Errorf("rebuild block %d tree: %w", loc.height, err))
	}
	if tree.Root() != block.CommitmentsRoot() || int(loc.index) >= len(commitments) || commitments[loc.index] != commitment {
		return model.StatePath{}, fmt.Errorf("commitment %s: stored block %d is inconsistent: %w", commitment, loc.height, model.ErrNotFound)
	}

	blockPath, err := tree.Path(loc.index)
	if err != nil {
		return model.StatePath{}, notFound(err)
	}
	globalPath, err := l.state.Path(loc.height)
	if err != nil {
		return model.StatePath{}, notFound(err)
	}

	return model.StatePath{
		Commitment:  commitment,
		LeafIndex:   loc.index,
		BlockHeight: loc.height,
		BlockPath:   blockPath,
		BlockRoot:   tree.Root(),
		GlobalPath:  globalPath,
		StateRoot:   l.state.Root(),
	}, nil
}
