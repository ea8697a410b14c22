package ledger

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/merkle"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

// NewGenesisBlock builds the block at height 0 holding txs.
func NewGenesisBlock(timestamp int64, txs []model.Transaction) (model.Block, error) {
	header, err := sealHeader(0, model.Hash{}, timestamp, txs, merkle.New(model.GlobalTreeDepth))
	if err != nil {
		return model.Block{}, fmt.Errorf("seal genesis: %w", err)
	}
	return model.Block{Header: header, Transactions: txs}, nil
}

// AddNextBlock confirms block on top of the current chain. The block must extend the
// latest block, its roots must match its body and it must not repeat a confirmed
// transaction, commitment or serial number. Pooled transactions that the block
// confirms or conflicts with are evicted.
func (l *Ledger) AddNextBlock(ctx context.Context, block model.Block) error {
	if err := l.checkBlock(block); err != nil {
		return err
	}
	if err := l.store.PutBlock(ctx, block); err != nil {
		return fmt.Errorf("persist block %d: %w", block.Height(), err)
	}
	if err := l.index(block); err != nil {
		return fmt.Errorf("index block %d: %w", block.Height(), err)
	}

	l.pool.removeIf(func(id model.Hash, tx model.Transaction) bool {
		if _, ok := l.transactions[id]; ok {
			return true
		}
		for _, in := range tx.Inputs {
			if _, ok := l.serials[in.SerialNumber]; ok {
				return true
			}
		}
		for _, out := range tx.Outputs {
			if _, ok := l.commitments[out.Commitment]; ok {
				return true
			}
		}
		return false
	})
	return nil
}

// ProposeNextBlock seals the pooled transactions, in arrival order, into the block
// that would extend the chain. At most limit transactions are taken when limit is
// positive. The ledger is not modified.
func (l *Ledger) ProposeNextBlock(timestamp int64, limit int) (model.Block, error) {
	pooled := l.pool.Transactions()
	txs := make([]model.Transaction, 0, len(pooled))
	commitments := 0
	for _, tx := range pooled {
		if limit > 0 && len(txs) >= limit {
			break
		}
		if len(txs) >= maxBlockTransactions || commitments+len(tx.Outputs) > maxBlockCommitments {
			break
		}
		txs = append(txs, tx)
		commitments += len(tx.Outputs)
	}

	header, err := sealHeader(l.nextHeight(), l.latestHash, timestamp, txs, l.state)
	if err != nil {
		return model.Block{}, fmt.Errorf("seal block %d: %w", l.nextHeight(), err)
	}
	return model.Block{Header: header, Transactions: txs}, nil
}

func (l *Ledger) nextHeight() uint32 {
	if l.state.Len() == 0 {
		return 0
	}
	return l.latestHeight + 1
}

func (l *Ledger) checkBlock(block model.Block) error {
	if want := l.nextHeight(); block.Height() != want || (l.state.Len() > 0 && want == 0) {
		return fmt.Errorf("%w: height %d, want %d", model.ErrInvalidBlock, block.Height(), want)
	}
	if block.PreviousHash() != l.latestHash {
		return fmt.Errorf("%w: block %d previous hash %s, want %s", model.ErrInvalidBlock, block.Height(), block.PreviousHash(), l.latestHash)
	}

	header, err := sealHeader(block.Height(), block.PreviousHash(), block.Timestamp(), block.Transactions, l.state)
	if err != nil {
		return fmt.Errorf("%w: block %d: %v", model.ErrInvalidBlock, block.Height(), err)
	}
	if header != block.Header {
		return fmt.Errorf("%w: block %d roots do not match its body", model.ErrInvalidBlock, block.Height())
	}

	seen := newBatch()
	for _, tx := range block.Transactions {
		if err := l.checkTransaction(tx, tx.ID(), seen, false); err != nil {
			return fmt.Errorf("block %d: %w", block.Height(), err)
		}
	}
	return nil
}

func (l *Ledger) index(block model.Block) error {
	if _, err := l.state.Append(merkle.BlockLeaf(block.CommitmentsRoot())); err != nil {
		return err
	}

	height := block.Height()
	var leaf uint32
	for i, tx := range block.Transactions {
		id := tx.ID()
		l.transactions[id] = location{height: height, index: uint32(i)}
		for _, in := range tx.Inputs {
			l.serials[in.SerialNumber] = id
		}
		for _, out := range tx.Outputs {
			l.commitments[out.Commitment] = location{height: height, index: leaf}
			l.outputs = append(l.outputs, out)
			leaf++
		}
	}

	l.latestHeight = height
	l.latestHash = block.Hash()
	return nil
}

func sealHeader(height uint32, previous model.Hash, timestamp int64, txs []model.Transaction, state *merkle.Tree) (model.Header, error) {
	txLeaves := make([]model.Hash, 0, len(txs))
	var commitmentLeaves []model.Hash
	for _, tx := range txs {
		txLeaves = append(txLeaves, merkle.TransactionLeaf(tx.ID()))
		for _, out := range tx.Outputs {
			commitmentLeaves = append(commitmentLeaves, merkle.CommitmentLeaf(out.Commitment))
		}
	}

	txRoot, err := merkle.Root(model.TransactionsTreeDepth, txLeaves)
	if err != nil {
		return model.Header{}, fmt.Errorf("transactions root: %w", err)
	}
	commitmentsRoot, err := merkle.Root(model.BlockTreeDepth, commitmentLeaves)
	if err != nil {
		return model.Header{}, fmt.Errorf("commitments root: %w", err)
	}
	stateRoot, err := state.NextRoot(merkle.BlockLeaf(commitmentsRoot))
	if err != nil {
		return model.Header{}, fmt.Errorf("state root: %w", err)
	}

	return model.Header{
		Height:           height,
		PreviousHash:     previous,
		TransactionsRoot: txRoot,
		CommitmentsRoot:  commitmentsRoot,
		StateRoot:        stateRoot,
		Timestamp:        timestamp,
	}, nil
}
