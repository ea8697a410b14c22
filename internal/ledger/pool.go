package ledger

import "github.com/goodnatureofminers/shieldledger-backend/internal/model"

// MemoryPool stages admitted, unconfirmed transactions in arrival order. Its
// contents are mutually consistent: no two pooled transactions share a serial
// number or an output commitment.
type MemoryPool struct {
	transactions map[model.Hash]model.Transaction
	order        []model.Hash
	serials      map[model.Field]model.Hash
	commitments  map[model.Field]model.Hash
}

func NewMemoryPool() *MemoryPool {
	return &MemoryPool{
		transactions: make(map[model.Hash]model.Transaction),
		serials:      make(map[model.Field]model.Hash),
		commitments:  make(map[model.Field]model.Hash),
	}
}

func (p *MemoryPool) Len() int { return len(p.transactions) }

func (p *MemoryPool) Contains(id model.Hash) bool {
	_, ok := p.transactions[id]
	return ok
}

// Transactions returns the pooled transactions in arrival order.
func (p *MemoryPool) Transactions() []model.Transaction {
	out := make([]model.Transaction, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.transactions[id])
	}
	return out
}

func (p *MemoryPool) spends(serial model.Field) bool {
	_, ok := p.serials[serial]
	return ok
}

func (p *MemoryPool) creates(commitment model.Field) bool {
	_, ok := p.commitments[commitment]
	return ok
}

func (p *MemoryPool) insert(id model.Hash, tx model.Transaction) {
	p.transactions[id] = tx
	p.order = append(p.order, id)
	for _, in := range tx.Inputs {
		p.serials[in.SerialNumber] = id
	}
	for _, out := range tx.Outputs {
		p.commitments[out.Commitment] = id
	}
}

// removeIf drops every transaction matching drop and returns how many were removed.
func (p *MemoryPool) removeIf(drop func(id model.Hash, tx model.Transaction) bool) int {
	kept := p.order[:0]
	removed := 0
	for _, id := range p.order {
		tx := p.transactions[id]
		if !drop(id, tx) {
			kept = append(kept, id)
			continue
		}
		delete(p.transactions, id)
		for _, in := range tx.Inputs {
			delete(p.serials, in.SerialNumber)
		}
		for _, out := range tx.Outputs {
			delete(p.commitments, out.Commitment)
		}
		removed++
	}
	clear(p.order[len(kept):])
	p.order = kept
	return removed
}
