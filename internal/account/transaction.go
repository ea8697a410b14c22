package account

import (
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
)

// BuildTransaction spends the records with the given commitments, which must belong to
// viewer, and creates one encrypted output per record in outputs.
func BuildTransaction(viewer *Viewer, spent []model.Field, outputs []Record, r io.Reader) (model.Transaction, error) {
	if len(spent) > 0 && viewer == nil {
		return model.Transaction{}, errors.New("spending records requires a view key")
	}

	tx := model.Transaction{
		Inputs:  make([]model.Input, 0, len(spent)),
		Outputs: make([]model.Output, 0, len(outputs)),
	}
	for _, commitment := range spent {
		tx.Inputs = append(tx.Inputs, model.Input{SerialNumber: viewer.SerialNumber(commitment)})
	}
	for i, rec := range outputs {
		out, err := Encrypt(rec, r)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("encrypt output %d: %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, out)
	}
	return tx, nil
}
