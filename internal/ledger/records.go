package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/shieldledger-backend/internal/account"
	"github.com/goodnatureofminers/shieldledger-backend/internal/model"
	"github.com/goodnatureofminers/shieldledger-backend/pkg/workerpool"
)

// RecordsFilter selects records by spent status.
type RecordsFilter int

const (
	RecordsAll RecordsFilter = iota
	RecordsSpent
	RecordsUnspent
)

// ParseRecordsFilter accepts "all", "spent" and "unspent".
func ParseRecordsFilter(s string) (RecordsFilter, error) {
	switch s {
	case "all":
		return RecordsAll, nil
	case "spent":
		return RecordsSpent, nil
	case "unspent":
		return RecordsUnspent, nil
	}
	return 0, fmt.Errorf("%w: unknown records filter %q", model.ErrDecode, s)
}

func (f RecordsFilter) String() string {
	switch f {
	case RecordsAll:
		return "all"
	case RecordsSpent:
		return "spent"
	case RecordsUnspent:
		return "unspent"
	}
	return fmt.Sprintf("RecordsFilter(%d)", int(f))
}

func (f RecordsFilter) match(spent bool) bool {
	switch f {
	case RecordsSpent:
		return spent
	case RecordsUnspent:
		return !spent
	}
	return true
}

// OwnedRecord is a decrypted record together with its on-chain commitment.
type OwnedRecord struct {
	Commitment model.Field
	Record     account.Record
	Spent      bool
}

// Records is an ordered commitment to record mapping. Its JSON form is an object
// whose keys keep the slice order.
type Records []OwnedRecord

func (r Records) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, owned := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(owned.Commitment)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(owned.Record)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back in key order. Spent is not part of the
// JSON form and stays false.
func (r *Records) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return fmt.Errorf("%w: records: expected object", model.ErrDecode)
	}

	out := Records{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: records: %v", model.ErrDecode, err)
		}
		key, _ := tok.(string)
		commitment, err := model.ParseField(key)
		if err != nil {
			return err
		}
		var rec account.Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("%w: record %s: %v", model.ErrDecode, key, err)
		}
		out = append(out, OwnedRecord{Commitment: commitment, Record: rec})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: records: %v", model.ErrDecode, err)
	}
	*r = out
	return nil
}

// FindRecords decrypts every confirmed output with viewKey and returns the records it
// owns, in chain order, filtered by spent status. A record is spent once the serial
// number derived from its commitment appears in a confirmed transaction.
func (l *Ledger) FindRecords(ctx context.Context, viewKey account.ViewKey, filter RecordsFilter) (Records, error) {
	viewer := viewKey.Viewer()
	chunks := workerpool.Chunk(l.outputs, l.scanChunkSize)

	found, err := workerpool.Map(ctx, l.decryptWorkers, chunks, func(_ context.Context, outputs []model.Output) (Records, error) {
		var owned Records
		for _, out := range outputs {
			rec, err := viewer.Decrypt(out)
			if err != nil {
				continue
			}
			_, spent := l.serials[viewer.SerialNumber(out.Commitment)]
			if !filter.match(spent) {
				continue
			}
			owned = append(owned, OwnedRecord{Commitment: out.Commitment, Record: rec, Spent: spent})
		}
		return owned, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	records := Records{}
	for _, chunk := range found {
		records = append(records, chunk...)
	}
	return records, nil
}
