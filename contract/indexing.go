package contract

// maintaining index keys for listing data that is only addressable by key

import (
	"fmt"
	"strconv"

	"community_fund/contract/fund"
)

// getChunkCount reads the number of chunks of an index, zero if it was never written.
func getChunkCount(t *txn, base string) (uint64, error) {
	raw, ok, err := t.get(indexMetaKey(base))
	if err != nil || !ok || raw == "" {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("index %x chunk count: %w", base, err)
	}
	return n, nil
}

func setChunkCount(t *txn, base string, n uint64) {
	t.put(indexMetaKey(base), strconv.FormatUint(n, 10))
}

func loadChunk(t *txn, base string, chunk uint64) ([]string, error) {
	raw, ok, err := t.get(indexChunkKey(base, chunk))
	if err != nil || !ok {
		return nil, err
	}
	return fund.DecodeIndexChunk([]byte(raw))
}

// appendToIndex adds entry to the last chunk or opens a new one once it holds
// maxChunkSize entries. Entries are unique because every caller appends right
// after a create guarded insert of the record the entry points at.
func appendToIndex(t *txn, base, entry string) error {
	chunks, err := getChunkCount(t, base)
	if err != nil {
		return err
	}
	if chunks > 0 {
		last := chunks - 1
		entries, err := loadChunk(t, base, last)
		if err != nil {
			return err
		}
		if len(entries) < maxChunkSize {
			entries = append(entries, entry)
			t.put(indexChunkKey(base, last), string(fund.EncodeIndexChunk(entries)))
			return nil
		}
	}
	t.put(indexChunkKey(base, chunks), string(fund.EncodeIndexChunk([]string{entry})))
	setChunkCount(t, base, chunks+1)
	return nil
}

// readIndex collects all entries across all chunks in insertion order.
func readIndex(t *txn, base string) ([]string, error) {
	all := []string{}
	chunks, err := getChunkCount(t, base)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < chunks; i++ {
		entries, err := loadChunk(t, base, i)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}
