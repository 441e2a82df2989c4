package state

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// snapshotMagic prefixes every snapshot file so a stray file is not loaded as state.
const snapshotMagic = "FUNDSNAP1"

// Mem keeps state in a map. With a filename set every commit is flushed to a
// binary snapshot, handy for local runs that should survive a restart.
type Mem struct {
	mu       sync.RWMutex
	db       map[string]string
	filename string
}

// NewMem returns a purely in-memory store.
func NewMem() *Mem {
	return &Mem{db: make(map[string]string)}
}

// OpenMem loads the snapshot at filename (if any) and keeps writing to it.
// Example payload: state.OpenMem("data/fund.snap")
func OpenMem(filename string) (*Mem, error) {
	m := &Mem{db: make(map[string]string), filename: filename}
	if err := m.loadFromFile(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mem) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (m *Mem) Commit(_ context.Context, muts ...Mutation) error {
	if len(muts) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	created := make(map[string]struct{})
	for _, mu := range muts {
		if !mu.Create {
			continue
		}
		if _, ok := m.db[mu.Key]; ok {
			return fmt.Errorf("%w: %x", ErrExists, mu.Key)
		}
		if _, ok := created[mu.Key]; ok {
			return fmt.Errorf("%w: %x", ErrExists, mu.Key)
		}
		created[mu.Key] = struct{}{}
	}

	type prev struct {
		val string
		ok  bool
	}
	undo := make(map[string]prev, len(muts))
	for _, mu := range muts {
		if _, seen := undo[mu.Key]; !seen {
			v, ok := m.db[mu.Key]
			undo[mu.Key] = prev{val: v, ok: ok}
		}
		m.db[mu.Key] = mu.Value
	}

	if m.filename == "" {
		return nil
	}
	if err := m.saveToFile(); err != nil {
		// roll back so memory matches the snapshot on disk
		for k, p := range undo {
			if p.ok {
				m.db[k] = p.val
			} else {
				delete(m.db, k)
			}
		}
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// Len reports the number of stored keys.
func (m *Mem) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

func (m *Mem) Close() error {
	if m.filename == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveToFile()
}

// saveToFile writes the full map, sorted by key, and swaps it in with a rename.
func (m *Mem) saveToFile() error {
	keys := make([]string, 0, len(m.db))
	for k := range m.db {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString(snapshotMagic)
	writeUvarint(&buf, uint64(len(keys)))
	for _, k := range keys {
		writeBytes(&buf, k)
		writeBytes(&buf, m.db[k])
	}

	if dir := filepath.Dir(m.filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := m.filename + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.filename)
}

// loadFromFile reads the snapshot; a missing file is an empty store.
func (m *Mem) loadFromFile() error {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !bytes.HasPrefix(data, []byte(snapshotMagic)) {
		return fmt.Errorf("read snapshot %s: bad header", m.filename)
	}
	r := bytes.NewReader(data[len(snapshotMagic):])
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return fmt.Errorf("read snapshot %s: %w", m.filename, err)
	}
	for i := uint64(0); i < n; i++ {
		k, err := readBytes(r)
		if err != nil {
			return fmt.Errorf("read snapshot %s: %w", m.filename, err)
		}
		v, err := readBytes(r)
		if err != nil {
			return fmt.Errorf("read snapshot %s: %w", m.filename, err)
		}
		m.db[k] = v
	}
	return nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func writeBytes(buf *bytes.Buffer, s string) {
	writeUvarint(buf, uint64(len(s)))
	buf.WriteString(s)
}

func readBytes(r *bytes.Reader) (string, error) {
	l, err := binary.ReadUvarint(r)
	if err != nil {
		return "", err
	}
	if l == 0 {
		return "", nil
	}
	if l > uint64(r.Len()) {
		return "", errors.New("unexpected EOF")
	}
	b := make([]byte, l)
	if _, err := r.Read(b); err != nil {
		return "", err
	}
	return string(b), nil
}
