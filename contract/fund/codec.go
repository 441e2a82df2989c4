package fund

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"community_fund/sdk"
)

// codecVersion is the first byte of every record so the layout can evolve.
const codecVersion byte = 1

var (
	errEOF = errors.New("unexpected EOF")
	// ErrBadVersion is returned for records written by an unknown codec.
	ErrBadVersion = errors.New("unknown record version")
)

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter {
	w := &binWriter{}
	w.buf.WriteByte(codecVersion)
	return w
}

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// ------------------------------------------------------------------
// Encoders
// ------------------------------------------------------------------

// EncodeProfile serializes a participant profile.
func EncodeProfile(p *Profile) []byte {
	w := newWriter()
	w.writeAddress(p.Owner)
	w.writeUint64(p.ProposalCount)
	return w.bytes()
}

// EncodeProposal serializes a proposal, approvals in insertion order.
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeAddress(p.Owner)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeUint64(p.AmountRequested)
	w.buf.WriteByte(byte(p.Status))
	w.writeUint64(p.VoteCount)
	w.writeVarUint(uint64(len(p.FundingApprovals)))
	for _, a := range p.FundingApprovals {
		w.writeAddress(a)
	}
	w.writeInt64(p.CreatedAt)
	w.writeInt64(p.FinalizedAt)
	w.writeString(p.Tx)
	return w.bytes()
}

func EncodeVoteRecord(v *VoteRecord) []byte {
	w := newWriter()
	w.writeAddress(v.Voter)
	w.writeAddress(v.Owner)
	w.writeUint64(v.ProposalID)
	w.writeInt64(v.Timestamp)
	w.writeUint64(v.TokenWeight)
	w.writeString(v.Tx)
	return w.bytes()
}

func EncodeRegistry(r *Registry) []byte {
	w := newWriter()
	for _, a := range r.Admins {
		w.writeAddress(a)
	}
	return w.bytes()
}

func EncodeVault(v *Vault) []byte {
	w := newWriter()
	w.writeUint64(v.TotalDeposited)
	w.writeUint64(v.TotalClaimed)
	return w.bytes()
}

// EncodeIndexChunk packs one chunk of an index (owner addresses or voter addresses).
func EncodeIndexChunk(entries []string) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(entries)))
	for _, e := range entries {
		w.writeString(e)
	}
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader checks the version byte and positions after it.
func newReader(data []byte) (*binReader, error) {
	if len(data) == 0 {
		return nil, errEOF
	}
	if data[0] != codecVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, data[0])
	}
	return &binReader{data: data, pos: 1}, nil
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errEOF
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if l > uint64(len(r.data)-r.pos) {
		return "", errEOF
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return sdk.Address(s), nil
}

// ------------------------------------------------------------------
// Decoders
// ------------------------------------------------------------------

func DecodeProfile(data []byte) (*Profile, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p := &Profile{}
	if p.Owner, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.ProposalCount, err = r.readUint64(); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func DecodeProposal(data []byte) (*Proposal, error) {
	p, err := decodeProposal(data)
	if err != nil {
		return nil, fmt.Errorf("decode proposal: %w", err)
	}
	return p, nil
}

func decodeProposal(data []byte) (*Proposal, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	p := &Proposal{}
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if p.AmountRequested, err = r.readUint64(); err != nil {
		return nil, err
	}
	b, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Status = Status(b)
	if p.VoteCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	n, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if n > AdminSlots {
		return nil, fmt.Errorf("approval count %d out of range", n)
	}
	for i := uint64(0); i < n; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		p.FundingApprovals = append(p.FundingApprovals, a)
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.FinalizedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return p, nil
}

func DecodeVoteRecord(data []byte) (*VoteRecord, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	v := &VoteRecord{}
	if v.Voter, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	if v.Owner, err = r.readAddress(); err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	if v.ProposalID, err = r.readUint64(); err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	if v.Timestamp, err = r.readInt64(); err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	if v.TokenWeight, err = r.readUint64(); err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	if v.Tx, err = r.readString(); err != nil {
		return nil, fmt.Errorf("decode vote: %w", err)
	}
	return v, nil
}

func DecodeRegistry(data []byte) (*Registry, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	reg := &Registry{}
	for i := range reg.Admins {
		if reg.Admins[i], err = r.readAddress(); err != nil {
			return nil, fmt.Errorf("decode registry: %w", err)
		}
	}
	return reg, nil
}

func DecodeVault(data []byte) (*Vault, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, fmt.Errorf("decode vault: %w", err)
	}
	v := &Vault{}
	if v.TotalDeposited, err = r.readUint64(); err != nil {
		return nil, fmt.Errorf("decode vault: %w", err)
	}
	if v.TotalClaimed, err = r.readUint64(); err != nil {
		return nil, fmt.Errorf("decode vault: %w", err)
	}
	return v, nil
}

func DecodeIndexChunk(data []byte) ([]string, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	n, err := r.readVarUint()
	if err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	if n > uint64(len(data)) {
		return nil, fmt.Errorf("decode index: entry count %d exceeds payload", n)
	}
	out := make([]string, 0, n)
	for i := uint64(0); i < n; i++ {
		s, err := r.readString()
		if err != nil {
			return nil, fmt.Errorf("decode index: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}
