package contract

import "community_fund/sdk"

// Addresses never contain NUL (sdk.Address.IsValid), so a 0x00 separator
// keeps variable length parts apart. Fixed width ids always come last.

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	var buf [8]byte
	packU64LEInline(x, buf[:])
	return append(dst, buf[:]...)
}

// profileKey is 0x01|owner.
func profileKey(owner sdk.Address) string {
	buf := make([]byte, 0, 1+len(owner))
	buf = append(buf, kProfile)
	buf = append(buf, owner...)
	return string(buf)
}

// proposalKey is 0x10|owner|id, the id is fixed width so no separator is needed.
func proposalKey(owner sdk.Address, id uint64) string {
	buf := make([]byte, 0, 1+len(owner)+8)
	buf = append(buf, kProposal)
	buf = append(buf, owner...)
	buf = packU64LE(id, buf)
	return string(buf)
}

// voteKey is 0x20|voter|0x00|owner|id. Its existence is the already-voted guard.
func voteKey(voter, owner sdk.Address, id uint64) string {
	buf := make([]byte, 0, 1+len(voter)+1+len(owner)+8)
	buf = append(buf, kVote)
	buf = append(buf, voter...)
	buf = append(buf, 0x00)
	buf = append(buf, owner...)
	buf = packU64LE(id, buf)
	return string(buf)
}

func registryKey() string { return string([]byte{kRegistry}) }

func vaultKey() string { return string([]byte{kVault}) }

// balanceKey is 0x50|addr.
func balanceKey(addr sdk.Address) string {
	return string([]byte{kBalance}) + addr.String()
}

func genesisKey() string { return string([]byte{kGenesis}) }

// ownersIndex is the base of the profile owner index.
func ownersIndex() string { return string([]byte{idxOwners}) }

// proposalVotersIndex is the base of the voter index of one proposal.
func proposalVotersIndex(owner sdk.Address, id uint64) string {
	buf := make([]byte, 0, 1+len(owner)+8)
	buf = append(buf, idxProposalVoters)
	buf = append(buf, owner...)
	buf = packU64LE(id, buf)
	return string(buf)
}

// indexMetaKey stores the chunk count of an index base.
func indexMetaKey(base string) string {
	return string([]byte{kIndexMeta}) + base
}

// indexChunkKey is 0x41|base|chunk, chunk number fixed width.
func indexChunkKey(base string, chunk uint64) string {
	buf := make([]byte, 0, 1+len(base)+8)
	buf = append(buf, kIndexChunk)
	buf = append(buf, base...)
	buf = packU64LE(chunk, buf)
	return string(buf)
}
