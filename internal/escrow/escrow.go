package escrow

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// addressSeed prefixes the derivation input so escrow addresses live in
// their own namespace and cannot collide with caller identities.
const addressSeed = "escrow"

// DeriveAddress computes the campaign's escrow address from the campaign
// id alone: keccak256(seed || big-endian id), truncated to a 20-byte
// address. Any party can recompute it without a lookup table.
func DeriveAddress(campaignId int64) string {
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], uint64(campaignId))
	hash := crypto.Keccak256([]byte(addressSeed), id[:])
	return common.BytesToAddress(hash[12:]).Hex()
}

// ValidAddress reports whether s is a well-formed 20-byte hex address.
func ValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// NormalizeAddress canonicalizes a hex address to its checksummed form so
// identity comparisons are case-insensitive.
func NormalizeAddress(s string) string {
	return common.HexToAddress(s).Hex()
}
