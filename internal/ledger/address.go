// Package ledger implements the client for the document contract on the
// Stellar/Soroban ledger: address validation, invocation building, relay
// submission, read-only simulation and result decoding.
package ledger

import (
	"strings"

	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// Strkey shape of ledger addresses: fixed length, fixed version prefix,
// base32 alphabet.
const (
	addressLength  = 56
	accountPrefix  = 'G'
	contractPrefix = 'C'
	base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// ValidateAccountAddress rejects anything that is not shaped like a
// G-prefixed account address. Submission refuses malformed addresses before
// any network call is made.
func ValidateAccountAddress(address string) error {
	return validateAddress(address, accountPrefix, "account")
}

// ValidateContractAddress rejects anything that is not shaped like a
// C-prefixed contract address.
func ValidateContractAddress(address string) error {
	return validateAddress(address, contractPrefix, "contract")
}

func validateAddress(address string, prefix byte, kind string) error {
	if len(address) != addressLength {
		return apperrors.NewValidationError("invalid "+kind+" address", "must be 56 characters")
	}
	if address[0] != prefix {
		return apperrors.NewValidationError("invalid "+kind+" address", "must start with "+string(prefix))
	}
	for i := 0; i < len(address); i++ {
		if !strings.ContainsRune(base32Alphabet, rune(address[i])) {
			return apperrors.NewValidationError("invalid "+kind+" address", "contains non-base32 characters")
		}
	}
	return nil
}
