package mps

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// parseNumber parses one MPS numeric token: an optionally-signed decimal
// with an optional E±exponent, an "n/d" rational, or the literals inf/-inf.
// infSign is 0 for a finite value (returned in val), +1/-1 for +inf/-inf (val
// is nil in that case).
func parseNumber(tok string) (val *big.Rat, infSign int, err error) {
	switch strings.ToLower(tok) {
	case "inf", "+inf":
		return nil, 1, nil
	case "-inf":
		return nil, -1, nil
	}
	r, ok := new(big.Rat).SetString(tok)
	if !ok {
		return nil, 0, errors.Errorf("mps: invalid numeric token %q", tok)
	}
	return r, 0, nil
}
