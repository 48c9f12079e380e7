package player

import (
	"crypto/sha256"
	"fmt"

	"akplayer/util"
)

// DeriveKey rebuilds the content key the secure player computes
// in the browser. the last four digits of the timestamp drive it:
// digit 0 is the start and digits 1-2 the end of a slice of the
// player token appended to the timestamp as salt, digit 3 picks the
// AES key size (6 for 128 bits, 7 for 192, anything else 256).
func DeriveKey(timestamp string, playerToken string) ([]byte, error) {
	if len(timestamp) < 4 {
		return nil, fmt.Errorf(
			"%w: timestamp %q is shorter than 4 characters",
			util.ErrInputFormat, timestamp,
		)
	}
	tail := timestamp[len(timestamp)-4:]
	for i := 0; i < len(tail); i++ {
		if tail[i] < '0' || tail[i] > '9' {
			return nil, fmt.Errorf(
				"%w: timestamp %q does not end in 4 digits",
				util.ErrInputFormat, timestamp,
			)
		}
	}
	start := int(tail[0] - '0')
	end := int(tail[1]-'0')*10 + int(tail[2]-'0')
	selector := tail[3] - '0'

	if end > len(playerToken) {
		return nil, fmt.Errorf(
			"%w: token slice [%d:%d] out of range for token of length %d",
			util.ErrInputFormat, start, end, len(playerToken),
		)
	}
	var salt string
	if start < end {
		salt = timestamp + playerToken[start:end]
	} else {
		// an inverted range selects nothing
		salt = timestamp
	}

	digest := sha256.Sum256([]byte(salt))
	switch selector {
	case 6:
		return digest[:16], nil
	case 7:
		return digest[:24], nil
	default:
		return digest[:], nil
	}
}
