// services/team_code.go - Join code generation
package services

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Alphabet for join codes. 0/O and 1/I are left out so codes survive being
// read aloud or copied by hand.
const teamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTeamCode draws a random code of the given length. It makes no
// uniqueness promise; the unique index on teams.code and the bounded retry in
// CreateTeam are what guarantee no two teams share one.
func GenerateTeamCode(length int) string {
	if length <= 0 {
		length = 6
	}

	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(teamCodeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken; there is no useful recovery.
			panic(err)
		}
		sb.WriteByte(teamCodeAlphabet[n.Int64()])
	}
	return sb.String()
}

// NormalizeTeamCode uppercases user input and strips anything that is not a
// letter or digit, so "ab-c 123" and "ABC123" resolve the same team.
func NormalizeTeamCode(raw string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	code := sb.String()
	if len(code) > 10 {
		code = code[:10]
	}
	return code
}
