package services

import (
	"strings"
	"testing"
)

func TestGenerateTeamCodeLength(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code := GenerateTeamCode(length)
		if len(code) != length {
			t.Errorf("GenerateTeamCode(%d) = %q, want length %d", length, code, length)
		}
	}
}

func TestGenerateTeamCodeDefaultsLength(t *testing.T) {
	if got := len(GenerateTeamCode(0)); got != 6 {
		t.Errorf("GenerateTeamCode(0) length = %d, want 6", got)
	}
	if got := len(GenerateTeamCode(-3)); got != 6 {
		t.Errorf("GenerateTeamCode(-3) length = %d, want 6", got)
	}
}

func TestGenerateTeamCodeAlphabet(t *testing.T) {
	// Ambiguous characters must never appear; everything else must come from
	// the published alphabet.
	for i := 0; i < 200; i++ {
		code := GenerateTeamCode(6)
		for _, r := range code {
			if strings.ContainsRune("0O1I", r) {
				t.Fatalf("code %q contains ambiguous character %q", code, r)
			}
			if !strings.ContainsRune(teamCodeAlphabet, r) {
				t.Fatalf("code %q contains %q, not in alphabet", code, r)
			}
		}
	}
}

func TestNormalizeTeamCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "ABC123"},
		{"  ab-c 123 ", "ABC123"},
		{"AB_CD!", "ABCD"},
		{"", ""},
		{"abcdefghijkl", "ABCDEFGHIJ"}, // clipped to 10
	}
	for _, tt := range tests {
		if got := NormalizeTeamCode(tt.in); got != tt.want {
			t.Errorf("NormalizeTeamCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestServiceErrorCodesStable(t *testing.T) {
	// The code strings are API contract; a rename here is a breaking change.
	want := map[*ServiceError]string{
		ErrNameInvalid:        "NAME_INVALID",
		ErrEventNotFound:      "EVENT_NOT_FOUND",
		ErrEventNotActive:     "EVENT_NOT_ACTIVE",
		ErrEventMismatch:      "EVENT_MISMATCH",
		ErrCodeInvalid:        "CODE_INVALID",
		ErrTeamNotFound:       "TEAM_NOT_FOUND",
		ErrCannotJoinOwn:      "CANNOT_JOIN_OWN_TEAM",
		ErrAlreadyInEvent:     "ALREADY_IN_EVENT_TEAM",
		ErrAlreadyInAnother:   "ALREADY_IN_ANOTHER_TEAM",
		ErrTeamFull:           "TEAM_FULL",
		ErrForbidden:          "FORBIDDEN",
		ErrNotInTeam:          "NOT_IN_TEAM",
		ErrLeaderCannotLeave:  "LEADER_CANNOT_LEAVE",
		ErrNotATeamMember:     "NOT_A_TEAM_MEMBER",
		ErrTeamNotEligible:    "TEAM_NOT_ELIGIBLE",
		ErrAlreadyRegistered:  "ALREADY_REGISTERED",
		ErrCodeSpaceExhausted: "SLUG_COLLISION_RETRY_EXHAUSTED",
	}
	for err, code := range want {
		if err.Code != code {
			t.Errorf("error code = %q, want %q", err.Code, code)
		}
		if err.Status < 400 || err.Status > 599 {
			t.Errorf("%s: status %d outside error range", code, err.Status)
		}
	}
}
