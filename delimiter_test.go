package mathlayout

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		token string
		want  Delimiter
	}{
		{"(", DelimParen},
		{"[", DelimBracket},
		{"{", DelimBrace},
		{"|", DelimBar},
		{"||", DelimDoubleBar},
		{"none", DelimNone},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDelimiter(tt.token)
			if err != nil {
				t.Fatalf("ParseDelimiter(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseDelimiterRejects(t *testing.T) {
	for _, token := range []string{"", ")", "<", "((", "|||", "NONE"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseDelimiter(token)
			if err == nil {
				t.Fatalf("ParseDelimiter(%q) should fail", token)
			}
			var delimErr *DelimiterError
			if !errors.As(err, &delimErr) {
				t.Fatalf("error should be a *DelimiterError, got %T", err)
			}
			if delimErr.Token != token {
				t.Errorf("DelimiterError.Token = %q, want %q", delimErr.Token, token)
			}
			// The message enumerates every accepted literal.
			for _, accepted := range []string{`"("`, `"["`, `"{"`, `"|"`, `"||"`, `"none"`} {
				if !strings.Contains(err.Error(), accepted) {
					t.Errorf("error message should mention %s, got %q", accepted, err.Error())
				}
			}
		})
	}
}

func TestDelimiterOpenClose(t *testing.T) {
	tests := []struct {
		delim       Delimiter
		open, close rune
	}{
		{DelimNone, 0, 0},
		{DelimParen, '(', ')'},
		{DelimBracket, '[', ']'},
		{DelimBrace, '{', '}'},
		{DelimBar, '|', '|'},
		{DelimDoubleBar, '‖', '‖'},
	}

	for _, tt := range tests {
		t.Run(tt.delim.String(), func(t *testing.T) {
			if got := tt.delim.Open(); got != tt.open {
				t.Errorf("Open() = %q, want %q", got, tt.open)
			}
			if got := tt.delim.Close(); got != tt.close {
				t.Errorf("Close() = %q, want %q", got, tt.close)
			}
		})
	}
}

func TestDelimiterStringRoundTrip(t *testing.T) {
	for _, d := range []Delimiter{DelimNone, DelimParen, DelimBracket, DelimBrace, DelimBar, DelimDoubleBar} {
		parsed, err := ParseDelimiter(d.String())
		if err != nil {
			t.Fatalf("ParseDelimiter(%q) returned error: %v", d.String(), err)
		}
		if parsed != d {
			t.Errorf("ParseDelimiter(%q) = %v, want %v", d.String(), parsed, d)
		}
	}
}
