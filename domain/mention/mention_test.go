package mention

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no mention", "hello world", []string{}},
		{"empty text", "", []string{}},
		{"single mention", "ping @dana", []string{"dana"}},
		{"spaces after at", "hello @  bob and @carol!", []string{"bob", "carol"}},
		{"duplicates collapse", "@a hi @a", []string{"a"}},
		{"first occurrence order", "@zoe @adam @zoe @bea", []string{"zoe", "adam", "bea"}},
		{"lone at sign", "mail me @ ", []string{}},
		{"digits and underscore", "@user_42, ok", []string{"user_42"}},
		{"email address", "write to jane@acme.io", []string{"acme"}},
		{"newline after at", "@\nmax", []string{"max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, Extract(tt.text))
		})
	}
}

func TestExtract_RepeatedMentionsAreIdempotent(t *testing.T) {
	req := require.New(t)
	req.Equal(Extract("@a hi"), Extract("@a hi @a"))
	req.Equal([]string{"a"}, Extract("@a hi @a"))
}

func TestIsName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"dana", true},
		{"user_42", true},
		{"", false},
		{"bob.smith", false},
		{"José", false},
		{"o'neil", false},
		{"bob\tsmith", false},
		{"dana scully", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, IsName(tt.name))
			if tt.want {
				req.Equal([]string{tt.name}, Extract("@"+tt.name))
			}
		})
	}
}
