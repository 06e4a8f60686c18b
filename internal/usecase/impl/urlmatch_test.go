package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full url reduces to hostname", in: "https://github.com/login", want: "github.com"},
		{name: "port is dropped", in: "https://app.example.com:8443/signin", want: "app.example.com"},
		{name: "query and fragment ignored", in: "https://mail.example.com/inbox?folder=1#top", want: "mail.example.com"},
		{name: "schemeless input falls back to raw", in: "github.com", want: "github.com"},
		{name: "bare word falls back to raw", in: "github", want: "github"},
		{name: "surrounding whitespace trimmed", in: "  https://github.com  ", want: "github.com"},
		{name: "blank yields blank", in: "   ", want: ""},
		{name: "empty yields blank", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchKey(tt.in))
		})
	}
}
