// internal/cli/confirm_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdinConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"garbage", "maybe\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewStdinConfirmer(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, c.Confirm("Delete this listing?"))
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}
