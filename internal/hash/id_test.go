package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldID(t *testing.T) {
	tests := []struct {
		name  string
		field string
		id    uint64
	}{
		{"empty name", "", 0xef46db3751d8e999},
		{"short name", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, FieldID(tt.field))
		})
	}
}

func TestFieldID_CaseSensitive(t *testing.T) {
	assert.NotEqual(t, FieldID("cartesianX"), FieldID("CartesianX"))
	assert.Equal(t, FieldID("cartesianX"), FieldID("cartesian"+"X"))
}

func BenchmarkFieldID(b *testing.B) {
	for b.Loop() {
		FieldID("sphericalAzimuth")
	}
}
