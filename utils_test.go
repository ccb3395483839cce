package heap

import (
	"heap/internal/assert"
	"testing"
)

func TestBytesToString(t *testing.T) {
	s := "ABC€"
	bs := []byte(s)
	assert.Equal(t, s, BytesToString(bs))
	assert.Equal(t, s, BytesToString(StringToBytes(s)))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 42, Must(42, nil))
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Must to panic on a non-nil error")
		}
	}()
	Must(0, ErrOutOfMemory)
}
