package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestSink_NilLoggerDefaultsToNop(t *testing.T) {
	s := NewSink(nil)
	assert.True(t, s.Empty())
	s.Record(CodeNonDecimalIPv4, "part 2 was octal")
	assert.False(t, s.Empty())
}

func TestSink_RecordsInOrder(t *testing.T) {
	s := NewSink(zaptest.NewLogger(t))
	s.Record(CodeBackslashInPath, "first")
	s.Record(CodePortOutOfRange, "second")
	entries := s.Entries()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, CodeBackslashInPath, entries[0].Code)
		assert.Equal(t, CodePortOutOfRange, entries[1].Code)
	}
}

func TestSink_NilSinkIsSafeToQuery(t *testing.T) {
	var s *Sink
	assert.True(t, s.Empty())
	assert.Nil(t, s.Entries())
}
