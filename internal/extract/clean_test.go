package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CleanText("a\r\nb\rc"))
}

func TestCleanText_CollapsesInteriorSpaces(t *testing.T) {
	assert.Equal(t, "Senior Go Engineer", CleanText("Senior   Go \t Engineer"))
}

func TestCleanText_PreservesIndentation(t *testing.T) {
	in := "Requirements:\n  - Go   experience\n  - SQL"
	want := "Requirements:\n  - Go experience\n  - SQL"
	assert.Equal(t, want, CleanText(in))
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	in := "intro\n\n\n\n\nbody\n\nend"
	want := "intro\n\nbody\n\nend"
	assert.Equal(t, want, CleanText(in))
}

func TestCleanText_TrimsEdges(t *testing.T) {
	assert.Equal(t, "hello", CleanText("\n\n  hello  \n\n"))
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n\t\n  "))
}

func TestCleanText_Idempotent(t *testing.T) {
	in := "Title\r\n\r\n\r\n  - a   b\n\n\nend  "
	once := CleanText(in)
	assert.Equal(t, once, CleanText(once))
}
