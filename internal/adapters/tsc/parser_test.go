package tsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsrun/internal/core/domain"
)

func TestParseOutput(t *testing.T) {
	output := "src/a.ts(1,7): error TS2322: Type 'number' is not assignable to type 'string'.\n" +
		"src/b.ts(3,1): error TS2345: Argument of type 'string' is not assignable.\n" +
		"  Type 'string' is not assignable to type 'number'.\r\n" +
		"/abs/c.ts(2,2): warning TS6133: 'y' is declared but its value is never read.\n" +
		"error TS5023: Unknown compiler option 'foo'.\n" +
		"Found 4 errors.\n"

	got := parseOutput(output, "/repo")

	require.Len(t, got["/repo/src/a.ts"], 1)
	assert.Equal(t, domain.Diagnostic{
		File:     "/repo/src/a.ts",
		Line:     1,
		Column:   7,
		Code:     2322,
		Category: domain.CategoryError,
		Kind:     domain.KindSemantic,
		Message:  "Type 'number' is not assignable to type 'string'.",
	}, got["/repo/src/a.ts"][0])

	require.Len(t, got["/repo/src/b.ts"], 1)
	assert.Equal(t,
		"Argument of type 'string' is not assignable.\n  Type 'string' is not assignable to type 'number'.",
		got["/repo/src/b.ts"][0].Message)

	require.Len(t, got["/abs/c.ts"], 1)
	assert.Equal(t, domain.CategoryWarning, got["/abs/c.ts"][0].Category)

	require.Len(t, got[""], 1)
	assert.Equal(t, 5023, got[""][0].Code)
	assert.Zero(t, got[""][0].Line)
}

func TestParseOutput_Empty(t *testing.T) {
	assert.Empty(t, parseOutput("", "/repo"))
	assert.Empty(t, parseOutput("Version 5.4.5\n", "/repo"))
}
