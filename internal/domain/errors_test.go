package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	m "fsfsfixer.dev/pkg/fsfsfixer/internal/model"
)

func TestIsFixError(t *testing.T) {
	assert.True(t, IsFixError(ErrStructuralMismatch))
	assert.True(t, IsFixError(ErrNoOpSubstitution))
	assert.True(t, IsFixError(ErrRepeatedFix))
	assert.True(t, IsFixError(ErrOracle))
	assert.True(t, IsFixError(fmt.Errorf("wrapped: %w", ErrOracle)))
	assert.False(t, IsFixError(ErrUnrecognizedDiagnostic))
	assert.False(t, IsFixError(errors.New("permission denied")))
	assert.False(t, IsFixError(nil))
}

func TestUnfixableError(t *testing.T) {
	d := m.Diagnostic{Source: m.SourceVerify, Lines: []string{"svnadmin: one", "svnadmin: two"}}

	plain := &UnfixableError{Diagnostic: d}
	assert.Equal(t, "unfixable error:\n  svnadmin: one\n  svnadmin: two", plain.Error())
	assert.ErrorIs(t, plain, ErrUnrecognizedDiagnostic)
	assert.False(t, IsFixError(plain))

	cause := fixErrorf(ErrOracle, "no node-revision 2.0 in r5")
	withCause := &UnfixableError{Diagnostic: d, Cause: cause}
	assert.Contains(t, withCause.Error(), "unfixable error (fix error: lookup failed: no node-revision 2.0 in r5):")
	assert.ErrorIs(t, withCause, ErrOracle)
	assert.NotErrorIs(t, withCause, ErrUnrecognizedDiagnostic)
	assert.True(t, IsFixError(withCause))

	assert.Equal(t, "svnadmin: one\nsvnadmin: two", plain.Diagnostic.Text())
	assert.Contains(t, plain.Error(), "svnadmin: one")
	assert.Contains(t, plain.Error(), "svnadmin: two")
}
