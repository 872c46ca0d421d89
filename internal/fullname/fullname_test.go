package fullname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarlcorp/zbeacon/internal/nickname"
	"github.com/zarlcorp/zbeacon/internal/variant"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	s, err := nickname.Default()
	require.NoError(t, err)
	return New(s)
}

func TestGenerateFirstLast(t *testing.T) {
	names, err := newGenerator(t).Generate("James", "", "Bond")
	require.NoError(t, err)

	for _, want := range []string{"James Bond", "Bond James", "Bond, James"} {
		assert.True(t, names.Has(want), "missing %q", want)
	}
}

func TestGenerateAlternateFirstNames(t *testing.T) {
	names, err := newGenerator(t).Generate("James", "", "Bond")
	require.NoError(t, err)

	for _, want := range []string{"Jim Bond", "Jimmy Bond", "Jimmie Bond", "Jamie Bond", "Bond, Jim"} {
		assert.True(t, names.Has(want), "missing %q", want)
	}
	// five first names, three layouts each
	assert.Equal(t, 15, names.Len())
}

func TestGenerateFirstMiddleLast(t *testing.T) {
	names, err := newGenerator(t).Generate("James", "Herbert", "Bond")
	require.NoError(t, err)

	want := []string{
		"James Herbert Bond", "Herbert Bond James", "Bond James Herbert",
		"James, Herbert, Bond", "Herbert, Bond, James", "Bond, James, Herbert",
		"Bond, James Herbert",
	}
	for _, w := range want {
		assert.True(t, names.Has(w), "missing %q", w)
	}
}

func TestGenerateMiddleInitial(t *testing.T) {
	names, err := newGenerator(t).Generate("James", "Herbert", "Bond")
	require.NoError(t, err)

	want := []string{
		"James H Bond", "H Bond James", "Bond James H",
		"James, H, Bond", "H, Bond, James", "Bond, James, H",
		"Bond, James H",
	}
	for _, w := range want {
		assert.True(t, names.Has(w), "missing %q", w)
	}
}

func TestGenerateMiddleWithNicknames(t *testing.T) {
	names, err := newGenerator(t).Generate("James", "Herbert", "Bond")
	require.NoError(t, err)

	assert.True(t, names.Has("Bond, Jim Herbert"))
	assert.True(t, names.Has("Jimmy H Bond"))
	// no initials of the first or last name here
	assert.False(t, names.Has("J Herbert Bond"))
	assert.False(t, names.Has("James Herbert B"))
	// 5 first names * (3 + 7*2)
	assert.Equal(t, 85, names.Len())
}

func TestGenerateCanonicalizesCase(t *testing.T) {
	names, err := newGenerator(t).Generate("jAMES", "herbert", "BOND")
	require.NoError(t, err)
	assert.True(t, names.Has("James Herbert Bond"))
	assert.True(t, names.Has("Jim Bond"))
}

func TestGenerateEmptyMiddleEqualsNoMiddle(t *testing.T) {
	g := newGenerator(t)

	none, err := g.Generate("James", "", "Bond")
	require.NoError(t, err)
	blank, err := g.Generate("James", "   ", "Bond")
	require.NoError(t, err)

	assert.Equal(t, none.Sorted(), blank.Sorted())
}

func TestGenerateWithoutNicknames(t *testing.T) {
	names, err := New(nil).Generate("Zebulon", "", "Pike")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pike Zebulon", "Pike, Zebulon", "Zebulon Pike"}, names.Sorted())
}

func TestGenerateUnknownFirstName(t *testing.T) {
	names, err := newGenerator(t).Generate("Abcdefg", "", "Bond")
	require.NoError(t, err)
	assert.Equal(t, 3, names.Len())
}

func TestGenerateSingleCharacterMiddle(t *testing.T) {
	names, err := New(nil).Generate("Harry", "S", "Truman")
	require.NoError(t, err)
	// full middle and initial coincide
	assert.Equal(t, 3+7, names.Len())
	assert.True(t, names.Has("Truman, Harry S"))
}

func TestGenerateDeterministic(t *testing.T) {
	g := newGenerator(t)
	a, err := g.Generate("Elizabeth", "Anne", "Windsor")
	require.NoError(t, err)
	b, err := g.Generate("Elizabeth", "Anne", "Windsor")
	require.NoError(t, err)
	assert.Equal(t, a.Sorted(), b.Sorted())
}

func TestGenerateRequiresFirstAndLast(t *testing.T) {
	g := newGenerator(t)

	tests := []struct {
		name              string
		first, middle, la string
	}{
		{"no first", "", "Herbert", "Bond"},
		{"no last", "James", "Herbert", ""},
		{"blank first", "   ", "", "Bond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(tt.first, tt.middle, tt.la)
			assert.ErrorIs(t, err, variant.ErrEmptyName)
		})
	}
}

func TestLayoutsRender(t *testing.T) {
	var got []string
	for _, ly := range append(append([]layout{}, twoPart...), threePart...) {
		got = append(got, ly.render("{f}", "{m}", "{l}"))
	}

	want := []string{
		"{f} {l}", "{l} {f}", "{l}, {f}",
		"{f} {m} {l}", "{m} {l} {f}", "{l} {f} {m}",
		"{f}, {m}, {l}", "{m}, {l}, {f}", "{l}, {f}, {m}",
		"{l}, {f} {m}",
	}
	assert.Equal(t, want, got)
}

type fakeSiblings map[string][]string

func (f fakeSiblings) Siblings(name string) []string { return f[name] }

func TestGenerateUsesSiblingsInterface(t *testing.T) {
	g := New(fakeSiblings{"Robert": {"Bob"}})
	names, err := g.Generate("robert", "", "smith")
	require.NoError(t, err)
	assert.True(t, names.Has("Bob Smith"))
	assert.True(t, names.Has("Smith, Robert"))
}
