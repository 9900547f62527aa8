package usfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesGetFirstWins(t *testing.T) {
	attrs := Attributes{
		{Key: "a", Value: "1", HasValue: true},
		{Key: "b", Value: "2", HasValue: true},
		{Key: "a", Value: "3", HasValue: true},
	}

	v, ok := attrs.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = attrs.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}

func TestAttributesHas(t *testing.T) {
	attrs := Attributes{{Key: "strong"}}
	assert.True(t, attrs.Has("strong"))
	assert.False(t, attrs.Has("lemma"))

	// A bare key is present with value "".
	v, ok := attrs.Get("strong")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestDocumentElementsByTag(t *testing.T) {
	doc, err := ParseString(`
\v 1 first
\p paragraph
\v 2 second
`)
	require.NoError(t, err)

	verses := doc.ElementsByTag("v")
	require.Len(t, verses, 2)
	assert.Equal(t, "1 first\n", verses[0].LeadingText)
	assert.Equal(t, "2 second\n", verses[1].LeadingText)

	assert.Empty(t, doc.ElementsByTag("id"))
}

func TestDocumentWalkOrder(t *testing.T) {
	doc, err := ParseString(`\a \b \c hi\c*\b* x \d y\d*`)
	require.NoError(t, err)

	var tags []string
	doc.Walk(func(e *Element) {
		tags = append(tags, e.Tag)
	})
	assert.Equal(t, []string{"a", "b", "c", "d"}, tags)
}

func TestElementText(t *testing.T) {
	doc, err := ParseString(`\v 1 \w hello | x-occurences = "1"\w*`)
	require.NoError(t, err)
	assert.Equal(t, "1 hello ", doc.Elements[0].Text())

	doc, err = ParseString(`\a \b \c hi\c*\b* tail`)
	require.NoError(t, err)
	assert.Equal(t, "hi tail", doc.Elements[0].Text())
}
