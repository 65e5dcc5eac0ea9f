package jee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextMapPutReplacesInPlace(t *testing.T) {
	var m TextMap
	m.Put(Text{Lang: "en", Value: "a"})
	m.Put(Text{Lang: "fr", Value: "b"})
	m.Put(Text{Lang: "en", Value: "c"})

	assert.Equal(t, []Text{{Lang: "en", Value: "c"}, {Lang: "fr", Value: "b"}}, m.Texts())
	assert.Equal(t, 2, m.Len())

	v, ok := m.Lookup("fr")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = m.Lookup("de")
	assert.False(t, ok)
}

func TestTextMapSetReplacesAll(t *testing.T) {
	var m TextMap
	m.Put(Text{Lang: "en", Value: "a"})
	m.Set([]Text{{Lang: "de", Value: "x"}})
	assert.Equal(t, []Text{{Lang: "de", Value: "x"}}, m.Texts())

	m.Set(nil)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Get())
}
