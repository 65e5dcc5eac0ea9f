package jee

import "slices"

// Text is a free-text value tagged with an optional xml:lang locale.
type Text struct {
	Lang  string `yaml:"lang,omitempty"`
	Value string `yaml:"value"`
}

// TextMap holds at most one Text per locale, in first-insertion order.
// The zero value is an empty map.
type TextMap struct {
	index map[string]int
	texts []Text
}

// Set replaces the whole map with texts. A later text for a locale already
// present overwrites the earlier one in place.
func (m *TextMap) Set(texts []Text) {
	m.index = nil
	m.texts = nil
	for _, t := range texts {
		m.Put(t)
	}
}

// Put adds t or replaces the text stored for t.Lang.
func (m *TextMap) Put(t Text) {
	if i, ok := m.index[t.Lang]; ok {
		m.texts[i] = t
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[t.Lang] = len(m.texts)
	m.texts = append(m.texts, t)
}

// Lookup returns the text stored for lang.
func (m *TextMap) Lookup(lang string) (string, bool) {
	i, ok := m.index[lang]
	if !ok {
		return "", false
	}
	return m.texts[i].Value, true
}

// Get returns the text without a locale, falling back to the first entry.
func (m *TextMap) Get() string {
	if v, ok := m.Lookup(""); ok {
		return v
	}
	if len(m.texts) == 0 {
		return ""
	}
	return m.texts[0].Value
}

// Texts returns a copy of the entries in order.
func (m *TextMap) Texts() []Text {
	return slices.Clone(m.texts)
}

// Len reports the number of locales.
func (m *TextMap) Len() int {
	return len(m.texts)
}
