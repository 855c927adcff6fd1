package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSources(t *testing.T) {
	srcs, err := ParseSources([]byte(`
sources:
  - name: careeronestop
    category: scholarships
    list_url: https://www.careeronestop.org/scholarships?page=%d
    link_contains: /scholarships/
    pages: 3
  - name: js-board
    category: Jobs
    list_url: https://jobs.example.org/
    headless: true
`))
	require.NoError(t, err)
	require.Len(t, srcs, 2)

	assert.Equal(t, "Scholarships", srcs[0].Category)
	assert.Equal(t, 3, srcs[0].Pages)
	assert.Equal(t, defaultSelector, srcs[0].LinkSelector)
	assert.Equal(t, "https://www.careeronestop.org/scholarships?page=2", srcs[0].PageURL(2))

	assert.True(t, srcs[1].Headless)
	assert.Equal(t, 1, srcs[1].Pages)
	assert.Equal(t, "https://jobs.example.org/", srcs[1].PageURL(5))
}

func TestParseSources_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown category", "sources:\n  - {name: a, category: Courses, list_url: https://a.test}"},
		{"missing name", "sources:\n  - {category: Jobs, list_url: https://a.test}"},
		{"relative url", "sources:\n  - {name: a, category: Jobs, list_url: /jobs}"},
		{"duplicate name", "sources:\n  - {name: a, category: Jobs, list_url: https://a.test}\n  - {name: a, category: Jobs, list_url: https://b.test}"},
		{"too many pages", "sources:\n  - {name: a, category: Jobs, list_url: https://a.test, pages: 99}"},
		{"not yaml", "sources: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSources([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
