package keymap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionsGrouped(t *testing.T) {
	var titles []string
	for _, s := range Sections {
		titles = append(titles, s.Title)
		assert.NotEmpty(t, s.Bindings, s.Title)
	}
	assert.Equal(t, []string{"Navigation", "Selection", "Actions"}, titles)
}

func TestMarkdownListsEveryBinding(t *testing.T) {
	md := Markdown()
	for _, s := range Sections {
		assert.Contains(t, md, "## "+s.Title)
		for _, b := range s.Bindings {
			assert.True(t, strings.Contains(md, "`"+b.Keys+"`"), b.Keys)
		}
	}
}

func TestKeyWidth(t *testing.T) {
	assert.Equal(t, len("Ctrl/Alt+Enter"), KeyWidth())
}
