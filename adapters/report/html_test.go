package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderWrapsMarkdown(t *testing.T) {
	r := NewHTMLRenderer("Профиль")
	out := string(r.Render("# Заголовок\n\nАбзац с **жирным** текстом.\n"))

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Профиль</title>")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Заголовок")
	assert.Contains(t, out, "<strong>жирным</strong>")
	assert.Contains(t, out, "</html>")
}

func TestRenderEmptyDocument(t *testing.T) {
	r := NewHTMLRenderer("Пусто")
	out := string(r.Render(""))
	assert.Contains(t, out, "<body>")
	assert.Contains(t, out, "</body>")
}
