package archwiki_test

import (
	"testing"

	"github.com/fwojciec/archwiki"
	"github.com/stretchr/testify/assert"
)

func TestPageURL(t *testing.T) {
	t.Parallel()

	t.Run("builds title url", func(t *testing.T) {
		t.Parallel()

		got := archwiki.PageURL("https://wiki.archlinux.org/", "Installation guide")

		assert.Equal(t, "https://wiki.archlinux.org/title/Installation_guide", got)
	})

	t.Run("escapes segments but keeps subpages", func(t *testing.T) {
		t.Parallel()

		got := archwiki.PageURL(archwiki.DefaultBaseURL, "Pacman/Tips and tricks?")

		assert.Equal(t, "https://wiki.archlinux.org/title/Pacman/Tips_and_tricks%3F", got)
	})

	t.Run("keeps urls", func(t *testing.T) {
		t.Parallel()

		got := archwiki.PageURL(archwiki.DefaultBaseURL, "https://example.com/title/X")

		assert.Equal(t, "https://example.com/title/X", got)
	})
}

func TestCategoryURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://wiki.archlinux.org/title/Category:Audio",
		archwiki.CategoryURL("https://wiki.archlinux.org", "/title/Category:Audio"))
	assert.Equal(t,
		"https://other.example/title/Category:Audio",
		archwiki.CategoryURL("https://wiki.archlinux.org", "https://other.example/title/Category:Audio"))
}

func TestCategoryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Package management", archwiki.CategoryName("/title/Category:Package_management"))
	assert.Equal(t, "Système", archwiki.CategoryName("/title/Category:Syst%C3%A8me"))
	assert.Equal(t, "Audio", archwiki.CategoryName("https://wiki.archlinux.org/title/Category:Audio"))
}
