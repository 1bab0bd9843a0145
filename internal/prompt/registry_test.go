package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleProfile(t *testing.T) {
	ghibli := StyleProfile("Studio Ghibli")
	assert.Contains(t, ghibli.Base, "Studio Ghibli")
	assert.Contains(t, ghibli.Character, "whimsical characters")

	// 同组地方语种共享同一描述
	assert.Equal(t, StyleProfile("Tamil TV Animation"), StyleProfile("Bengali TV Animation"))

	unknown := StyleProfile("Cave Painting")
	assert.Equal(t, defaultStyleProfile, unknown)
	assert.NotEmpty(t, unknown.Base)
	assert.NotEmpty(t, unknown.Character)
}

func TestCultureProfile(t *testing.T) {
	jp := CultureProfile("Japanese (Japan)")
	assert.Equal(t, "Japanese garden", jp.Nature)
	assert.Equal(t, "kimono and festival", jp.Cultural)

	unknown := CultureProfile("Klingon")
	assert.Equal(t, defaultCultureProfile, unknown)
	assert.Equal(t, "magical", unknown.Landscape)
}

func TestLanguageCode(t *testing.T) {
	assert.Equal(t, "English", LanguageCode("English (US)"))
	assert.Equal(t, "English", LanguageCode("English (UK)"))
	assert.Equal(t, "Spanish", LanguageCode("Spanish (Spain/LatAm)"))
	assert.Equal(t, "Cantonese", LanguageCode("Chinese (Cantonese)"))
	assert.Equal(t, "Swahili", LanguageCode("Swahili"))
	// 未收录语言回退到英语
	assert.Equal(t, "English", LanguageCode("Elvish"))
	assert.Equal(t, "English", LanguageCode(""))
}
