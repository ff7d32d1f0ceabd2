package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageEN, ParseLanguage("en"))
	assert.Equal(t, LanguageES, ParseLanguage("es"))
	assert.Equal(t, LanguageES, ParseLanguage(""))
	assert.Equal(t, LanguageES, ParseLanguage("fr"))
}

func TestLocalizedFallsBackWhenVariantMissing(t *testing.T) {
	hero := HeroProfile{
		Greeting:   "Hola",
		GreetingEN: "Hello",
		Title:      "Desarrollador",
		// no TitleEN
	}

	en := hero.Localized(LanguageEN)
	assert.Equal(t, "Hello", en.Greeting)
	assert.Equal(t, "Desarrollador", en.Title, "missing variant falls back to primary")

	es := hero.Localized(LanguageES)
	assert.Equal(t, "Hola", es.Greeting)
	assert.Equal(t, "Desarrollador", es.Title)
}

func TestSnapshotLocalizedDoesNotMutateOriginal(t *testing.T) {
	snap := Snapshot{
		Hero: HeroProfile{Greeting: "Hola", GreetingEN: "Hello"},
		Experiences: []Experience{
			{Title: "Ingeniera", TitleEN: "Engineer"},
		},
		Stats: []Stat{
			{Label: "Años", LabelEN: "Years", Value: "8"},
		},
	}

	out := snap.Localized(LanguageEN)
	assert.Equal(t, "Hello", out.Hero.Greeting)
	assert.Equal(t, "Engineer", out.Experiences[0].Title)
	assert.Equal(t, "Years", out.Stats[0].Label)

	// the source snapshot keeps its primary text
	assert.Equal(t, "Hola", snap.Hero.Greeting)
	assert.Equal(t, "Ingeniera", snap.Experiences[0].Title)
}

func TestCloneIsDeep(t *testing.T) {
	snap := Snapshot{
		Experiences: []Experience{
			{Title: "Original", Technologies: []string{"Go"}},
		},
		SkillCategories: []SkillCategory{
			{Name: "Backend", Skills: []Skill{{Name: "Go", Level: 90}}},
		},
	}

	clone := snap.Clone()
	clone.Experiences[0].Title = "Changed"
	clone.Experiences[0].Technologies[0] = "Rust"
	clone.SkillCategories[0].Skills[0].Level = 10

	assert.Equal(t, "Original", snap.Experiences[0].Title)
	assert.Equal(t, "Go", string(snap.Experiences[0].Technologies[0]))
	assert.Equal(t, 90, snap.SkillCategories[0].Skills[0].Level)
}
