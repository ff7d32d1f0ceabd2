package models

// Language selects which variant of a bilingual field is shown. The primary
// language is Spanish; English fields are optional and fall back to the
// primary text when empty. The fallback is computed at read time, never
// stored.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// ParseLanguage normalizes a raw language tag, defaulting to the primary.
func ParseLanguage(raw string) Language {
	if Language(raw) == LanguageEN {
		return LanguageEN
	}
	return LanguageES
}

// localized picks the secondary-language variant when requested and present,
// otherwise the primary text.
func localized(primary, secondary string, lang Language) string {
	if lang == LanguageEN && secondary != "" {
		return secondary
	}
	return primary
}

func (h HeroProfile) Localized(lang Language) HeroProfile {
	h.Greeting = localized(h.Greeting, h.GreetingEN, lang)
	h.Title = localized(h.Title, h.TitleEN, lang)
	h.Description = localized(h.Description, h.DescriptionEN, lang)
	return h
}

func (a AboutProfile) Localized(lang Language) AboutProfile {
	a.Description = localized(a.Description, a.DescriptionEN, lang)
	return a
}

func (w WorkPhilosophy) Localized(lang Language) WorkPhilosophy {
	w.Title = localized(w.Title, w.TitleEN, lang)
	w.Description = localized(w.Description, w.DescriptionEN, lang)
	return w
}

func (e Experience) Localized(lang Language) Experience {
	e.Title = localized(e.Title, e.TitleEN, lang)
	e.Company = localized(e.Company, e.CompanyEN, lang)
	e.Period = localized(e.Period, e.PeriodEN, lang)
	e.Location = localized(e.Location, e.LocationEN, lang)
	e.Description = localized(e.Description, e.DescriptionEN, lang)
	return e
}

func (p Project) Localized(lang Language) Project {
	p.Title = localized(p.Title, p.TitleEN, lang)
	p.Description = localized(p.Description, p.DescriptionEN, lang)
	return p
}

func (s Stat) Localized(lang Language) Stat {
	s.Label = localized(s.Label, s.LabelEN, lang)
	s.Value = localized(s.Value, s.ValueEN, lang)
	return s
}

// Localized applies the language fallback to every bilingual field in the
// snapshot. It is the single read-boundary transform; callers never pick
// *_en fields ad hoc.
func (s Snapshot) Localized(lang Language) Snapshot {
	out := s.Clone()
	out.Hero = out.Hero.Localized(lang)
	out.About = out.About.Localized(lang)
	for i, w := range out.WorkPhilosophy {
		out.WorkPhilosophy[i] = w.Localized(lang)
	}
	for i, e := range out.Experiences {
		out.Experiences[i] = e.Localized(lang)
	}
	for i, p := range out.Projects {
		out.Projects[i] = p.Localized(lang)
	}
	for i, st := range out.Stats {
		out.Stats[i] = st.Localized(lang)
	}
	return out
}
