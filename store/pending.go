package store

import "github.com/ptroncoso/portfolio-admin/models"

// PendingChanges is the subset of a snapshot whose records carry local-only
// identifiers, grouped per family. Singleton families (hero, about, style)
// have no create path, so they never appear here.
type PendingChanges struct {
	Experiences    []models.Experience
	Projects       []models.Project
	WorkPhilosophy []models.WorkPhilosophy
	Stats          []models.Stat
	Technologies   []models.Technology
	Skills         []models.Skill
}

// Pending classifies a snapshot's records without mutating anything. A
// record is pending exactly when its identifier is local-only.
func Pending(snap models.Snapshot) PendingChanges {
	var p PendingChanges
	for _, e := range snap.Experiences {
		if e.ID.IsLocal() {
			p.Experiences = append(p.Experiences, e)
		}
	}
	for _, pr := range snap.Projects {
		if pr.ID.IsLocal() {
			p.Projects = append(p.Projects, pr)
		}
	}
	for _, w := range snap.WorkPhilosophy {
		if w.ID.IsLocal() {
			p.WorkPhilosophy = append(p.WorkPhilosophy, w)
		}
	}
	for _, st := range snap.Stats {
		if st.ID.IsLocal() {
			p.Stats = append(p.Stats, st)
		}
	}
	for _, t := range snap.Technologies {
		if t.ID.IsLocal() {
			p.Technologies = append(p.Technologies, t)
		}
	}
	for _, cat := range snap.SkillCategories {
		for _, sk := range cat.Skills {
			if sk.ID.IsLocal() {
				p.Skills = append(p.Skills, sk)
			}
		}
	}
	return p
}

// Count is the total number of pending records across all families; it
// drives the "N items pending sync" indicator.
func (p PendingChanges) Count() int {
	return len(p.Experiences) + len(p.Projects) + len(p.WorkPhilosophy) +
		len(p.Stats) + len(p.Technologies) + len(p.Skills)
}

// PendingCount is a convenience over Pending for callers that only need
// the total.
func PendingCount(snap models.Snapshot) int {
	return Pending(snap).Count()
}
