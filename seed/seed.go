// Package seed holds the static default content shown when neither the
// remote provider nor the local cache has data. Seed identifiers use a
// "fallback-" prefix: they are neither remote nor local-only, so they are
// never classified as pending sync.
package seed

import (
	"time"

	"github.com/ptroncoso/portfolio-admin/models"
)

// PageViews is the seed view counter.
const PageViews = 1000

// Snapshot builds a fully populated default snapshot stamped with now.
// Callers get a fresh value each time; the seed is never mutated in place.
func Snapshot(now time.Time) models.Snapshot {
	return models.Snapshot{
		StyleSettings:   StyleSettings(),
		Hero:            Hero(),
		About:           About(),
		WorkPhilosophy:  WorkPhilosophy(),
		Experiences:     Experiences(),
		Projects:        Projects(),
		Stats:           Stats(),
		SkillCategories: SkillCategories(),
		Technologies:    Technologies(),
		Messages:        []models.ContactMessage{},
		PageViews:       PageViews,
		LastUpdated:     now,
	}
}

func StyleSettings() models.StyleSettings {
	return models.StyleSettings{
		ParticleCount: 70,
		AccentColors: []models.AccentColor{
			{ID: "blue", Name: "Ocean", Main: "#3b82f6", Glow: "rgba(59, 130, 246, 0.5)"},
		},
	}
}

func Hero() models.HeroProfile {
	return models.HeroProfile{
		ID:            models.ParseID("fallback-hero"),
		Greeting:      "¡Hola! Soy",
		GreetingEN:    "Hi! I am",
		FirstName:     "Pablo",
		LastName:      "Troncoso",
		Title:         "Desarrollador Full Stack",
		TitleEN:       "Full Stack Developer",
		Description:   "Enfocado en construir interfaces modernas y soluciones escalables con React, Next.js y Node.js.",
		DescriptionEN: "Focused on building modern interfaces and scalable solutions with React, Next.js and Node.js.",
		GithubURL:     "https://github.com/troncosounlar-bit",
		LinkedinURL:   "https://www.linkedin.com/in/antonio-pablo-troncoso/",
		Email:         "pablotroncoso.jobs@gmail.com",
	}
}

func About() models.AboutProfile {
	return models.AboutProfile{
		ID:            models.ParseID("fallback-about"),
		Description:   "Desarrollador web fullstack especializado en la creación de interfaces modernas y soluciones escalables con React, Next.js y Node.js.",
		DescriptionEN: "Fullstack web developer specialized in creating modern interfaces and scalable solutions with React, Next.js and Node.js.",
	}
}

func WorkPhilosophy() []models.WorkPhilosophy {
	return []models.WorkPhilosophy{
		{
			ID:            models.ParseID("fallback-philosophy-1"),
			Title:         "Código Limpio",
			TitleEN:       "Clean Code",
			Description:   "Escribo código mantenible, escalable y siguiendo las mejores prácticas.",
			DescriptionEN: "I write maintainable, scalable code following best practices.",
			Icon:          "Code2",
			OrderPosition: 1,
		},
		{
			ID:            models.ParseID("fallback-philosophy-2"),
			Title:         "Aprendizaje Continuo",
			TitleEN:       "Continuous Learning",
			Description:   "La tecnología evoluciona rápidamente. Me mantengo actualizado con las últimas tendencias.",
			DescriptionEN: "Technology evolves rapidly. I stay updated with the latest trends.",
			Icon:          "BookOpen",
			OrderPosition: 2,
		},
		{
			ID:            models.ParseID("fallback-philosophy-3"),
			Title:         "Trabajo en Equipo",
			TitleEN:       "Teamwork",
			Description:   "Colaboro efectivamente con diseñadores, desarrolladores y stakeholders.",
			DescriptionEN: "I collaborate effectively with designers, developers and stakeholders.",
			Icon:          "Users",
			OrderPosition: 3,
		},
		{
			ID:            models.ParseID("fallback-philosophy-4"),
			Title:         "Atención al Detalle",
			TitleEN:       "Attention to Detail",
			Description:   "Los pequeños detalles marcan la diferencia en la experiencia del usuario.",
			DescriptionEN: "Small details make the difference in user experience.",
			Icon:          "Eye",
			OrderPosition: 4,
		},
	}
}

func Experiences() []models.Experience {
	return []models.Experience{
		{
			ID:            models.ParseID("fallback-exp-1"),
			Type:          models.ExperienceWork,
			Title:         "Docente",
			TitleEN:       "Instructor",
			Company:       "FICDE",
			CompanyEN:     "FICDE",
			Period:        "Marzo 2025 - Actualidad",
			PeriodEN:      "March 2025 - Present",
			Location:      "Remoto",
			LocationEN:    "Remote",
			Description:   "Dictado de clases sobre desarrollo web y fundamentos de JavaScript.",
			DescriptionEN: "Teaching web development and JavaScript fundamentals.",
			Technologies:  []string{"JavaScript", "HTML", "CSS", "Git", "SQL"},
			OrderPosition: 1,
		},
		{
			ID:            models.ParseID("fallback-exp-2"),
			Type:          models.ExperienceWork,
			Title:         "Freelancer Fullstack",
			TitleEN:       "Fullstack Freelancer",
			Company:       "Ultrix Labs LLC",
			CompanyEN:     "Ultrix Labs LLC",
			Period:        "Enero 2024 - Actualidad",
			PeriodEN:      "January 2024 - Present",
			Location:      "Remoto",
			LocationEN:    "Remote",
			Description:   "Diseño, desarrollo e implementación de aplicaciones web profesionales con Next.js 14, Tailwind CSS, TypeScript, Node.js y Appwrite.",
			DescriptionEN: "Design, development and implementation of professional web applications using Next.js 14, Tailwind CSS, TypeScript, Node.js and Appwrite.",
			Technologies:  []string{"React", "JavaScript", "Next.js", "TypeScript", "Appwrite", "Tailwind", "Node.js"},
			OrderPosition: 2,
		},
		{
			ID:            models.ParseID("fallback-exp-3"),
			Type:          models.ExperienceWork,
			Title:         "Ayudante Co-Docente",
			TitleEN:       "Teaching Assistant",
			Company:       "Digital House",
			CompanyEN:     "Digital House",
			Period:        "Julio 2023 - Mayo 2024",
			PeriodEN:      "July 2023 - May 2024",
			Location:      "Remoto",
			LocationEN:    "Remote",
			Description:   "Tutorías personalizadas a estudiantes del curso Fullstack Web Developer.",
			DescriptionEN: "Personalized tutoring for students in the Fullstack Web Developer course.",
			Technologies:  []string{"JavaScript", "HTML", "CSS", "React", "Node.js", "Express", "MySQL"},
			OrderPosition: 3,
		},
	}
}

func Projects() []models.Project {
	return []models.Project{
		{
			ID:            models.ParseID("fallback-project-1"),
			Title:         "VectorLab — Procesador Algorítmico de Vectores",
			TitleEN:       "VectorLab — Algorithmic Vector Processor",
			Description:   "Aplicación interactiva para visualizar estructuras algorítmicas clásicas como FOR, IF, WHILE y vectores.",
			DescriptionEN: "Interactive application to visualize classic algorithmic structures such as FOR, IF, WHILE and vectors.",
			GithubURL:     "https://github.com/troncosounlar-bit/VectorsLabs",
			Stack:         []string{"React", "TypeScript", "TailwindCSS", "shadcn/UI"},
			OrderPosition: 1,
			IsFeatured:    true,
		},
		{
			ID:            models.ParseID("fallback-project-2"),
			Title:         "Pro-Tasker — Enterprise Task & Talent Manager",
			TitleEN:       "Pro-Tasker — Enterprise Task & Talent Manager",
			Description:   "Plataforma profesional de gestión de talento y monitoreo de tareas en tiempo real.",
			DescriptionEN: "Professional platform for talent management and real-time task monitoring.",
			Stack:         []string{"React", "Supabase", "Chart.js", "Tailwind", "Webpack 5"},
			OrderPosition: 2,
			IsFeatured:    true,
		},
		{
			ID:            models.ParseID("fallback-project-3"),
			Title:         "Task Management App",
			TitleEN:       "Task Management App",
			Description:   "Aplicación de gestión de tareas con colaboración en tiempo real, notificaciones y reportes.",
			DescriptionEN: "Task management application with real-time collaboration, notifications and reports.",
			Stack:         []string{"React", "Firebase", "Material-UI"},
			OrderPosition: 3,
		},
	}
}

func Stats() []models.Stat {
	return []models.Stat{
		{ID: models.ParseID("fallback-stat-1"), Label: "Años de Experiencia", LabelEN: "Years of Experience", Value: "3+", ValueEN: "3+", Icon: "Calendar", OrderPosition: 1},
		{ID: models.ParseID("fallback-stat-2"), Label: "Proyectos Completados", LabelEN: "Completed Projects", Value: "15+", ValueEN: "15+", Icon: "CheckCircle", OrderPosition: 2},
	}
}

func SkillCategories() []models.SkillCategory {
	frontend := models.ParseID("fallback-cat-1")
	backend := models.ParseID("fallback-cat-2")
	return []models.SkillCategory{
		{
			ID:            frontend,
			Name:          "Frontend",
			OrderPosition: 1,
			Skills: []models.Skill{
				{ID: models.ParseID("fallback-skill-1"), CategoryID: frontend, Name: "React", Level: 90, OrderPosition: 1},
				{ID: models.ParseID("fallback-skill-2"), CategoryID: frontend, Name: "TypeScript", Level: 85, OrderPosition: 2},
				{ID: models.ParseID("fallback-skill-3"), CategoryID: frontend, Name: "Tailwind CSS", Level: 88, OrderPosition: 3},
			},
		},
		{
			ID:            backend,
			Name:          "Backend",
			OrderPosition: 2,
			Skills: []models.Skill{
				{ID: models.ParseID("fallback-skill-5"), CategoryID: backend, Name: "Node.js", Level: 85, OrderPosition: 1},
				{ID: models.ParseID("fallback-skill-6"), CategoryID: backend, Name: "PostgreSQL", Level: 75, OrderPosition: 2},
			},
		},
	}
}

func Technologies() []models.Technology {
	return []models.Technology{
		{ID: models.ParseID("fallback-tech-1"), Name: "React", LogoURL: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/react/react-original.svg", OrderPosition: 1},
		{ID: models.ParseID("fallback-tech-2"), Name: "TypeScript", LogoURL: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/typescript/typescript-original.svg", OrderPosition: 2},
	}
}
