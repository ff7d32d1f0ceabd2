package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public visitor surface, the auth endpoints, and
// the session-guarded admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, session sessionMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.contentHandler.health())
		r.Get("/content", handlers.contentHandler.getContent())
		r.Post("/contact", handlers.contentHandler.submitContact())
		r.Post("/view", handlers.contentHandler.registerView())

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
		r.Get("/auth/session", handlers.authHandler.session())
		r.Post("/auth/renew", handlers.authHandler.renew())
		r.Get("/auth/lock", handlers.authHandler.lockStatus())
	})

	// Admin routes behind the offline session token
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(session.authenticate)

		r.Post("/auth/password", handlers.authHandler.changePassword())

		r.Get("/admin/state", handlers.adminHandler.getState())
		r.Post("/admin/reload", handlers.adminHandler.reload())
		r.Get("/admin/pending", handlers.adminHandler.getPending())
		r.Post("/admin/sync", handlers.adminHandler.sync())

		r.Get("/admin/language", handlers.adminHandler.getLanguage())
		r.Put("/admin/language", handlers.adminHandler.setLanguage())

		r.Put("/admin/style", handlers.adminHandler.saveStyle())
		r.Put("/admin/hero", handlers.adminHandler.saveHero())
		r.Put("/admin/about", handlers.adminHandler.saveAbout())

		r.Post("/admin/philosophy", handlers.adminHandler.savePhilosophy())
		r.Delete("/admin/philosophy/{id}", handlers.adminHandler.deletePhilosophy())

		r.Post("/admin/experience", handlers.adminHandler.saveExperience())
		r.Delete("/admin/experience/{id}", handlers.adminHandler.deleteExperience())

		r.Post("/admin/project", handlers.adminHandler.saveProject())
		r.Delete("/admin/project/{id}", handlers.adminHandler.deleteProject())

		r.Post("/admin/stat", handlers.adminHandler.saveStat())

		r.Post("/admin/skill", handlers.adminHandler.saveSkill())
		r.Delete("/admin/skill/{id}", handlers.adminHandler.deleteSkill())

		r.Post("/admin/technology", handlers.adminHandler.saveTechnology())
		r.Delete("/admin/technology/{id}", handlers.adminHandler.deleteTechnology())

		r.Put("/admin/message/{id}/read", handlers.adminHandler.markMessageRead())
		r.Delete("/admin/message/{id}", handlers.adminHandler.deleteMessage())

		r.Get("/admin/export", handlers.adminHandler.exportSnapshot())
		r.Post("/admin/import", handlers.adminHandler.importSnapshot())
		r.Post("/admin/backup/restore", handlers.adminHandler.restoreBackup())

		r.Post("/admin/media/{bucket}", handlers.mediaHandler.upload())
		r.Delete("/admin/media", handlers.mediaHandler.remove())
	})
}
