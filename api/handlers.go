package api

import (
	"github.com/ptroncoso/portfolio-admin/auth"
	"github.com/ptroncoso/portfolio-admin/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	contentHandler contentHandler
	authHandler    authHandler
	adminHandler   adminHandler
	mediaHandler   mediaHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(orchestrator *services.Orchestrator, authenticator *auth.Authenticator, media *services.MediaStore) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(orchestrator),
		authHandler:    newAuthHandler(authenticator),
		adminHandler:   newAdminHandler(orchestrator),
		mediaHandler:   newMediaHandler(media),
	}
}
