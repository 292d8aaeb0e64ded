package internal

import (
	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/infrastructure/controllers"
)

// AppInternal holds every controller the CLI is assembled from.
type AppInternal struct {
	rootController *controllers.GenerateController
	controllers    []entities.Controller
}

// NewAppInternal creates the application from its controllers.
func NewAppInternal(
	rootController *controllers.GenerateController,
	subControllers *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		rootController: rootController,
		controllers:    *subControllers,
	}
}

// GetRootController returns the controller mounted on the root command.
func (it *AppInternal) GetRootController() entities.Controller {
	return it.rootController
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
