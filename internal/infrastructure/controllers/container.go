package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewGenerateController); err != nil {
		return err
	}
	if err := container.Provide(NewResolveController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The generate controller is mounted on the root command instead.
func NewControllers(resolveController *ResolveController) *[]entities.Controller {
	return &[]entities.Controller{
		resolveController,
	}
}
