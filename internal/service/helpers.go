// Package service holds the business rules that sit between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tastebuds/internal/models"
)

type existsFunc func(ctx context.Context, id uint) (bool, error)

// requireReference validates a foreign key carried in a request body. A
// missing row is the caller's mistake, so it is a validation error.
func requireReference(ctx context.Context, exists existsFunc, field, resource string, id uint) error {
	if id == 0 {
		return models.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewValidationError(fmt.Sprintf("%s with ID %d does not exist", resource, id))
	}
	return nil
}

// requireFound is requireReference for ids taken from the URL path, where a
// missing row is a 404.
func requireFound(ctx context.Context, exists existsFunc, resource string, id uint) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError(resource, id)
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return models.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	return nil
}

func isNotFound(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeNotFound
}
