package service

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docuvault/internal/config"
	"docuvault/internal/domain"
	"docuvault/internal/domain/services"
)

// fileExtension returns the lowercase extension of name without the
// dot, or "" when name has none.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

func validateUploadInputs(title, category, originalName string) error {
	err := validation.Errors{
		"title": validation.Validate(title,
			validation.Required, validation.Length(1, config.MaxTitleLength)),
		"category": validation.Validate(category,
			validation.Length(0, config.MaxCategoryLength)),
		"original_name": validation.Validate(originalName,
			validation.Required, validation.Length(1, config.MaxOriginalNameLength)),
	}.Filter()
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	ext := fileExtension(originalName)
	if !config.AllowedExtensions[ext] {
		return &domain.ValidationError{
			Message: fmt.Sprintf("file type %q is not allowed", ext),
		}
	}

	return nil
}

func validateUploadRequest(req *services.UploadRequest) error {
	if req == nil || req.Content == nil {
		return &domain.ValidationError{Message: "no file supplied"}
	}
	return validateUploadInputs(req.Title, req.Category, req.OriginalName)
}

func validateReviseRequest(req *services.ReviseRequest) error {
	if req == nil || req.Content == nil {
		return &domain.ValidationError{Message: "no file supplied"}
	}
	return validateUploadInputs(req.Title, req.Category, req.OriginalName)
}
