package recitation

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"webuddhist/internal/config"
	models "webuddhist/internal/domain/models/recitation"
	"webuddhist/internal/languages"
)

// validateTextID checks that a text ID is a UUID
func validateTextID(value interface{}) error {
	id, _ := value.(string)
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("must be a valid UUID")
	}
	return nil
}

// supportedLanguage builds a rule rejecting codes unknown to the registry
func supportedLanguage(registry *languages.Registry) validation.RuleFunc {
	return func(value interface{}) error {
		code, _ := value.(string)
		if code == "" {
			return nil
		}
		if !registry.IsSupported(code) {
			return fmt.Errorf("unsupported language code %q", code)
		}
		return nil
	}
}

func languageListRules(registry *languages.Registry) []validation.Rule {
	return []validation.Rule{
		validation.Length(0, config.MaxLanguagesPerAxis),
		validation.Each(validation.Required, validation.By(supportedLanguage(registry))),
	}
}

func (s *recitationService) validateDetailsRequest(textID string, req *models.RecitationDetailsRequest) error {
	if err := validation.Validate(textID, validation.Required, validation.By(validateTextID)); err != nil {
		return fmt.Errorf("text_id: %w", err)
	}

	listRules := languageListRules(s.languages)
	return validation.ValidateStruct(req,
		validation.Field(&req.Language, validation.Required, validation.By(supportedLanguage(s.languages))),
		validation.Field(&req.Recitation, listRules...),
		validation.Field(&req.Translations, listRules...),
		validation.Field(&req.Transliterations, listRules...),
		validation.Field(&req.Adaptations, listRules...),
	)
}

func (s *recitationService) validateListRequest(search, language string) error {
	if err := validation.Validate(search, validation.Length(0, config.MaxSearchLength)); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := validation.Validate(language, validation.Required, validation.By(supportedLanguage(s.languages))); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	return nil
}
