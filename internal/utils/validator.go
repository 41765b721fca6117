package utils

import (
	"errors"
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"
)

// Validator bundles the struct validator with the HTML sanitizer used on
// incoming payloads.
type Validator struct {
	Validate *validator.Validate
	policy   *bluemonday.Policy
}

var instance *Validator
var once sync.Once

// GetValidator returns the shared validator instance with all custom
// validations registered.
func GetValidator() *Validator {
	once.Do(func() {
		instance = &Validator{
			Validate: validator.New(validator.WithRequiredStructEnabled()),
			policy:   bluemonday.StrictPolicy(),
		}

		registerCustomValidators(instance.Validate)
	})

	return instance
}

// SanitizeData strips any markup from every string field of the given struct
// pointer. Nested structs are sanitized recursively.
func (v *Validator) SanitizeData(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return errors.New("payload must be a pointer to a struct")
	}

	v.sanitizeStruct(value.Elem())
	return nil
}

func (v *Validator) sanitizeStruct(value reflect.Value) {
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(v.policy.Sanitize(field.String()))
		case reflect.Struct:
			v.sanitizeStruct(field)
		}
	}
}

func registerCustomValidators(v *validator.Validate) {
	if err := v.RegisterValidation("nickname_validation", nicknameValidation); err != nil {
		log.Errorf("Error registering nickname_validation: %v", err)
	}

	if err := v.RegisterValidation("ban_kind_validation", banKindValidation); err != nil {
		log.Errorf("Error registering ban_kind_validation: %v", err)
	}
}

// banKindValidation accepts exactly the two moderation ban kinds.
func banKindValidation(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == "temporary" || kind == "permanent"
}

func nicknameValidation(fl validator.FieldLevel) bool {
	nickname := fl.Field().String()
	// Define the regular expression pattern for a valid nickname
	// The pattern allows a-z, A-Z, 0-9, ., -, and _
	pattern := `^[a-zA-Z0-9.\-_]+$`
	match, err := regexp.MatchString(pattern, nickname)
	if err != nil {
		return false
	}

	return match
}
