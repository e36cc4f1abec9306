package server

import (
	"github.com/avikm/job-board/internal/entities"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerEnumValidators teaches gin's binding engine the closed enum values,
// so client-supplied strings are rejected at the boundary instead of being
// trusted into constrained slots.
func registerEnumValidators() error {

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	validations := map[string]func(string) bool{
		"workmode": func(s string) bool {
			_, err := entities.ToWorkMode(s)
			return err == nil
		},
		"education": func(s string) bool {
			_, err := entities.ToEducation(s)
			return err == nil
		},
		"skillcategory": func(s string) bool {
			_, err := entities.ToSkill(s)
			return err == nil
		},
		"genderpreference": func(s string) bool {
			_, err := entities.ToGenderPreference(s)
			return err == nil
		},
		"jobstatus": func(s string) bool {
			_, err := entities.ToJobStatus(s)
			return err == nil
		},
	}

	for tag, check := range validations {
		check := check
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}
