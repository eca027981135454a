package util

import (
	"errors"
	"fmt"
	"quiz_progress_backend/internal/model"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// custom validation tags
const (
	studyDaysTag  = "studydays"
	planStatusTag = "planstatus"
)

var registerOnce sync.Once

// RegisterValidators installs the custom tags on gin's binding validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation(studyDaysTag, studyDaysValidation)
		_ = v.RegisterValidation(planStatusTag, planStatusValidation)
	})
}

// studyDaysValidation accepts weekday indices 0..6 without repeats.
func studyDaysValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	seen := make(map[int64]bool, field.Len())
	for i := 0; i < field.Len(); i++ {
		elem := field.Index(i)
		switch elem.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return false
		}
		d := elem.Int()
		if d < 0 || d > 6 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

func planStatusValidation(fl validator.FieldLevel) bool {
	switch model.PlanStatus(fl.Field().String()) {
	case model.PlanActive, model.PlanInactive:
		return true
	}
	return false
}

// ValidationMessage turns binding errors into a short client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case studyDaysTag:
			msgs = append(msgs, fmt.Sprintf("%s must hold distinct weekdays 0-6", fe.Field()))
		case planStatusTag:
			msgs = append(msgs, fmt.Sprintf("%s must be active or inactive", fe.Field()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
