package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validationOnce sync.Once
	trans          ut.Translator
)

// setupValidation makes gin's validator report json field names and
// registers English messages. It must run before the first bind, since the
// validator caches struct field names. It panics if the translations cannot
// be installed.
func setupValidation() {
	validationOnce.Do(func() {
		if err := registerTranslations(); err != nil {
			panic(fmt.Sprintf("setup validation: %v", err))
		}
	})
}

func registerTranslations() error {
	locale := en.New()
	t, found := ut.New(locale, locale).GetTranslator(locale.Locale())
	if !found {
		return fmt.Errorf("translator %q not found", locale.Locale())
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterTagNameFunc(jsonFieldName)
	if err := entranslations.RegisterDefaultTranslations(v, t); err != nil {
		return fmt.Errorf("register translations: %w", err)
	}

	trans = t
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// bindJSON decodes and validates the body into dst. Validation failures come
// back as a BadRequest error listing one message per field.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewError(domain.KindBadRequest, errInvalidBody)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Translate(trans))
	}
	return domain.ValidationError(fields)
}
