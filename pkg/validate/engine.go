package validate

import (
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	tagRequired = "required"
	tagEmail    = "email,emailshape"
	tagPhone    = "nlphone"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// Engine returns the shared validator with the form's custom tags
// registered: "nlphone" for Dutch numbers and "emailshape" for the
// local@domain.tld shape.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "nlphone", func(fl validator.FieldLevel) bool {
			return rePhone.MatchString(NormalizePhone(fl.Field().String()))
		})
		mustRegister(v, "emailshape", func(fl validator.FieldLevel) bool {
			return reEmail.MatchString(fl.Field().String())
		})
		engine = v
	})
	return engine
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validate: register " + tag + ": " + err.Error())
	}
}

// check runs a single tag expression against value.
func check(value, tag string) bool {
	return Engine().Var(value, tag) == nil
}

func boundTag(name string, n int) string {
	return name + "=" + strconv.Itoa(n)
}
