package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/softcafe/clinic-admin-api/internal/model"
)

// RegisterValidators hooks the domain token sets into gin's binding engine
// so request structs can validate them declaratively. Field names in
// validation errors follow the json tag, not the Go field name.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	validators := map[string]validator.Func{
		"staffrole": func(fl validator.FieldLevel) bool {
			_, ok := model.ParseRole(fl.Field().String())
			return ok
		},
		"staffstatus": func(fl validator.FieldLevel) bool {
			_, ok := model.ParseStaffStatus(fl.Field().String())
			return ok
		},
		"paymentstatus": func(fl validator.FieldLevel) bool {
			_, ok := model.ParsePaymentStatus(fl.Field().String())
			return ok
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
}
