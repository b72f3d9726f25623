// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// FieldErrorMap mengubah validator.ValidationErrors jadi map field -> pesan.
func FieldErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		case "uuid", "uuid4":
			msg = field + " harus UUID yang valid."
		case "url":
			msg = field + " harus URL yang valid."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// ValidateAndRespond: shortcut validasi DTO; balas 422 kalau gagal.
// Return (handled=true) artinya response sudah dikirim.
func ValidateAndRespond(c *fiber.Ctx, s any) (bool, error) {
	if err := Validate.Struct(s); err != nil {
		return true, JsonValidationError(c, FieldErrorMap(err))
	}
	return false, nil
}
