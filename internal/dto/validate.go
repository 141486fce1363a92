package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct and returns a field->message map, nil
// when the struct is valid. Field names follow the JSON casing the client
// submitted.
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": "payload inválido"}
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[jsonFieldName(fe)] = messageFor(fe)
	}
	return fields
}

func jsonFieldName(fe validator.FieldError) string {
	// StructNamespace looks like "ProjectRequest.Files[0].URL"; drop the
	// root struct and lower-case the leaf's first rune to match JSON tags.
	ns := fe.StructNamespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = lowerFirst(p)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s == "URL" {
		return "url"
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "email":
		return "Informe um e-mail válido."
	case "url":
		return "Informe uma URL válida."
	case "min":
		return "Valor abaixo do mínimo de " + fe.Param() + " caracteres."
	case "oneof":
		return "Valor fora do conjunto permitido: " + fe.Param() + "."
	case "uuid":
		return "Informe um identificador válido."
	default:
		return "Valor inválido."
	}
}

// ParseDate accepts either a full RFC3339 timestamp or a bare date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
