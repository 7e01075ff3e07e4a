package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must match the %s layout",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"datetime": true,
}
