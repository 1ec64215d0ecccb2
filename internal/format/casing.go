package format

import "github.com/iancoleman/strcase"

// CasingSuggestion holds alternate spellings of an identifier that a
// reserved-identifier diagnostic can offer as a fix-up, computed with the
// same case-conversion rules a generated emitter would apply to the name.
type CasingSuggestion struct {
	Camel  string
	Pascal string
	Snake  string
}

// SuggestCasing derives camelCase/PascalCase/snake_case variants of name for
// a reserved-identifier diagnostic to suggest, e.g. renaming the reserved
// word "import" to "importValue" or "import_value".
func SuggestCasing(name string) CasingSuggestion {
	return CasingSuggestion{
		Camel:  strcase.ToLowerCamel(name + "Value"),
		Pascal: strcase.ToCamel(name + "Value"),
		Snake:  strcase.ToSnake(name) + "_value",
	}
}
