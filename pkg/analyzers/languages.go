package analyzers

import (
	"sort"
	"strings"

	apperrors "github.com/ramran505/depends-tree-sitter-visualizer/pkg/errors"
)

// languageExtensions maps each supported analysis language to the source
// file extensions the tree-sitter pass walks. The language token is passed
// through verbatim to the dependency analyzer, which owns its own validation
// beyond this set.
var languageExtensions = map[string][]string{
	"python": {".py"},
	"java":   {".java"},
	"cpp":    {".cpp", ".cc", ".cxx", ".h", ".hpp"},
	"golang": {".go"},
	"ruby":   {".rb"},
}

// SupportedLanguages returns the supported language tokens, sorted.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(languageExtensions))
	for l := range languageExtensions {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// ValidateLanguage checks a user-supplied language token.
func ValidateLanguage(language string) error {
	if _, ok := languageExtensions[strings.ToLower(language)]; !ok {
		return apperrors.New(apperrors.ErrCodeInvalidLanguage,
			"unsupported language %q (supported: %s)",
			language, strings.Join(SupportedLanguages(), ", "))
	}
	return nil
}

// IsSourceFile reports whether path has a source extension for language.
func IsSourceFile(language, path string) bool {
	for _, ext := range languageExtensions[strings.ToLower(language)] {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
