package jadn

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// GetI18n returns an initialized internationalization bundle with embedded
// locale files, keyed by ValidationError.Category rather than by
// per-keyword message codes.
func GetI18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en"),
	)
	err := bundle.LoadFS(localesFS, "locales/*.json")
	return bundle, err
}
