package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads every <lang>.toml bundle of the supported languages.
// A missing folder leaves an empty bundle, and lookups fall back to the key.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !isSupported(f.Name(), cfg.SupportedLanguages) {
			continue
		}

		path := filepath.Join(cfg.TranslationFolder, f.Name())
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func isSupported(fileName string, languages []string) bool {
	if filepath.Ext(fileName) != ".toml" {
		return false
	}
	if len(languages) == 0 {
		return true
	}

	tag := fileName[:len(fileName)-len(".toml")]
	for _, lang := range languages {
		if lang == tag {
			return true
		}
	}
	return false
}

// Negotiate returns the first served language of an Accept-Language header
// once its entries are ranked by quality, en when none is served.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return LanguageEn
	}

	for _, tag := range tags {
		base, confidence := tag.Base()
		if confidence != language.Exact {
			continue
		}
		switch base.String() {
		case LanguageEn:
			return LanguageEn
		case LanguageFr:
			return LanguageFr
		}
	}
	return LanguageEn
}
