package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"todolist/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`
taskNotFound = "Task not found"
hello = "Hello english"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pl.toml"), []byte(`
hello = "Cześć"
`), 0o644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: translator.SupportedLanguages,
	})

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageEn).Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Hello english", msg)

	msg, err = i18n.NewLocalizer(translator.Translator, translator.LanguagePl).Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Cześć", msg)
}

func TestInitTranslator_SkipsUnsupportedLanguages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte(`hello = "Bonjour"`), 0o644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: translator.SupportedLanguages,
	})

	_, err := i18n.NewLocalizer(translator.Translator, "fr").Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.Error(t, err)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	require.NotNil(t, translator.Translator)
}

func TestInitTranslator_ShippedFilesShareKeys(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: translator.SupportedLanguages,
	})

	for _, lang := range translator.SupportedLanguages {
		msg, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: "taskNotFound"})
		require.NoError(t, err, lang)
		require.NotEmpty(t, msg)
	}
}

func TestMatchLanguage(t *testing.T) {
	cases := map[string]string{
		"":                        translator.LanguageEn,
		"pl":                      translator.LanguagePl,
		"pl-PL,pl;q=0.9,en;q=0.8": translator.LanguagePl,
		"en-US":                   translator.LanguageEn,
		"de":                      translator.LanguageEn,
		"not a header ;;;":        translator.LanguageEn,
	}
	for header, expected := range cases {
		require.Equal(t, expected, translator.MatchLanguage(header), header)
	}
}
