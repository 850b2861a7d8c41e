package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskflow/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	// Create a temporary directory for translations
	dir := t.TempDir()

	// Write a test en.toml file
	enFile := filepath.Join(dir, "en.toml")
	content := []byte(`
errorListTasks = "Could not retrieve tasks."
taskNotFound = "Task not found."
hello = "Hello english"
`)
	if err := os.WriteFile(enFile, content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	// Initialize translator with the temp dir
	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "hello",
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	expected := "Hello english"
	if msg != expected {
		t.Errorf("expected %q, got %q", expected, msg)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
}

func TestLocalize_FallsBackToEnglishThenKey(t *testing.T) {
	dir := t.TempDir()
	enFile := filepath.Join(dir, "en.toml")
	if err := os.WriteFile(enFile, []byte(`hello = "Hello english"`+"\n"), 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	// French has no message, so English serves the request.
	if got := translator.Localize("hello", translator.LanguageFr); got != "Hello english" {
		t.Errorf("expected english fallback, got %q", got)
	}

	// Unknown keys come back verbatim.
	if got := translator.Localize("missing_key", translator.LanguageEn); got != "missing_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestLocalize_NilBundleReturnsKey(t *testing.T) {
	saved := translator.Translator
	translator.Translator = nil
	defer func() { translator.Translator = saved }()

	if got := translator.Localize("anything", translator.LanguageEn); got != "anything" {
		t.Errorf("expected key passthrough, got %q", got)
	}
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguageFr != "fr" {
		t.Errorf("expected LanguageFr to be 'fr'")
	}
}
