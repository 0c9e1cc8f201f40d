// Package i18n translates message keys into localized strings.
//
// Translations are loaded once through a TranslationAdapter (an in-memory map
// or a directory in an fs.FS parsed as YAML or JSON) into a Translator.
// Keys are dot-separated paths into nested maps, and templates use named
// placeholders:
//
//	validation:
//	  length_more_than: "%{len}文字より多く入力してください"
//
//	tr.T("ja", "validation.length_more_than", "len", "8")
//
// Middleware negotiates the request language with golang.org/x/text/language
// against the translator's languages and stores it in the context for Tc and
// GetLocale.
package i18n
