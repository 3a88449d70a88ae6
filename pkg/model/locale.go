package model

// Locale codes for the hosted payment form and SDK messages.
const (
	LocaleEnglish = "en"
	LocaleRussian = "ru"
)

// DefaultLocale is used when the caller does not pick a locale.
const DefaultLocale = LocaleEnglish

// Locales is the catalog of supported locales.
var Locales = newCatalog(
	Entry{LocaleEnglish, "English"},
	Entry{LocaleRussian, "Русский"},
)
