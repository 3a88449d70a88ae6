package model

// Currency codes supported by the gateway, according to ISO 4217.
const (
	CurrencyRUB = "RUB" // Russian ruble
	CurrencyEUR = "EUR" // Euro
	CurrencyUSD = "USD" // US dollar
	CurrencyAUD = "AUD" // Australian dollar
	CurrencyAZN = "AZN" // Azerbaijani manat
	CurrencyAMD = "AMD" // Armenian dram
	CurrencyBYN = "BYN" // Belarusian ruble
	CurrencyBGN = "BGN" // Bulgarian lev
	CurrencyBRL = "BRL" // Brazilian real
	CurrencyHUF = "HUF" // Hungarian forint
	CurrencyKRW = "KRW" // Won Republic of Korea
	CurrencyHKD = "HKD" // Hong Kong dollar
	CurrencyDKK = "DKK" // Danish krone
	CurrencyINR = "INR" // Indian rupee
	CurrencyKZT = "KZT" // Kazakhstani tenge
	CurrencyCAD = "CAD" // Canadian dollar
	CurrencyKGS = "KGS" // Kyrgyz som
	CurrencyCNY = "CNY" // Chinese yuan
	CurrencyMDL = "MDL" // Moldovan leu
	CurrencyTMT = "TMT" // New Turkmen manat
	CurrencyNOK = "NOK" // Norwegian krone
	CurrencyPLN = "PLN" // Polish zloty
	CurrencyRON = "RON" // Romanian leu
	CurrencySGD = "SGD" // Singapore dollar
	CurrencyTJS = "TJS" // Tajik somoni
	CurrencyTRY = "TRY" // Turkish lira
	CurrencyUZS = "UZS" // Uzbek sum
	CurrencyUAH = "UAH" // Ukrainian hryvnia
	CurrencyGBP = "GBP" // British pound sterling
	CurrencyCZK = "CZK" // Czech crown
	CurrencySEK = "SEK" // Swedish krona
	CurrencyCHF = "CHF" // Swiss frank
	CurrencyZAR = "ZAR" // South African rand
	CurrencyJPY = "JPY" // Japanese yen
)

// Currencies is the catalog of order currencies the gateway accepts.
// Localized display names are available through the locale package under
// "currency.<CODE>" keys.
var Currencies = newCatalog(
	Entry{CurrencyRUB, "Russian ruble"},
	Entry{CurrencyEUR, "Euro"},
	Entry{CurrencyUSD, "US dollar"},
	Entry{CurrencyAUD, "Australian dollar"},
	Entry{CurrencyAZN, "Azerbaijani manat"},
	Entry{CurrencyAMD, "Armenian dram"},
	Entry{CurrencyBYN, "Belarusian ruble"},
	Entry{CurrencyBGN, "Bulgarian lev"},
	Entry{CurrencyBRL, "Brazilian real"},
	Entry{CurrencyHUF, "Hungarian forint"},
	Entry{CurrencyKRW, "Won Republic of Korea"},
	Entry{CurrencyHKD, "Hong kong dollar"},
	Entry{CurrencyDKK, "Danish krone"},
	Entry{CurrencyINR, "Indian rupee"},
	Entry{CurrencyKZT, "Kazakhstani tenge"},
	Entry{CurrencyCAD, "Canadian dollar"},
	Entry{CurrencyKGS, "Kyrgyz som"},
	Entry{CurrencyCNY, "Chinese yuan"},
	Entry{CurrencyMDL, "Moldovan leu"},
	Entry{CurrencyTMT, "New Turkmen manat"},
	Entry{CurrencyNOK, "Norwegian krone"},
	Entry{CurrencyPLN, "Polish zloty"},
	Entry{CurrencyRON, "Romanian leu"},
	Entry{CurrencySGD, "Singapore dollar"},
	Entry{CurrencyTJS, "Tajik somoni"},
	Entry{CurrencyTRY, "Turkish lira"},
	Entry{CurrencyUZS, "Uzbek sum"},
	Entry{CurrencyUAH, "Ukrainian hryvnia"},
	Entry{CurrencyGBP, "British pound sterling"},
	Entry{CurrencyCZK, "Czech crown"},
	Entry{CurrencySEK, "Swedish krona"},
	Entry{CurrencyCHF, "Swiss frank"},
	Entry{CurrencyZAR, "South African Rand"},
	Entry{CurrencyJPY, "Japanese yen"},
)
