package locale

import "github.com/zkelo/unitpay-go/pkg/model"

// English is the built-in English message catalog.
var English = Map{
	"response.result.ok":                "Request successfully processed",
	"response.error.invalid_ip":         "Request from an unauthorized IP address",
	"response.error.missing_params":     "Request method or parameters are missing",
	"response.error.unsupported_method": "This request method is not supported",
	"response.error.invalid_signature":  "Request signature does not match",

	"currency." + model.CurrencyRUB: "Russian ruble",
	"currency." + model.CurrencyEUR: "Euro",
	"currency." + model.CurrencyUSD: "US dollar",
	"currency." + model.CurrencyAUD: "Australian dollar",
	"currency." + model.CurrencyAZN: "Azerbaijani manat",
	"currency." + model.CurrencyAMD: "Armenian dram",
	"currency." + model.CurrencyBYN: "Belarusian ruble",
	"currency." + model.CurrencyBGN: "Bulgarian lev",
	"currency." + model.CurrencyBRL: "Brazilian real",
	"currency." + model.CurrencyHUF: "Hungarian forint",
	"currency." + model.CurrencyKRW: "Won Republic of Korea",
	"currency." + model.CurrencyHKD: "Hong kong dollar",
	"currency." + model.CurrencyDKK: "Danish krone",
	"currency." + model.CurrencyINR: "Indian rupee",
	"currency." + model.CurrencyKZT: "Kazakhstani tenge",
	"currency." + model.CurrencyCAD: "Canadian dollar",
	"currency." + model.CurrencyKGS: "Kyrgyz som",
	"currency." + model.CurrencyCNY: "Chinese yuan",
	"currency." + model.CurrencyMDL: "Moldovan leu",
	"currency." + model.CurrencyTMT: "New Turkmen manat",
	"currency." + model.CurrencyNOK: "Norwegian krone",
	"currency." + model.CurrencyPLN: "Polish zloty",
	"currency." + model.CurrencyRON: "Romanian leu",
	"currency." + model.CurrencySGD: "Singapore dollar",
	"currency." + model.CurrencyTJS: "Tajik somoni",
	"currency." + model.CurrencyTRY: "Turkish lira",
	"currency." + model.CurrencyUZS: "Uzbek sum",
	"currency." + model.CurrencyUAH: "Ukrainian hryvnia",
	"currency." + model.CurrencyGBP: "British pound sterling",
	"currency." + model.CurrencyCZK: "Czech crown",
	"currency." + model.CurrencySEK: "Swedish krona",
	"currency." + model.CurrencyCHF: "Swiss frank",
	"currency." + model.CurrencyZAR: "South African Rand",
	"currency." + model.CurrencyJPY: "Japanese yen",
}
