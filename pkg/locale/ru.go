package locale

import "github.com/zkelo/unitpay-go/pkg/model"

// Russian is the built-in Russian message catalog.
var Russian = Map{
	"response.result.ok":                "Запрос успешно обработан",
	"response.error.invalid_ip":         "Запрос с неразрешённого IP-адреса",
	"response.error.missing_params":     "Отсутствует метод или параметры запроса",
	"response.error.unsupported_method": "Данный метод запроса не поддерживается",
	"response.error.invalid_signature":  "Подпись запроса не совпадает",

	"currency." + model.CurrencyRUB: "Российский рубль",
	"currency." + model.CurrencyEUR: "Евро",
	"currency." + model.CurrencyUSD: "Доллар США",
	"currency." + model.CurrencyAUD: "Австралийский доллар",
	"currency." + model.CurrencyAZN: "Азербайджанский манат",
	"currency." + model.CurrencyAMD: "Армянский драм",
	"currency." + model.CurrencyBYN: "Белорусский рубль",
	"currency." + model.CurrencyBGN: "Болгарский лев",
	"currency." + model.CurrencyBRL: "Бразильский реал",
	"currency." + model.CurrencyHUF: "Венгерский форинт",
	"currency." + model.CurrencyKRW: "Вон Республики Корея",
	"currency." + model.CurrencyHKD: "Гонконгский доллар",
	"currency." + model.CurrencyDKK: "Датская крона",
	"currency." + model.CurrencyINR: "Индийский рупий",
	"currency." + model.CurrencyKZT: "Казахстанский тенге",
	"currency." + model.CurrencyCAD: "Канадский доллар",
	"currency." + model.CurrencyKGS: "Киргизский сом",
	"currency." + model.CurrencyCNY: "Китайский юань",
	"currency." + model.CurrencyMDL: "Молдавский лей",
	"currency." + model.CurrencyTMT: "Новый туркменский манат",
	"currency." + model.CurrencyNOK: "Норвежский крон",
	"currency." + model.CurrencyPLN: "Польский злотый",
	"currency." + model.CurrencyRON: "Румынский лей",
	"currency." + model.CurrencySGD: "Сингапурский доллар",
	"currency." + model.CurrencyTJS: "Таджикский сомони",
	"currency." + model.CurrencyTRY: "Турецкая лира",
	"currency." + model.CurrencyUZS: "Узбекский сум",
	"currency." + model.CurrencyUAH: "Украинская гривна",
	"currency." + model.CurrencyGBP: "Фунт стерлингов Соединённого королевства",
	"currency." + model.CurrencyCZK: "Чешская крона",
	"currency." + model.CurrencySEK: "Шведская крона",
	"currency." + model.CurrencyCHF: "Швейцарский франк",
	"currency." + model.CurrencyZAR: "Южноафриканский рэнд",
	"currency." + model.CurrencyJPY: "Японская йена",
}
