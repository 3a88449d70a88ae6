package model

// Mobile operator codes used with the carrier-billing payment method.
const (
	OperatorMTS     = "mts"
	OperatorMegafon = "mf"
	OperatorBeeline = "beeline"
	OperatorTele2   = "tele2"
)

// Operators is the catalog of mobile operators. Display names are the ones
// the gateway documentation uses.
var Operators = newCatalog(
	Entry{OperatorMTS, "МТС"},
	Entry{OperatorMegafon, "Мегафон"},
	Entry{OperatorBeeline, "Билайн"},
	Entry{OperatorTele2, "Теле2"},
)
