package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders a whole-dong amount with Vietnamese digit grouping,
// e.g. 170000 -> "170.000 ₫".
func FormatVND(amount int64) string {
	return vnPrinter.Sprintf("%d ₫", amount)
}
