// Package phone реализует проверку и форматирование телефонных номеров.
// Для пакистанских мобильных номеров (+92) проверяются точные формы,
// для остальных кодов стран — только длина 7-15 цифр.
package phone

import (
	"fmt"
	"strings"
)

// PakistanCode — телефонный код страны по умолчанию
const PakistanCode = "+92"

// digits убирает из номера все, кроме цифр
func digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate проверяет номер для заданного кода страны.
// Пакистанские мобильные номера: 03XX XXXXXXX (11 цифр с ведущим нулем),
// 923XXXXXXXXX (12 цифр с кодом страны) или 3XXXXXXXXX (10 цифр).
func Validate(phone, countryCode string) bool {
	cleaned := digits(phone)

	if countryCode != PakistanCode {
		return len(cleaned) >= 7 && len(cleaned) <= 15
	}

	switch {
	case strings.HasPrefix(cleaned, "92"):
		return len(cleaned) == 12 && strings.HasPrefix(cleaned, "923")
	case strings.HasPrefix(cleaned, "0"):
		return len(cleaned) == 11 && strings.HasPrefix(cleaned, "03")
	default:
		return len(cleaned) == 10 && strings.HasPrefix(cleaned, "3")
	}
}

// Format приводит номер к отображаемой форме с кодом страны
func Format(phone, countryCode string) string {
	cleaned := digits(phone)

	if countryCode != PakistanCode || len(cleaned) < 5 {
		return fmt.Sprintf("%s %s", countryCode, cleaned)
	}

	switch {
	case strings.HasPrefix(cleaned, "92"):
		return fmt.Sprintf("+%s %s %s", cleaned[:2], cleaned[2:5], cleaned[5:])
	case strings.HasPrefix(cleaned, "0"):
		return fmt.Sprintf("+92 %s %s", cleaned[1:4], cleaned[4:])
	default:
		return fmt.Sprintf("+92 %s %s", cleaned[:3], cleaned[3:])
	}
}
