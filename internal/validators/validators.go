package validators

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	phoneAlias  = regexp.MustCompile(`^\+[0-9]{8,15}$`)
	handleAlias = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)
	pinFormat   = regexp.MustCompile(`^[0-9]{4}$`)
)

// CheckNumber проверяет строку используя алгоритм Луна
func CheckNumber(number string) bool {
	// Удаляем все пробелы
	number = strings.ReplaceAll(number, " ", "")
	if number == "" || !isDigits(number) {
		return false
	}
	return luhnSum(number, false)%10 == 0
}

// LuhnDigit - контрольная цифра, дописываемая к payload
func LuhnDigit(payload string) (int, bool) {
	if payload == "" || !isDigits(payload) {
		return 0, false
	}
	// у payload без контрольной цифры удваивается крайняя правая цифра
	return (10 - luhnSum(payload, true)%10) % 10, true
}

func luhnSum(number string, alternate bool) int {
	sum := 0
	// Идем по цифрам справа налево
	for i := len(number) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(number[i]))
		if alternate {
			digit *= 2
			if digit > 9 {
				digit = (digit % 10) + 1
			}
		}
		sum += digit
		alternate = !alternate
	}
	return sum
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckAlias - алиас это номер телефона в формате +XXXXXXXX
// или короткое имя (латиница, цифры, _ и .). Имя из одних цифр не допускается,
// чтобы номер без + не прошёл как имя.
func CheckAlias(alias string) bool {
	if phoneAlias.MatchString(alias) {
		return true
	}
	return handleAlias.MatchString(alias) && !isDigits(alias)
}

// CheckPin - PIN состоит из 4 цифр
func CheckPin(pin string) bool {
	return pinFormat.MatchString(pin)
}
