package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	receiptEmpty     = "Ваша корзина пуста. Добавьте товары для оформления заказа."
	receiptSeparator = "==========================="
	receiptFooter    = "Спасибо за покупку!"

	messageHeader = "Ваш заказ:\n\n"
	messageEmpty  = "Корзина пуста."
)

// GroupInt renders an integer with ru-RU style thousands grouping,
// plain spaces, no decimals.
func GroupInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func groupAmount(v float64) string {
	return GroupInt(int64(math.Round(v)))
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatReceipt turns the cart lines into the canonical receipt text
// and the rounded grand total. The text uses explicit "\n" breaks and
// markdown bold markers; display layers substitute their own break
// representation.
func FormatReceipt(lines []CartLine) (string, float64) {
	if len(lines) == 0 {
		return receiptEmpty, 0
	}

	var b strings.Builder
	var amount float64
	for _, line := range lines {
		price := math.Round(line.Price)
		lineTotal := price * line.Quantity
		amount += lineTotal

		b.WriteString(fmt.Sprintf("**%s**\n", line.Name))
		b.WriteString(fmt.Sprintf("%sшт * %s = %s сум\n\n",
			formatQuantity(line.Quantity), groupAmount(price), groupAmount(lineTotal)))
	}
	b.WriteString(receiptSeparator + "\n")
	b.WriteString(fmt.Sprintf("**Общая сумма = %s сум**\n\n", groupAmount(amount)))
	b.WriteString(receiptFooter)

	return b.String(), math.Round(amount)
}

// BuildOrderMessage serializes the cart into the plain-text summary
// handed to the host chat client.
func BuildOrderMessage(lines []CartLine) string {
	if len(lines) == 0 {
		return messageHeader + messageEmpty
	}

	parts := make([]string, 0, len(lines))
	var total float64
	for _, line := range lines {
		price := math.Round(line.Price)
		lineTotal := price * line.Quantity
		total += lineTotal
		parts = append(parts, fmt.Sprintf("%s x %s (%.0f сум)",
			line.Name, formatQuantity(line.Quantity), lineTotal))
	}

	return messageHeader + strings.Join(parts, "\n") +
		fmt.Sprintf("\n\nИтого: %.0f сум", math.Round(total))
}
