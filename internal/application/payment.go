package application

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3}$`)
)

// PaymentProcessor simulates charging a payment card. Validation mirrors
// the original payment form: 16-digit number, non-empty holder, MM/YY
// expiry that is not in the past, 3-digit CVV. A card that validates is
// always charged successfully; no payment backend exists.
type PaymentProcessor struct {
	now func() time.Time
}

// NewPaymentProcessor creates a processor using the given time source.
func NewPaymentProcessor(now func() time.Time) *PaymentProcessor {
	if now == nil {
		now = time.Now
	}
	return &PaymentProcessor{now: now}
}

// Charge validates the card and simulates the payment. It returns a
// ValidationError for malformed card fields and nil on success.
func (p *PaymentProcessor) Charge(card PaymentCard, amount float64) error {
	vErr := &ValidationError{}

	number := strings.ReplaceAll(strings.TrimSpace(card.Number), " ", "")
	if !cardNumberRe.MatchString(number) {
		vErr.add("card_number", "card number must be 16 digits")
	}

	if strings.TrimSpace(card.HolderName) == "" {
		vErr.add("card_holder_name", "card holder name is required")
	}

	expiry := strings.TrimSpace(card.Expiry)
	if match := cardExpiryRe.FindStringSubmatch(expiry); match == nil {
		vErr.add("expiry_date", "expiry date must be MM/YY")
	} else {
		month, _ := strconv.Atoi(match[1])
		year, _ := strconv.Atoi(match[2])
		if expired(p.now(), month, 2000+year) {
			vErr.add("expiry_date", "card has expired")
		}
	}

	if !cardCVVRe.MatchString(strings.TrimSpace(card.CVV)) {
		vErr.add("cvv", "CVV must be 3 digits")
	}

	if amount <= 0 {
		vErr.add("total_cost", "total cost must be positive")
	}

	if vErr.HasErrors() {
		return vErr
	}

	// Simulated payment: a valid card always charges.
	return nil
}

// expired reports whether the card's expiry month has passed. A card is
// valid through the last day of its expiry month.
func expired(now time.Time, month, year int) bool {
	if year != now.Year() {
		return year < now.Year()
	}
	return time.Month(month) < now.Month()
}
