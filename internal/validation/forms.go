// Package validation implements the client-side form checks that run
// before any network call. Rules mirror the marketplace UI exactly:
// a field that fails here never reaches the backend.
package validation

import (
	"regexp"
	"strings"
)

// Field patterns:
// - Login email is deliberately loose (anything@anything.tld).
// - Registration/order email is the stricter variant with a 2-4 char TLD.
// - Names are capitalized words, Polish letters included, segments joined
//   by a single space or hyphen ("Anna Maria", "Kowalska-Nowak").
var (
	loginEmailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	emailRe      = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	nameRe       = regexp.MustCompile(`^[A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż]+(?:[ -][A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż]+)*$`)
	phoneRe      = regexp.MustCompile(`^\d{9,15}$`)
	postalRe     = regexp.MustCompile(`^\d{2}-\d{3}$`)
	cardRe       = regexp.MustCompile(`^\d{16}$`)
	cvcRe        = regexp.MustCompile(`^\d{3,4}$`)
)

const (
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 6
	// AccountNumberLen is the exact digit count of a bank account number.
	AccountNumberLen = 26
)

// Errors maps a field name to an i18n message key. Empty map means valid.
type Errors map[string]string

// OK reports whether no field failed.
func (e Errors) OK() bool { return len(e) == 0 }

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) Errors {
	errs := Errors{}
	if email == "" {
		errs["email"] = "validation.emailRequired"
	} else if !loginEmailRe.MatchString(email) {
		errs["email"] = "validation.emailInvalid"
	}
	if password == "" {
		errs["password"] = "validation.passwordRequired"
	} else if len(password) < MinPasswordLen {
		errs["password"] = "validation.passwordMin"
	}
	return errs
}

// ValidateRegistration checks the registration form.
func ValidateRegistration(firstName, lastName, email, password, confirm string) Errors {
	errs := Errors{}
	if strings.TrimSpace(firstName) == "" {
		errs["firstName"] = "validation.firstNameRequired"
	} else if !nameRe.MatchString(firstName) {
		errs["firstName"] = "validation.firstNameInvalid"
	}
	if strings.TrimSpace(lastName) == "" {
		errs["lastName"] = "validation.lastNameRequired"
	} else if !nameRe.MatchString(lastName) {
		errs["lastName"] = "validation.lastNameInvalid"
	}
	if email == "" {
		errs["email"] = "validation.emailRequired"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "validation.emailInvalid"
	}
	if password == "" {
		errs["password"] = "validation.passwordRequired"
	} else if len(password) < MinPasswordLen {
		errs["password"] = "validation.passwordMin"
	}
	if password != confirm {
		errs["confirmPassword"] = "validation.confirmPasswordMismatch"
	}
	return errs
}

// OrderForm carries the checkout fields (shipment + mocked payment).
type OrderForm struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	City            string
	PostalCode      string
	Street          string
	StreetNumber    string
	ApartmentNumber string // optional
	CardNumber      string
	ExpirationDate  string
	CVC             string
}

// ValidateOrder checks the checkout form. Card data is format-checked
// only; it is never validated against a real processor.
func ValidateOrder(f OrderForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "order.errors.firstName"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "order.errors.lastName"
	}
	if !emailRe.MatchString(f.Email) {
		errs["email"] = "order.errors.email"
	}
	if !phoneRe.MatchString(f.Phone) {
		errs["phone"] = "order.errors.phone"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "order.errors.city"
	}
	if !postalRe.MatchString(f.PostalCode) {
		errs["postalCode"] = "order.errors.postalCode"
	}
	if strings.TrimSpace(f.Street) == "" {
		errs["street"] = "order.errors.street"
	}
	if strings.TrimSpace(f.StreetNumber) == "" {
		errs["streetNumber"] = "order.errors.streetNumber"
	}

	if !cardRe.MatchString(DigitsOnly(f.CardNumber)) {
		errs["cardNumber"] = "order.errors.cardNumber"
	}

	exp := DigitsOnly(f.ExpirationDate)
	if len(exp) != 4 {
		errs["expirationDate"] = "order.errors.expirationDate"
	} else if m := int(exp[0]-'0')*10 + int(exp[1]-'0'); m < 1 || m > 12 {
		errs["expirationDate"] = "order.errors.expirationDate"
	}

	if !cvcRe.MatchString(f.CVC) {
		errs["cvc"] = "order.errors.cvc"
	}
	return errs
}

// BookForm carries the add/edit-book fields.
type BookForm struct {
	Title         string
	Description   string
	BookCondition string
	AuthorName    string
	Price         string
	HasImage      bool
}

// ValidateBook checks the listing form. requireImage is false on edit,
// where keeping the current picture is allowed.
func ValidateBook(f BookForm, requireImage bool) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "addBook.errors.titleRequired"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "addBook.errors.descriptionRequired"
	}
	if strings.TrimSpace(f.BookCondition) == "" {
		errs["bookCondition"] = "addBook.errors.conditionRequired"
	}
	if strings.TrimSpace(f.AuthorName) == "" {
		errs["authorName"] = "addBook.errors.authorRequired"
	}

	price := strings.TrimSpace(f.Price)
	if price == "" {
		errs["price"] = "addBook.errors.priceRequired"
	} else if v, err := ParseAmount(price); err != nil || v <= 0 {
		errs["price"] = "addBook.errors.priceInvalid"
	} else if DecimalPlaces(price) > 2 {
		errs["price"] = "addBook.errors.pricePrecision"
	}

	if requireImage && !f.HasImage {
		errs["file"] = "addBook.errors.fileRequired"
	}
	return errs
}

// ValidateWithdrawal checks a withdrawal request against the current
// balance. The account number keeps only its digits before counting.
func ValidateWithdrawal(accountNumber, amount string, balance float64) Errors {
	errs := Errors{}
	if len(DigitsOnly(accountNumber)) != AccountNumberLen {
		errs["accountNumber"] = "withdraw.errors.accountNumberLength"
	}

	v, err := ParseAmount(amount)
	switch {
	case err != nil || v <= 0:
		errs["amount"] = "withdraw.errors.amountInvalid"
	case v > balance:
		errs["amount"] = "withdraw.errors.amountExceeds"
	case DecimalPlaces(amount) > 2:
		errs["amount"] = "withdraw.errors.amountPrecision"
	}
	return errs
}
