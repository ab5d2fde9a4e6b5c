package i18n

// catalogs: idioma -> key -> mensaje. Mantener las dos tablas alineadas.
var catalogs = map[string]map[string]string{
	LangPL: {
		// validación de formularios
		"validation.emailRequired":           "Email jest wymagany",
		"validation.emailInvalid":            "Nieprawidłowy adres email",
		"validation.passwordRequired":        "Hasło jest wymagane",
		"validation.passwordMin":             "Hasło musi mieć co najmniej 6 znaków",
		"validation.firstNameRequired":       "Imię jest wymagane",
		"validation.firstNameInvalid":        "Nieprawidłowe imię",
		"validation.lastNameRequired":        "Nazwisko jest wymagane",
		"validation.lastNameInvalid":         "Nieprawidłowe nazwisko",
		"validation.confirmPasswordMismatch": "Hasła nie są identyczne",

		// zamówienie
		"order.errors.firstName":      "Podaj imię",
		"order.errors.lastName":       "Podaj nazwisko",
		"order.errors.email":          "Nieprawidłowy email",
		"order.errors.phone":          "Nieprawidłowy numer telefonu",
		"order.errors.city":           "Podaj miasto",
		"order.errors.postalCode":     "Kod pocztowy w formacie 00-000",
		"order.errors.street":         "Podaj ulicę",
		"order.errors.streetNumber":   "Podaj numer budynku",
		"order.errors.cardNumber":     "Numer karty musi mieć 16 cyfr",
		"order.errors.expirationDate": "Data ważności w formacie MM/RR",
		"order.errors.cvc":            "CVC musi mieć 3-4 cyfry",

		// wystawianie książki
		"addBook.errors.titleRequired":       "Tytuł jest wymagany",
		"addBook.errors.descriptionRequired": "Opis jest wymagany",
		"addBook.errors.conditionRequired":   "Stan książki jest wymagany",
		"addBook.errors.authorRequired":      "Autor jest wymagany",
		"addBook.errors.priceRequired":       "Cena jest wymagana",
		"addBook.errors.priceInvalid":        "Nieprawidłowa cena",
		"addBook.errors.pricePrecision":      "Cena może mieć maksymalnie 2 miejsca po przecinku",
		"addBook.errors.fileRequired":        "Zdjęcie jest wymagane",

		// wypłaty
		"withdraw.errors.accountNumberLength": "Numer konta musi mieć 26 cyfr",
		"withdraw.errors.amountInvalid":       "Nieprawidłowa kwota",
		"withdraw.errors.amountExceeds":       "Kwota przekracza dostępne saldo",
		"withdraw.errors.amountPrecision":     "Kwota może mieć maksymalnie 2 miejsca po przecinku",

		// mensajes del backend
		"auth.email.exists":         "Konto z tym adresem email już istnieje",
		"auth.registration.success": "Rejestracja zakończona pomyślnie",
		"auth.login.failed":         "Nieprawidłowy email lub hasło",
		"auth.unauthorized":         "Nie uwierzytelniony",
		"auth.forbidden":            "Brak dostępu",
		"user.not.found":            "Użytkownik nie znaleziony",
		"book.create.success":       "Książka została dodana",
		"book.update.success":       "Książka została zaktualizowana",
		"book.delete.success":       "Książka została usunięta",
		"book.not.found":            "Książka nie znaleziona",
		"book.unavailable":          "Książka nie jest już dostępna",
		"tx.history.forbidden":      "Brak dostępu do cudzej historii",
		"withdraw.amount.invalid":   "Kwota musi być > 0",
		"withdraw.insufficient":     "Niewystarczające środki",

		// errores genéricos del cliente
		"error.network":       "Błąd połączenia z serwerem",
		"error.loginRequired": "Zaloguj się, aby kontynuować",
		"error.forbidden":     "Brak uprawnień",
	},
	LangEN: {
		"validation.emailRequired":           "Email is required",
		"validation.emailInvalid":            "Invalid email address",
		"validation.passwordRequired":        "Password is required",
		"validation.passwordMin":             "Password must be at least 6 characters",
		"validation.firstNameRequired":       "First name is required",
		"validation.firstNameInvalid":        "Invalid first name",
		"validation.lastNameRequired":        "Last name is required",
		"validation.lastNameInvalid":         "Invalid last name",
		"validation.confirmPasswordMismatch": "Passwords do not match",

		"order.errors.firstName":      "First name is required",
		"order.errors.lastName":       "Last name is required",
		"order.errors.email":          "Invalid email",
		"order.errors.phone":          "Invalid phone number",
		"order.errors.city":           "City is required",
		"order.errors.postalCode":     "Postal code must match 00-000",
		"order.errors.street":         "Street is required",
		"order.errors.streetNumber":   "Street number is required",
		"order.errors.cardNumber":     "Card number must have 16 digits",
		"order.errors.expirationDate": "Expiration date must match MM/YY",
		"order.errors.cvc":            "CVC must have 3-4 digits",

		"addBook.errors.titleRequired":       "Title is required",
		"addBook.errors.descriptionRequired": "Description is required",
		"addBook.errors.conditionRequired":   "Book condition is required",
		"addBook.errors.authorRequired":      "Author is required",
		"addBook.errors.priceRequired":       "Price is required",
		"addBook.errors.priceInvalid":        "Invalid price",
		"addBook.errors.pricePrecision":      "Price can have at most 2 decimal places",
		"addBook.errors.fileRequired":        "Image is required",

		"withdraw.errors.accountNumberLength": "Account number must have 26 digits",
		"withdraw.errors.amountInvalid":       "Invalid amount",
		"withdraw.errors.amountExceeds":       "Amount exceeds available balance",
		"withdraw.errors.amountPrecision":     "Amount can have at most 2 decimal places",

		"auth.email.exists":         "An account with this email already exists",
		"auth.registration.success": "Registration completed successfully",
		"auth.login.failed":         "Invalid email or password",
		"auth.unauthorized":         "Not authenticated",
		"auth.forbidden":            "Access denied",
		"user.not.found":            "User not found",
		"book.create.success":       "Book added successfully",
		"book.update.success":       "Book updated successfully",
		"book.delete.success":       "Book deleted successfully",
		"book.not.found":            "Book not found",
		"book.unavailable":          "Book is no longer available",
		"tx.history.forbidden":      "No access to another user's history",
		"withdraw.amount.invalid":   "Amount must be > 0",
		"withdraw.insufficient":     "Insufficient funds",

		"error.network":       "Could not reach the server",
		"error.loginRequired": "Log in to continue",
		"error.forbidden":     "Permission denied",
	},
}
