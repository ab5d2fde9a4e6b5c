package mockapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/dropDatabas3/bookly/internal/observability/logger"
)

// Seed carga datos de demo: un admin, dos usuarios y un catálogo chico.
// Pensado para desarrollo local; los tests arman su propio estado.
func Seed(s *Store) {
	hash := func(pw string) []byte {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return h
	}

	admin, _ := s.CreateUser(User{
		FirstName:    "Admin",
		LastName:     "Bookly",
		Email:        "admin@bookly.pl",
		PasswordHash: hash("admin123"),
		Roles:        []string{"ROLE_USER", "ROLE_ADMIN"},
		Balance:      0,
		Rating:       5,
	})
	anna, _ := s.CreateUser(User{
		FirstName:    "Anna",
		LastName:     "Kowalska",
		Email:        "anna@example.pl",
		PasswordHash: hash("annapass"),
		Roles:        []string{"ROLE_USER"},
		Balance:      120.50,
		Rating:       4,
		Description:  "Sprzedaję książki po studiach.",
	})
	piotr, _ := s.CreateUser(User{
		FirstName:    "Piotr",
		LastName:     "Nowak",
		Email:        "piotr@example.pl",
		PasswordHash: hash("piotrpass"),
		Roles:        []string{"ROLE_USER"},
		Balance:      35.00,
		Rating:       5,
	})

	books := []Book{
		{Title: "Pan Tadeusz", AuthorName: "Adam Mickiewicz", BookCondition: "Dobry", Price: 25.00, Description: "Wydanie szkolne, lekko podniszczone.", OwnerID: anna.ID, Available: true},
		{Title: "Lalka", AuthorName: "Bolesław Prus", BookCondition: "Bardzo dobry", Price: 32.50, Description: "Stan bardzo dobry, bez notatek.", OwnerID: anna.ID, Available: true},
		{Title: "Solaris", AuthorName: "Stanisław Lem", BookCondition: "Nowy", Price: 45.00, Description: "Nowa, w folii.", OwnerID: piotr.ID, Available: true},
		{Title: "Wiedźmin: Ostatnie życzenie", AuthorName: "Andrzej Sapkowski", BookCondition: "Dobry", Price: 28.00, Description: "Czytana raz.", OwnerID: piotr.ID, Available: true},
	}
	for _, b := range books {
		s.CreateBook(b)
	}

	logger.Named("mockapi").Info("seeded demo data",
		logger.UserID(admin.ID))
}
