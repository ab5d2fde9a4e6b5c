// Package mockapi implementa el backend de desarrollo de bookly: la
// misma superficie REST que el servidor real, con estado en memoria.
// Sirve para correr la CLI y los tests sin infraestructura.
package mockapi

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// User es el registro interno de un usuario (el hash nunca sale por el wire).
type User struct {
	ID                int64
	FirstName         string
	LastName          string
	Email             string
	PasswordHash      []byte
	Roles             []string
	Balance           float64
	Rating            int
	Description       string
	ProfilePictureURL string
}

// IsAdmin reporta si el usuario tiene rol de moderación.
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == "ROLE_ADMIN" {
			return true
		}
	}
	return false
}

// Book es una publicación del catálogo.
type Book struct {
	ID            int64
	Title         string
	Description   string
	BookCondition string
	AuthorName    string
	Price         float64
	PictureURL    string
	OwnerID       int64
	Available     bool
	CreatedAt     time.Time
}

// Shipment son los datos de envío capturados en el checkout.
type Shipment struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	City            string
	PostalCode      string
	Street          string
	StreetNumber    string
	ApartmentNumber string
}

// Transaction es una compra concretada. El libro se copia como snapshot:
// ediciones posteriores no reescriben el historial.
type Transaction struct {
	ID        int64
	BuyerID   int64
	SellerID  int64
	Book      Book
	Shipment  Shipment
	Price     float64
	Timestamp time.Time
}

// Withdrawal es una solicitud de retiro de saldo.
type Withdrawal struct {
	ID            int64
	UserID        int64
	AccountNumber string
	Amount        float64
	Timestamp     time.Time
}

// Store guarda las entidades en go-cache (sin expiración) con índices
// por key prefijada. mu protege secuencias e índices; opMu serializa
// operaciones compuestas (checkout, retiro): go-cache protege cada key
// pero no la secuencia chequeo+mutación.
type Store struct {
	mu   sync.Mutex
	opMu sync.Mutex
	c    *gocache.Cache
	seq  map[string]int64
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		c:   gocache.New(gocache.NoExpiration, 10*time.Minute),
		seq: make(map[string]int64),
	}
}

func (s *Store) nextID(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

func key(kind string, id int64) string {
	return kind + ":" + strconv.FormatInt(id, 10)
}

// CreateUser registra un usuario nuevo. Retorna false si el email ya
// está tomado (comparación case-insensitive, igual que el backend real).
func (s *Store) CreateUser(u User) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	norm := strings.ToLower(u.Email)
	if _, ok := s.c.Get("user:email:" + norm); ok {
		return User{}, false
	}
	u.ID = s.nextID("user")
	s.c.SetDefault(key("user", u.ID), u)
	s.c.SetDefault("user:email:"+norm, u.ID)
	return u, true
}

// SaveUser reescribe un usuario existente.
func (s *Store) SaveUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.SetDefault(key("user", u.ID), u)
}

// UserByID busca por id.
func (s *Store) UserByID(id int64) (User, bool) {
	v, ok := s.c.Get(key("user", id))
	if !ok {
		return User{}, false
	}
	return v.(User), true
}

// UserByEmail busca por email vía el índice secundario.
func (s *Store) UserByEmail(email string) (User, bool) {
	v, ok := s.c.Get("user:email:" + strings.ToLower(email))
	if !ok {
		return User{}, false
	}
	return s.UserByID(v.(int64))
}

// Users lista todos los usuarios ordenados por id.
func (s *Store) Users() []User {
	var out []User
	for k, item := range s.c.Items() {
		if strings.HasPrefix(k, "user:") && !strings.HasPrefix(k, "user:email:") {
			out = append(out, item.Object.(User))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateBook publica un libro nuevo.
func (s *Store) CreateBook(b Book) Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID("book")
	b.CreatedAt = time.Now()
	s.c.SetDefault(key("book", b.ID), b)
	return b
}

// SaveBook reescribe una publicación existente.
func (s *Store) SaveBook(b Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.SetDefault(key("book", b.ID), b)
}

// BookByID busca una publicación por id.
func (s *Store) BookByID(id int64) (Book, bool) {
	v, ok := s.c.Get(key("book", id))
	if !ok {
		return Book{}, false
	}
	return v.(Book), true
}

// DeleteBook elimina la publicación id.
func (s *Store) DeleteBook(id int64) {
	s.c.Delete(key("book", id))
}

// Books lista las publicaciones más nuevas primero.
func (s *Store) Books() []Book {
	var out []Book
	for k, item := range s.c.Items() {
		if strings.HasPrefix(k, "book:") {
			out = append(out, item.Object.(Book))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// CreateTransaction registra una compra.
func (s *Store) CreateTransaction(t Transaction) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextID("tx")
	t.Timestamp = time.Now()
	s.c.SetDefault(key("tx", t.ID), t)
	return t
}

// Transactions lista las transacciones más nuevas primero, filtradas
// con keep.
func (s *Store) Transactions(keep func(Transaction) bool) []Transaction {
	var out []Transaction
	for k, item := range s.c.Items() {
		if strings.HasPrefix(k, "tx:") {
			t := item.Object.(Transaction)
			if keep(t) {
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// CreateWithdrawal registra un retiro ya debitado.
func (s *Store) CreateWithdrawal(w Withdrawal) Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = s.nextID("wd")
	w.Timestamp = time.Now()
	s.c.SetDefault(key("wd", w.ID), w)
	return w
}

// Withdrawals lista los retiros de un usuario, más nuevos primero.
func (s *Store) Withdrawals(userID int64) []Withdrawal {
	var out []Withdrawal
	for k, item := range s.c.Items() {
		if strings.HasPrefix(k, "wd:") {
			w := item.Object.(Withdrawal)
			if w.UserID == userID {
				out = append(out, w)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Lock toma el mutex de operaciones compuestas. El caller debe llamar
// Unlock. Lo usan checkout y retiro para que chequeo+mutación sean
// atómicos.
func (s *Store) Lock()   { s.opMu.Lock() }
func (s *Store) Unlock() { s.opMu.Unlock() }
