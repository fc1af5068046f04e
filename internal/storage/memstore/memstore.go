package memstore

import (
	"sync"
	"time"

	"brandsite/internal/models"
)

// Storage keeps all records in memory. Contents live as long as the process;
// nothing survives a restart. Ids are assigned per entity kind, starting at 1
// and strictly increasing.
//
// Handlers run on concurrent goroutines, so every access goes through the
// mutex.
type Storage struct {
	mu sync.Mutex

	nextAccountID int
	nextBookingID int
	nextContactID int

	accounts []models.Account
	bookings []models.Booking
	contacts []models.Contact
}

func New() *Storage {
	return &Storage{
		nextAccountID: 1,
		nextBookingID: 1,
		nextContactID: 1,
	}
}

func (s *Storage) CreateAccount(username, password string) models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := models.Account{
		ID:       s.nextAccountID,
		Username: username,
		Password: password,
	}
	s.nextAccountID++
	s.accounts = append(s.accounts, acc)

	return acc
}

func (s *Storage) GetAccount(id int) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc, true
		}
	}

	return models.Account{}, false
}

func (s *Storage) GetAccountByUsername(username string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username == username {
			return acc, true
		}
	}

	return models.Account{}, false
}

// CreateBooking assigns the next id and the creation timestamp, stores the
// record and returns it in full. Validation happens upstream; the store
// accepts whatever it is given.
func (s *Storage) CreateBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextBookingID
	b.CreatedAt = time.Now()
	s.nextBookingID++
	s.bookings = append(s.bookings, b)

	return b
}

func (s *Storage) CreateContact(c models.Contact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextContactID
	c.CreatedAt = time.Now()
	s.nextContactID++
	s.contacts = append(s.contacts, c)

	return c
}

// Bookings returns a snapshot of all bookings in insertion order.
func (s *Storage) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Booking(nil), s.bookings...)
}

// Contacts returns a snapshot of all contact messages in insertion order.
func (s *Storage) Contacts() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Contact(nil), s.contacts...)
}
