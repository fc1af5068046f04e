package memstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandsite/internal/models"
)

func TestCreateBookingAssignsIds(t *testing.T) {
	t.Parallel()

	s := New()

	before := time.Now()

	first := s.CreateBooking(models.Booking{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Date:  "Mon, Jan 6",
		Time:  "10:00 AM - 11:00 AM",
	})
	second := s.CreateBooking(models.Booking{
		Name:  "John Roe",
		Email: "john@example.com",
		Date:  "Tue, Jan 7",
		Time:  "1:00 PM - 2:00 PM",
	})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "Jane Doe", first.Name)
	assert.False(t, first.CreatedAt.Before(before))
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))
}

func TestBookingIdsMonotonic(t *testing.T) {
	t.Parallel()

	s := New()

	prev := 0
	for i := 0; i < 20; i++ {
		b := s.CreateBooking(models.Booking{Name: "N", Email: "n@example.com"})
		assert.Greater(t, b.ID, prev)
		prev = b.ID
	}
}

func TestIdCountersAreIndependent(t *testing.T) {
	t.Parallel()

	s := New()

	b := s.CreateBooking(models.Booking{Name: "B", Email: "b@example.com"})
	c := s.CreateContact(models.Contact{Name: "C", Email: "c@example.com", Message: "hello there!"})
	acc := s.CreateAccount("admin", "secret")

	assert.Equal(t, 1, b.ID)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, 1, acc.ID)
}

func TestBookingsSnapshotOrder(t *testing.T) {
	t.Parallel()

	s := New()

	for i := 1; i <= 5; i++ {
		s.CreateBooking(models.Booking{Name: fmt.Sprintf("user-%d", i), Email: "u@example.com"})
	}

	bookings := s.Bookings()
	require.Len(t, bookings, 5)

	for i, b := range bookings {
		assert.Equal(t, i+1, b.ID)
		assert.Equal(t, fmt.Sprintf("user-%d", i+1), b.Name)
	}
}

func TestBookingsSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	s := New()
	s.CreateBooking(models.Booking{Name: "original", Email: "o@example.com"})

	snapshot := s.Bookings()
	snapshot[0].Name = "mutated"

	assert.Equal(t, "original", s.Bookings()[0].Name)
}

func TestGetAccountByUsername(t *testing.T) {
	t.Parallel()

	s := New()

	created := s.CreateAccount("owner", "hunter2")

	found, ok := s.GetAccountByUsername("owner")
	require.True(t, ok)
	assert.Equal(t, created, found)

	_, ok = s.GetAccountByUsername("nobody")
	assert.False(t, ok)

	byID, ok := s.GetAccount(created.ID)
	require.True(t, ok)
	assert.Equal(t, "owner", byID.Username)
}

func TestConcurrentCreatesKeepIdsUnique(t *testing.T) {
	t.Parallel()

	s := New()

	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.CreateContact(models.Contact{Name: "C", Email: "c@example.com", Message: "hello there!"})
		}()
	}
	wg.Wait()

	contacts := s.Contacts()
	require.Len(t, contacts, n)

	seen := make(map[int]bool, n)
	for _, c := range contacts {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}
