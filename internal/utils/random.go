package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tempobook/backend/internal/domain"
)

var firstNames = []string{
	"Olivia", "Liam", "Emma", "Noah", "Ava", "Oliver", "Sophia", "Elijah",
	"Isabella", "James", "Mia", "William", "Amelia", "Benjamin", "Harper",
	"Lucas", "Evelyn", "Henry", "Luna", "Theodore",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
}

func GenerateRandomCustomerName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func GenerateRandomEmail(fullName string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))
	return fmt.Sprintf("%s%d@example.com", local, rand.Intn(1000))
}

func GenerateRandomPhone() string {
	return fmt.Sprintf("+1-555-%03d-%04d", rand.Intn(1000), rand.Intn(10000))
}

// GenerateRandomBookingDate picks a day within one month either side of
// today, formatted as a schedule date key.
func GenerateRandomBookingDate() string {
	offset := rand.Intn(61) - 30
	return time.Now().AddDate(0, 0, offset).Format(domain.DateLayout)
}

// GenerateRandomBookingTime picks a quarter-hour between 08:00 and 18:45.
func GenerateRandomBookingTime() string {
	hour := rand.Intn(11) + 8
	minute := rand.Intn(4) * 15
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

var statuses = []domain.BookingStatus{
	domain.BookingStatusPending,
	domain.BookingStatusConfirmed,
	domain.BookingStatusCancelled,
	domain.BookingStatusCompleted,
}

func GenerateRandomBookingStatus() domain.BookingStatus {
	return statuses[rand.Intn(len(statuses))]
}

func GenerateRandomBooking(providerID string, serviceID string) *domain.Booking {
	name := GenerateRandomCustomerName()

	return &domain.Booking{
		ID:            uuid.NewString(),
		ProviderID:    providerID,
		ServiceID:     serviceID,
		CustomerName:  name,
		CustomerEmail: GenerateRandomEmail(name),
		CustomerPhone: GenerateRandomPhone(),
		BookingDate:   GenerateRandomBookingDate(),
		BookingTime:   GenerateRandomBookingTime(),
		Status:        GenerateRandomBookingStatus(),
	}
}
