package seed

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tempobook/backend/internal/config"
	"github.com/tempobook/backend/internal/domain"
	"github.com/tempobook/backend/internal/repository"
	"github.com/tempobook/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func ptr(s string) *string { return &s }

// nextWeekday returns the next calendar date (strictly after today) that
// falls on the given weekday, as a schedule date key.
func nextWeekday(weekday int) string {
	d := time.Now().AddDate(0, 0, 1)
	for int(d.Weekday()) != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateLayout)
}

type demoService struct {
	name        string
	description string
	duration    int32
	price       float64
}

var demoServices = []demoService{
	{"Initial Consultation", "A get-to-know-you session to discuss goals.", 30, 45},
	{"Deep Tissue Massage", "Focused pressure work on problem areas.", 60, 95},
	{"Hot Stone Therapy", "Heated basalt stones and long relaxing strokes.", 90, 140},
	{"Express Recovery", "A quick tune-up between full sessions.", 20, 35},
}

// SeedDemoData inserts a complete demo fixture: one provider account with a
// public booking page, its services, a saved availability document, and a
// spread of bookings across all statuses.
func SeedDemoData(cfg *config.Config, repo *repository.Repository) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.ProviderPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("unable to hash demo password", "error", err)
		return
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        "demo@tempobook.dev",
		Name:         ptr("Aurora Bennett"),
		PasswordHash: string(passwordHash),
	}
	if err := repo.CreateUser(user); err != nil {
		slog.Error("unable to insert demo user", "error", err)
		return
	}

	provider := &domain.Provider{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Name:        "Aurora Wellness Studio",
		Email:       user.Email,
		Phone:       ptr("+1-555-010-2040"),
		Address:     ptr("14 Harbor Lane, Portland, OR"),
		Description: ptr("Massage and recovery studio in the old harbor district."),
		Website:     ptr("https://aurora-wellness.example.com"),
		Slug:        "aurora-wellness",
	}
	if err := repo.CreateProvider(provider); err != nil {
		slog.Error("unable to insert demo provider", "error", err)
		return
	}

	serviceIDs := make([]string, 0, len(demoServices))
	for _, ds := range demoServices {
		service := &domain.Service{
			ID:          uuid.NewString(),
			ProviderID:  provider.ID,
			Name:        ds.name,
			Description: ptr(ds.description),
			Duration:    ds.duration,
			Price:       ds.price,
		}
		if err := repo.CreateService(service); err != nil {
			slog.Error("unable to insert demo service", "name", ds.name, "error", err)
			return
		}
		serviceIDs = append(serviceIDs, service.ID)
	}

	// The studio works Saturdays too, and takes a day off next Monday.
	availability := domain.NewAvailability()
	availability.ToggleWeekday(6)
	availability.AddTimeSlot(6)
	nextMonday := nextWeekday(1)
	if err := availability.ToggleSpecialDay(nextMonday); err != nil {
		slog.Error("unable to build demo availability", "error", err)
		return
	}
	if err := availability.ToggleSpecialDay(nextMonday); err != nil {
		slog.Error("unable to build demo availability", "error", err)
		return
	}
	if err := repo.SaveAvailability(provider.ID, availability); err != nil {
		slog.Error("unable to save demo availability", "error", err)
		return
	}

	cnt := 0
	for i := 0; i < 12; i++ {
		booking := utils.GenerateRandomBooking(provider.ID, serviceIDs[i%len(serviceIDs)])
		if err := repo.CreateBooking(booking); err != nil {
			slog.Error("unable to insert demo booking", "error", err)
			continue
		}
		cnt++
	}

	slog.Info("demo data inserted",
		"email", user.Email,
		"slug", provider.Slug,
		"services", len(serviceIDs),
		"bookings", cnt,
	)
}
