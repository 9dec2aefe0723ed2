package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"math/rand"
	"time"

	"guestdesk/internal/models"
	"guestdesk/internal/repository"
	"guestdesk/pkg/auth"
	"guestdesk/pkg/config"
	"guestdesk/pkg/logger"
	"guestdesk/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Applying schema...")
	if err := applySchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	appLogger.Info("Starting database seeding...")

	hotelRepo := repository.NewHotelRepository(db, appLogger)
	bookingRepo := repository.NewBookingRepository(db, appLogger)
	templateRepo := repository.NewTemplateRepository(db, appLogger)
	messageRepo := repository.NewMessageRepository(db, appLogger)
	responseRepo := repository.NewResponseLogRepository(db, appLogger)
	staffRepo := repository.NewStaffRepository(db, appLogger)

	hotels, err := seedHotels(ctx, hotelRepo)
	if err != nil {
		appLogger.Fatal("Failed to seed hotels", zap.Error(err))
	}
	appLogger.Info("Seeded hotels", zap.Int("count", len(hotels)))

	bookings, err := seedBookings(ctx, bookingRepo, hotels)
	if err != nil {
		appLogger.Fatal("Failed to seed bookings", zap.Error(err))
	}
	appLogger.Info("Seeded bookings", zap.Int("count", len(bookings)))

	templates, err := seedTemplates(ctx, templateRepo, hotels)
	if err != nil {
		appLogger.Fatal("Failed to seed templates", zap.Error(err))
	}
	appLogger.Info("Seeded templates", zap.Int("count", templates))

	messages, err := seedMessages(ctx, messageRepo, responseRepo, bookings)
	if err != nil {
		appLogger.Fatal("Failed to seed messages", zap.Error(err))
	}
	appLogger.Info("Seeded messages", zap.Int("count", messages))

	if err := seedStaff(ctx, staffRepo); err != nil {
		appLogger.Fatal("Failed to seed staff account", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func applySchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schemaSQL)
	return err
}

func seedHotels(ctx context.Context, repo *repository.HotelRepository) ([]*models.Hotel, error) {
	now := time.Now()
	hotels := []*models.Hotel{
		{
			ID:        uuid.New(),
			Name:      "Tokyo Grand Hotel",
			Address:   "1-1-1 Marunouchi, Chiyoda-ku",
			City:      "Tokyo",
			Country:   "Japan",
			Latitude:  35.6762,
			Longitude: 139.6503,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Osaka Business Hotel",
			Address:   "1-1-1 Umeda, Kita-ku",
			City:      "Osaka",
			Country:   "Japan",
			Latitude:  34.6937,
			Longitude: 135.5023,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Kyoto Traditional Ryokan",
			Address:   "Shijo-dori Karasuma Nishi-iru, Shimogyo-ku",
			City:      "Kyoto",
			Country:   "Japan",
			Latitude:  35.0116,
			Longitude: 135.7681,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, hotel := range hotels {
		if err := repo.Create(ctx, hotel); err != nil {
			return nil, err
		}
	}
	return hotels, nil
}

func seedBookings(ctx context.Context, repo *repository.BookingRepository, hotels []*models.Hotel) ([]*models.Booking, error) {
	roomTypes := []string{"single", "double", "twin", "suite"}
	statuses := []models.BookingStatus{models.BookingConfirmed, models.BookingCancelled, models.BookingConfirmed}
	now := time.Now()

	var bookings []*models.Booking
	for hi, hotel := range hotels {
		count := 5 + rand.Intn(6)
		for i := 0; i < count; i++ {
			checkIn := now.AddDate(0, 0, rand.Intn(61)-30)
			checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(7))

			booking := &models.Booking{
				ID:          uuid.New(),
				HotelID:     hotel.ID,
				ExternalRef: fmt.Sprintf("REF%03d%03d", hi+1, i+1),
				GuestName:   fmt.Sprintf("Guest %d", i+1),
				CheckIn:     checkIn,
				CheckOut:    checkOut,
				RoomType:    roomTypes[rand.Intn(len(roomTypes))],
				GuestCount:  1 + rand.Intn(4),
				Status:      statuses[rand.Intn(len(statuses))],
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := repo.Create(ctx, booking); err != nil {
				return nil, err
			}
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func seedTemplates(ctx context.Context, repo *repository.TemplateRepository, hotels []*models.Hotel) (int, error) {
	templatesByIntent := map[models.IntentCategory][]string{
		models.IntentLuggage: {
			"Our luggage storage service is available at the front desk. Please stop by any time.",
			"We are happy to hold your luggage both before check-in and after check-out.",
			"Your bags will be kept safe with us, so please do not worry.",
		},
		models.IntentAvailability: {
			"We will check room availability for you. Could you let us know your preferred dates?",
			"We can walk you through the available booking windows. For urgent requests please call us directly.",
			"We recommend booking early to secure your preferred dates.",
		},
		models.IntentAttractions: {
			"We would be glad to introduce the sightseeing spots around the hotel.",
			"We can look up local attractions near the hotel along with directions for getting there.",
			"We also know some hidden local gems. Feel free to ask us anything.",
		},
	}

	count := 0
	now := time.Now()
	for _, hotel := range hotels {
		for intent, contents := range templatesByIntent {
			for _, content := range contents {
				tpl := &models.ReplyTemplate{
					ID:        uuid.New(),
					HotelID:   hotel.ID,
					Intent:    intent,
					Content:   content,
					Language:  "en",
					Active:    true,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := repo.Create(ctx, tpl); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

func seedMessages(
	ctx context.Context,
	messages *repository.MessageRepository,
	responses *repository.ResponseLogRepository,
	bookings []*models.Booking,
) (int, error) {
	samples := []struct {
		content string
		intent  models.IntentCategory
		reply   string
	}{
		{
			content: "Can I leave my luggage before check-in?",
			intent:  models.IntentLuggage,
			reply:   "Of course! We can store your luggage at the front desk from early morning.",
		},
		{
			content: "Do you have any rooms available next weekend?",
			intent:  models.IntentAvailability,
			reply:   "We still have a few twin rooms available next weekend. Shall we hold one for you?",
		},
		{
			content: "What sightseeing spots do you recommend nearby?",
			intent:  models.IntentAttractions,
			reply:   "The old town district is a ten minute walk away and well worth a visit.",
		},
	}

	platforms := []models.Platform{models.PlatformBookingCom, models.PlatformAirbnb}
	now := time.Now()

	count := 0
	for i, booking := range bookings {
		if i >= len(samples)*2 {
			break
		}
		sample := samples[i%len(samples)]

		msg := &models.GuestMessage{
			ID:                uuid.New(),
			BookingID:         booking.ID,
			HotelID:           booking.HotelID,
			Platform:          platforms[i%len(platforms)],
			PlatformMessageID: fmt.Sprintf("seed_msg_%03d", i+1),
			GuestName:         booking.GuestName,
			Content:           sample.content,
			Intent:            sample.intent,
			ReceivedAt:        now.Add(-time.Duration(i+1) * time.Hour),
			Processed:         true,
		}
		if err := messages.Create(ctx, msg); err != nil {
			return count, err
		}

		logEntry := &models.ResponseLog{
			ID:        uuid.New(),
			MessageID: msg.ID,
			Content:   sample.reply,
			Type:      models.ResponseManual,
			Sent:      true,
			SentAt:    msg.ReceivedAt.Add(10 * time.Minute),
		}
		if err := responses.Create(ctx, logEntry); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func seedStaff(ctx context.Context, repo *repository.StaffRepository) error {
	existing, err := repo.GetByEmail(ctx, "admin@guestdesk.io")
	if err == nil && existing != nil {
		return nil
	}

	hash, err := auth.HashPassword("admin12345")
	if err != nil {
		return err
	}

	now := time.Now()
	return repo.Create(ctx, &models.Staff{
		ID:        uuid.New(),
		Username:  "admin",
		Email:     "admin@guestdesk.io",
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
