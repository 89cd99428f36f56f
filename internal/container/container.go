package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"eventdeck/internal/helpers"
	"eventdeck/internal/models"
	"eventdeck/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	Cloudinary     *cloudinary.Cloudinary
	MongoDBClient  *mongo.Client
	MongoRepo      *models.MongodbRepo
	EventService   *services.EventService
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)
	uploader := helpers.NewCloudinaryUploader(cld)
	eventService := services.NewEventService(repo, uploader)
	bookingService := services.NewBookingService(repo, repo)

	return &Container{
		Logger:         logger,
		Cloudinary:     cld,
		MongoDBClient:  mongoDBClient,
		MongoRepo:      repo,
		EventService:   eventService,
		BookingService: bookingService,
	}
}
