package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventdeck/internal/helpers"
	"eventdeck/internal/models"
)

type EventService struct {
	eventsRepo models.EventsRepo
	uploader   helpers.ImageUploader
}

func NewEventService(eventsRepo models.EventsRepo, uploader helpers.ImageUploader) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
		uploader:   uploader,
	}
}

// EventUpdate carries a partial update. Nil pointers and nil slices mean
// "leave unchanged".
type EventUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Overview    *string  `json:"overview"`
	Venue       *string  `json:"venue"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Mode        *string  `json:"mode"`
	Audience    *string  `json:"audience"`
	Organizer   *string  `json:"organizer"`
	Agenda      []string `json:"agenda"`
	Tags        []string `json:"tags"`
}

// ValidateAndNormalizeEvent runs the full pre-persist pipeline on a new
// event: structural validation first, then slug generation and date/time
// normalization. The candidate is mutated in place; any failure rejects the
// whole write before a single field is committed.
func ValidateAndNormalizeEvent(e *models.Event) error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}

	if err := e.ValidateEvent(); err != nil {
		return err
	}

	e.Slug = helpers.Slugify(e.Title)

	date, err := helpers.NormalizeDate(e.Date)
	if err != nil {
		return err
	}
	e.Date = date

	t, err := helpers.NormalizeTime(e.Time)
	if err != nil {
		return err
	}
	e.Time = t

	return nil
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event, image io.Reader) (*models.Event, error) {
	if image == nil {
		return nil, fmt.Errorf("image file is required")
	}

	url, err := es.uploader.UploadImage(ctx, image, helpers.EventsFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload event image: %v", err)
	}
	event.Image = url

	if err := ValidateAndNormalizeEvent(event); err != nil {
		return nil, err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListEvents(ctx)
}

func (es *EventService) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	return es.eventsRepo.FindEventBySlug(ctx, slug)
}

// UpdateEvent applies a partial update. Derived fields are regenerated only
// for source fields that actually changed: a new title regenerates the slug,
// a new date or time value is re-normalized. Unchanged fields keep their
// stored form.
func (es *EventService) UpdateEvent(ctx context.Context, id primitive.ObjectID, update EventUpdate) (*models.Event, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("invalid event ID")
	}

	existing, err := es.eventsRepo.FindEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate := *existing
	applyScalar := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyScalar(&candidate.Title, update.Title)
	applyScalar(&candidate.Description, update.Description)
	applyScalar(&candidate.Overview, update.Overview)
	applyScalar(&candidate.Venue, update.Venue)
	applyScalar(&candidate.Location, update.Location)
	applyScalar(&candidate.Date, update.Date)
	applyScalar(&candidate.Time, update.Time)
	applyScalar(&candidate.Mode, update.Mode)
	applyScalar(&candidate.Audience, update.Audience)
	applyScalar(&candidate.Organizer, update.Organizer)
	if update.Agenda != nil {
		candidate.Agenda = update.Agenda
	}
	if update.Tags != nil {
		candidate.Tags = update.Tags
	}

	if err := candidate.ValidateEvent(); err != nil {
		return nil, err
	}

	if candidate.Title != existing.Title {
		candidate.Slug = helpers.Slugify(candidate.Title)
	}
	if candidate.Date != existing.Date {
		date, err := helpers.NormalizeDate(candidate.Date)
		if err != nil {
			return nil, err
		}
		candidate.Date = date
	}
	if candidate.Time != existing.Time {
		t, err := helpers.NormalizeTime(candidate.Time)
		if err != nil {
			return nil, err
		}
		candidate.Time = t
	}

	fields := bson.M{
		"title":       candidate.Title,
		"slug":        candidate.Slug,
		"description": candidate.Description,
		"overview":    candidate.Overview,
		"venue":       candidate.Venue,
		"location":    candidate.Location,
		"date":        candidate.Date,
		"time":        candidate.Time,
		"mode":        candidate.Mode,
		"audience":    candidate.Audience,
		"agenda":      candidate.Agenda,
		"organizer":   candidate.Organizer,
		"tags":        candidate.Tags,
		"updated_at":  time.Now(),
	}

	return es.eventsRepo.UpdateEvent(ctx, id, fields)
}

func (es *EventService) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return fmt.Errorf("invalid event ID")
	}
	return es.eventsRepo.DeleteEvent(ctx, id)
}
