package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventdeck/internal/apperrors"
	"eventdeck/internal/models"
)

// fakeEventsRepo keeps events in memory and enforces the unique slug
// constraint the Mongo index provides in production.
type fakeEventsRepo struct {
	events []*models.Event
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	for _, e := range f.events {
		if e.Slug == event.Slug {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateSlug, event.Slug)
		}
	}
	if err := event.BeforeCreate(); err != nil {
		return nil, err
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context) ([]*models.Event, error) {
	out := make([]*models.Event, len(f.events))
	copy(out, f.events)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeEventsRepo) FindEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	for _, e := range f.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeEventsRepo) FindEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeEventsRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID != id {
			continue
		}
		e.Title = fields["title"].(string)
		e.Slug = fields["slug"].(string)
		e.Description = fields["description"].(string)
		e.Overview = fields["overview"].(string)
		e.Venue = fields["venue"].(string)
		e.Location = fields["location"].(string)
		e.Date = fields["date"].(string)
		e.Time = fields["time"].(string)
		e.Mode = fields["mode"].(string)
		e.Audience = fields["audience"].(string)
		e.Agenda = fields["agenda"].([]string)
		e.Organizer = fields["organizer"].(string)
		e.Tags = fields["tags"].([]string)
		e.UpdatedAt = fields["updated_at"].(time.Time)
		return e, nil
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeEventsRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEventNotFound
}

func (f *fakeEventsRepo) EventExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for _, e := range f.events {
		if e.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeUploader struct {
	url   string
	calls int
}

func (f *fakeUploader) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	f.calls++
	return f.url, nil
}

func newEventInput() *models.Event {
	return &models.Event{
		Title:       "Go Meetup",
		Description: "Monthly Go meetup",
		Overview:    "Talks and networking",
		Venue:       "Impact Hub",
		Location:    "Accra, Ghana",
		Date:        "2026-03-14",
		Time:        "18:00",
		Mode:        "in-person",
		Audience:    "developers",
		Agenda:      []string{"Welcome", "Talk"},
		Organizer:   "Accra Gophers",
		Tags:        []string{"go", "meetup"},
	}
}

func TestEventServiceCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes slug, date and time", func(t *testing.T) {
		repo := &fakeEventsRepo{}
		uploader := &fakeUploader{url: "https://res.cloudinary.com/demo/events/x.webp"}
		svc := NewEventService(repo, uploader)

		event := newEventInput()
		event.Title = "  My Cool Talk!!  "
		event.Date = "2025-12-01T23:00:00-05:00"
		event.Time = "9:05"

		created, err := svc.CreateEvent(ctx, event, strings.NewReader("fake-image-bytes"))
		require.NoError(t, err)

		assert.Equal(t, "my-cool-talk", created.Slug)
		assert.Equal(t, "2025-12-02", created.Date) // UTC-shifted calendar date
		assert.Equal(t, "09:05", created.Time)
		assert.Equal(t, uploader.url, created.Image)
		assert.Equal(t, 1, uploader.calls)
		assert.False(t, created.ID.IsZero())
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("missing field rejects the write", func(t *testing.T) {
		repo := &fakeEventsRepo{}
		svc := NewEventService(repo, &fakeUploader{url: "https://example.com/i.webp"})

		event := newEventInput()
		event.Venue = "   "

		_, err := svc.CreateEvent(ctx, event, strings.NewReader("img"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMissingField)
		assert.Empty(t, repo.events)
	})

	t.Run("invalid date propagates", func(t *testing.T) {
		svc := NewEventService(&fakeEventsRepo{}, &fakeUploader{url: "https://example.com/i.webp"})

		event := newEventInput()
		event.Date = "not-a-date"

		_, err := svc.CreateEvent(ctx, event, strings.NewReader("img"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
	})

	t.Run("invalid time propagates", func(t *testing.T) {
		svc := NewEventService(&fakeEventsRepo{}, &fakeUploader{url: "https://example.com/i.webp"})

		event := newEventInput()
		event.Time = "24:00"

		_, err := svc.CreateEvent(ctx, event, strings.NewReader("img"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidTime)
	})

	t.Run("nil image is rejected before upload", func(t *testing.T) {
		uploader := &fakeUploader{url: "https://example.com/i.webp"}
		svc := NewEventService(&fakeEventsRepo{}, uploader)

		_, err := svc.CreateEvent(ctx, newEventInput(), nil)
		require.Error(t, err)
		assert.Zero(t, uploader.calls)
	})

	t.Run("identical titles collide on the slug constraint", func(t *testing.T) {
		repo := &fakeEventsRepo{}
		svc := NewEventService(repo, &fakeUploader{url: "https://example.com/i.webp"})

		first := newEventInput()
		_, err := svc.CreateEvent(ctx, first, strings.NewReader("img"))
		require.NoError(t, err)

		second := newEventInput()
		_, err = svc.CreateEvent(ctx, second, strings.NewReader("img"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateSlug)
		assert.Len(t, repo.events, 1)
	})
}

func TestEventServiceListEvents(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEventsRepo{}
	svc := NewEventService(repo, &fakeUploader{url: "https://example.com/i.webp"})

	titles := []string{"First Event", "Second Event", "Third Event"}
	base := time.Now()
	for i, title := range titles {
		event := newEventInput()
		event.Title = title
		_, err := svc.CreateEvent(ctx, event, strings.NewReader("img"))
		require.NoError(t, err)
		// Pin distinct creation times so ordering is deterministic.
		repo.events[i].CreatedAt = base.Add(time.Duration(i) * time.Second)
	}

	listed, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Third Event", listed[0].Title)
	assert.Equal(t, "Second Event", listed[1].Title)
	assert.Equal(t, "First Event", listed[2].Title)
}

func TestEventServiceUpdateEvent(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*EventService, *fakeEventsRepo, *models.Event) {
		repo := &fakeEventsRepo{}
		svc := NewEventService(repo, &fakeUploader{url: "https://example.com/i.webp"})
		created, err := svc.CreateEvent(ctx, newEventInput(), strings.NewReader("img"))
		require.NoError(t, err)
		return svc, repo, created
	}

	strPtr := func(s string) *string { return &s }

	t.Run("title change regenerates slug", func(t *testing.T) {
		svc, _, created := setup(t)

		updated, err := svc.UpdateEvent(ctx, created.ID, EventUpdate{Title: strPtr("Renamed  Event!")})
		require.NoError(t, err)
		assert.Equal(t, "Renamed  Event!", updated.Title)
		assert.Equal(t, "renamed-event", updated.Slug)
	})

	t.Run("unrelated change keeps slug", func(t *testing.T) {
		svc, _, created := setup(t)

		updated, err := svc.UpdateEvent(ctx, created.ID, EventUpdate{Description: strPtr("New description")})
		require.NoError(t, err)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.Equal(t, "New description", updated.Description)
	})

	t.Run("date change is re-normalized", func(t *testing.T) {
		svc, _, created := setup(t)

		updated, err := svc.UpdateEvent(ctx, created.ID, EventUpdate{Date: strPtr("2026-07-01T22:00:00-04:00")})
		require.NoError(t, err)
		assert.Equal(t, "2026-07-02", updated.Date)
	})

	t.Run("invalid time change rejects the update", func(t *testing.T) {
		svc, repo, created := setup(t)

		_, err := svc.UpdateEvent(ctx, created.ID, EventUpdate{Time: strPtr("9:60")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidTime)
		assert.Equal(t, "18:00", repo.events[0].Time)
	})

	t.Run("blanking a field rejects the update", func(t *testing.T) {
		svc, _, created := setup(t)

		_, err := svc.UpdateEvent(ctx, created.ID, EventUpdate{Location: strPtr(" ")})
		assert.ErrorIs(t, err, apperrors.ErrMissingField)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.UpdateEvent(ctx, primitive.NewObjectID(), EventUpdate{Title: strPtr("x")})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventServiceDeleteEvent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEventsRepo{}
	svc := NewEventService(repo, &fakeUploader{url: "https://example.com/i.webp"})

	created, err := svc.CreateEvent(ctx, newEventInput(), strings.NewReader("img"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))
	assert.Empty(t, repo.events)
	assert.ErrorIs(t, svc.DeleteEvent(ctx, created.ID), apperrors.ErrEventNotFound)
}
