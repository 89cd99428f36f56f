package models

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventdeck/internal/apperrors"
)

const (
	EventDbName  = "eventdeck"
	EventColName = "events"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"notblank"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description" validate:"notblank"`
	Overview    string             `bson:"overview" json:"overview" validate:"notblank"`
	Image       string             `bson:"image" json:"image" validate:"notblank"`
	Venue       string             `bson:"venue" json:"venue" validate:"notblank"`
	Location    string             `bson:"location" json:"location" validate:"notblank"`
	Date        string             `bson:"date" json:"date" validate:"notblank"` // YYYY-MM-DD, UTC
	Time        string             `bson:"time" json:"time" validate:"notblank"` // HH:mm, 24-hour
	Mode        string             `bson:"mode" json:"mode" validate:"notblank"` // e.g. "online", "in-person", "hybrid"
	Audience    string             `bson:"audience" json:"audience" validate:"notblank"`
	Agenda      []string           `bson:"agenda" json:"agenda" validate:"required,min=1,dive,notblank"`
	Organizer   string             `bson:"organizer" json:"organizer" validate:"notblank"`
	Tags        []string           `bson:"tags" json:"tags" validate:"required,min=1,dive,notblank"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ValidateEvent checks the required-field contract before any derived field
// is generated: every scalar must be non-blank, agenda and tags must be
// non-empty lists of non-blank strings. Only the first violation is
// reported, keyed by the json field name.
func (e *Event) ValidateEvent() error {
	err := Validate.Struct(e)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	field := verrs[0].Field()
	// Element-level failures carry an index suffix, e.g. "agenda[0]".
	if i := strings.IndexByte(field, '['); i >= 0 {
		return apperrors.InvalidItem(field[:i])
	}
	return apperrors.MissingField(field)
}

func (e *Event) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return nil
}
