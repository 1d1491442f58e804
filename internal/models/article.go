package models

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TitleMinLength   = 5
	TitleMaxLength   = 200
	ContentMinLength = 50
	ImageMaxLength   = 10000000 // ~10MB of inline base64
)

type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Title     string             `bson:"title" json:"title" validate:"required,min=5,max=200,articletitle" example:"Exploring the Future of AI"`
	Content   string             `bson:"content" json:"content" validate:"required,min=50"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,max=10000000,imageref"`
	Slug      string             `bson:"slug" json:"slug" example:"exploring-the-future-of-ai"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt" example:"2025-01-01T00:00:00Z"`
}

var (
	// Letters (accented Latin included), digits, whitespace and - . , ! ?
	titleCharsRe = regexp.MustCompile(`^[\p{L}\p{N}\s\-.,!?]+$`)
	dataURIRe    = regexp.MustCompile(`^data:[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*/[a-zA-Z0-9][a-zA-Z0-9!#$&^_.+-]*(;[a-zA-Z0-9-]+=[^;,]+)*(;base64)?,`)

	validate = newArticleValidator()
)

func newArticleValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("articletitle", func(fl validator.FieldLevel) bool {
		return titleCharsRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("imageref", func(fl validator.FieldLevel) bool {
		return IsValidImageRef(fl.Field().String())
	})

	return v
}

// IsValidImageRef reports whether s is an absolute http(s) URL or a
// well-formed data URI. An empty string is handled by the omitempty rule.
func IsValidImageRef(s string) bool {
	if strings.HasPrefix(s, "data:") {
		return dataURIRe.MatchString(s)
	}

	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateForCreate checks the fields required to persist a new article and
// returns one message per failed field rule, not just the first. The slice
// is empty when the article is valid.
func (a *Article) ValidateForCreate() []string {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

// ValidateUpdateFields validates only the fields present in a partial
// update. Used when strict update validation is enabled.
func ValidateUpdateFields(fields map[string]interface{}) []string {
	var messages []string

	if raw, ok := fields["title"]; ok {
		title, _ := raw.(string)
		title = strings.TrimSpace(title)
		switch {
		case len([]rune(title)) < TitleMinLength:
			messages = append(messages, "title must be at least 5 characters")
		case len([]rune(title)) > TitleMaxLength:
			messages = append(messages, "title must be at most 200 characters")
		case !titleCharsRe.MatchString(title):
			messages = append(messages, "title may only contain letters, digits, spaces and - . , ! ?")
		}
	}

	if raw, ok := fields["content"]; ok {
		content, _ := raw.(string)
		if len([]rune(content)) < ContentMinLength {
			messages = append(messages, "content must be at least 50 characters")
		}
	}

	if raw, ok := fields["image"]; ok {
		image, _ := raw.(string)
		if image != "" {
			if len(image) > ImageMaxLength {
				messages = append(messages, "image must be at most 10000000 characters")
			} else if !IsValidImageRef(image) {
				messages = append(messages, "image must be a valid URL or data URI")
			}
		}
	}

	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		switch fe.Tag() {
		case "required":
			return "title is required"
		case "min":
			return "title must be at least 5 characters"
		case "max":
			return "title must be at most 200 characters"
		default:
			return "title may only contain letters, digits, spaces and - . , ! ?"
		}
	case "Content":
		if fe.Tag() == "required" {
			return "content is required"
		}
		return "content must be at least 50 characters"
	case "Image":
		if fe.Tag() == "max" {
			return "image must be at most 10000000 characters"
		}
		return "image must be a valid URL or data URI"
	}
	return fe.Field() + " is invalid"
}
