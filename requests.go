package learninglogs

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/learninglogs/learninglogs/model"
)

// AddTopicRequest is the input of Journal.AddTopic.
type AddTopicRequest struct {
	Name string `json:"name"`
}

// NewAddTopicRequest builds a request with surrounding whitespace removed
// from the name.
func NewAddTopicRequest(name string) AddTopicRequest {
	return AddTopicRequest{Name: strings.TrimSpace(name)}
}

// Validate checks the name is present and fits the topics table.
func (m AddTopicRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name,
			validation.Required.Error("topic name cannot be empty"),
			validation.RuneLength(1, model.MaxTopicNameLength),
		),
	)
}
