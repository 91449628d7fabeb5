package event

// EventDetails is the structured detail block of an event.
type EventDetails struct {
	Included  []string `json:"included,omitempty"`
	Benefits  []string `json:"benefits,omitempty"`
	Schedule  []string `json:"schedule,omitempty"`
	RouteInfo string   `json:"routeInfo,omitempty"`
}

// DescriptionBlock is one rich description section.
type DescriptionBlock struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Items       []string `json:"items,omitempty"`
}

// Event is a published community event.
type Event struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description"`
	Details               *EventDetails      `json:"details,omitempty"`
	CoverImage            string             `json:"coverImage,omitempty"`
	ImageURLs             []string           `json:"imageUrls,omitempty"`
	Location              string             `json:"location,omitempty"`
	Date                  string             `json:"date"`
	EntryFee              *float64           `json:"entryFee,omitempty"`
	Status                string             `json:"status"`
	ResponseCount         int                `json:"responseCount,omitempty"`
	ConfirmedCount        int                `json:"confirmedCount,omitempty"`
	CreatedAt             string             `json:"createdAt"`
	UpdatedAt             string             `json:"updatedAt"`
	DescriptionBlocksRich []DescriptionBlock `json:"descriptionBlocksRich,omitempty"`
}

// EventRegistration is the body sent when a visitor signs up.
type EventRegistration struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// EventResponse is the backend's record of a registration.
type EventResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"eventId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RegistrationResult is returned by the register endpoint.
type RegistrationResult struct {
	Message  string         `json:"message"`
	Response *EventResponse `json:"response,omitempty"`
}
