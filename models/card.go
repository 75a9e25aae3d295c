package models

// CompanyInfo is one party's contact record, either the user's own company
// or the partner met at an event. Optional fields hold empty strings rather
// than being absent so every consumer sees a fully populated record.
type CompanyInfo struct {
	CompanyName     string   `json:"companyName"`
	CompanyNameKana string   `json:"companyNameKana"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	FirstNameKana   string   `json:"firstNameKana"`
	LastNameKana    string   `json:"lastNameKana"`
	PersonalPhone   string   `json:"personalPhone,omitempty"`
	CompanyPhone    string   `json:"companyPhone,omitempty"`
	FaxNumber       string   `json:"faxNumber,omitempty"`
	Email           string   `json:"email"`
	Address         string   `json:"address,omitempty"`
	Position        string   `json:"position,omitempty"`
	Website         string   `json:"website,omitempty"`
	Services        []string `json:"services"`
}

// MeetingInfo describes where the two parties met.
type MeetingInfo struct {
	Event string `json:"event"`
	Place string `json:"place"`
}

// CardExtraction is the normalized result of one card-image extraction call.
// The readings are alphabetic furigana as printed on the card, when present.
type CardExtraction struct {
	CompanyName      string   `json:"companyName"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	FirstNameReading string   `json:"firstNameReading"`
	LastNameReading  string   `json:"lastNameReading"`
	PersonalPhone    string   `json:"personalPhone"`
	CompanyPhone     string   `json:"companyPhone"`
	FaxNumber        string   `json:"faxNumber"`
	Email            string   `json:"email"`
	Address          string   `json:"address"`
	Position         string   `json:"position"`
	Website          string   `json:"website"`
	Services         []string `json:"services"`
}
