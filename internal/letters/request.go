package letters

import "strings"

// LetterType discriminates which conditional fields and template banks apply.
type LetterType string

const (
	TypeAcademic    LetterType = "academic"
	TypeScholarship LetterType = "scholarship"
	TypeMedical     LetterType = "medical"
	TypeInternship  LetterType = "internship"
	TypeJob         LetterType = "job"
	TypeVolunteer   LetterType = "volunteer"
	TypeImmigration LetterType = "immigration"
	TypeTenant      LetterType = "tenant"
	TypePersonal    LetterType = "personal"
	TypeGraduate    LetterType = "graduate"
)

// KnownTypes lists every letter type the wizard offers.
var KnownTypes = []LetterType{
	TypeAcademic, TypeScholarship, TypeMedical, TypeInternship, TypeJob,
	TypeVolunteer, TypeImmigration, TypeTenant, TypePersonal, TypeGraduate,
}

// IsKnown reports whether t is in the wizard catalog.
func (t LetterType) IsKnown() bool {
	for _, known := range KnownTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Relationship is the recommender-to-applicant relationship selector.
type Relationship string

const (
	RelManager   Relationship = "manager"
	RelProfessor Relationship = "professor"
	RelColleague Relationship = "colleague"
	RelMentor    Relationship = "mentor"
	RelOther     Relationship = "other"
)

var relationshipLabels = map[Relationship]string{
	RelManager:   "Manager / Supervisor",
	RelProfessor: "Professor / Academic Advisor",
	RelColleague: "Coworker / Colleague",
	RelMentor:    "Mentor / Coach",
}

// Label resolves the display text, using the free-text override for "other"
// and degrading to a generic label for anything unrecognized.
func (r Relationship) Label(other string) string {
	if r == RelOther {
		if trimmed := strings.TrimSpace(other); trimmed != "" {
			return trimmed
		}
	}
	if label, ok := relationshipLabels[r]; ok {
		return label
	}
	return "Colleague"
}

// KnownDuration buckets how long the recommender has known the applicant.
type KnownDuration string

const (
	KnownLessThan6Months KnownDuration = "lt6m"
	Known6MonthsTo1Year  KnownDuration = "btw6m1y"
	Known1To2Years       KnownDuration = "btw1y2y"
	Known2To5Years       KnownDuration = "btw2y5y"
	KnownMoreThan5Years  KnownDuration = "gt5y"
)

var knownDurationLabels = map[KnownDuration]string{
	KnownLessThan6Months: "less than 6 months",
	Known6MonthsTo1Year:  "6 months to 1 year",
	Known1To2Years:       "1 to 2 years",
	Known2To5Years:       "2 to 5 years",
	KnownMoreThan5Years:  "more than 5 years",
}

// Label resolves the duration phrase with a defined fallback.
func (d KnownDuration) Label() string {
	if label, ok := knownDurationLabels[d]; ok {
		return label
	}
	return "some time"
}

// Language selects the output language of the letter.
type Language string

const (
	LangEnglish    Language = "english"
	LangSpanish    Language = "spanish"
	LangFrench     Language = "french"
	LangGerman     Language = "german"
	LangPortuguese Language = "portuguese"
)

var languageLabels = map[Language]string{
	LangEnglish:    "English",
	LangSpanish:    "Spanish",
	LangFrench:     "French",
	LangGerman:     "German",
	LangPortuguese: "Portuguese",
}

// Label resolves the display name, defaulting to English for unknown values.
func (l Language) Label() string {
	if label, ok := languageLabels[l]; ok {
		return label
	}
	return "English"
}

// Perspective controls the letter voice.
type Perspective string

const (
	PerspectiveFirst         Perspective = "first"
	PerspectiveInstitutional Perspective = "inst"
)

// Label expands the voice selector; unknown values read as first-person.
func (p Perspective) Label() string {
	if p == PerspectiveInstitutional {
		return "institutional (We)"
	}
	return "first-person (I)"
}

// LetterRequest is the full wizard form state. It exists only for the
// duration of a prompt build and is never persisted. JSON tags mirror the
// wizard field names.
type LetterRequest struct {
	LetterType LetterType `json:"letterType"`

	// Recommender
	RecFirstName      string        `json:"recName"`
	RecLastName       string        `json:"recLastName"`
	RecTitle          string        `json:"recTitle"`
	RecOrg            string        `json:"recOrg"`
	RecAddress        string        `json:"recAddress"`
	Relationship      Relationship  `json:"relationship"`
	RelationshipOther string        `json:"relationshipOther"`
	KnownTime         KnownDuration `json:"knownTime"`

	// Applicant
	ApplicantFirstName string `json:"applicantFirstName"`
	ApplicantLastName  string `json:"applicantLastName"`
	ApplicantSex       string `json:"applicantSex"`
	ApplicantPosition  string `json:"applicantPosition"`
	SkillsAndQualities string `json:"skillsAndQualities"`

	// Recipient and type-conditional extras
	RecipientName      string `json:"recipientName"`
	RecipientPosition  string `json:"recipientPosition"`
	GPA                string `json:"gpa"`
	VisaType           string `json:"visaType"`
	RentalAddress      string `json:"rentalAddress"`
	ResidencySpecialty string `json:"residencySpecialty"`

	// Personalization
	Language        Language    `json:"language"`
	TonePreset      string      `json:"tonePreset"`
	Formality       int         `json:"formality"`
	LengthWords     int         `json:"lengthWords"`
	OpeningStyle    string      `json:"openingStyle"`
	Perspective     Perspective `json:"perspective"`
	StyleTags       []string    `json:"styleTags"`
	Creativity      float64     `json:"creativity"`
	IncludeAnecdote bool        `json:"includeAnecdote"`
	IncludeMetrics  bool        `json:"includeMetrics"`
	GrammarCheck    bool        `json:"grammarCheck"`

	// Attachment context
	AdditionalContext string `json:"additionalContext"`
}
