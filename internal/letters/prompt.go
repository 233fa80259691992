package letters

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ErrApplicantName is returned when either applicant name part is empty
// after trimming. Every other field degrades gracefully; this one cannot.
var ErrApplicantName = errors.New("applicant first and last name are required")

const (
	metricFallbackMin = 10
	metricFallbackMax = 60
)

// Builder assembles the completion prompt from a LetterRequest. Bucket and
// Region feed the supporting-document reference URL; Rand drives template
// and percentage selection and is injectable for deterministic builds.
type Builder struct {
	Bucket string
	Region string
	Rand   Source
}

// NewBuilder constructs a Builder with a time-seeded random source.
func NewBuilder(bucket, region string) *Builder {
	return &Builder{
		Bucket: bucket,
		Region: region,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Build produces the prompt string. docText carries extracted document
// content, docKey an object-storage key; when both are set the key wins and
// the text is ignored, mirroring the upload-first wizard flow. Fragments
// are appended in a fixed order and joined with single spaces; empty
// fragments are omitted, never emitted.
func (b *Builder) Build(req LetterRequest, docText, docKey string) (string, error) {
	src := b.Rand
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	applicant := joinName(req.ApplicantFirstName, req.ApplicantLastName)
	if strings.TrimSpace(req.ApplicantFirstName) == "" || strings.TrimSpace(req.ApplicantLastName) == "" {
		return "", ErrApplicantName
	}

	var out []string

	// 1. Header
	out = append(out, fmt.Sprintf("Write a %s recommendation letter in %s.",
		string(req.LetterType), req.Language.Label()))

	// 2. Recommender
	if frag := recommenderFragment(req); frag != "" {
		out = append(out, frag)
	}

	// 3. Applicant
	applicantLine := "Applicant: " + applicant
	if sex := strings.TrimSpace(req.ApplicantSex); sex != "" {
		applicantLine += " (" + sex + ")"
	}
	if pos := strings.TrimSpace(req.ApplicantPosition); pos != "" {
		applicantLine += ", applying for " + pos
	}
	out = append(out, applicantLine+".")

	// 4. Skills / achievements
	if tokens := splitSkills(req.SkillsAndQualities); len(tokens) > 0 {
		out = append(out, fmt.Sprintf(
			"In particular, they demonstrated %s, which translated into tangible results.",
			strings.Join(tokens, ", ")))
	}

	// 5. Recipient and type-conditional extras
	if name := strings.TrimSpace(req.RecipientName); name != "" {
		recipient := "Recipient: " + name
		if pos := strings.TrimSpace(req.RecipientPosition); pos != "" {
			recipient += ", " + pos
		}
		out = append(out, recipient+".")
	}
	if frag := conditionalFragment(req); frag != "" {
		out = append(out, frag)
	}

	// 6. Attachment reference and extra context
	switch {
	case strings.TrimSpace(docKey) != "":
		out = append(out, fmt.Sprintf("Supporting document: https://%s.s3.%s.amazonaws.com/%s",
			b.Bucket, b.Region, strings.TrimSpace(docKey)))
	case strings.TrimSpace(docText) != "":
		out = append(out, "Applicant CV/Resume content: "+strings.TrimSpace(docText)+".")
	}
	if extra := strings.TrimSpace(req.AdditionalContext); extra != "" {
		out = append(out, "Additional context: "+extra+".")
	}

	// 7. Personalization clause
	out = append(out, personalizationFragment(req))

	// 8. Writing-style tags
	if tags := cleanTags(req.StyleTags); len(tags) > 0 {
		out = append(out, "Writing style: "+strings.Join(tags, ", ")+".")
	}

	// 9. Anecdote
	if req.IncludeAnecdote {
		out = append(out, "Include a short anecdote about "+pick(src, anecdotesFor(req.LetterType))+".")
	}

	// 10. Comparative praise (always)
	out = append(out, "Emphasize that the applicant is "+renderComparative(src, pick(src, comparativesFor(req.LetterType)))+".")

	// 11. Metrics
	if req.IncludeMetrics {
		out = append(out, metricsFragment(src, req))
	}

	// 12. Type-specific closing nudge
	if nudge, ok := closingNudges[req.LetterType]; ok {
		out = append(out, nudge)
	}

	// 13. Creativity
	out = append(out, "Creativity/temperature: "+strconv.FormatFloat(req.Creativity, 'g', -1, 64)+".")

	// 14. Grammar check
	if req.GrammarCheck {
		out = append(out, "After composing, run a grammar-check pass.")
	}

	// 15. Final closing line
	out = append(out, pick(src, closingsFor(req.LetterType)))

	return strings.Join(out, " "), nil
}

func recommenderFragment(req LetterRequest) string {
	full := joinName(req.RecFirstName, req.RecLastName)
	title := strings.TrimSpace(req.RecTitle)
	org := strings.TrimSpace(req.RecOrg)
	if full == "" && title == "" && org == "" {
		return ""
	}

	var parts []string
	if full != "" {
		parts = append(parts, full)
	}
	switch {
	case title != "" && org != "":
		parts = append(parts, title+" at "+org)
	case title != "":
		parts = append(parts, title)
	case org != "":
		parts = append(parts, org)
	}
	if addr := strings.TrimSpace(req.RecAddress); addr != "" {
		parts = append(parts, "Address: "+addr)
	}
	parts = append(parts,
		"Relationship: "+req.Relationship.Label(req.RelationshipOther),
		"known for "+req.KnownTime.Label())
	return "Recommender: " + strings.Join(parts, ", ") + "."
}

func conditionalFragment(req LetterRequest) string {
	switch req.LetterType {
	case TypeScholarship:
		if gpa := strings.TrimSpace(req.GPA); gpa != "" {
			return "Applicant GPA: " + gpa + "."
		}
	case TypeImmigration:
		if visa := strings.TrimSpace(req.VisaType); visa != "" {
			return "Visa type: " + visa + "."
		}
	case TypeTenant:
		if addr := strings.TrimSpace(req.RentalAddress); addr != "" {
			return "Rental property: " + addr + "."
		}
	case TypeMedical:
		if spec := strings.TrimSpace(req.ResidencySpecialty); spec != "" {
			return "Residency specialty: " + spec + "."
		}
	}
	return ""
}

func personalizationFragment(req LetterRequest) string {
	tone := strings.ToLower(strings.TrimSpace(req.TonePreset))
	if tone == "" {
		tone = "neutral"
	}
	opening := strings.TrimSpace(req.OpeningStyle)
	if opening == "" {
		opening = "Direct praise"
	}
	return fmt.Sprintf(
		"Tone preset: %s; Formality level: %d (0 casual, 2 formal). Desired length: about %d words. Opening style: %s. Perspective: %s.",
		tone, req.Formality, req.LengthWords, opening, req.Perspective.Label())
}

func metricsFragment(src Source, req LetterRequest) string {
	percent := 0
	if found := extractPercentages(req.SkillsAndQualities, req.AdditionalContext); len(found) > 0 {
		percent = pick(src, found)
	} else {
		percent = randRange(src, metricFallbackMin, metricFallbackMax)
	}
	bank := metricsFor(req.LetterType)
	verb := pick(src, bank.verbs)
	metric := fmt.Sprintf(pick(src, bank.templates), percent)
	return fmt.Sprintf("Use specific metrics appropriate for a %s letter, such as %s %s.",
		string(req.LetterType), verb, metric)
}

func renderComparative(src Source, c comparative) string {
	if strings.Contains(c.template, "%d") {
		return fmt.Sprintf(c.template, randRange(src, c.min, c.max))
	}
	return c.template
}

func splitSkills(raw string) []string {
	var tokens []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

func cleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
