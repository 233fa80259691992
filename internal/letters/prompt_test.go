package letters

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func fullRequest() LetterRequest {
	return LetterRequest{
		LetterType:         TypeScholarship,
		RecFirstName:       "Dana",
		RecLastName:        "Whitfield",
		RecTitle:           "Dean of Students",
		RecOrg:             "Crestview College",
		RecAddress:         "12 College Row",
		Relationship:       RelProfessor,
		KnownTime:          Known2To5Years,
		ApplicantFirstName: "Maya",
		ApplicantLastName:  "Ortiz",
		ApplicantSex:       "female",
		ApplicantPosition:  "the Hargrove Merit Scholarship",
		SkillsAndQualities: "leadership; empathy, analytical rigor",
		RecipientName:      "Selection Committee",
		RecipientPosition:  "Scholarship Board",
		GPA:                "3.9",
		Language:           LangEnglish,
		TonePreset:         "Warm",
		Formality:          2,
		LengthWords:        450,
		OpeningStyle:       "Anecdotal",
		Perspective:        PerspectiveFirst,
		StyleTags:          []string{"sincere", "vivid"},
		Creativity:         0.7,
		IncludeAnecdote:    true,
		IncludeMetrics:     true,
		GrammarCheck:       true,
		AdditionalContext:  "First-generation college student.",
	}
}

func seededBuilder(seed int64) *Builder {
	return &Builder{
		Bucket: "letters-uploads",
		Region: "us-east-1",
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

func TestBuildRequiresApplicantName(t *testing.T) {
	b := seededBuilder(1)

	req := fullRequest()
	req.ApplicantFirstName = "  "
	if _, err := b.Build(req, "", ""); !errors.Is(err, ErrApplicantName) {
		t.Fatalf("expected ErrApplicantName, got %v", err)
	}

	req = fullRequest()
	req.ApplicantLastName = ""
	if _, err := b.Build(req, "", ""); !errors.Is(err, ErrApplicantName) {
		t.Fatalf("expected ErrApplicantName, got %v", err)
	}
}

func TestBuildNeverEmitsDoubleSpaces(t *testing.T) {
	b := seededBuilder(2)

	// Sparse request: optional fragments must vanish, not leave gaps.
	sparse := LetterRequest{
		LetterType:         TypeJob,
		ApplicantFirstName: "Maya",
		ApplicantLastName:  "Ortiz",
	}
	for _, req := range []LetterRequest{fullRequest(), sparse} {
		prompt, err := b.Build(req, "", "")
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if strings.Contains(prompt, "  ") {
			t.Fatalf("prompt contains double space: %q", prompt)
		}
		if strings.HasPrefix(prompt, " ") || strings.HasSuffix(prompt, " ") {
			t.Fatalf("prompt has leading/trailing space: %q", prompt)
		}
	}
}

func TestBuildFragmentOrder(t *testing.T) {
	prompt, err := seededBuilder(3).Build(fullRequest(), "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ordered := []string{
		"Write a scholarship recommendation letter in English.",
		"Recommender: Dana Whitfield, Dean of Students at Crestview College, Address: 12 College Row, Relationship: Professor / Academic Advisor, known for 2 to 5 years.",
		"Applicant: Maya Ortiz (female), applying for the Hargrove Merit Scholarship.",
		"In particular, they demonstrated leadership, empathy, analytical rigor, which translated into tangible results.",
		"Recipient: Selection Committee, Scholarship Board.",
		"Applicant GPA: 3.9.",
		"Additional context: First-generation college student.",
		"Tone preset: warm; Formality level: 2 (0 casual, 2 formal). Desired length: about 450 words. Opening style: Anecdotal. Perspective: first-person (I).",
		"Writing style: sincere, vivid.",
		"Include a short anecdote about ",
		"Emphasize that the applicant is ",
		"Use specific metrics appropriate for a scholarship letter, such as ",
		"Note explicitly how the applicant's goals align with the scholarship's mission.",
		"Creativity/temperature: 0.7.",
		"After composing, run a grammar-check pass.",
	}

	pos := -1
	for _, fragment := range ordered {
		idx := strings.Index(prompt, fragment)
		if idx < 0 {
			t.Fatalf("missing fragment %q in prompt %q", fragment, prompt)
		}
		if idx <= pos {
			t.Fatalf("fragment %q out of order in prompt %q", fragment, prompt)
		}
		pos = idx
	}
}

func TestBuildUnknownTypeFallsBackToDefaults(t *testing.T) {
	req := fullRequest()
	req.LetterType = LetterType("board")
	req.GPA = ""

	prompt, err := seededBuilder(4).Build(req, "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(prompt, "Write a board recommendation letter in English.") {
		t.Fatalf("expected header to carry the raw type, got %q", prompt)
	}

	found := false
	for _, anecdote := range defaultAnecdotes {
		if strings.Contains(prompt, anecdote) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a default anecdote in %q", prompt)
	}

	found = false
	for _, closing := range defaultClosings {
		if strings.Contains(prompt, closing) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a default closing in %q", prompt)
	}
}

func TestBuildSkillsSplitOnCommasAndSemicolons(t *testing.T) {
	req := fullRequest()
	req.SkillsAndQualities = " grit ;  calm under pressure ,curiosity, "

	prompt, err := seededBuilder(5).Build(req, "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "In particular, they demonstrated grit, calm under pressure, curiosity, which translated into tangible results."
	if !strings.Contains(prompt, want) {
		t.Fatalf("expected %q in prompt %q", want, prompt)
	}
}

func TestBuildMetricsPreferSuppliedPercentage(t *testing.T) {
	req := fullRequest()
	req.SkillsAndQualities = ""
	req.AdditionalContext = "Raised club membership by 35% in one year."

	// The supplied figure must win over the random fallback on every build.
	for seed := int64(0); seed < 20; seed++ {
		prompt, err := seededBuilder(seed).Build(req, "", "")
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		idx := strings.Index(prompt, "Use specific metrics")
		if idx < 0 {
			t.Fatalf("missing metrics fragment in %q", prompt)
		}
		if !strings.Contains(prompt[idx:], "35%") {
			t.Fatalf("seed %d: expected supplied 35%% in metrics fragment, got %q", seed, prompt[idx:])
		}
	}
}

func TestBuildMetricsFallbackStaysInRange(t *testing.T) {
	req := fullRequest()
	req.SkillsAndQualities = "no figures here"
	req.AdditionalContext = ""

	for seed := int64(0); seed < 20; seed++ {
		src := rand.New(rand.NewSource(seed))
		frag := metricsFragment(src, req)
		percents := extractPercentages(frag)
		if len(percents) != 1 {
			t.Fatalf("seed %d: expected one percentage in %q", seed, frag)
		}
		if percents[0] < metricFallbackMin || percents[0] > metricFallbackMax {
			t.Fatalf("seed %d: fallback %d out of [%d, %d]", seed, percents[0], metricFallbackMin, metricFallbackMax)
		}
	}
}

func TestBuildDeterministicUnderFixedSeed(t *testing.T) {
	req := fullRequest()

	first, err := seededBuilder(42).Build(req, "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := seededBuilder(42).Build(req, "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if first != second {
		t.Fatalf("same seed produced different prompts:\n%q\n%q", first, second)
	}
}

func TestBuildDocumentKeyWinsOverText(t *testing.T) {
	b := seededBuilder(6)

	prompt, err := b.Build(fullRequest(), "full extracted resume text", "uploads/user-1/resume.pdf")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantURL := "Supporting document: https://letters-uploads.s3.us-east-1.amazonaws.com/uploads/user-1/resume.pdf"
	if !strings.Contains(prompt, wantURL) {
		t.Fatalf("expected %q in prompt %q", wantURL, prompt)
	}
	if strings.Contains(prompt, "Applicant CV/Resume content") {
		t.Fatalf("expected document text to be ignored when a key is set: %q", prompt)
	}

	prompt, err = b.Build(fullRequest(), "full extracted resume text", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(prompt, "Applicant CV/Resume content: full extracted resume text.") {
		t.Fatalf("expected document text fragment in %q", prompt)
	}
}

func TestBuildTypeConditionalExtras(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*LetterRequest)
		want string
	}{
		{"immigration visa", func(r *LetterRequest) {
			r.LetterType = TypeImmigration
			r.VisaType = "EB-2 NIW"
		}, "Visa type: EB-2 NIW."},
		{"tenant address", func(r *LetterRequest) {
			r.LetterType = TypeTenant
			r.RentalAddress = "44 Birch Lane, Unit 3"
		}, "Rental property: 44 Birch Lane, Unit 3."},
		{"medical specialty", func(r *LetterRequest) {
			r.LetterType = TypeMedical
			r.ResidencySpecialty = "internal medicine"
		}, "Residency specialty: internal medicine."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := fullRequest()
			req.GPA = ""
			tc.mut(&req)
			prompt, err := seededBuilder(7).Build(req, "", "")
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if !strings.Contains(prompt, tc.want) {
				t.Fatalf("expected %q in prompt %q", tc.want, prompt)
			}
		})
	}
}

func TestBuildGPAIgnoredForNonScholarship(t *testing.T) {
	req := fullRequest()
	req.LetterType = TypeJob

	prompt, err := seededBuilder(8).Build(req, "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if strings.Contains(prompt, "Applicant GPA") {
		t.Fatalf("GPA fragment must only appear for scholarship letters: %q", prompt)
	}
}

func TestBuildRelationshipOtherUsesFreeText(t *testing.T) {
	req := fullRequest()
	req.Relationship = RelOther
	req.RelationshipOther = " Scoutmaster "

	prompt, err := seededBuilder(9).Build(req, "", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(prompt, "Relationship: Scoutmaster,") {
		t.Fatalf("expected free-text relationship in %q", prompt)
	}
}
