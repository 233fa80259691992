package letters

// Template banks keyed by letter type. Every lookup falls back to the
// default bank so an unrecognized type never fails a build.

type comparative struct {
	template string // optional %d placeholder
	min, max int    // bounds for the embedded number; zero range means none
}

type metricBank struct {
	verbs     []string
	templates []string // each carries a %d%% placeholder
}

var anecdoteBank = map[LetterType][]string{
	TypeAcademic: {
		"a time they stayed after class to help struggling classmates grasp a difficult concept",
		"the semester they turned a failing group project around through sheer persistence",
		"how they challenged an accepted interpretation during a seminar and defended it rigorously",
		"the independent study they proposed and completed ahead of schedule",
		"a moment of genuine intellectual curiosity that went well beyond the syllabus",
	},
	TypeScholarship: {
		"how they balanced a part-time job with a full course load without letting grades slip",
		"the community tutoring program they started with no budget",
		"a financial setback they turned into motivation rather than an excuse",
		"the research poster that won departmental recognition",
	},
	TypeMedical: {
		"a night shift where their composure under pressure stood out to the attending team",
		"the way they comforted an anxious patient before a difficult procedure",
		"their methodical follow-up on a subtle finding others had overlooked",
		"a case presentation that impressed the entire rotation",
	},
	TypeInternship: {
		"their first week, when they asked sharper questions than some full-time hires",
		"the prototype they built unprompted over a weekend",
		"how they documented a messy internal process nobody else wanted to touch",
		"a client meeting where they were trusted to present their own analysis",
	},
	TypeJob: {
		"a production incident where they kept the team calm and focused",
		"the quarter they took over a stalled project and shipped it",
		"how they mentored a junior colleague into an independent contributor",
		"a negotiation where their preparation visibly changed the outcome",
		"the process improvement they championed against initial skepticism",
	},
	TypeVolunteer: {
		"a weekend event they organized end to end with a dozen volunteers",
		"the donor outreach campaign they ran on evenings and weekends",
		"how they kept showing up long after the initial enthusiasm of others faded",
		"a beneficiary whose situation improved directly because of their persistence",
	},
	TypeImmigration: {
		"their steady involvement in neighborhood life since arriving",
		"how they supported family members while holding stable employment",
		"a local cultural event they helped organize for the community",
	},
	TypeTenant: {
		"the time they reported and helped coordinate repairs for a plumbing issue",
		"how they left the previous unit in better condition than they found it",
		"their consideration for neighbors during a long building renovation",
	},
	TypePersonal: {
		"a difficult family period during which they remained dependable to everyone around them",
		"the way they quietly helped a neighbor through a hard winter",
		"a promise they kept at real personal cost",
	},
	TypeGraduate: {
		"the thesis chapter they rewrote three times until the argument was airtight",
		"a conference talk they delivered with notable poise as a first-time speaker",
		"their habit of reading far beyond the assigned literature",
		"the lab technique they mastered and then taught to incoming students",
	},
}

var defaultAnecdotes = []string{
	"a specific occasion when they went well beyond what was asked of them",
	"a challenge they faced and the resourceful way they resolved it",
	"a moment that shows their character when nobody was watching",
}

var comparativeBank = map[LetterType][]comparative{
	TypeAcademic: {
		{template: "one of the top %d students I have taught in my career", min: 1, max: 5},
		{template: "among the strongest %d percent of their cohort", min: 1, max: 5},
		{template: "the kind of student who appears once every few years"},
	},
	TypeScholarship: {
		{template: "within the top %d percent of candidates I have recommended for funding", min: 1, max: 5},
		{template: "an exceptionally deserving candidate by any measure"},
	},
	TypeMedical: {
		{template: "among the top %d residents I have supervised", min: 1, max: 5},
		{template: "in the strongest %d percent of trainees this program has seen", min: 1, max: 5},
	},
	TypeInternship: {
		{template: "one of the %d most promising interns our team has hosted", min: 1, max: 5},
		{template: "performing at a level we normally expect from experienced staff"},
	},
	TypeJob: {
		{template: "among the top %d performers on a team of seasoned professionals", min: 1, max: 5},
		{template: "someone I would rehire without a moment's hesitation"},
	},
	TypeVolunteer: {
		{template: "one of the %d most committed volunteers in the organization's history", min: 1, max: 5},
		{template: "a volunteer whose reliability set the standard for everyone else"},
	},
	TypeImmigration: {
		{template: "an individual of outstanding standing in our community"},
		{template: "among the most upstanding residents I have known in %d years here", min: 5, max: 25},
	},
	TypeTenant: {
		{template: "a tenant who maintained %d%% on-time rent payments throughout the tenancy", min: 80, max: 100},
		{template: "the most considerate tenant in the building by a clear margin"},
	},
	TypePersonal: {
		{template: "one of the %d most trustworthy people I know", min: 1, max: 5},
		{template: "a person whose word I would take over a written contract"},
	},
	TypeGraduate: {
		{template: "among the top %d graduate candidates I have advised", min: 1, max: 5},
		{template: "ready for doctoral-level work today, not in a year"},
	},
}

var defaultComparatives = []comparative{
	{template: "a standout individual in their cohort"},
	{template: "among the top %d people I have worked with in this capacity", min: 1, max: 5},
}

var metricBanks = map[LetterType]metricBank{
	TypeAcademic: {
		verbs: []string{
			"raised", "improved", "boosted", "lifted", "increased",
			"advanced", "strengthened", "elevated", "grew", "enhanced",
		},
		templates: []string{
			"their seminar participation grade by %d%%",
			"class average performance by %d%% while leading study groups",
			"their research output by %d%% year over year",
			"exam scores by %d%% across two consecutive terms",
			"peer-review quality ratings by %d%%",
			"lab report accuracy by %d%%",
			"attendance in the tutoring sessions they ran by %d%%",
			"their citation-ready writing output by %d%%",
			"project completion rates in group work by %d%%",
			"comprehension scores of students they mentored by %d%%",
		},
	},
	TypeScholarship: {
		verbs: []string{
			"raised", "improved", "increased", "boosted", "lifted",
			"expanded", "grew", "strengthened", "advanced", "elevated",
		},
		templates: []string{
			"their GPA by %d%% while working part-time",
			"funds raised for student initiatives by %d%%",
			"participation in the outreach program they founded by %d%%",
			"scholarship-eligible coursework completion by %d%%",
			"volunteer tutoring hours by %d%%",
			"their standardized test percentile by %d%%",
			"community program enrollment by %d%%",
			"peer mentoring coverage by %d%%",
			"their academic award submissions by %d%%",
			"first-generation student engagement by %d%%",
		},
	},
	TypeMedical: {
		verbs: []string{
			"improved", "reduced", "increased", "raised", "boosted",
			"cut", "lifted", "strengthened", "accelerated", "enhanced",
		},
		templates: []string{
			"patient satisfaction scores by %d%%",
			"chart completion timeliness by %d%%",
			"rounding efficiency by %d%%",
			"handoff accuracy by %d%%",
			"clinic follow-up compliance by %d%%",
			"procedure-preparation times by %d%%",
			"differential diagnosis accuracy in case reviews by %d%%",
			"patient education comprehension by %d%%",
			"team documentation quality by %d%%",
			"on-time discharge rates by %d%%",
		},
	},
	TypeInternship: {
		verbs: []string{
			"improved", "increased", "reduced", "accelerated", "boosted",
			"cut", "raised", "streamlined", "grew", "lifted",
		},
		templates: []string{
			"sprint task throughput by %d%%",
			"test coverage on their assigned module by %d%%",
			"onboarding documentation completeness by %d%%",
			"report turnaround times by %d%%",
			"data-entry accuracy by %d%%",
			"build times on the pipeline they maintained by %d%%",
			"stakeholder response rates by %d%%",
			"prototype iteration speed by %d%%",
			"meeting preparation efficiency by %d%%",
			"the quality score of deliverables they owned by %d%%",
		},
	},
	TypeJob: {
		verbs: []string{
			"increased", "improved", "reduced", "boosted", "grew",
			"cut", "raised", "accelerated", "lifted", "expanded",
		},
		templates: []string{
			"team productivity by %d%%",
			"quarterly revenue in their segment by %d%%",
			"customer retention by %d%%",
			"operating costs by %d%%",
			"delivery lead times by %d%%",
			"client satisfaction scores by %d%%",
			"process throughput by %d%%",
			"error rates on critical workflows by %d%%",
			"cross-team collaboration velocity by %d%%",
			"pipeline conversion by %d%%",
		},
	},
	TypeVolunteer: {
		verbs: []string{
			"increased", "grew", "raised", "boosted", "expanded",
			"improved", "lifted", "doubled-down to raise", "strengthened", "accelerated",
		},
		templates: []string{
			"volunteer turnout at weekend events by %d%%",
			"donations collected during their campaigns by %d%%",
			"beneficiary program enrollment by %d%%",
			"food-drive collection totals by %d%%",
			"community event attendance by %d%%",
			"new volunteer retention by %d%%",
			"outreach response rates by %d%%",
			"supply distribution efficiency by %d%%",
			"partner organization participation by %d%%",
			"program coverage across neighborhoods by %d%%",
		},
	},
	TypeImmigration: {
		verbs: []string{
			"increased", "improved", "grew", "strengthened", "raised",
			"expanded", "boosted", "lifted", "deepened", "broadened",
		},
		templates: []string{
			"their community involvement by %d%%",
			"attendance at the neighborhood programs they support by %d%%",
			"their civic participation by %d%%",
			"local business activity through their work by %d%%",
			"cultural program membership by %d%%",
			"their English-language program completion by %d%%",
			"family stability measures by %d%%",
			"their professional output since arriving by %d%%",
			"neighborhood association engagement by %d%%",
			"their mentoring of newer arrivals by %d%%",
		},
	},
	TypeTenant: {
		verbs: []string{
			"maintained", "improved", "kept", "raised", "sustained",
			"achieved", "preserved", "upheld", "increased", "delivered",
		},
		templates: []string{
			"%d%% on-time rent payments across the tenancy",
			"unit condition scores at %d%% of move-in standard",
			"%d%% responsiveness to scheduled inspections",
			"a %d%% reduction in maintenance escalations",
			"%d%% compliance with building policies",
			"common-area care at %d%% of expectations",
			"%d%% punctuality on lease renewals",
			"utility account standing at %d%% current",
			"neighbor-relations ratings at %d%%",
			"%d%% completion of agreed upkeep items",
		},
	},
	TypePersonal: {
		verbs: []string{
			"improved", "increased", "strengthened", "raised", "grew",
			"boosted", "lifted", "deepened", "expanded", "sustained",
		},
		templates: []string{
			"the wellbeing of those they support by %d%%",
			"attendance at the community group they organize by %d%%",
			"their savings toward family goals by %d%%",
			"participation in the youth program they coach by %d%%",
			"reliability on shared commitments by %d%%",
			"their availability for neighbors in need by %d%%",
			"the reach of their informal mentoring by %d%%",
			"household stability by %d%%",
			"their follow-through on promises by %d%%",
			"trust within their circle by %d%%",
		},
	},
	TypeGraduate: {
		verbs: []string{
			"increased", "improved", "raised", "boosted", "accelerated",
			"advanced", "strengthened", "grew", "lifted", "expanded",
		},
		templates: []string{
			"their publication-ready output by %d%%",
			"experiment reproducibility in the lab by %d%%",
			"literature-review coverage by %d%%",
			"their conference acceptance rate by %d%%",
			"data-analysis throughput by %d%%",
			"the lab's shared tooling adoption by %d%%",
			"undergraduate mentee retention by %d%%",
			"grant-proposal scoring by %d%%",
			"seminar presentation ratings by %d%%",
			"their research milestone completion by %d%%",
		},
	},
}

var defaultMetricBank = metricBank{
	verbs: []string{
		"improved", "increased", "raised", "boosted", "grew",
		"strengthened", "lifted", "advanced", "accelerated", "expanded",
	},
	templates: []string{
		"overall performance by %d%%",
		"key outcomes in their area by %d%%",
		"the quality of their deliverables by %d%%",
		"engagement among the people they worked with by %d%%",
		"efficiency of the processes they touched by %d%%",
		"results on their primary responsibilities by %d%%",
		"measurable output by %d%%",
		"the success rate of their initiatives by %d%%",
		"consistency of their contributions by %d%%",
		"impact within their group by %d%%",
	},
}

var closingBank = map[LetterType][]string{
	TypeAcademic: {
		"Close by affirming they will excel in any rigorous academic environment.",
		"End with an unreserved endorsement of their admission.",
		"Close with an invitation to contact the recommender for further detail.",
	},
	TypeScholarship: {
		"Close by stating this award would be an investment with certain returns.",
		"End with full confidence that they will honor the scholarship's purpose.",
	},
	TypeMedical: {
		"Close by affirming they will be an asset to any residency program.",
		"End with complete confidence in their clinical judgment and character.",
	},
	TypeInternship: {
		"Close by stating they would be welcomed back without hesitation.",
		"End with confidence that they will exceed expectations from day one.",
	},
	TypeJob: {
		"Close with an unequivocal recommendation for the role.",
		"End by stating any team would be fortunate to have them.",
		"Close with an offer to discuss their qualifications further.",
	},
	TypeVolunteer: {
		"Close by affirming their dedication will carry into any cause they join.",
		"End with gratitude for their service and a full endorsement.",
	},
	TypeImmigration: {
		"Close with a firm statement of support for their application.",
		"End by vouching for their character without reservation.",
	},
	TypeTenant: {
		"Close by recommending them to any landlord without hesitation.",
		"End by affirming they will treat the next property as their own.",
	},
	TypePersonal: {
		"Close with a wholehearted personal endorsement.",
		"End by affirming the recommender's complete trust in them.",
	},
	TypeGraduate: {
		"Close by affirming their readiness for graduate-level research.",
		"End with an unreserved endorsement of their candidacy.",
	},
}

var defaultClosings = []string{
	"Close with a confident, unreserved recommendation.",
	"End by offering to provide further information on request.",
}

// closingNudges are type-specific alignment statements emitted before the
// creativity clause, only for types that define one.
var closingNudges = map[LetterType]string{
	TypeScholarship: "Note explicitly how the applicant's goals align with the scholarship's mission.",
	TypeInternship:  "Express confidence that the applicant will convert this internship into lasting value for the host team.",
	TypeImmigration: "State a clear, personal endorsement of the applicant's good moral character and ties to the community.",
	TypeMedical:     "Affirm the applicant's bedside manner alongside their clinical competence.",
	TypeJob:         "State plainly that the recommender would hire the applicant again.",
}

func anecdotesFor(t LetterType) []string {
	if bank, ok := anecdoteBank[t]; ok && len(bank) > 0 {
		return bank
	}
	return defaultAnecdotes
}

func comparativesFor(t LetterType) []comparative {
	if bank, ok := comparativeBank[t]; ok && len(bank) > 0 {
		return bank
	}
	return defaultComparatives
}

func metricsFor(t LetterType) metricBank {
	if bank, ok := metricBanks[t]; ok && len(bank.verbs) > 0 && len(bank.templates) > 0 {
		return bank
	}
	return defaultMetricBank
}

func closingsFor(t LetterType) []string {
	if bank, ok := closingBank[t]; ok && len(bank) > 0 {
		return bank
	}
	return defaultClosings
}
