package domain

// FiveWhysData is the payload of a 5-Whys study. Questions and Answers
// are index-aligned; RootCause is the last non-empty answer, or the
// last question when no answers were given.
type FiveWhysData struct {
	Problem   string   `json:"problem"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
	RootCause string   `json:"rootCause"`
	Analysis  string   `json:"analysis"`
}

func (FiveWhysData) Method() Method { return MethodFiveWhys }
func (d FiveWhysData) AnalysisText() string { return d.Analysis }

// GUTProblem is one rated problem in a GUT matrix. Each dimension is
// scored 1-5 and Priority = Gravity * Urgency * Tendency.
type GUTProblem struct {
	Description string `json:"description"`
	Gravity     int    `json:"gravity"`
	Urgency     int    `json:"urgency"`
	Tendency    int    `json:"tendency"`
	Priority    int    `json:"priority"`
}

// GUTData is the payload of a GUT study, sorted by priority descending.
type GUTData struct {
	Problems        []GUTProblem `json:"problems"`
	TotalProblems   int          `json:"totalProblems"`
	HighestPriority *GUTProblem  `json:"highestPriority,omitempty"`
	Analysis        string       `json:"analysis"`
}

func (GUTData) Method() Method { return MethodGUT }
func (d GUTData) AnalysisText() string { return d.Analysis }

// SWOTData holds the four categorized lists of a SWOT analysis.
type SWOTData struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
	Total         int      `json:"total"`
	Analysis      string   `json:"analysis"`
}

func (SWOTData) Method() Method { return MethodSWOT }
func (d SWOTData) AnalysisText() string { return d.Analysis }

// PDCACycle is one Plan-Do-Check-Act iteration.
type PDCACycle struct {
	Plan  string `json:"plan"`
	Do    string `json:"do"`
	Check string `json:"check"`
	Act   string `json:"act"`
}

// PDCAData is the payload of a PDCA study.
type PDCAData struct {
	Cycles      []PDCACycle `json:"cycles"`
	TotalCycles int         `json:"totalCycles"`
	Analysis    string      `json:"analysis"`
}

func (PDCAData) Method() Method { return MethodPDCA }
func (d PDCAData) AnalysisText() string { return d.Analysis }

// SMARTCriterion is one of the five SMART checks against an objective.
type SMARTCriterion struct {
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// SMARTCriteria names the five criteria explicitly so renderers can
// walk them in order without reflection.
type SMARTCriteria struct {
	Specific   SMARTCriterion `json:"specific"`
	Measurable SMARTCriterion `json:"measurable"`
	Achievable SMARTCriterion `json:"achievable"`
	Relevant   SMARTCriterion `json:"relevant"`
	TimeBound  SMARTCriterion `json:"timeBound"`
}

// SMARTData is the payload of a SMART objective evaluation. Score is
// the count of checked criteria; IsSmart means all five are checked.
type SMARTData struct {
	Objective string        `json:"objective"`
	Criteria  SMARTCriteria `json:"criteria"`
	Score     int           `json:"score"`
	IsSmart   bool          `json:"isSmart"`
	Analysis  string        `json:"analysis"`
}

func (SMARTData) Method() Method { return MethodSMART }
func (d SMARTData) AnalysisText() string { return d.Analysis }

// SixW2HData answers the eight guiding questions of the 6W2H method.
type SixW2HData struct {
	What        string `json:"what"`
	Why         string `json:"why"`
	Where       string `json:"where"`
	When        string `json:"when"`
	Who         string `json:"who"`
	Which       string `json:"which"`
	How         string `json:"how"`
	HowMuch     string `json:"howMuch"`
	FilledCount int    `json:"filledCount"`
	Analysis    string `json:"analysis"`
}

func (SixW2HData) Method() Method { return MethodSixW2H }
func (d SixW2HData) AnalysisText() string { return d.Analysis }

// DecisionOption is one evaluated branch of a decision tree.
type DecisionOption struct {
	Description  string `json:"description"`
	Consequences string `json:"consequences"`
	Pros         string `json:"pros"`
	Cons         string `json:"cons"`
}

// DecisionTreeData is the payload of a decision tree study.
type DecisionTreeData struct {
	Decision     string           `json:"decision"`
	Options      []DecisionOption `json:"options"`
	TotalOptions int              `json:"totalOptions"`
	Analysis     string           `json:"analysis"`
}

func (DecisionTreeData) Method() Method { return MethodDecisionTree }
func (d DecisionTreeData) AnalysisText() string { return d.Analysis }

// BrainstormIdea is one collected idea, optionally categorized.
type BrainstormIdea struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// BrainstormData is the payload of a brainstorm session.
type BrainstormData struct {
	Topic      string           `json:"topic"`
	Ideas      []BrainstormIdea `json:"ideas"`
	TotalIdeas int              `json:"totalIdeas"`
	Categories []string         `json:"categories,omitempty"`
	Analysis   string           `json:"analysis"`
}

func (BrainstormData) Method() Method { return MethodBrainstorm }
func (d BrainstormData) AnalysisText() string { return d.Analysis }

// DiaryData is a free-form diary entry with optional tags.
type DiaryData struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
	Analysis string   `json:"analysis"`
}

func (DiaryData) Method() Method { return MethodDiary }
func (d DiaryData) AnalysisText() string { return d.Analysis }
