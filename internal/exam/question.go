package exam

// Question is a single multiple-choice assessment item.
type Question struct {
	ID          string
	Tier        int // difficulty tier 1..4
	Prompt      string
	Options     [4]string
	CorrectIdx  int
	Explanation string
}

// TierCount is the number of difficulty tiers in the bank.
const TierCount = 4

// QuestionsPerTier is the fixed number of questions per tier.
const QuestionsPerTier = 5

// Bank returns the fixed 20-question assessment bank, ordered by tier.
func Bank() []Question {
	return []Question{
		// Tier 1: APM, execution basics.
		{
			ID: "l1-1", Tier: 1,
			Prompt:      "In a PRD, what does MVP stand for?",
			Options:     [4]string{"Maximum Value Product", "Minimum Viable Product", "Main Visual Page", "Multi-Version Plan"},
			CorrectIdx:  1,
			Explanation: "MVP is the Minimum Viable Product: the cheapest build that validates the core hypothesis.",
		},
		{
			ID: "l1-2", Tier: 1,
			Prompt:      "Which tool is most commonly used to draw business flowcharts?",
			Options:     [4]string{"Photoshop", "Excel", "Visio / ProcessOn", "Word"},
			CorrectIdx:  2,
			Explanation: "Visio, ProcessOn and FigJam are the standard flowcharting tools.",
		},
		{
			ID: "l1-3", Tier: 1,
			Prompt:      "In a flowchart, what does a diamond shape usually represent?",
			Options:     [4]string{"Start / end", "A concrete operation", "A decision / branch", "Document output"},
			CorrectIdx:  2,
			Explanation: "The diamond is the decision node in standard flowchart notation, producing yes/no branches.",
		},
		{
			ID: "l1-4", Tier: 1,
			Prompt:      "What is the standard format of a user story?",
			Options:     [4]string{"As a <role>, I want <action>, so that <value>", "Name - priority - description", "Background - goal - solution", "Input - process - output"},
			CorrectIdx:  0,
			Explanation: "The canonical template is: As a <Role>, I want to <Action>, so that <Benefit>.",
		},
		{
			ID: "l1-5", Tier: 1,
			Prompt:      "A bug in the test environment blocks the core flow. Its priority should be?",
			Options:     [4]string{"P3 (Low)", "P2 (Medium)", "P1 (High)", "P0 (Blocker)"},
			CorrectIdx:  3,
			Explanation: "Anything blocking the main flow (login, checkout) is P0 and must be fixed immediately.",
		},

		// Tier 2: PM, independent ownership.
		{
			ID: "l2-1", Tier: 2,
			Prompt:      "DAU is an abbreviation for which metric?",
			Options:     [4]string{"Daily new users", "Daily active users", "Daily average launches", "Daily average session length"},
			CorrectIdx:  1,
			Explanation: "DAU = Daily Active Users.",
		},
		{
			ID: "l2-2", Tier: 2,
			Prompt:      "Which SQL keyword retrieves rows from a database table?",
			Options:     [4]string{"UPDATE", "DELETE", "SELECT", "INSERT"},
			CorrectIdx:  2,
			Explanation: "SELECT * FROM table is the most basic query.",
		},
		{
			ID: "l2-3", Tier: 2,
			Prompt:      "In an A/B test, what does p-value < 0.05 indicate?",
			Options:     [4]string{"The result is statistically significant", "The experiment failed", "Both groups are identical", "The sample size is too small"},
			CorrectIdx:  0,
			Explanation: "p < 0.05 is the usual threshold for rejecting the null hypothesis: the difference is unlikely to be random.",
		},
		{
			ID: "l2-4", Tier: 2,
			Prompt:      "In the Kano model, what is a \"must-be\" attribute?",
			Options:     [4]string{"A feature users do not care about", "Dissatisfying when absent, taken for granted when present", "Delightful when present, neutral when absent", "The more the better"},
			CorrectIdx:  1,
			Explanation: "Must-be attributes are expected baseline behavior; missing them causes strong dissatisfaction.",
		},
		{
			ID: "l2-5", Tier: 2,
			Prompt:      "Engineering says \"this requirement is technically impossible\". A PM should first?",
			Options:     [4]string{"Cut the requirement", "Escalate to the boss", "Ask about the specific blocker and explore alternatives", "Demand overtime"},
			CorrectIdx:  2,
			Explanation: "Understand whether the bottleneck is performance, logic or scheduling, then find another path to the same business goal.",
		},

		// Tier 3: Senior PM, commercial strategy.
		{
			ID: "l3-1", Tier: 3,
			Prompt:      "What is a North Star Metric?",
			Options:     [4]string{"Total company revenue", "The single long-term metric reflecting the product's core value", "App download count", "Employee satisfaction"},
			CorrectIdx:  1,
			Explanation: "A North Star aligns everyone in one direction and must express core user value, like Spotify's total listening time.",
		},
		{
			ID: "l3-2", Tier: 3,
			Prompt:      "LTV (lifetime value) measures which user value?",
			Options:     [4]string{"Total value over the whole lifecycle", "Single purchase value", "Most recent visit value", "Referral value"},
			CorrectIdx:  0,
			Explanation: "LTV is the total net profit a user contributes across their lifetime with the product.",
		},
		{
			ID: "l3-3", Tier: 3,
			Prompt:      "Which statement correctly describes a network effect?",
			Options:     [4]string{"More servers, faster network", "More users make the product more valuable for every user", "Wider network coverage", "More marketing channels"},
			CorrectIdx:  1,
			Explanation: "Classic network effects: messaging, telephones. Each new user raises the value for existing users.",
		},
		{
			ID: "l3-4", Tier: 3,
			Prompt:      "In the RICE prioritization model, what does I stand for?",
			Options:     [4]string{"Investment", "Impact", "Idea", "Income"},
			CorrectIdx:  1,
			Explanation: "RICE = Reach x Impact x Confidence / Effort.",
		},
		{
			ID: "l3-5", Tier: 3,
			Prompt:      "In a SaaS product, a high churn rate usually means?",
			Options:     [4]string{"Acquisition is too strong", "The product lacks PMF or customer success is failing", "Pricing is too low", "Competition is weak"},
			CorrectIdx:  1,
			Explanation: "SaaS lives on renewals. High churn is a leaky bucket: the product does not solve the problem or support is missing.",
		},

		// Tier 4: Director, macro strategy.
		{
			ID: "l4-1", Tier: 4,
			Prompt:      "A healthy LTV to CAC ratio should usually exceed?",
			Options:     [4]string{"1:1", "3:1", "10:1", "0.5:1"},
			CorrectIdx:  1,
			Explanation: "LTV/CAC > 3 is the common health bar; below 1 every new user loses money.",
		},
		{
			ID: "l4-2", Tier: 4,
			Prompt:      "The core advantage of economies of scale is?",
			Options:     [4]string{"Bigger is simpler to manage", "Bigger means lower unit cost", "Bigger allows higher prices", "Bigger means faster innovation"},
			CorrectIdx:  1,
			Explanation: "Fixed cost spread over more units lowers the per-unit cost, creating a cost advantage.",
		},
		{
			ID: "l4-3", Tier: 4,
			Prompt:      "On a P&L statement, what does EBITDA stand for?",
			Options:     [4]string{"Net profit", "Gross margin", "Earnings before interest, taxes, depreciation and amortization", "Cash flow"},
			CorrectIdx:  2,
			Explanation: "EBITDA strips out financing, tax and accounting depreciation, approximating operating cash generation.",
		},
		{
			ID: "l4-4", Tier: 4,
			Prompt:      "The main challenge of a matrix org structure is?",
			Options:     [4]string{"Lack of specialization", "Dual reporting lines raise coordination cost", "Deep departmental silos", "The structure is too simple"},
			CorrectIdx:  1,
			Explanation: "Employees report to both a functional and a project manager, which invites conflicting direction.",
		},
		{
			ID: "l4-5", Tier: 4,
			Prompt:      "Which is NOT a primary motive for M&A?",
			Options:     [4]string{"Acquiring technology or patents", "Removing a competitor", "Instantly growing headcount for its own sake", "Entering a new market"},
			CorrectIdx:  2,
			Explanation: "Headcount for its own sake adds management burden; M&A targets synergy, share or core assets.",
		},
	}
}
