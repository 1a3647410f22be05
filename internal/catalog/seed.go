package catalog

// seedLevels returns the built-in four-level PM curriculum.
// Course content mirrors the published course plan; lesson completion
// counts are demo seed data (there is no lesson-completion write path).
func seedLevels() []Level {
	return []Level{
		{
			ID:      "l1",
			Rank:    1,
			Label:   "LEVEL 1",
			Title:   "Associate PM (APM)",
			Tagline: "Build core product thinking and execution basics. For newcomers in year 0-1.",
			Price:   0,
			Courses: []Course{
				{ID: "c101", Title: "The PM Role: Landscape & Mental Models", Duration: "45min", LessonCount: 3, CompletedLessons: 3},
				{ID: "c102", Title: "Competitive Analysis: SWOT & the Five Layers", Duration: "1.5h", LessonCount: 5, CompletedLessons: 5},
				{ID: "c103", Title: "Flowcharts: Swimlanes & State Machines", Duration: "2h", LessonCount: 6, CompletedLessons: 2},
				{ID: "c104", Title: "Writing PRDs: User Stories to Edge Cases", Duration: "4h", LessonCount: 12},
				{ID: "c105", Title: "Backlog Management: Prioritization Rules", Duration: "1h", LessonCount: 4},
				{ID: "c106", Title: "Agile Foundations: Scrum & Sprints", Duration: "2h", LessonCount: 8},
			},
		},
		{
			ID:      "l2",
			Rank:    2,
			Label:   "LEVEL 2",
			Title:   "Product Manager (PM)",
			Tagline: "Own a module end to end with data-driven decisions. For years 1-3.",
			Price:   299,
			Courses: []Course{
				{ID: "c201", Title: "Practical SQL: SELECT to Window Functions", Duration: "5h", LessonCount: 15, CompletedLessons: 5},
				{ID: "c202", Title: "Metric Systems: DAU, LTV & Retention", Duration: "3h", LessonCount: 10},
				{ID: "c203", Title: "A/B Testing: Statistics & Confidence", Duration: "2h", LessonCount: 6},
				{ID: "c204", Title: "High-Fidelity Prototypes & Design Systems", Duration: "4h", LessonCount: 12},
				{ID: "c205", Title: "User Research: Interviews & Surveys", Duration: "2.5h", LessonCount: 8},
				{ID: "c206", Title: "Usability: Nielsen's Ten Heuristics", Duration: "2h", LessonCount: 8},
			},
		},
		{
			ID:      "l3",
			Rank:    3,
			Label:   "LEVEL 3",
			Title:   "Senior Product Manager",
			Tagline: "Commercial insight, strategy and team leadership. For 3+ year practitioners.",
			Price:   599,
			Courses: []Course{
				{ID: "c301", Title: "Business Model Canvas & BRD Writing", Duration: "3h", LessonCount: 9},
				{ID: "c302", Title: "Growth: AARRR Funnels & Growth Loops", Duration: "3h", LessonCount: 10},
				{ID: "c303", Title: "SaaS Architecture & API Design", Duration: "5h", LessonCount: 18},
				{ID: "c304", Title: "Complex Programs: Risk & Gantt Planning", Duration: "3h", LessonCount: 8},
				{ID: "c305", Title: "B2B Product Design: RBAC Permission Models", Duration: "4h", LessonCount: 10},
				{ID: "c306", Title: "Managing Up & Cross-Team Collaboration", Duration: "1.5h", LessonCount: 4},
			},
		},
		{
			ID:      "l4",
			Rank:    4,
			Label:   "LEVEL 4",
			Title:   "Product Director",
			Tagline: "Set strategy, grow leaders, understand capital. For the leap to executive.",
			Price:   1299,
			Courses: []Course{
				{ID: "c401", Title: "Product Strategy: The DOT Strategy Map", Duration: "5h", LessonCount: 12},
				{ID: "c402", Title: "Org Design & Platform Strategy", Duration: "4h", LessonCount: 8},
				{ID: "c403", Title: "Reading Financials: P&L, EBITDA & Cash Flow", Duration: "3h", LessonCount: 8},
				{ID: "c404", Title: "M&A and Post-Merger Integration", Duration: "3h", LessonCount: 6},
				{ID: "c405", Title: "Building Talent Pipelines", Duration: "3h", LessonCount: 8},
				{ID: "c406", Title: "Director-Level Case Defense & Assessment", Duration: "1h", LessonCount: 1},
			},
		},
	}
}
