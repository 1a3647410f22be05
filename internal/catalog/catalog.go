package catalog

// Course is a single unit of content within a level.
type Course struct {
	ID               string
	Title            string
	Duration         string
	LessonCount      int
	CompletedLessons int
}

// Level is a paywalled curriculum tier. Price 0 means always unlocked.
type Level struct {
	ID      string
	Rank    int
	Label   string // e.g. "LEVEL 1"
	Title   string // e.g. "Associate PM (APM)"
	Tagline string
	Price   int
	Courses []Course
}

// Catalog provides read-only access to the curriculum structure.
type Catalog struct {
	levels []Level
	byID   map[string]*Level
}

// New builds a catalog from the given levels. It panics on duplicate
// level IDs since the catalog is static configuration.
func New(levels []Level) *Catalog {
	c := &Catalog{
		levels: levels,
		byID:   make(map[string]*Level, len(levels)),
	}
	for i := range c.levels {
		id := c.levels[i].ID
		if _, dup := c.byID[id]; dup {
			panic("catalog: duplicate level id " + id)
		}
		c.byID[id] = &c.levels[i]
	}
	return c
}

// Default returns the catalog seeded with the built-in curriculum.
func Default() *Catalog {
	return New(seedLevels())
}

// Get returns the level with the given ID.
func (c *Catalog) Get(id string) (Level, bool) {
	l, ok := c.byID[id]
	if !ok {
		return Level{}, false
	}
	return *l, true
}

// Levels returns all levels in catalog order.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Price returns the price of the level, or 0 and false when the level
// does not exist.
func (c *Catalog) Price(id string) (int, bool) {
	l, ok := c.byID[id]
	if !ok {
		return 0, false
	}
	return l.Price, true
}

// LevelProgress returns the completed-lesson fraction for a level in
// [0,1]. A level with no lessons reports 0.
func LevelProgress(l Level) float64 {
	var done, total int
	for _, course := range l.Courses {
		done += course.CompletedLessons
		total += course.LessonCount
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}
