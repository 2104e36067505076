package catalog

import "math"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Multiplier returns the point scaling factor for a difficulty tier.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyHard:
		return 1.5
	case DifficultyMedium:
		return 1.3
	default:
		return 1.0
	}
}

type ChallengeDefinition struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	BasePoints    int        `json:"points"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime int        `json:"estimatedTime"`
	Category      string     `json:"category"`
	Icon          string     `json:"icon"`
	Legacy        bool       `json:"-"`
}

// ScaledPoints applies the difficulty multiplier to the base points.
func (d *ChallengeDefinition) ScaledPoints() int {
	return int(math.Round(float64(d.BasePoints) * d.Difficulty.Multiplier()))
}

// Catalog is an immutable registry of challenge definitions. Legacy ids
// still resolve so that old clients keep working, but they are hidden
// from the active listing.
type Catalog struct {
	byID  map[string]*ChallengeDefinition
	order []string
}

func New(defs []*ChallengeDefinition) *Catalog {
	c := &Catalog{byID: make(map[string]*ChallengeDefinition, len(defs))}
	for _, def := range defs {
		if _, exists := c.byID[def.ID]; exists {
			continue
		}
		c.byID[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c
}

// Lookup resolves a challenge id, legacy ids included.
func (c *Catalog) Lookup(id string) (*ChallengeDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// Active returns the current (non-legacy) definitions in catalog order.
func (c *Catalog) Active() []*ChallengeDefinition {
	var defs []*ChallengeDefinition
	for _, id := range c.order {
		if def := c.byID[id]; !def.Legacy {
			defs = append(defs, def)
		}
	}
	return defs
}

// Default returns the shipped challenge catalog.
func Default() *Catalog {
	return New([]*ChallengeDefinition{
		{
			ID:            "beach_cleanup",
			Title:         "해안 정화",
			Description:   "해변 또는 해안가 쓰레기를 수거합니다.",
			BasePoints:    100,
			Difficulty:    DifficultyEasy,
			EstimatedTime: 60,
			Category:      "cleanup",
			Icon:          "🏖️",
		},
		{
			ID:            "marine_waste_collection",
			Title:         "해양 쓰레기 수거",
			Description:   "바다 위 또는 바닷속 쓰레기를 수거합니다.",
			BasePoints:    150,
			Difficulty:    DifficultyMedium,
			EstimatedTime: 45,
			Category:      "cleanup",
			Icon:          "🌊",
		},
		{
			ID:            "environmental_education",
			Title:         "환경 교육 참여",
			Description:   "해양 환경 관련 교육 프로그램에 참여합니다.",
			BasePoints:    80,
			Difficulty:    DifficultyEasy,
			EstimatedTime: 30,
			Category:      "education",
			Icon:          "📚",
		},
		{
			ID:            "pollution_report",
			Title:         "오염 신고",
			Description:   "해양 오염 현장을 발견하고 신고합니다.",
			BasePoints:    120,
			Difficulty:    DifficultyEasy,
			EstimatedTime: 15,
			Category:      "report",
			Icon:          "⚠️",
		},
		{
			ID:            "surfing_experience",
			Title:         "서핑 체험",
			Description:   "서핑을 체험하며 바다와 가까워집니다.",
			BasePoints:    150,
			Difficulty:    DifficultyMedium,
			EstimatedTime: 90,
			Category:      "experience",
			Icon:          "🏄",
		},
		{
			ID:            "marine_tourism",
			Title:         "해양 관광",
			Description:   "해양 생태 관광지를 방문합니다.",
			BasePoints:    100,
			Difficulty:    DifficultyEasy,
			EstimatedTime: 120,
			Category:      "experience",
			Icon:          "⛵",
		},
		// Legacy challenge ids kept for backward compatibility with
		// activities submitted by older app versions.
		{
			ID:            "ocean_waste",
			Title:         "해양 쓰레기 수거",
			Description:   "바다 위 또는 바닷속 쓰레기를 수거합니다.",
			BasePoints:    50,
			Difficulty:    DifficultyMedium,
			EstimatedTime: 45,
			Category:      "cleanup",
			Icon:          "🌊",
			Legacy:        true,
		},
		{
			ID:            "education",
			Title:         "환경 교육 참여",
			Description:   "해양 환경 관련 교육 프로그램에 참여합니다.",
			BasePoints:    40,
			Difficulty:    DifficultyEasy,
			EstimatedTime: 30,
			Category:      "education",
			Icon:          "📚",
			Legacy:        true,
		},
		{
			ID:            "wildlife_observation",
			Title:         "해양 생물 관찰",
			Description:   "해양 생물을 관찰하고 기록합니다.",
			BasePoints:    35,
			Difficulty:    DifficultyEasy,
			EstimatedTime: 30,
			Category:      "observation",
			Icon:          "🐟",
			Legacy:        true,
		},
	})
}
