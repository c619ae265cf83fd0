package domain

// Difficulty tiers of a catalog video.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// DifficultyOrder is the canonical tier ordering, easiest first.
var DifficultyOrder = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// DifficultyRanking returns the tier table used for ranking, easiest first
// when beginnerFirst is set and hardest first otherwise.
func DifficultyRanking(beginnerFirst bool) []string {
	order := make([]string, len(DifficultyOrder))
	for i, d := range DifficultyOrder {
		if beginnerFirst {
			order[i] = d
		} else {
			order[len(DifficultyOrder)-1-i] = d
		}
	}
	return order
}

// IsValidDifficulty reports whether d is one of the known tiers.
func IsValidDifficulty(d string) bool {
	for _, known := range DifficultyOrder {
		if d == known {
			return true
		}
	}
	return false
}

// Video is an entry of the exercise video catalog, keyed by URL.
type Video struct {
	URL        string `bson:"url" json:"url"` // Unique
	LikeCount  int    `bson:"likeCount" json:"likeCount"`
	Difficulty string `bson:"difficulty" json:"difficulty"` // Beginner, Intermediate or Advanced
	BodyPart   string `bson:"bodyPart" json:"bodyPart"`
	Title      string `bson:"title" json:"title"`
}

// LikeAction is the delta applied to a video's like count.
type LikeAction int

const (
	LikeUp   LikeAction = 1
	LikeDown LikeAction = -1
)

// Valid reports whether a is +1 or -1.
func (a LikeAction) Valid() bool {
	return a == LikeUp || a == LikeDown
}

// VideoSort selects the ordering used when listing videos of a body part.
type VideoSort string

const (
	SortNone       VideoSort = ""
	SortTitle      VideoSort = "title"
	SortLikeCount  VideoSort = "likes"
	SortDifficulty VideoSort = "difficulty"
)
