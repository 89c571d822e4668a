// Package recommend picks exercises from a static catalog for a given
// emotional state.
package recommend

import (
	"time"

	"github.com/iburimskiy/emotional-mirror/internal/emotion"
)

// Category groups exercises in the practice catalog.
type Category struct {
	ID    string
	Label string
	Color string // hex, used for the card accent
}

var (
	Mindfulness = Category{ID: "mindfulness", Label: "Mindfulness", Color: "#8B5CF6"}
	CBT         = Category{ID: "cbt", Label: "CBT", Color: "#F59E0B"}
	Somatic     = Category{ID: "somatic", Label: "Somatic", Color: "#10B981"}
	Journaling  = Category{ID: "journaling", Label: "Journaling", Color: "#F43F5E"}
	Tools       = Category{ID: "tools", Label: "Tools", Color: "#3B82F6"}
)

// Exercise is one catalog entry. Duration is zero when open-ended.
type Exercise struct {
	ID       string
	Title    string
	Duration time.Duration
	Category Category
}

var catalog = []Exercise{
	{ID: "m1", Title: "Guided Meditation", Duration: 5 * time.Minute, Category: Mindfulness},
	{ID: "m2", Title: "Calming Breath", Duration: 2 * time.Minute, Category: Mindfulness},
	{ID: "m3", Title: "Grounding Through the Senses", Category: Mindfulness},
	{ID: "m4", Title: "Relaxing Body Scan", Category: Mindfulness},

	{ID: "c1", Title: "Thought Journal", Category: CBT},
	{ID: "c2", Title: "Cognitive Restructuring", Category: CBT},
	{ID: "c3", Title: "Finding Core Beliefs", Category: CBT},
	{ID: "c4", Title: "Behavioural Activation Plan", Category: CBT},

	{ID: "s1", Title: "Body Awareness Map", Category: Somatic},
	{ID: "s2", Title: "Loosening Through Movement", Category: Somatic},
	{ID: "s3", Title: "Breath and Posture Reset", Category: Somatic},
	{ID: "s4", Title: "Locating Tension", Category: Somatic},

	{ID: "j1", Title: "Free Writing", Category: Journaling},
	{ID: "j2", Title: "Gratitude Journal", Category: Journaling},
	{ID: "j3", Title: "\"What Do I Need Today?\"", Category: Journaling},
	{ID: "j4", Title: "Reframing a Hard Situation", Category: Journaling},

	{ID: "t1", Title: "Therapeutic Thought Recording", Category: Tools},
	{ID: "t2", Title: "Labelling Emotions", Category: Tools},
	{ID: "t3", Title: "Stepping Back From Thoughts", Category: Tools},
	{ID: "t4", Title: "Clarifying Values", Category: Tools},
}

// Catalog returns a copy of all exercises.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an exercise by id.
func Lookup(id string) (Exercise, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// Profile names the rule that matched.
type Profile string

const (
	AcuteDistress Profile = "acute-distress"
	LowMood       Profile = "low-mood"
	Anxiety       Profile = "anxiety"
	Excitement    Profile = "excitement"
	Reflective    Profile = "reflective"
	Balanced      Profile = "balanced"
)

const maxRecommendations = 4

// Match returns the first profile whose rule fits l, and the exercise ids
// it suggests.
func Match(l emotion.Levels) (Profile, []string) {
	l = l.Clamp()

	highIntensity := l.Intensity > 0.6
	lowEnergy := l.Energy < 0.4
	unpleasant := l.Valence < 0.4
	pleasant := l.Valence > 0.6
	chaotic := l.Chaos > 0.6
	heavy := l.Heaviness > 0.6
	calm := l.Intensity < 0.4 && l.Chaos < 0.4

	switch {
	case highIntensity && unpleasant && chaotic:
		return AcuteDistress, []string{"m2", "c1", "s4", "m3"}
	case lowEnergy && heavy && unpleasant:
		return LowMood, []string{"c4", "j2", "s2", "m1"}
	case l.Energy > 0.6 && chaotic && heavy:
		return Anxiety, []string{"m3", "m4", "s3", "m2"}
	case highIntensity && pleasant:
		return Excitement, []string{"t2", "t1", "j3", "m1"}
	case calm:
		return Reflective, []string{"m1", "j1", "t4", "c3"}
	}
	return Balanced, []string{"m1", "j1", "t2", "s1"}
}

// Recommend returns up to four exercises for l.
func Recommend(l emotion.Levels) []Exercise {
	_, ids := Match(l)
	if len(ids) > maxRecommendations {
		ids = ids[:maxRecommendations]
	}
	out := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		if ex, ok := Lookup(id); ok {
			out = append(out, ex)
		}
	}
	return out
}
