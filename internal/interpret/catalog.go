package interpret

var catalog = map[Category]string{
	Storm: "A powerful storm is moving through you right now. High energy mixes with a sense of chaos, " +
		"which can be hard to carry. Thoughts race and feelings ask for a way out. " +
		"Even the fiercest storm passes.",
	Pressure: "You feel a lot of tension that seems to press down on you. Strength and weight together " +
		"can feel like pushing against something that pushes back. Your body is mobilised, " +
		"even if the aim of that effort is hard to see.",
	Fire: "You are going through very strong agitation. It is a fire burning in you, carrying frustration " +
		"or anger. Notice this energy without forcing it out, and let it simply be here for a moment.",
	Agitation: "There is a lot of movement and discomfort in your body. It is a state of readiness that " +
		"has not found relief yet. You may feel the urge to act or to get away, a natural response " +
		"to this kind of tension.",
	Weight: "You are carrying a heavy weight that takes your strength away. It is a deep withdrawal, " +
		"as if gravity pulled harder than usual. Body and mind are asking you to slow down " +
		"and look after this tiredness.",
	FragileRest: "You have little strength, and still there is unrest inside. It is exhausting to want " +
		"rest while thoughts will not let you settle. You are in a fragile balance that needs " +
		"a lot of gentleness now.",
	QuietAche: "What you feel is quiet but deeply piercing. A sadness or resignation that goes all the " +
		"way through. Nothing needs doing here; it is enough to breathe and let yourself feel " +
		"this stillness.",
	Winter: "Your mood is low and your energy dimmed. This is a natural winter for your feelings, " +
		"a time to hide from the world, recover and stay close to yourself without demands.",
	StuckUnease: "You feel a discomfort that has got stuck. A steady but unpleasant background, like a " +
		"stone in your shoe that rubs but lets you keep walking. It is worth looking at what is " +
		"quietly asking for your attention.",
	Irritation: "Something is bothering you, although you have the strength to get on with things. " +
		"A mild irritation or sense of something missing. Notice the dissonance; it often " +
		"signals a need that has not been met.",
	Excitement: "You are bursting with excitement! A joyful chaos where thoughts jump like sparks. " +
		"Plenty of ideas, an urge to act, enthusiasm: your energy is dancing and inviting you to play.",
	Joy: "You feel light, as if floating above the ground. Pure joy and ease. You carry a lot of bright " +
		"energy that makes everything seem simpler and possible.",
	Flow: "You hold a powerful yet orderly strength. This is flow: full focus, confidence and agency. " +
		"You know what to do and you have what it takes. Make the most of this moment!",
	Vitality: "Your energy is vibrating at a high level. You feel vital and eager for life. A great " +
		"moment to point this strength at what matters to you, or simply to enjoy moving.",
	GroundedRest: "You feel the deep, safe heaviness of relaxation, like lying under a warm heavy blanket. " +
		"A blissful grounding where your body can finally let go of tension and sink into soft rest.",
	Drift: "You are in a space of gentle quiet. Thoughts drift slowly, like clouds across the sky. " +
		"Lightness and softness, where nothing is required and everything is possible. Savour the silence.",
	Calm: "A soothing calm surrounds you. Everything is in its place. You are a steady rock among the " +
		"waves that little can move. This is the ground real recovery is built on.",
	Recharge: "You are resting. Your energy is in low gear, but it is a pleasant kind of recharging. " +
		"Allow yourself to do nothing; right now it is the most productive thing under the sun.",
	Harmony: "You are in harmonious balance. Not too high, not too low, just right. A calm that comes " +
		"from accepting what is. A good, steady moment to simply be.",
	Contentment: "You feel good. There is a brightness of spirit and a moderate energy in you. Pleasant " +
		"everyday life that needs no fireworks to satisfy. Enjoy this simple, good moment.",
}
