package insights

// Prompts are the reflection prompts, one per day in rotation.
var Prompts = []string{
	"What are three things that brought you joy today, no matter how small?",
	"How did you show kindness to yourself or others today?",
	"What emotions came up for you today, and what might they be telling you?",
	"Describe a moment today when you felt truly present and aware.",
	"What is one thing you're learning about yourself right now?",
	"How did you handle a challenge today, and what does that show about your strength?",
	"What would you tell a dear friend who was experiencing your current situation?",
	"What are you grateful for in this very moment?",
	"How has your perspective on something shifted recently?",
	"What do you need more of in your life right now?",
	"What boundary did you honor today, or what boundary do you need to set?",
	"How did you nurture your mind, body, or spirit today?",
	"What pattern in your thoughts or behaviors are you noticing?",
	"How did you connect with others or with nature today?",
	"What would 'being gentle with yourself' look like right now?",
}

// Encouragements are shown after saving and on the insights view.
var Encouragements = []string{
	"Your willingness to reflect shows incredible self-awareness and courage.",
	"Every word you write is a step toward understanding yourself more deeply.",
	"You're creating a beautiful record of your growth and healing journey.",
	"Your thoughts and feelings are valid, and your story matters.",
	"The practice of reflection is a gift you give to your future self.",
}
