package content

import "github.com/danielpatrickdp/therapy-assistant/internal/category"

// #region bundles

type entry struct {
	songs    []string
	remedies []string
	jokes    []string
}

// bundles is indexed by category; every declared category has an entry.
var bundles = map[category.Category]entry{
	category.Anxiety: {
		songs: []string{
			"Weightless by Marconi Union (scientifically proven to reduce anxiety)",
			"Clair de Lune by Claude Debussy",
			"Gymnopédie No.1 by Erik Satie",
			"River by Joni Mitchell",
			"Mad World by Gary Jules",
		},
		remedies: []string{
			"Deep Breathing: Take 4 slow breaths - inhale for 4 counts, hold for 4, exhale for 6",
			"Progressive Muscle Relaxation: Tense and release each muscle group for 5 seconds",
			"Grounding Technique: Name 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste",
			"Calming Visualization: Picture a peaceful place and focus on the details",
			"Mindful Walking: Take slow, deliberate steps while focusing on each movement",
		},
		jokes: []string{
			"Why don't scientists trust atoms? Because they make up everything!",
			"I told my wife she was drawing her eyebrows too high. She looked surprised.",
			"What do you call a bear with no teeth? A gummy bear!",
			"Why don't eggs tell jokes? They'd crack each other up!",
		},
	},
	category.Sadness: {
		songs: []string{
			"Here Comes the Sun by The Beatles",
			"Three Little Birds by Bob Marley",
			"Don't Stop Me Now by Queen",
			"Good as Hell by Lizzo",
			"Walking on Sunshine by Katrina and the Waves",
		},
		remedies: []string{
			"Journaling: Write down your feelings without judgment for 10 minutes",
			"Gratitude Practice: List 3 things you are grateful for today",
			"Gentle Movement: Do light stretching or take a short walk outside",
			"Self-Compassion: Talk to yourself as you would a good friend",
			"Creative Expression: Draw, paint, or do any creative activity that brings you joy",
		},
		jokes: []string{
			"What's the best thing about Switzerland? I don't know, but the flag is a big plus.",
			"Why did the coffee file a police report? It got mugged!",
			"What do you call a dinosaur that crashes his car? Tyrannosaurus Wrecks!",
			"Why don't skeletons fight each other? They don't have the guts!",
		},
	},
	category.Stress: {
		songs: []string{
			"Breathe Me by Sia",
			"The Sound of Silence by Simon & Garfunkel",
			"Zen Garden (Nature Sounds)",
			"Om Namah Shivaya (Meditation Chant)",
			"Relaxing Piano Music for Stress Relief",
		},
		remedies: []string{
			"Box Breathing: Breathe in for 4, hold for 4, out for 4, hold for 4 - repeat 5 times",
			"Time Management: Write down tasks and prioritize the top 3 for today",
			"Body Scan: Lie down and notice tension in each body part, then consciously relax",
			"Nature Break: Step outside for 5 minutes and focus on natural sounds",
			"Stress Ball Exercise: Squeeze and release a stress ball 10 times",
		},
		jokes: []string{
			"I'm reading a book about anti-gravity. It's impossible to put down!",
			"Why did the scarecrow win an award? He was outstanding in his field!",
			"What do you call a fake noodle? An impasta!",
			"Why don't programmers like nature? It has too many bugs!",
		},
	},
	category.Anger: {
		songs: []string{
			"Let It Be by The Beatles",
			"Calm Down by Rema",
			"Peace Train by Cat Stevens",
			"Imagine by John Lennon",
			"The Long and Winding Road by The Beatles",
		},
		remedies: []string{
			"Anger Release: Count to 10 slowly while taking deep breaths",
			"Physical Release: Do 10 jumping jacks or push-ups to release tension",
			"Cooling Technique: Hold ice cubes or splash cold water on your face",
			`Perspective Shift: Ask yourself "Will this matter in 5 years?"`,
			"Safe Expression: Write an angry letter but don't send it - then tear it up",
		},
		jokes: []string{
			"Why was the math book sad? Because it had too many problems!",
			"What do you call a sleeping bull? A bulldozer!",
			"Why did the banana go to the doctor? It wasn't peeling well!",
			"What's orange and sounds like a parrot? A carrot!",
		},
	},
	category.Default: {
		songs: []string{
			"Happy by Pharrell Williams",
			"Good Vibes by Chris Janson",
			"Count on Me by Bruno Mars",
			"What a Wonderful World by Louis Armstrong",
			"Somewhere Over the Rainbow by Israel Kamakawiwoʻole",
		},
		remedies: []string{
			"Mindfulness Moment: Take 3 deep breaths and notice 3 things around you",
			`Positive Affirmation: Say "I am capable and worthy" 3 times`,
			"Gentle Movement: Do 5 shoulder rolls and neck stretches",
			"Hydration Break: Drink a glass of water slowly and mindfully",
			"Smile Exercise: Smile for 10 seconds - even forced smiles can boost mood",
		},
		jokes: []string{
			"Why don't scientists trust atoms? Because they make up everything!",
			"What do you call a bear with no teeth? A gummy bear!",
			"Why did the bicycle fall over? It was two tired!",
			"What's the best thing about Switzerland? I don't know, but the flag is a big plus!",
		},
	},
}

// #endregion bundles

// #region quotes

// quotes has no anger bucket; anger resolves to default.
var quotes = map[category.Category][3]string{
	category.Anxiety: {
		"You are braver than you believe, stronger than you seem, and smarter than you think. - A.A. Milne",
		"Anxiety is the dizziness of freedom. - Søren Kierkegaard",
		"Nothing can bring you peace but yourself. - Ralph Waldo Emerson",
	},
	category.Sadness: {
		"The sun will rise and we will try again. - Twenty One Pilots",
		"Every storm runs out of rain. - Maya Angelou",
		"This too shall pass. - Persian Proverb",
	},
	category.Stress: {
		"You have been assigned this mountain to show others it can be moved. - Mel Robbins",
		"Stress is caused by being 'here' but wanting to be 'there'. - Eckhart Tolle",
		"Take time to make your soul happy. - Unknown",
	},
	category.Default: {
		"Be yourself; everyone else is already taken. - Oscar Wilde",
		"You are enough just as you are. - Meghan Markle",
		"Believe you can and you're halfway there. - Theodore Roosevelt",
	},
}

// #endregion quotes
