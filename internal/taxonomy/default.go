package taxonomy

// rootVAD maps each root category to its base dimensional vector.
var rootVAD = map[string]VADVector{
	"happy":     {Valence: 0.8, Arousal: 0.5, Dominance: 0.6},
	"sad":       {Valence: -0.7, Arousal: -0.35, Dominance: -0.4},
	"angry":     {Valence: -0.6, Arousal: 0.7, Dominance: 0.35},
	"fearful":   {Valence: -0.7, Arousal: 0.65, Dominance: -0.5},
	"surprised": {Valence: 0.2, Arousal: 0.7, Dominance: -0.1},
	"bad":       {Valence: -0.5, Arousal: 0.1, Dominance: -0.3},
	"disgusted": {Valence: -0.6, Arousal: 0.3, Dominance: 0.2},
}

// Default returns the built-in three-level feeling wheel.
func Default() *Taxonomy {
	return New(defaultNodes)
}

var defaultNodes = []Node{
	// happy
	{ID: "happy", Label: "Happy", Depth: 0},
	{ID: "content", Label: "Content", ParentID: "happy", Depth: 1},
	{ID: "free", Label: "Free", ParentID: "content", Depth: 2},
	{ID: "joyful", Label: "Joyful", ParentID: "content", Depth: 2},
	{ID: "proud", Label: "Proud", ParentID: "happy", Depth: 1},
	{ID: "successful", Label: "Successful", ParentID: "proud", Depth: 2},
	{ID: "confident", Label: "Confident", ParentID: "proud", Depth: 2},
	{ID: "peaceful", Label: "Peaceful", ParentID: "happy", Depth: 1},
	{ID: "loving", Label: "Loving", ParentID: "peaceful", Depth: 2},
	{ID: "thankful", Label: "Thankful", ParentID: "peaceful", Depth: 2},
	{ID: "optimistic", Label: "Optimistic", ParentID: "happy", Depth: 1},
	{ID: "hopeful", Label: "Hopeful", ParentID: "optimistic", Depth: 2},
	{ID: "inspired", Label: "Inspired", ParentID: "optimistic", Depth: 2},

	// sad
	{ID: "sad", Label: "Sad", Depth: 0},
	{ID: "lonely", Label: "Lonely", ParentID: "sad", Depth: 1},
	{ID: "isolated", Label: "Isolated", ParentID: "lonely", Depth: 2},
	{ID: "abandoned", Label: "Abandoned", ParentID: "lonely", Depth: 2},
	{ID: "despair", Label: "Despair", ParentID: "sad", Depth: 1},
	{ID: "grief", Label: "Grief", ParentID: "despair", Depth: 2},
	{ID: "powerless", Label: "Powerless", ParentID: "despair", Depth: 2},
	{ID: "guilty", Label: "Guilty", ParentID: "sad", Depth: 1},
	{ID: "ashamed", Label: "Ashamed", ParentID: "guilty", Depth: 2},
	{ID: "remorseful", Label: "Remorseful", ParentID: "guilty", Depth: 2},

	// angry
	{ID: "angry", Label: "Angry", Depth: 0},
	{ID: "frustrated", Label: "Frustrated", ParentID: "angry", Depth: 1},
	{ID: "annoyed", Label: "Annoyed", ParentID: "frustrated", Depth: 2},
	{ID: "infuriated", Label: "Infuriated", ParentID: "frustrated", Depth: 2},
	{ID: "let-down", Label: "Let Down", ParentID: "angry", Depth: 1},
	{ID: "betrayed", Label: "Betrayed", ParentID: "let-down", Depth: 2},
	{ID: "resentful", Label: "Resentful", ParentID: "let-down", Depth: 2},
	{ID: "critical", Label: "Critical", ParentID: "angry", Depth: 1},
	{ID: "skeptical", Label: "Skeptical", ParentID: "critical", Depth: 2},
	{ID: "dismissive", Label: "Dismissive", ParentID: "critical", Depth: 2},

	// fearful
	{ID: "fearful", Label: "Fearful", Depth: 0},
	{ID: "anxious", Label: "Anxious", ParentID: "fearful", Depth: 1},
	{ID: "overwhelmed", Label: "Overwhelmed", ParentID: "anxious", Depth: 2},
	{ID: "worried", Label: "Worried", ParentID: "anxious", Depth: 2},
	{ID: "insecure", Label: "Insecure", ParentID: "fearful", Depth: 1},
	{ID: "inadequate", Label: "Inadequate", ParentID: "insecure", Depth: 2},
	{ID: "inferior", Label: "Inferior", ParentID: "insecure", Depth: 2},
	{ID: "scared", Label: "Scared", ParentID: "fearful", Depth: 1},
	{ID: "helpless", Label: "Helpless", ParentID: "scared", Depth: 2},
	{ID: "frightened", Label: "Frightened", ParentID: "scared", Depth: 2},

	// surprised
	{ID: "surprised", Label: "Surprised", Depth: 0},
	{ID: "excited", Label: "Excited", ParentID: "surprised", Depth: 1},
	{ID: "eager", Label: "Eager", ParentID: "excited", Depth: 2},
	{ID: "energetic", Label: "Energetic", ParentID: "excited", Depth: 2},
	{ID: "amazed", Label: "Amazed", ParentID: "surprised", Depth: 1},
	{ID: "astonished", Label: "Astonished", ParentID: "amazed", Depth: 2},
	{ID: "awe", Label: "In Awe", ParentID: "amazed", Depth: 2},
	{ID: "confused", Label: "Confused", ParentID: "surprised", Depth: 1},
	{ID: "perplexed", Label: "Perplexed", ParentID: "confused", Depth: 2},
	{ID: "disillusioned", Label: "Disillusioned", ParentID: "confused", Depth: 2},

	// bad
	{ID: "bad", Label: "Bad", Depth: 0},
	{ID: "tired", Label: "Tired", ParentID: "bad", Depth: 1},
	{ID: "sleepy", Label: "Sleepy", ParentID: "tired", Depth: 2},
	{ID: "unfocused", Label: "Unfocused", ParentID: "tired", Depth: 2},
	{ID: "stressed", Label: "Stressed", ParentID: "bad", Depth: 1},
	{ID: "pressured", Label: "Pressured", ParentID: "stressed", Depth: 2},
	{ID: "rushed", Label: "Rushed", ParentID: "stressed", Depth: 2},
	{ID: "bored", Label: "Bored", ParentID: "bad", Depth: 1},
	{ID: "indifferent", Label: "Indifferent", ParentID: "bored", Depth: 2},
	{ID: "apathetic", Label: "Apathetic", ParentID: "bored", Depth: 2},

	// disgusted
	{ID: "disgusted", Label: "Disgusted", Depth: 0},
	{ID: "disapproving", Label: "Disapproving", ParentID: "disgusted", Depth: 1},
	{ID: "judgmental", Label: "Judgmental", ParentID: "disapproving", Depth: 2},
	{ID: "embarrassed", Label: "Embarrassed", ParentID: "disapproving", Depth: 2},
	{ID: "disappointed", Label: "Disappointed", ParentID: "disgusted", Depth: 1},
	{ID: "appalled", Label: "Appalled", ParentID: "disappointed", Depth: 2},
	{ID: "revolted", Label: "Revolted", ParentID: "disappointed", Depth: 2},
	{ID: "repelled", Label: "Repelled", ParentID: "disgusted", Depth: 1},
	{ID: "horrified", Label: "Horrified", ParentID: "repelled", Depth: 2},
	{ID: "hesitant", Label: "Hesitant", ParentID: "repelled", Depth: 2},
}
